//go:build integration

package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp_RestoresSessionFromMongo(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	var profileAuth atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"user":{"name":"Ann","email":"ann@example.com"},"accessToken":"Bearer access-1","refreshToken":"refresh-1"}`))
	})
	mux.HandleFunc("/api/auth/user", func(w http.ResponseWriter, r *http.Request) {
		profileAuth.Store(r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"user":{"name":"Ann","email":"ann@example.com"}}`))
	})
	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	cfg := mongoConfig(t, "kiosk-restore")
	cfg.Upstream.BaseURL = upstream.URL + "/api"
	cfg.Upstream.Timeout = 2 * time.Second
	cfg.Session.RestoreOnStart = true

	first, err := InitializeApp(ctx, cfg)
	require.NoError(t, err)
	require.NotNil(t, first.database.DB)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login?wait=true",
		bytes.NewBufferString(`{"email":"ann@example.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	first.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, first.Close(ctx))

	second, err := InitializeApp(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = second.database.DB.Database.Drop(ctx)
		_ = second.Close(ctx)
	})

	assert.Eventually(t, func() bool {
		return second.Store.User.State().IsAuthenticated
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "Bearer access-1", profileAuth.Load())
}
