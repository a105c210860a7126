//go:build !integration

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FindTheRhythm/stellar-burgers/config"
)

// fakeUpstream serves the catalog and a login.
func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ingredients", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"_id":"bun-1","name":"Krator bun","type":"bun","price":1255}]}`))
	})
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"user":{"name":"Ann","email":"ann@example.com"},"accessToken":"Bearer access-1","refreshToken":"refresh-1"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL string) config.Config {
	return config.Config{
		Log:      config.LogConfig{Level: "error"},
		Server:   config.ServerConfig{WaitTimeout: 2 * time.Second},
		Upstream: config.UpstreamConfig{BaseURL: baseURL, Timeout: 2 * time.Second},
		Cache:    config.CacheConfig{Size: 16, TTL: time.Minute},
		Session:  config.SessionConfig{ID: "test", Backend: config.BackendMemory},
	}
}

func TestInitializeApp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	upstream := fakeUpstream(t)

	t.Run("serves the initial state", func(t *testing.T) {
		application, err := InitializeApp(context.Background(), testConfig(upstream.URL+"/api"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = application.Close(context.Background()) })

		w := httptest.NewRecorder()
		application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/state", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, application.Store.Ingredients.State().Items)
	})

	t.Run("loads the catalog on start", func(t *testing.T) {
		cfg := testConfig(upstream.URL + "/api")
		cfg.Session.FetchCatalogOnStart = true

		application, err := InitializeApp(context.Background(), cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = application.Close(context.Background()) })

		assert.Eventually(t, func() bool {
			return len(application.Store.Ingredients.State().Buns) == 1
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("login stores credentials for the session", func(t *testing.T) {
		application, err := InitializeApp(context.Background(), testConfig(upstream.URL+"/api"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = application.Close(context.Background()) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login?wait=true",
			jsonBody(t, map[string]string{"email": "ann@example.com", "password": "secret"}))
		req.Header.Set("Content-Type", "application/json")
		application.Router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.True(t, application.Store.User.State().IsAuthenticated)

		stored, err := application.database.Credentials.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "access-1", stored.AccessToken)
		assert.Equal(t, "refresh-1", stored.RefreshToken)
	})
}

func TestApp_CloseWithoutDatabase(t *testing.T) {
	application := &App{}
	assert.NoError(t, application.Close(context.Background()))
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}
