package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is advanced by hand in window tests.
type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rl.RateLimit())
	router.GET("/api/feed", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func send(router *gin.Engine, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_Take(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		calls         int
		wantAllowed   int
		wantRemaining int
	}{
		{name: "under the limit", limit: 5, calls: 3, wantAllowed: 3, wantRemaining: 2},
		{name: "exactly the limit", limit: 3, calls: 3, wantAllowed: 3, wantRemaining: 0},
		{name: "over the limit", limit: 2, calls: 5, wantAllowed: 2, wantRemaining: 0},
		{name: "zero limit rejects everything", limit: 0, calls: 2, wantAllowed: 0, wantRemaining: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewRateLimiter(tt.limit, time.Minute, WithRateShards(4))
			defer rl.Stop()

			allowed, remaining := 0, 0
			for i := 0; i < tt.calls; i++ {
				ok, left := rl.take("ip:10.0.0.1")
				if ok {
					allowed++
				}
				remaining = left
			}

			assert.Equal(t, tt.wantAllowed, allowed)
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}

func TestRateLimiter_CallersAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	for i := 0; i < 20; i++ {
		ok, _ := rl.take(fmt.Sprintf("ip:10.0.0.%d", i))
		assert.True(t, ok)
	}
	assert.Equal(t, 20, rl.Len())
}

func TestRateLimiter_WindowResets(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(1, time.Minute)
	rl.now = clock.now
	defer rl.Stop()

	ok, _ := rl.take("caller")
	require.True(t, ok)
	ok, _ = rl.take("caller")
	require.False(t, ok)

	clock.t = clock.t.Add(time.Minute)
	ok, remaining := rl.take("caller")
	assert.True(t, ok)
	assert.Equal(t, 0, remaining)
}

func TestRateLimiter_Sweep(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(3, time.Minute)
	rl.now = clock.now
	defer rl.Stop()

	rl.take("old")
	clock.t = clock.t.Add(90 * time.Second)
	rl.take("fresh")

	clock.t = clock.t.Add(31 * time.Second)
	rl.sweep()

	assert.Equal(t, 1, rl.Len())
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(1, 90*time.Second)
	defer rl.Stop()
	router := newLimitedRouter(rl)

	first := send(router, "/api/feed", "10.0.0.1:1234")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	second := send(router, "/api/feed", "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "90", second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), "rate_limit_exceeded")

	other := send(router, "/api/feed", "10.0.0.2:1234")
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestRateLimiter_SkipPrefixes(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, WithSkipPrefixes("/healthz"))
	defer rl.Stop()
	router := newLimitedRouter(rl)

	for i := 0; i < 3; i++ {
		w := send(router, "/healthz", "10.0.0.1:1234")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
	assert.Equal(t, 0, rl.Len())
}

func TestRateLimiter_WithKeyFunc(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, WithKeyFunc(func(c *gin.Context) string {
		return c.GetHeader("X-Client")
	}))
	defer rl.Stop()
	router := newLimitedRouter(rl)

	for _, tc := range []struct {
		client string
		want   int
	}{
		{"a", http.StatusOK},
		{"b", http.StatusOK},
		{"a", http.StatusTooManyRequests},
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
		req.Header.Set("X-Client", tc.client)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, tc.want, w.Code, tc.client)
	}
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
