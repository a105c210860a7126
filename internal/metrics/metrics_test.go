package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/state", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/api/broken", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{
			name:           "records metrics for successful request",
			path:           "/api/state",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			path:           "/api/broken",
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			counter := HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.path, strconv.Itoa(tt.expectedStatus))
			assert.GreaterOrEqual(t, testutil.ToFloat64(counter), float64(1))
		})
	}
}

func TestRecordStoreEvents(t *testing.T) {
	pending := StoreEventsTotal.WithLabelValues("feed", "fetch", "pending")
	succeeded := StoreEventsTotal.WithLabelValues("feed", "fetch", "succeeded")
	beforePending := testutil.ToFloat64(pending)
	beforeSucceeded := testutil.ToFloat64(succeeded)

	RecordStoreEvent("feed", "fetch", "pending")
	RecordStoreSettle("feed", "fetch", "succeeded", 20*time.Millisecond)

	assert.Equal(t, beforePending+1, testutil.ToFloat64(pending))
	assert.Equal(t, beforeSucceeded+1, testutil.ToFloat64(succeeded))
}

func TestRecordUpstreamRequest(t *testing.T) {
	ok := UpstreamRequestsTotal.WithLabelValues(http.MethodGet, "/ingredients", "200")
	none := UpstreamRequestsTotal.WithLabelValues(http.MethodGet, "/ingredients", "none")
	beforeOK := testutil.ToFloat64(ok)
	beforeNone := testutil.ToFloat64(none)

	RecordUpstreamRequest(http.MethodGet, "/ingredients", http.StatusOK, 10*time.Millisecond)
	RecordUpstreamRequest(http.MethodGet, "/ingredients", 0, time.Millisecond)

	assert.Equal(t, beforeOK+1, testutil.ToFloat64(ok))
	assert.Equal(t, beforeNone+1, testutil.ToFloat64(none))
}

func TestRecordTokenRefresh(t *testing.T) {
	counter := TokenRefreshTotal.WithLabelValues("success")
	before := testutil.ToFloat64(counter)

	RecordTokenRefresh("success")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("upstream-api", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("upstream-api")))

	SetCircuitBreakerState("upstream-api", 0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("upstream-api")))
}

func TestRecordCacheOperation(t *testing.T) {
	hit := CacheOperationsTotal.WithLabelValues("get", "hit")
	before := testutil.ToFloat64(hit)

	RecordCacheOperation("get", "hit")
	RecordCacheOperation("get", "miss")

	assert.Equal(t, before+1, testutil.ToFloat64(hit))
}

func TestUpdateCacheMetrics(t *testing.T) {
	UpdateCacheMetrics(50, 100)
	assert.Equal(t, float64(50), testutil.ToFloat64(CacheSize))
	assert.Equal(t, float64(100), testutil.ToFloat64(CacheCapacity))
}

func TestRecordRateLimited(t *testing.T) {
	counter := HTTPRateLimitedTotal.WithLabelValues("/api/feed/fetch")
	before := testutil.ToFloat64(counter)

	RecordRateLimited("/api/feed/fetch")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
