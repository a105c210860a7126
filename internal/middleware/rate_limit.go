package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/dto"
	"github.com/FindTheRhythm/stellar-burgers/internal/i18n"
	"github.com/FindTheRhythm/stellar-burgers/internal/metrics"
)

const defaultRateShards = 16

// window is the fixed-window counter of one caller.
type window struct {
	used  int
	start time.Time
}

type rateShard struct {
	mu      sync.Mutex
	windows map[string]*window
}

// RateLimiter is a fixed-window limiter keyed per caller. Callers are spread
// over shards so that unrelated clients do not contend on one lock.
type RateLimiter struct {
	shards   []*rateShard
	limit    int
	period   time.Duration
	keyFunc  func(*gin.Context) string
	skip     []string
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// RateLimitOption customizes a RateLimiter.
type RateLimitOption func(*RateLimiter)

// WithRateShards sets the shard count. Non-positive values keep the default.
func WithRateShards(n int) RateLimitOption {
	return func(rl *RateLimiter) {
		if n > 0 {
			rl.shards = newRateShards(n)
		}
	}
}

// WithKeyFunc changes how callers are told apart. The default is the client IP.
func WithKeyFunc(fn func(*gin.Context) string) RateLimitOption {
	return func(rl *RateLimiter) {
		if fn != nil {
			rl.keyFunc = fn
		}
	}
}

// WithSkipPrefixes exempts requests whose path starts with one of prefixes,
// such as probes and the metrics scrape.
func WithSkipPrefixes(prefixes ...string) RateLimitOption {
	return func(rl *RateLimiter) {
		rl.skip = append(rl.skip, prefixes...)
	}
}

// NewRateLimiter allows limit requests per caller in each period.
func NewRateLimiter(limit int, period time.Duration, opts ...RateLimitOption) *RateLimiter {
	rl := &RateLimiter{
		shards:  newRateShards(defaultRateShards),
		limit:   limit,
		period:  period,
		keyFunc: clientIP,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rl)
	}

	go rl.sweepLoop()
	return rl
}

func newRateShards(n int) []*rateShard {
	shards := make([]*rateShard, n)
	for i := range shards {
		shards[i] = &rateShard{windows: make(map[string]*window)}
	}
	return shards
}

func clientIP(c *gin.Context) string {
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) shardFor(key string) *rateShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// take consumes one request from key's window and reports what is left.
func (rl *RateLimiter) take(key string) (allowed bool, remaining int) {
	shard := rl.shardFor(key)
	now := rl.now()

	shard.mu.Lock()
	defer shard.mu.Unlock()

	w, ok := shard.windows[key]
	if !ok || now.Sub(w.start) >= rl.period {
		w = &window{start: now}
		shard.windows[key] = w
	}
	if w.used >= rl.limit {
		return false, 0
	}
	w.used++
	return true, rl.limit - w.used
}

func (rl *RateLimiter) skipped(path string) bool {
	for _, prefix := range rl.skip {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RateLimit returns the middleware. Rejections get 429 with Retry-After.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(math.Ceil(rl.period.Seconds())))

	return func(c *gin.Context) {
		if rl.skipped(c.Request.URL.Path) {
			c.Next()
			return
		}

		allowed, remaining := rl.take(rl.keyFunc(c))
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			metrics.RecordRateLimited(c.Request.URL.Path)
			c.Header("Retry-After", retryAfter)
			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stopCh:
			return
		}
	}
}

// sweep drops windows that ended at least one full period ago.
func (rl *RateLimiter) sweep() {
	now := rl.now()
	for _, shard := range rl.shards {
		shard.mu.Lock()
		for key, w := range shard.windows {
			if now.Sub(w.start) >= 2*rl.period {
				delete(shard.windows, key)
			}
		}
		shard.mu.Unlock()
	}
}

// Len reports how many callers currently hold a window.
func (rl *RateLimiter) Len() int {
	n := 0
	for _, shard := range rl.shards {
		shard.mu.Lock()
		n += len(shard.windows)
		shard.mu.Unlock()
	}
	return n
}

// Stop ends the sweep loop. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}
