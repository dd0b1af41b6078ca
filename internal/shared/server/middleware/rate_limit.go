package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"transparency-ai/internal/shared/server/respond"
)

// RateLimitRule is a token-bucket rate (tokens per second) and burst size.
// A non-positive Rate or Burst disables limiting.
type RateLimitRule struct {
	Rate  float64
	Burst int
}

func (r RateLimitRule) enabled() bool {
	return r.Rate > 0 && r.Burst > 0
}

// RateLimitConfig configures the RateLimit middleware.
type RateLimitConfig struct {
	Group   string
	Rule    RateLimitRule
	KeyFor  func(*gin.Context) string
	Limiter *RateLimiter
}

// RateLimiter keeps one token bucket per key.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	now      func() time.Time
}

// NewRateLimiter constructs a RateLimiter. now defaults to time.Now.
func NewRateLimiter(now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		now:      now,
	}
}

// RateLimit rejects requests over the per-client budget with 429 and a Retry-After header.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if !cfg.Rule.enabled() {
		return func(c *gin.Context) { c.Next() }
	}
	if cfg.Limiter == nil {
		cfg.Limiter = NewRateLimiter(nil)
	}
	if cfg.KeyFor == nil {
		cfg.KeyFor = func(c *gin.Context) string { return c.ClientIP() }
	}

	return func(c *gin.Context) {
		key := strings.TrimSpace(cfg.KeyFor(c)) + "|" + cfg.Group
		allowed, retryAfter := cfg.Limiter.Allow(key, cfg.Rule)
		if allowed {
			c.Next()
			return
		}
		retryAfterSeconds := int(math.Ceil(retryAfter.Seconds()))
		if retryAfterSeconds <= 0 {
			retryAfterSeconds = 1
		}
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
		respond.Error(c, http.StatusTooManyRequests, "Rate limit exceeded",
			fmt.Sprintf("Too many requests, retry after %d seconds", retryAfterSeconds))
	}
}

// Allow takes one token for key. When the bucket is empty it returns false and
// the wait until a token is available.
func (l *RateLimiter) Allow(key string, rule RateLimitRule) (bool, time.Duration) {
	if l == nil || !rule.enabled() {
		return true, 0
	}
	now := l.now()

	l.mu.Lock()
	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(rule.Rate), rule.Burst)
		l.limiters[key] = lim
	}
	l.mu.Unlock()

	res := lim.ReserveN(now, 1)
	if !res.OK() {
		return false, time.Second
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay
	}
	return true, 0
}
