package middleware

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/gestionski/skistation/internal/app/models/dto"
	"github.com/gestionski/skistation/internal/pkg/logger"
)

const (
	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key of the request id
	RequestIDKey = "requestID"
)

// RequestID tags every request with an id and stores a request-scoped logger in its context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		l := logger.WithRequestID(requestID)
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))

		c.Next()
	}
}

// RequestLogger logs one line per request, with the level chosen by status class
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		log := logger.FromContext(c.Request.Context())
		event := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		}

		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("clientIp", c.ClientIP()).
			Int("bodySize", c.Writer.Size()).
			Msg("HTTP request")
	}
}

// LimiterIdleTTL is how long a client ip may stay quiet before its bucket is dropped
const LimiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// RateLimiter hands out one token bucket per client ip.
// Buckets idle for longer than idleTTL are evicted, at most once per idleTTL.
type RateLimiter struct {
	limiters  sync.Map
	rate      rate.Limit
	burst     int
	idleTTL   time.Duration
	now       func() time.Time
	lastSweep atomic.Int64
}

// NewRateLimiter creates a rate limiter allowing rps requests per second with the given burst
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		rate:    rate.Limit(rps),
		burst:   burst,
		idleTTL: LimiterIdleTTL,
		now:     time.Now,
	}
	rl.lastSweep.Store(rl.now().UnixNano())
	return rl
}

func (rl *RateLimiter) limiter(ip string, now time.Time) *rate.Limiter {
	v, ok := rl.limiters.Load(ip)
	if !ok {
		v, _ = rl.limiters.LoadOrStore(ip, &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)})
	}
	cl := v.(*clientLimiter)
	cl.lastSeen.Store(now.UnixNano())
	return cl.limiter
}

// sweep drops buckets not seen since now-idleTTL
func (rl *RateLimiter) sweep(now time.Time) {
	last := rl.lastSweep.Load()
	if now.UnixNano()-last < int64(rl.idleTTL) || !rl.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}

	cutoff := now.Add(-rl.idleTTL).UnixNano()
	rl.limiters.Range(func(key, v any) bool {
		if v.(*clientLimiter).lastSeen.Load() < cutoff {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// Allow reports whether a request from ip may proceed now
func (rl *RateLimiter) Allow(ip string) bool {
	now := rl.now()
	rl.sweep(now)
	return rl.limiter(ip, now).Allow()
}

// RateLimit rejects requests over the per-ip budget with 429
func RateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.Allow(ip) {
			logger.FromContext(c.Request.Context()).Warn().Str("clientIp", ip).Msg("Rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeTooManyRequests, "Too many requests, please try again later").
					WithSeverity(dto.ErrorSeverityWarning),
			))
			return
		}
		c.Next()
	}
}
