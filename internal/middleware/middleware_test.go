package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestionski/skistation/internal/app/models/dto"
	"github.com/gestionski/skistation/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		id, _ := c.Get(RequestIDKey)
		l := zerolog.Ctx(c.Request.Context())
		assert.NotEqual(t, zerolog.Disabled, l.GetLevel())
		c.String(http.StatusOK, "%v", id)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRateLimitRejectsOverBurst(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(NewRateLimiter(0.001, 2)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	clock := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(0.001, 1)
	rl.now = func() time.Time { return clock }
	rl.lastSweep.Store(clock.UnixNano())

	count := func() int {
		n := 0
		rl.limiters.Range(func(any, any) bool { n++; return true })
		return n
	}

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	clock = clock.Add(LimiterIdleTTL / 2)
	assert.True(t, rl.Allow("10.0.0.2"))
	assert.Equal(t, 2, count())

	clock = clock.Add(LimiterIdleTTL/2 + time.Second)
	assert.True(t, rl.Allow("10.0.0.3"))

	_, ok := rl.limiters.Load("10.0.0.1")
	assert.False(t, ok)
	_, ok = rl.limiters.Load("10.0.0.2")
	assert.True(t, ok)
	assert.Equal(t, 2, count())

	// an evicted client starts with a fresh bucket
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"instructor not found", apperrors.ErrInstructorNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"wrapped course not found", fmt.Errorf("assign: %w", apperrors.ErrCourseNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"id required", apperrors.ErrInstructorIDRequired, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"course exists", apperrors.ErrCourseAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"storage down", apperrors.NewStorageUnavailableError(errors.New("dial tcp: refused")), http.StatusServiceUnavailable, dto.ErrorCodeDatabaseError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) { HandleAPIError(c, tt.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			require.Equal(t, tt.status, w.Code)

			var body dto.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestHandleAPIErrorHidesInternalMessages(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) { HandleAPIError(c, errors.New("pq: secret table name")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotContains(t, w.Body.String(), "secret")
}
