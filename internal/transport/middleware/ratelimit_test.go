package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func limitedHandler(rl *RateLimiter, maxPerMinute int) http.Handler {
	return rl.Limit(maxPerMinute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func startRequest(remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/sprinklers/1/start", nil)
	req.RemoteAddr = remoteAddr
	return req
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := limitedHandler(rl, 10)

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, startRequest("1.2.3.4:1234"))
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := limitedHandler(rl, 5)

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, startRequest("1.2.3.4:1234"))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, startRequest("1.2.3.4:1234"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimiter_SameHostSharesBucket(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := limitedHandler(rl, 2)

	// Two connections from the same machine on different ports drain one
	// bucket between them.
	for _, addr := range []string{"1.2.3.4:1111", "1.2.3.4:2222"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, startRequest(addr))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, startRequest("1.2.3.4:3333"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimiter_DifferentHostsIndependent(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := limitedHandler(rl, 2)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, startRequest("1.1.1.1:1234"))
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, startRequest("2.2.2.2:5678"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_TokenRefill(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	// 60 per minute = 1 per second
	handler := limitedHandler(rl, 60)

	for i := 0; i < 60; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, startRequest("3.3.3.3:1234"))
	}

	time.Sleep(1100 * time.Millisecond)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, startRequest("3.3.3.3:1234"))
	assert.Equal(t, http.StatusOK, rec.Code)
}
