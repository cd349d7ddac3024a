package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BuildQueue_Go/internal/clock"
)

func TestRateLimitMiddleware(t *testing.T) {
	clk := clock.NewSimulatedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	limiter := NewRateLimiter(2, 5, clk)
	handler := RateLimitMiddleware(nil, limiter)(okHandler())

	req := httptest.NewRequest("GET", "/api/v1/x", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get(HeaderRetryAfter))

	// A different client has its own bucket
	other := httptest.NewRequest("GET", "/api/v1/x", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Tokens refill at the configured rate
	clk.Advance(500 * time.Millisecond)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimitMiddleware_TrustedProxyKeysByForwardedIP(t *testing.T) {
	clk := clock.NewSimulatedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	handler := RateLimitMiddleware([]string{"10.0.0.1"}, NewRateLimiter(1, 1, clk))(okHandler())

	send := func(client string) int {
		req := httptest.NewRequest("GET", "/api/v1/x", nil)
		req.RemoteAddr = "10.0.0.1:80"
		req.Header.Set(HeaderForwardedFor, client)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("9.9.9.9"))
	assert.Equal(t, http.StatusTooManyRequests, send("9.9.9.9"))
	assert.Equal(t, http.StatusOK, send("8.8.8.8"))
}

func TestRateLimiter_PrunesIdleClients(t *testing.T) {
	clk := clock.NewSimulatedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	limiter := NewRateLimiter(1, 1, clk)

	assert.True(t, limiter.Allow("1.1.1.1"))
	assert.True(t, limiter.Allow("2.2.2.2"))
	assert.Equal(t, 2, limiter.Clients())

	clk.Advance(RateLimitClientIdle)
	assert.True(t, limiter.Allow("2.2.2.2"))
	assert.Equal(t, 1, limiter.Clients())
}

func TestNewRateLimiter_Defaults(t *testing.T) {
	limiter := NewRateLimiter(0, 0, nil)

	assert.Equal(t, DefaultRateLimitBurst, limiter.burst)
	assert.InDelta(t, DefaultRateLimitRPS, float64(limiter.limit), 1e-9)
}
