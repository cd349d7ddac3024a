package server

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/osse101/BuildQueue_Go/internal/clock"
	"github.com/osse101/BuildQueue_Go/internal/logger"
)

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	mu        sync.Mutex
	clock     clock.Clock
	limit     rate.Limit
	burst     int
	clients   map[string]*clientLimiter
	lastPrune time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows each client rps requests per second with bursts of
// up to burst. Non-positive values fall back to the defaults.
func NewRateLimiter(rps float64, burst int, clk clock.Clock) *RateLimiter {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	if rps <= 0 {
		rps = DefaultRateLimitRPS
	}
	if burst <= 0 {
		burst = DefaultRateLimitBurst
	}
	return &RateLimiter{
		clock:     clk,
		limit:     rate.Limit(rps),
		burst:     burst,
		clients:   make(map[string]*clientLimiter),
		lastPrune: clk.Now(),
	}
}

// Allow takes a token from ip's bucket
func (l *RateLimiter) Allow(ip string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	l.pruneIfDue(now)
	c, ok := l.clients[ip]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now
	l.mu.Unlock()

	return c.limiter.AllowN(now, 1)
}

// Clients returns the number of tracked client buckets
func (l *RateLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// Caller must hold the mutex
func (l *RateLimiter) pruneIfDue(now time.Time) {
	if now.Sub(l.lastPrune) < RateLimitClientIdle {
		return
	}
	for ip, c := range l.clients {
		if now.Sub(c.lastSeen) >= RateLimitClientIdle {
			delete(l.clients, ip)
		}
	}
	l.lastPrune = now
}

// RateLimitMiddleware rejects clients whose bucket is empty
func RateLimitMiddleware(trustedProxies []string, limiter *RateLimiter) func(http.Handler) http.Handler {
	retryAfter := strconv.Itoa(int(RateLimitRetryAfter / time.Second))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if !limiter.Allow(ip) {
				logger.FromContext(r.Context()).Warn(SecurityAlertHighRate,
					"ip", ip,
					"path", r.URL.Path,
					"requests_per_second", float64(limiter.limit),
					"burst", limiter.burst)
				w.Header().Set(HeaderRetryAfter, retryAfter)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
