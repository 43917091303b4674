package ratelimit

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GlebRadaev/gigmart/pkg/utils"
)

type KeyFunc func(r *http.Request) string

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter is a token bucket per caller key.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*entry
	rate     rate.Limit
	burst    int
	key      KeyFunc
}

func New(requestsPerSecond float64, burst int, key KeyFunc) *Limiter {
	return &Limiter{
		limiters: make(map[string]*entry),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		key:      key,
	}
}

func ByRemoteAddr(r *http.Request) string {
	return r.RemoteAddr
}

func (l *Limiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[key] = e
	}
	e.lastSeen = time.Now()
	return e.limiter
}

func (l *Limiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := l.key(r)
		if key == "" {
			key = r.RemoteAddr
		}

		if !l.get(key).Allow() {
			zap.L().Warn("rate limit exceeded",
				zap.String("key", key),
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
			)
			retry := 1
			if l.rate > 0 {
				retry = int(math.Ceil(1 / float64(l.rate)))
			}
			w.Header().Set("Retry-After", fmt.Sprint(retry))
			utils.RespondWithError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Cleanup drops buckets idle for longer than ttl.
func (l *Limiter) Cleanup(ttl time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	cutoff := time.Now().Add(-ttl)
	for key, e := range l.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(l.limiters, key)
			removed++
		}
	}
	return removed
}

// Run cleans up idle buckets every interval until ctx is done.
func (l *Limiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := l.Cleanup(interval); n > 0 {
				zap.L().Debug("rate limiter buckets dropped", zap.Int("count", n))
			}
		}
	}
}
