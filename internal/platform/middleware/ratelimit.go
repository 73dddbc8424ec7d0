// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/respond"
)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// buckets holds one token bucket per client IP.
type buckets struct {
	mu      sync.Mutex
	clients map[string]*bucket
	limit   rate.Limit
	burst   int
}

func (b *buckets) allow(clientIP string, now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	client, found := b.clients[clientIP]
	if !found {
		client = &bucket{limiter: rate.NewLimiter(b.limit, b.burst)}
		b.clients[clientIP] = client
	}

	client.lastSeen = now
	return client.limiter.AllowN(now, 1)
}

// evictIdle drops buckets idle for longer than ttl.
func (b *buckets) evictIdle(now time.Time, ttl time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ip, client := range b.clients {
		if now.Sub(client.lastSeen) > ttl {
			delete(b.clients, ip)
		}
	}
}

// RateLimit answers 429 once a client exceeds
// [constants.DefaultRateLimitRPS] with bursts of [constants.DefaultRateLimitBurst].
//
// Idle buckets are evicted by a goroutine that stops when ctx is cancelled.
func RateLimit(ctx context.Context) func(http.Handler) http.Handler {
	limits := &buckets{
		clients: make(map[string]*bucket),
		limit:   rate.Limit(constants.DefaultRateLimitRPS),
		burst:   constants.DefaultRateLimitBurst,
	}

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				limits.evictIdle(now, constants.RateLimitClientTTL)
			case <-ctx.Done():
				return
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !limits.allow(RealIP(request), time.Now()) {
				respond.Error(writer, request, apperr.TooManyRequests("Rate limit exceeded"))
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
