package http

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

// Limiter decides whether a client identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is an in-memory token bucket per client.
type RateLimiter struct {
	mu          sync.Mutex
	limit       rate.Limit
	burst       int
	clients     map[string]*clientBucket
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}

	rl := &RateLimiter{
		limit:       rate.Every(time.Minute / time.Duration(perMinute)),
		burst:       burst,
		clients:     make(map[string]*clientBucket),
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup(time.Now())
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, bucket := range r.clients {
		if now.Sub(bucket.lastSeen) > bucketCleanupThreshold {
			delete(r.clients, key)
		}
	}
}

func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

func (r *RateLimiter) Allow(_ context.Context, key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	bucket, exists := r.clients[key]
	if !exists {
		bucket = &clientBucket{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.clients[key] = bucket
	}
	bucket.lastSeen = now

	return bucket.limiter.AllowN(now, 1)
}
