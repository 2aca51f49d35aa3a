package http

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mortgage-calc/logger"
	"mortgage-calc/repository"
)

// WindowLimiter allows limit requests per client per fixed window, counting in
// a shared CounterRepository so several instances see the same totals.
type WindowLimiter struct {
	counters repository.CounterRepository
	limit    int64
	window   time.Duration
	now      func() time.Time
}

func NewWindowLimiter(counters repository.CounterRepository, limit int, window time.Duration) *WindowLimiter {
	return &WindowLimiter{
		counters: counters,
		limit:    int64(limit),
		window:   window,
		now:      time.Now,
	}
}

// Allow lets the request through when the counter store fails.
func (l *WindowLimiter) Allow(ctx context.Context, key string) bool {
	bucket := l.now().Truncate(l.window).Unix()
	counterKey := fmt.Sprintf("ratelimit:%s:%d", key, bucket)

	count, err := l.counters.Incr(ctx, counterKey, l.window)
	if err != nil {
		logger.CtxWarn(ctx, "rate limit counter unavailable", slog.String("error", err.Error()))
		return true
	}
	return count <= l.limit
}
