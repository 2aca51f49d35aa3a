package repository

import (
	"context"
	"time"
)

// CounterRepository keeps expiring counters for fixed-window rate limiting.
type CounterRepository interface {
	// Incr adds one to key and returns the new value. A key created by Incr
	// expires after ttl.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
