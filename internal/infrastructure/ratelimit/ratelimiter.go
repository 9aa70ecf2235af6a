// Package ratelimit throttles requests per key over a sliding or fixed window.
package ratelimit

import (
	"context"
	"time"
)

type RateLimiter interface {
	// Allow records one hit for key and reports whether it is within limit for window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Reset(ctx context.Context, key string) error
}
