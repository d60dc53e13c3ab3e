// Package ratelimit throttles the unauthenticated public endpoints.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Remaining int64
	// ResetIn is the time left in the current window.
	ResetIn time.Duration
}

type RateLimiter interface {
	// Allow counts one request for key against limit per window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error)
	Reset(ctx context.Context, key string) error
}
