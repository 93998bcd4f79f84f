package directory

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Rate limit configuration for the Admin SDK.
// The Directory API defaults to 2400 queries per minute per user; staying
// well under that avoids burning quota on pagination bursts.
const (
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond = 10.0
	// BurstSize is the maximum burst size.
	BurstSize = 20
	// DefaultBackoffSeconds is the backoff when no Retry-After header is provided.
	DefaultBackoffSeconds = 60
)

// RateLimiter provides rate limiting for Admin SDK requests.
// Token bucket with optional backoff after a 429 response.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
}

// NewRateLimiter creates a rate limiter with the Admin SDK defaults.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(RequestsPerSecond), BurstSize),
	}
}

// Wait blocks until a request can be made without exceeding the limit,
// honouring any backoff set by RecordRateLimitError.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	return r.limiter.Wait(ctx)
}

// RecordRateLimitError sets a backoff period after a 429 response.
// retryAfterSeconds should come from the Retry-After header.
func (r *RateLimiter) RecordRateLimitError(retryAfterSeconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if retryAfterSeconds <= 0 {
		retryAfterSeconds = DefaultBackoffSeconds
	}
	r.retryAt = time.Now().Add(time.Duration(retryAfterSeconds) * time.Second)
}

// Allow reports whether a request can be made immediately.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		return false
	}
	return r.limiter.Allow()
}
