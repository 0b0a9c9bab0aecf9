package pokeapi

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// RetryPolicy bounds retry behavior for transient request failures.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// MinDelay is the backoff floor before the first retry.
	MinDelay time.Duration
	// MaxDelay caps the exponential backoff.
	MaxDelay time.Duration
}

// DefaultRetryPolicy retries transient failures up to 3 total attempts
// with exponential backoff between 4s and 10s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		MinDelay:    4 * time.Second,
		MaxDelay:    10 * time.Second,
	}
}

// delay returns the backoff before retry n (1-based): MinDelay doubled
// per retry, capped at MaxDelay.
func (p RetryPolicy) delay(retry int) time.Duration {
	d := p.MinDelay << (retry - 1)
	if d > p.MaxDelay || d < p.MinDelay {
		return p.MaxDelay
	}
	return d
}

// doWithRetry runs fn up to policy.MaxAttempts times, sleeping between
// attempts, and retries only when retryable(err) reports a transient
// failure. The last error is returned after exhaustion. Context
// cancellation interrupts the backoff sleep.
func doWithRetry(ctx context.Context, policy RetryPolicy, logger zerolog.Logger, retryable func(error) bool, fn func() error) error {
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}
		if attempt == attempts {
			break
		}

		wait := policy.delay(attempt)
		logger.Warn().
			Err(lastErr).
			Int("attempt", attempt).
			Dur("backoff", wait).
			Msg("Transient request failure, retrying")

		select {
		case <-ctx.Done():
			return lastErr
		case <-time.After(wait):
		}
	}

	return lastErr
}
