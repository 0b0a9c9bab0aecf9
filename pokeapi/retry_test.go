package pokeapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryPolicyDelaySchedule(t *testing.T) {
	policy := DefaultRetryPolicy()

	// 4s floor doubling to the 10s cap.
	assert.Equal(t, 4*time.Second, policy.delay(1))
	assert.Equal(t, 8*time.Second, policy.delay(2))
	assert.Equal(t, 10*time.Second, policy.delay(3))
	assert.Equal(t, 10*time.Second, policy.delay(4))
}

func TestDoWithRetryStopsOnSuccess(t *testing.T) {
	calls := 0
	err := doWithRetry(context.Background(), testRetryPolicy(), zerolog.Nop(), Retryable, func() error {
		calls++
		if calls < 2 {
			return &APIError{Kind: KindTimeout, Endpoint: "pokemon/pikachu"}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDoWithRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	timeoutErr := &APIError{Kind: KindTimeout, Endpoint: "pokemon/pikachu"}
	err := doWithRetry(context.Background(), testRetryPolicy(), zerolog.Nop(), Retryable, func() error {
		calls++
		return timeoutErr
	})
	// The last encountered retryable error surfaces after exhaustion.
	require.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, 3, calls)
}

func TestDoWithRetryDoesNotRetryDefinitiveErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not found", &APIError{Kind: KindNotFound, Endpoint: "pokemon/x", StatusCode: 404}},
		{"rate limited", &APIError{Kind: KindRateLimited, Endpoint: "pokemon/x", StatusCode: 429}},
		{"http error", &APIError{Kind: KindGeneric, Endpoint: "pokemon/x", StatusCode: 500}},
		{"decode error", &DecodeError{Endpoint: "pokemon/x", Field: "name", Err: errors.New("missing")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := doWithRetry(context.Background(), testRetryPolicy(), zerolog.Nop(), Retryable, func() error {
				calls++
				return tt.err
			})
			require.Error(t, err)
			assert.Equal(t, 1, calls)
		})
	}
}

func TestDoWithRetryHonorsContextCancellation(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, MinDelay: time.Hour, MaxDelay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	done := make(chan error, 1)
	go func() {
		done <- doWithRetry(ctx, policy, zerolog.Nop(), Retryable, func() error {
			calls++
			return &APIError{Kind: KindTimeout, Endpoint: "pokemon/pikachu"}
		})
	}()

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, ErrTimeout)
		assert.Equal(t, 1, calls)
	case <-time.After(5 * time.Second):
		t.Fatal("retry did not stop on context cancellation")
	}
}

func TestRetryablePredicate(t *testing.T) {
	assert.True(t, Retryable(&APIError{Kind: KindTimeout}))
	assert.True(t, Retryable(&APIError{Kind: KindGeneric, Err: errors.New("connection refused")}))
	assert.False(t, Retryable(&APIError{Kind: KindGeneric, StatusCode: 500}))
	assert.False(t, Retryable(&APIError{Kind: KindNotFound, StatusCode: 404}))
	assert.False(t, Retryable(&APIError{Kind: KindRateLimited, StatusCode: 429}))
	assert.False(t, Retryable(&DecodeError{Err: errors.New("bad payload")}))
	assert.False(t, Retryable(errors.New("plain error")))
	assert.False(t, Retryable(nil))
}
