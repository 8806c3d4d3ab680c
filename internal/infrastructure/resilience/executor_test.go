package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryPolicy() Policy {
	return Policy{
		RetryMaxAttempts:    3,
		RetryInitialBackoff: 1 * time.Millisecond,
		RetryMaxBackoff:     2 * time.Millisecond,
		RetryMultiplier:     2,
		BreakerEnabled:      false,
	}
}

func TestExecuteRetriesUntilDependencyRecovers(t *testing.T) {
	exec := NewExecutor(fastRetryPolicy())

	errFlaky := errors.New("connection reset")
	calls := 0
	err := exec.Execute(context.Background(), "stylist_api", func(context.Context) error {
		calls++
		if calls < 3 {
			return errFlaky
		}
		return nil
	}, func(err error) ErrorClassification {
		return ErrorClassification{Retryable: errors.Is(err, errFlaky), RecordFailure: true}
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecuteStopsOnNonRetryableError(t *testing.T) {
	exec := NewExecutor(fastRetryPolicy())

	errBadRequest := errors.New("extractor rejected garment payload")
	calls := 0
	err := exec.Execute(context.Background(), "extractor_api", func(context.Context) error {
		calls++
		return errBadRequest
	}, func(error) ErrorClassification {
		return ErrorClassification{Retryable: false, RecordFailure: false}
	})

	require.ErrorIs(t, err, errBadRequest)
	assert.Equal(t, 1, calls, "non-retryable errors must not burn extra attempts")
}

func TestExecuteDefaultsToNoRetries(t *testing.T) {
	exec := NewExecutor(fastRetryPolicy())

	errAny := errors.New("boom")
	calls := 0
	err := exec.Execute(context.Background(), "score_queue", func(context.Context) error {
		calls++
		return errAny
	}, nil)

	require.ErrorIs(t, err, errAny)
	assert.Equal(t, 1, calls)
}

func TestExecuteRejectsNilCallback(t *testing.T) {
	exec := NewExecutor(fastRetryPolicy())
	assert.Error(t, exec.Execute(context.Background(), "score_queue", nil, nil))
}

func TestExecuteOpensBreakerPerDependency(t *testing.T) {
	exec := NewExecutor(Policy{
		RetryMaxAttempts:        1,
		RetryInitialBackoff:     1 * time.Millisecond,
		RetryMaxBackoff:         1 * time.Millisecond,
		RetryMultiplier:         2,
		BreakerEnabled:          true,
		BreakerMinRequests:      2,
		BreakerFailureRatio:     0.5,
		BreakerOpenTimeout:      50 * time.Millisecond,
		BreakerHalfOpenMaxCalls: 1,
	})

	errDown := errors.New("stylist api down")
	classifier := func(error) ErrorClassification {
		return ErrorClassification{Retryable: false, RecordFailure: true}
	}

	for i := 0; i < 2; i++ {
		err := exec.Execute(context.Background(), "stylist_api", func(context.Context) error {
			return errDown
		}, classifier)
		require.ErrorIs(t, err, errDown)
	}

	err := exec.Execute(context.Background(), "stylist_api", func(context.Context) error {
		t.Fatal("open breaker must not reach the dependency")
		return nil
	}, classifier)
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.True(t, IsCircuitOpen(err))

	// The queue's breaker is independent of the stylist's.
	err = exec.Execute(context.Background(), "score_queue", func(context.Context) error {
		return nil
	}, classifier)
	assert.NoError(t, err)
}

func TestExecuteHonorsCanceledContext(t *testing.T) {
	exec := NewExecutor(fastRetryPolicy())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := exec.Execute(ctx, "score_queue", func(context.Context) error {
		t.Fatal("canceled context must short-circuit before the call")
		return nil
	}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJitterStaysWithinSpread(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 50; i++ {
		got := jitter(base)
		assert.GreaterOrEqual(t, got, 75*time.Millisecond)
		assert.LessOrEqual(t, got, 125*time.Millisecond)
	}
	assert.Zero(t, jitter(0))
}
