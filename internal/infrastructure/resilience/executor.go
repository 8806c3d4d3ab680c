package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ErrorClassification says whether a failed call is worth retrying and
// whether it should count against the dependency's breaker. Context
// cancellations are typically neither.
type ErrorClassification struct {
	Retryable     bool
	RecordFailure bool
}

type ErrorClassifier func(err error) ErrorClassification

// Executor runs dependency calls under the retry policy, keeping one
// circuit breaker per named dependency so a dead stylist API cannot trip
// the queue's breaker.
type Executor struct {
	policy Policy

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[any]
}

func NewExecutor(p Policy) *Executor {
	return &Executor{
		policy:   p.normalize(),
		breakers: make(map[string]*gobreaker.CircuitBreaker[any]),
	}
}

// Execute runs fn for the named dependency. The breaker short-circuits
// with gobreaker.ErrOpenState once the dependency is considered down.
func (e *Executor) Execute(
	ctx context.Context,
	dependency string,
	fn func(context.Context) error,
	classifier ErrorClassifier,
) error {
	if fn == nil {
		return fmt.Errorf("resilience: dependency callback is nil")
	}
	dep := strings.TrimSpace(dependency)
	if dep == "" {
		dep = "unknown"
	}
	if classifier == nil {
		classifier = conservativeClassifier
	}

	if !e.policy.BreakerEnabled {
		return e.retry(ctx, dep, fn, classifier)
	}

	_, err := e.breakerFor(dep, classifier).Execute(func() (any, error) {
		return nil, e.retry(ctx, dep, fn, classifier)
	})
	return err
}

func (e *Executor) retry(
	ctx context.Context,
	dependency string,
	fn func(context.Context) error,
	classifier ErrorClassifier,
) error {
	backoff := e.policy.RetryInitialBackoff

	var lastErr error
	for attempt := 1; attempt <= e.policy.RetryMaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if class := classifier(lastErr); !class.Retryable {
			return lastErr
		}
		if attempt == e.policy.RetryMaxAttempts {
			return lastErr
		}

		wait := jitter(min(backoff, e.policy.RetryMaxBackoff))
		slog.Warn("dependency_retry",
			"dependency", dependency,
			"attempt", attempt,
			"max_attempts", e.policy.RetryMaxAttempts,
			"wait_ms", float64(wait.Microseconds())/1000.0,
			"error", lastErr,
		)
		if !sleepCtx(ctx, wait) {
			return lastErr
		}

		backoff = min(time.Duration(float64(backoff)*e.policy.RetryMultiplier), e.policy.RetryMaxBackoff)
	}
	return lastErr
}

// jitter spreads concurrent retries over ±25% of the nominal wait.
func jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	spread := d / 4
	return d - spread + rand.N(2*spread+1)
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (e *Executor) breakerFor(dependency string, classifier ErrorClassifier) *gobreaker.CircuitBreaker[any] {
	e.mu.Lock()
	defer e.mu.Unlock()

	if b, ok := e.breakers[dependency]; ok {
		return b
	}

	b := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        dependency,
		MaxRequests: e.policy.BreakerHalfOpenMaxCalls,
		Timeout:     e.policy.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= e.policy.BreakerMinRequests &&
				float64(counts.TotalFailures) >= e.policy.BreakerFailureRatio*float64(counts.Requests)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !classifier(err).RecordFailure
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("breaker_state",
				"dependency", name, "from", from.String(), "to", to.String())
		},
	})
	e.breakers[dependency] = b
	return b
}

// IsCircuitOpen reports whether err came from the breaker itself rather
// than the dependency.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// conservativeClassifier fails closed: no retries, every failure counts.
func conservativeClassifier(error) ErrorClassification {
	return ErrorClassification{RecordFailure: true}
}
