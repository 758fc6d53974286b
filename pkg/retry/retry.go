// Package retry provides a bounded, fixed-interval retry combinator for
// flaky interactive actions such as clicking controls that are present in the
// page but not yet interactable.
//
// Only errors matching the declared kind (via errors.Is) are retried. Any
// other error is returned immediately. When every attempt fails, the error
// from the final attempt is returned so callers can still tell which kind of
// failure exhausted the budget.
package retry

import (
	"errors"
	"time"
)

const (
	// DefaultAttempts is the number of times an action is tried
	DefaultAttempts = 5

	// DefaultInterval is the fixed pause between attempts
	DefaultInterval = 1 * time.Second
)

// ErrNoAttempts is returned when a policy allows no attempts at all.
var ErrNoAttempts = errors.New("retry policy allows no attempts")

// Logger receives a warning for every retried failure.
type Logger interface {
	Warnf(format string, v ...interface{})
}

// Policy configures a retry loop.
type Policy struct {
	// Attempts is the total number of tries, including the first one
	Attempts int

	// Interval is the fixed pause after each retryable failure
	Interval time.Duration

	// Sleep pauses between attempts; nil means time.Sleep
	Sleep func(time.Duration)

	// Logger receives retry warnings; nil disables them
	Logger Logger
}

// DefaultPolicy returns the 5 attempts / 1 second policy.
func DefaultPolicy() Policy {
	return Policy{
		Attempts: DefaultAttempts,
		Interval: DefaultInterval,
	}
}

// WithLogger returns a copy of p that reports retries to logger.
func (p Policy) WithLogger(logger Logger) Policy {
	p.Logger = logger
	return p
}

func (p Policy) sleep(d time.Duration) {
	if p.Sleep != nil {
		p.Sleep(d)
		return
	}
	time.Sleep(d)
}

// Do runs action until it succeeds, fails with an error that does not match
// kind, or runs out of attempts. message is logged as a warning on every
// retryable failure.
func Do[T any](p Policy, kind error, message string, action func() (T, error)) (T, error) {
	var zero T
	if p.Attempts <= 0 {
		return zero, ErrNoAttempts
	}

	var lastErr error
	for remaining := p.Attempts; remaining > 0; remaining-- {
		result, err := action()
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, kind) {
			return zero, err
		}

		lastErr = err
		if p.Logger != nil {
			p.Logger.Warnf("%s (%d attempts left): %v", message, remaining-1, err)
		}
		if remaining > 1 {
			p.sleep(p.Interval)
		}
	}

	return zero, lastErr
}

// Run is Do for actions without a result.
func Run(p Policy, kind error, message string, action func() error) error {
	_, err := Do(p, kind, message, func() (struct{}, error) {
		return struct{}{}, action()
	})
	return err
}
