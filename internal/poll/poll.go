// Package poll provides a suspend-with-timeout primitive for waiting on
// external page state. The sleep function is injectable so callers can run
// against a synthetic clock in tests.
package poll

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout is returned when the condition did not hold within the bound.
var ErrTimeout = errors.New("poll: condition not met before timeout")

// DefaultInterval is the re-check interval used when Options.Interval is zero.
const DefaultInterval = 500 * time.Millisecond

// Options configures a call to Until.
type Options struct {
	// Interval between condition checks. Defaults to DefaultInterval.
	Interval time.Duration

	// Timeout is the total wait budget. Elapsed time is accounted in
	// whole intervals so behavior is deterministic under an injected sleep.
	Timeout time.Duration

	// Sleep suspends between checks. Defaults to a timer that respects
	// context cancellation. Tests inject an instant sleep.
	Sleep func(context.Context, time.Duration) error
}

// Until re-checks cond until it reports done, the timeout budget is spent,
// or the context is canceled. A non-nil error from cond aborts immediately
// and is returned as-is.
func Until(ctx context.Context, cond func() (bool, error), opts Options) error {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	for waited := time.Duration(0); ; waited += interval {
		if err := ctx.Err(); err != nil {
			return err
		}

		done, err := cond()
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		if waited+interval > opts.Timeout {
			return ErrTimeout
		}
		if err := sleep(ctx, interval); err != nil {
			return err
		}
	}
}

// Sleep suspends for d or until the context is canceled, whichever comes
// first. Returns the context error on cancellation.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
