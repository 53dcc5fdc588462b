package poll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// instantSleep records requested durations without waiting.
func instantSleep(slept *[]time.Duration) func(context.Context, time.Duration) error {
	return func(ctx context.Context, d time.Duration) error {
		*slept = append(*slept, d)
		return ctx.Err()
	}
}

func TestUntil_ImmediatelyTrue(t *testing.T) {
	t.Parallel()

	var slept []time.Duration
	calls := 0
	err := Until(context.Background(), func() (bool, error) {
		calls++
		return true, nil
	}, Options{Interval: time.Second, Timeout: 5 * time.Second, Sleep: instantSleep(&slept)})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, slept)
}

func TestUntil_EventuallyTrue(t *testing.T) {
	t.Parallel()

	var slept []time.Duration
	calls := 0
	err := Until(context.Background(), func() (bool, error) {
		calls++
		return calls >= 3, nil
	}, Options{Interval: time.Second, Timeout: 10 * time.Second, Sleep: instantSleep(&slept)})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, slept, 2)
}

func TestUntil_Timeout(t *testing.T) {
	t.Parallel()

	var slept []time.Duration
	calls := 0
	err := Until(context.Background(), func() (bool, error) {
		calls++
		return false, nil
	}, Options{Interval: time.Second, Timeout: 3 * time.Second, Sleep: instantSleep(&slept)})

	require.ErrorIs(t, err, ErrTimeout)
	// Checks at 0s, 1s, 2s and 3s; the next interval would exceed the budget.
	assert.Equal(t, 4, calls)
}

func TestUntil_CondError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0
	err := Until(context.Background(), func() (bool, error) {
		calls++
		return false, boom
	}, Options{Interval: time.Second, Timeout: 10 * time.Second, Sleep: instantSleep(new([]time.Duration))})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestUntil_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Until(ctx, func() (bool, error) {
		t.Fatal("condition checked after cancellation")
		return false, nil
	}, Options{Interval: time.Second, Timeout: 10 * time.Second})

	require.ErrorIs(t, err, context.Canceled)
}

func TestUntil_CancelledDuringSleep(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	err := Until(ctx, func() (bool, error) {
		return false, nil
	}, Options{
		Interval: time.Second,
		Timeout:  10 * time.Second,
		Sleep: func(ctx context.Context, d time.Duration) error {
			cancel()
			return ctx.Err()
		},
	})

	require.ErrorIs(t, err, context.Canceled)
}

func TestSleep_Elapses(t *testing.T) {
	t.Parallel()

	err := Sleep(context.Background(), time.Millisecond)
	assert.NoError(t, err)
}

func TestSleep_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Sleep(ctx, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
}
