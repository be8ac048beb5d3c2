package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corin.dev/retry"
	"corin.dev/retry/backoff"
)

// tally is a value-type state: every attempt must see the previous attempt's
// mutations only through the threaded return value.
type tally struct {
	attempts int
}

func TestStateThreadedThroughAttempts(t *testing.T) {
	final, res, err := retry.NewState(func(s tally) (tally, string, error) {
		s.attempts++
		if s.attempts < 3 {
			return s, "", errTransient
		}
		return s, "done", nil
	}, backoff.Durations(0, 0)).
		State(tally{}).
		Sleep((&noSleep{}).sleeper()).
		Call()

	require.NoError(t, err)
	assert.Equal(t, "done", res)
	assert.Equal(t, 3, final.attempts)
}

func TestStateReturnedOnFailure(t *testing.T) {
	final, _, err := retry.NewState(func(s tally) (tally, string, error) {
		s.attempts++
		return s, "", errTransient
	}, backoff.Durations(0, 0)).
		State(tally{}).
		Sleep((&noSleep{}).sleeper()).
		Call()

	require.Equal(t, errTransient, err)
	assert.Equal(t, 3, final.attempts, "failed attempts must not lose their mutations")
}

func TestStateReturnedOnRejection(t *testing.T) {
	final, _, err := retry.NewState(func(s tally) (tally, string, error) {
		s.attempts++
		return s, "", errFatal
	}, backoff.Durations(0, 0)).
		State(tally{}).
		When(retry.ErrorsIs(errTransient)).
		Sleep((&noSleep{}).sleeper()).
		Call()

	require.Equal(t, errFatal, err)
	assert.Equal(t, 1, final.attempts)
}

func TestCallWithoutStatePanics(t *testing.T) {
	r := retry.NewState(func(s tally) (tally, string, error) {
		return s, "", nil
	}, backoff.Durations())

	assert.Panics(t, func() { _, _, _ = r.Call() })

	rc := retry.NewStateCtx(func(_ context.Context, s tally) (tally, string, error) {
		return s, "", nil
	}, backoff.Durations())

	assert.Panics(t, func() { _, _, _ = rc.Call(context.Background()) })
}

func TestZeroValueStateIsValid(t *testing.T) {
	// State(zero) is a real configuration, not an omission.
	final, res, err := retry.NewState(func(s tally) (tally, string, error) {
		s.attempts++
		return s, "ok", nil
	}, backoff.Durations()).
		State(tally{}).
		Call()

	require.NoError(t, err)
	assert.Equal(t, "ok", res)
	assert.Equal(t, 1, final.attempts)
}

func TestStateCtxCancelKeepsState(t *testing.T) {
	errStop := errors.New("stop the run")
	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(errStop)

	final, _, err := retry.NewStateCtx(func(_ context.Context, s tally) (tally, string, error) {
		s.attempts++
		return s, "", errTransient
	}, backoff.Durations(time.Hour)).
		State(tally{}).
		Call(ctx)

	require.ErrorIs(t, err, errStop)
	assert.Equal(t, 1, final.attempts, "state from the completed attempt must survive cancellation")
}

func TestStateSnapshotsAreIndependent(t *testing.T) {
	base := retry.NewState(func(s tally) (tally, string, error) {
		s.attempts++
		return s, "", errTransient
	}, backoff.Durations(0)).
		Sleep((&noSleep{}).sleeper())

	a := base.State(tally{attempts: 10})
	b := base.State(tally{})

	finalA, _, _ := a.Call()
	finalB, _, _ := b.Call()

	assert.Equal(t, 12, finalA.attempts)
	assert.Equal(t, 2, finalB.attempts)
}

func TestStateCtxSucceedsAfterRetry(t *testing.T) {
	var slept []time.Duration

	final, res, err := retry.NewStateCtx(func(_ context.Context, s tally) (tally, int, error) {
		s.attempts++
		if s.attempts == 1 {
			return s, 0, errTransient
		}
		return s, s.attempts * 10, nil
	}, backoff.Durations(time.Millisecond)).
		State(tally{}).
		Sleep(retry.CtxSleeperFunc(func(_ context.Context, d time.Duration) error {
			slept = append(slept, d)
			return nil
		})).
		Call(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 20, res)
	assert.Equal(t, 2, final.attempts)
	assert.Equal(t, []time.Duration{time.Millisecond}, slept)
}
