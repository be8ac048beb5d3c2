package retry

import (
	"context"
	"time"
)

// Sleeper pauses the calling goroutine between attempts of a [Retrier] or
// [StateRetrier]. Implementations return only after the duration has elapsed.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleeperFunc adapts a plain function to the [Sleeper] interface.
type SleeperFunc func(time.Duration)

func (f SleeperFunc) Sleep(d time.Duration) { f(d) }

// DefaultSleeper returns the Sleeper used by blocking retriers when none is
// configured. It is [time.Sleep].
func DefaultSleeper() Sleeper {
	return stdSleeper{}
}

type stdSleeper struct{}

func (stdSleeper) Sleep(d time.Duration) { time.Sleep(d) }

// CtxSleeper pauses between attempts of a [CtxRetrier] or [StateCtxRetrier].
// A nil return means the full duration elapsed; a non-nil return means the
// pause was cut short and carries the reason, which ends the run.
type CtxSleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// CtxSleeperFunc adapts a plain function to the [CtxSleeper] interface.
type CtxSleeperFunc func(context.Context, time.Duration) error

func (f CtxSleeperFunc) Sleep(ctx context.Context, d time.Duration) error { return f(ctx, d) }

// DefaultCtxSleeper returns the CtxSleeper used by context-aware retriers
// when none is configured. It waits on a timer and on ctx.Done(), returning
// [context.Cause] of ctx if cancellation wins.
func DefaultCtxSleeper() CtxSleeper {
	return timerSleeper{}
}

type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	select {
	case <-ctx.Done():
		if !t.Stop() {
			<-t.C
		}
		return context.Cause(ctx)
	case <-t.C:
		return nil
	}
}
