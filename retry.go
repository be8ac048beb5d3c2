package retry

import (
	"context"
	"time"

	"corin.dev/retry/backoff"
)

// none is the carried state of the stateless retriers. They are strict
// specializations of the state-carrying loop, not a second algorithm.
type none = struct{}

// Retrier retries a function with the signature:
//
//	func() (T, error)
//
// Pauses between attempts block the calling goroutine. A Retrier describes a
// single run: configure it, then finish with [Retrier.Call]. Configuration
// methods return modified copies, so a partially configured Retrier is a
// snapshot that can be stored or passed around freely.
type Retrier[T any] struct {
	fn      func() (T, error)
	builder backoff.Builder
	policy  policy
	sleeper Sleeper
}

// New creates a Retrier for fn. Each [Retrier.Call] builds a fresh backoff
// session from b, so one Retrier value never shares delay state with another
// run.
func New[T any](fn func() (T, error), b backoff.Builder) Retrier[T] {
	return Retrier[T]{
		fn:      fn,
		builder: b,
		policy:  defaultPolicy(),
		sleeper: DefaultSleeper(),
	}
}

// When sets the predicate deciding whether an error is worth another attempt.
// The default retries every error. See [ErrorsIs] for the common
// sentinel-membership case.
func (r Retrier[T]) When(retryable func(error) bool) Retrier[T] {
	r.policy.retryable = retryable
	return r
}

// Notify sets a hook invoked before every pause with the error that triggered
// the retry and the duration about to be slept. The default does nothing. The
// hook observes the error; it is still the value returned to the caller if
// the run ends in failure.
func (r Retrier[T]) Notify(fn func(err error, d time.Duration)) Retrier[T] {
	r.policy.notify = fn
	return r
}

// Sleep replaces the pause mechanism. The default is [DefaultSleeper].
func (r Retrier[T]) Sleep(s Sleeper) Retrier[T] {
	r.sleeper = s
	return r
}

// Call runs fn until it succeeds, the backoff session is exhausted, or the
// predicate rejects the current error. The error of the final attempt is
// returned as is: exhaustion is not reported as a distinct error value.
func (r Retrier[T]) Call() (T, error) {
	_, val, err := run(r.builder.Build(), r.policy, none{},
		func(s none) (none, T, error) {
			v, err := r.fn()
			return s, v, err
		},
		blockingPause(r.sleeper))
	return val, err
}

// CtxRetrier retries a function with the signature:
//
//	func(context.Context) (T, error)
//
// Pauses between attempts wait on a timer and on ctx.Done(), so a cancelled
// context ends the run instead of sitting out the remaining delay. In every
// other respect it behaves like [Retrier].
type CtxRetrier[T any] struct {
	fn      func(context.Context) (T, error)
	builder backoff.Builder
	policy  policy
	sleeper CtxSleeper
}

// NewCtx creates a CtxRetrier for fn. Each [CtxRetrier.Call] builds a fresh
// backoff session from b.
func NewCtx[T any](fn func(context.Context) (T, error), b backoff.Builder) CtxRetrier[T] {
	return CtxRetrier[T]{
		fn:      fn,
		builder: b,
		policy:  defaultPolicy(),
		sleeper: DefaultCtxSleeper(),
	}
}

// When sets the predicate deciding whether an error is worth another attempt.
// The default retries every error.
func (r CtxRetrier[T]) When(retryable func(error) bool) CtxRetrier[T] {
	r.policy.retryable = retryable
	return r
}

// Notify sets a hook invoked before every pause with the error that triggered
// the retry and the duration about to be slept. The default does nothing.
func (r CtxRetrier[T]) Notify(fn func(err error, d time.Duration)) CtxRetrier[T] {
	r.policy.notify = fn
	return r
}

// Sleep replaces the pause mechanism. The default is [DefaultCtxSleeper].
func (r CtxRetrier[T]) Sleep(s CtxSleeper) CtxRetrier[T] {
	r.sleeper = s
	return r
}

// Call runs fn until it succeeds, the backoff session is exhausted, the
// predicate rejects the current error, or ctx is cancelled during a pause. On
// cancellation the returned error is [context.Cause] of ctx; otherwise the
// error of the final attempt is returned as is.
func (r CtxRetrier[T]) Call(ctx context.Context) (T, error) {
	_, val, err := run(r.builder.Build(), r.policy, none{},
		func(s none) (none, T, error) {
			v, err := r.fn(ctx)
			return s, v, err
		},
		ctxPause(ctx, r.sleeper))
	return val, err
}

// blockingPause adapts a Sleeper to the pause shape used by run. A blocking
// pause cannot be interrupted, so it never reports an error.
func blockingPause(s Sleeper) func(time.Duration) error {
	return func(d time.Duration) error {
		s.Sleep(d)
		return nil
	}
}

func ctxPause(ctx context.Context, s CtxSleeper) func(time.Duration) error {
	return func(d time.Duration) error {
		return s.Sleep(ctx, d)
	}
}

// run is the loop every retrier variant funnels into.
//
// One invocation of fn per attempt, never overlapping. The state returned by
// fn replaces the held state after every attempt, success or failure, so
// mutations made by failed attempts survive. A failed attempt is retried only
// if the predicate accepts the error and the backoff session yields another
// delay; either refusal ends the run with the current error untouched. The
// notify hook fires after those two checks and before the pause. A pause
// error (a cancelled context, with ctxPause) ends the run immediately.
func run[S, T any](
	bo backoff.Backoff,
	p policy,
	state S,
	fn func(S) (S, T, error),
	pause func(time.Duration) error,
) (S, T, error) {
	var zero T
	for {
		var (
			val T
			err error
		)
		state, val, err = fn(state)
		if err == nil {
			return state, val, nil
		}
		if !p.retryable(err) {
			return state, zero, err
		}
		d, ok := bo.Next()
		if !ok {
			return state, zero, err
		}
		p.notify(err, d)
		if perr := pause(d); perr != nil {
			return state, zero, perr
		}
	}
}
