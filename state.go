package retry

import (
	"context"
	"time"

	"corin.dev/retry/backoff"
)

const noStateMsg = "retry: Call invoked before State on a state-carrying retrier"

// StateRetrier retries a function with the signature:
//
//	func(S) (S, T, error)
//
// S is a mutable value owned by the run and handed to the function on every
// attempt. The function returns it (possibly changed) together with its
// result, and the returned value is what the next attempt receives, whether
// or not the attempt failed. When the run ends, the final state comes back to
// the caller alongside the outcome, so nothing an attempt did to it is lost.
//
// The state is held by exactly one party at a time: the caller until
// [StateRetrier.State], the run between attempts, the in-flight function
// during an attempt, and the caller again after [StateRetrier.Call] returns.
// Nothing else reads or writes it, so S needs no synchronization of its own.
type StateRetrier[S, T any] struct {
	fn       func(S) (S, T, error)
	builder  backoff.Builder
	policy   policy
	sleeper  Sleeper
	state    S
	hasState bool
}

// NewState creates a StateRetrier for fn. The initial state must be supplied
// with [StateRetrier.State] before calling.
func NewState[S, T any](fn func(S) (S, T, error), b backoff.Builder) StateRetrier[S, T] {
	return StateRetrier[S, T]{
		fn:      fn,
		builder: b,
		policy:  defaultPolicy(),
		sleeper: DefaultSleeper(),
	}
}

// State sets the initial state for the run.
func (r StateRetrier[S, T]) State(s S) StateRetrier[S, T] {
	r.state = s
	r.hasState = true
	return r
}

// When sets the predicate deciding whether an error is worth another attempt.
// The default retries every error.
func (r StateRetrier[S, T]) When(retryable func(error) bool) StateRetrier[S, T] {
	r.policy.retryable = retryable
	return r
}

// Notify sets a hook invoked before every pause with the error that triggered
// the retry and the duration about to be slept. The default does nothing.
func (r StateRetrier[S, T]) Notify(fn func(err error, d time.Duration)) StateRetrier[S, T] {
	r.policy.notify = fn
	return r
}

// Sleep replaces the pause mechanism. The default is [DefaultSleeper].
func (r StateRetrier[S, T]) Sleep(s Sleeper) StateRetrier[S, T] {
	r.sleeper = s
	return r
}

// Call runs fn to a terminal outcome and returns the final state with it.
// Calling without having set a state is a programming error and panics.
func (r StateRetrier[S, T]) Call() (S, T, error) {
	if !r.hasState {
		panic(noStateMsg)
	}
	return run(r.builder.Build(), r.policy, r.state, r.fn, blockingPause(r.sleeper))
}

// StateCtxRetrier retries a function with the signature:
//
//	func(context.Context, S) (S, T, error)
//
// It combines the state handling of [StateRetrier] with the cancellable
// pauses of [CtxRetrier]. If ctx is cancelled during a pause the run ends
// with [context.Cause] of ctx, and the state as of the last completed attempt
// is still returned.
type StateCtxRetrier[S, T any] struct {
	fn       func(context.Context, S) (S, T, error)
	builder  backoff.Builder
	policy   policy
	sleeper  CtxSleeper
	state    S
	hasState bool
}

// NewStateCtx creates a StateCtxRetrier for fn. The initial state must be
// supplied with [StateCtxRetrier.State] before calling.
func NewStateCtx[S, T any](fn func(context.Context, S) (S, T, error), b backoff.Builder) StateCtxRetrier[S, T] {
	return StateCtxRetrier[S, T]{
		fn:      fn,
		builder: b,
		policy:  defaultPolicy(),
		sleeper: DefaultCtxSleeper(),
	}
}

// State sets the initial state for the run.
func (r StateCtxRetrier[S, T]) State(s S) StateCtxRetrier[S, T] {
	r.state = s
	r.hasState = true
	return r
}

// When sets the predicate deciding whether an error is worth another attempt.
// The default retries every error.
func (r StateCtxRetrier[S, T]) When(retryable func(error) bool) StateCtxRetrier[S, T] {
	r.policy.retryable = retryable
	return r
}

// Notify sets a hook invoked before every pause with the error that triggered
// the retry and the duration about to be slept. The default does nothing.
func (r StateCtxRetrier[S, T]) Notify(fn func(err error, d time.Duration)) StateCtxRetrier[S, T] {
	r.policy.notify = fn
	return r
}

// Sleep replaces the pause mechanism. The default is [DefaultCtxSleeper].
func (r StateCtxRetrier[S, T]) Sleep(s CtxSleeper) StateCtxRetrier[S, T] {
	r.sleeper = s
	return r
}

// Call runs fn to a terminal outcome and returns the final state with it.
// Calling without having set a state is a programming error and panics.
func (r StateCtxRetrier[S, T]) Call(ctx context.Context) (S, T, error) {
	if !r.hasState {
		panic(noStateMsg)
	}
	return run(r.builder.Build(), r.policy, r.state,
		func(s S) (S, T, error) {
			return r.fn(ctx, s)
		},
		ctxPause(ctx, r.sleeper))
}
