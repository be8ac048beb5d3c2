// Package backoff provides the delay generators consumed by the retry loop:
// constant, exponential, and fibonacci sequences with optional jitter, plus
// an explicit-sequence generator for hand-tuned schedules.
//
// A Backoff is one session of delays: stateful, advanced by each call to
// Next, finished when Next reports false. The retry loop never accepts a
// Backoff directly; it takes a Builder and builds a fresh session per run, so
// delay state is never accidentally shared between runs.
package backoff

import (
	"math"
	"math/rand/v2"
	"time"
)

// Backoff yields the pause durations for one retry session. Next returns the
// next duration and true, or reports false when the session is exhausted.
// Advancing the sequence is its only side effect.
type Backoff interface {
	Next() (time.Duration, bool)
}

// Builder produces independent Backoff sessions. Builders in this package
// are immutable values; their With methods return modified copies.
type Builder interface {
	Build() Backoff
}

// Func adapts a closure to the [Backoff] interface.
type Func func() (time.Duration, bool)

// Next implements [Backoff].
func (f Func) Next() (time.Duration, bool) { return f() }

// maxintf backstops float64 delay math against int64 overflow.
const maxintf = float64(math.MaxInt64) - 1

// jittered adds a uniform random duration in [0, d) to d, saturating on
// overflow and honoring ceil if positive.
func jittered(d, ceil time.Duration) time.Duration {
	if d <= 0 {
		return d
	}
	out := d + time.Duration(rand.Int64N(int64(d)))
	if out < d {
		out = time.Duration(math.MaxInt64)
	}
	if ceil > 0 && out > ceil {
		out = ceil
	}
	return out
}
