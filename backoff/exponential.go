package backoff

import (
	"math"
	"time"
)

// ExponentialBuilder builds sessions whose delays grow geometrically from a
// minimum, capped at a maximum. The configuration from [Exponential] yields
// 1s, 2s, 4s and is then exhausted.
type ExponentialBuilder struct {
	minDelay time.Duration
	maxDelay time.Duration
	factor   float64
	maxTimes int
	jitter   bool
}

// Exponential returns an ExponentialBuilder with a 1s minimum delay, 60s
// maximum delay, growth factor 2, and 3 attempts.
func Exponential() ExponentialBuilder {
	return ExponentialBuilder{
		minDelay: time.Second,
		maxDelay: 60 * time.Second,
		factor:   2,
		maxTimes: 3,
	}
}

// WithMinDelay sets the first delay of every session.
func (b ExponentialBuilder) WithMinDelay(d time.Duration) ExponentialBuilder {
	b.minDelay = d
	return b
}

// WithMaxDelay caps the yielded delays.
func (b ExponentialBuilder) WithMaxDelay(d time.Duration) ExponentialBuilder {
	b.maxDelay = d
	return b
}

// WithoutMaxDelay removes the delay cap. Delays still saturate at the
// largest representable duration.
func (b ExponentialBuilder) WithoutMaxDelay() ExponentialBuilder {
	b.maxDelay = 0
	return b
}

// WithFactor sets the per-step growth factor. Values below 1 shrink the
// delay instead; 1 degenerates to a constant sequence.
func (b ExponentialBuilder) WithFactor(factor float64) ExponentialBuilder {
	b.factor = factor
	return b
}

// WithMaxTimes sets how many delays a session yields before exhaustion.
func (b ExponentialBuilder) WithMaxTimes(n int) ExponentialBuilder {
	b.maxTimes = n
	return b
}

// WithoutMaxTimes makes sessions yield delays forever.
func (b ExponentialBuilder) WithoutMaxTimes() ExponentialBuilder {
	b.maxTimes = -1
	return b
}

// WithJitter adds a uniform random duration in [0, delay) to every yielded
// delay, still capped at the maximum delay.
func (b ExponentialBuilder) WithJitter() ExponentialBuilder {
	b.jitter = true
	return b
}

// Build implements [Builder].
func (b ExponentialBuilder) Build() Backoff {
	cur := float64(b.minDelay)
	times := 0
	return Func(func() (time.Duration, bool) {
		if b.maxTimes >= 0 && times >= b.maxTimes {
			return 0, false
		}
		times++
		var d time.Duration
		if cur >= maxintf {
			d = time.Duration(math.MaxInt64)
		} else {
			d = time.Duration(cur)
		}
		if b.maxDelay > 0 && d > b.maxDelay {
			d = b.maxDelay
		} else {
			cur *= b.factor
		}
		if b.jitter {
			d = jittered(d, b.maxDelay)
		}
		return d, true
	})
}
