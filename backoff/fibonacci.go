package backoff

import (
	"math"
	"time"
)

// FibonacciBuilder builds sessions whose delays follow the fibonacci
// sequence scaled by a minimum delay, capped at a maximum. Growth is gentler
// than exponential while still spreading out late attempts. The
// configuration from [Fibonacci] yields 1s, 1s, 2s and is then exhausted.
type FibonacciBuilder struct {
	minDelay time.Duration
	maxDelay time.Duration
	maxTimes int
	jitter   bool
}

// Fibonacci returns a FibonacciBuilder with a 1s minimum delay, 60s maximum
// delay, and 3 attempts.
func Fibonacci() FibonacciBuilder {
	return FibonacciBuilder{
		minDelay: time.Second,
		maxDelay: 60 * time.Second,
		maxTimes: 3,
	}
}

// WithMinDelay sets the first delay of every session; later delays are
// fibonacci multiples of it.
func (b FibonacciBuilder) WithMinDelay(d time.Duration) FibonacciBuilder {
	b.minDelay = d
	return b
}

// WithMaxDelay caps the yielded delays.
func (b FibonacciBuilder) WithMaxDelay(d time.Duration) FibonacciBuilder {
	b.maxDelay = d
	return b
}

// WithoutMaxDelay removes the delay cap. Delays still saturate at the
// largest representable duration.
func (b FibonacciBuilder) WithoutMaxDelay() FibonacciBuilder {
	b.maxDelay = 0
	return b
}

// WithMaxTimes sets how many delays a session yields before exhaustion.
func (b FibonacciBuilder) WithMaxTimes(n int) FibonacciBuilder {
	b.maxTimes = n
	return b
}

// WithoutMaxTimes makes sessions yield delays forever.
func (b FibonacciBuilder) WithoutMaxTimes() FibonacciBuilder {
	b.maxTimes = -1
	return b
}

// WithJitter adds a uniform random duration in [0, delay) to every yielded
// delay, still capped at the maximum delay.
func (b FibonacciBuilder) WithJitter() FibonacciBuilder {
	b.jitter = true
	return b
}

// Build implements [Builder].
func (b FibonacciBuilder) Build() Backoff {
	prev, cur := time.Duration(0), b.minDelay
	times := 0
	return Func(func() (time.Duration, bool) {
		if b.maxTimes >= 0 && times >= b.maxTimes {
			return 0, false
		}
		times++
		d := cur
		if b.maxDelay > 0 && d > b.maxDelay {
			d = b.maxDelay
		} else {
			next := prev + cur
			if next < cur {
				// int64 overflow
				next = time.Duration(math.MaxInt64)
			}
			prev, cur = cur, next
		}
		if b.jitter {
			d = jittered(d, b.maxDelay)
		}
		return d, true
	})
}
