package backoff

import "time"

// ConstantBuilder builds sessions that yield the same delay a fixed number
// of times. The zero configuration from [Constant] yields 1s three times.
type ConstantBuilder struct {
	delay    time.Duration
	maxTimes int
	jitter   bool
}

// Constant returns a ConstantBuilder with a 1s delay and 3 attempts.
func Constant() ConstantBuilder {
	return ConstantBuilder{
		delay:    time.Second,
		maxTimes: 3,
	}
}

// WithDelay sets the delay yielded by every step.
func (b ConstantBuilder) WithDelay(d time.Duration) ConstantBuilder {
	b.delay = d
	return b
}

// WithMaxTimes sets how many delays a session yields before exhaustion.
func (b ConstantBuilder) WithMaxTimes(n int) ConstantBuilder {
	b.maxTimes = n
	return b
}

// WithoutMaxTimes makes sessions yield delays forever.
func (b ConstantBuilder) WithoutMaxTimes() ConstantBuilder {
	b.maxTimes = -1
	return b
}

// WithJitter adds a uniform random duration in [0, delay) to every yielded
// delay.
func (b ConstantBuilder) WithJitter() ConstantBuilder {
	b.jitter = true
	return b
}

// Build implements [Builder].
func (b ConstantBuilder) Build() Backoff {
	times := 0
	return Func(func() (time.Duration, bool) {
		if b.maxTimes >= 0 && times >= b.maxTimes {
			return 0, false
		}
		times++
		d := b.delay
		if b.jitter {
			d = jittered(d, 0)
		}
		return d, true
	})
}
