package backoff

import (
	"slices"
	"time"
)

// DurationsBuilder builds sessions that yield an explicit, finite list of
// delays in order. Useful for hand-tuned schedules and for scripting exact
// retry behavior in tests.
type DurationsBuilder struct {
	delays []time.Duration
}

// Durations returns a Builder whose sessions yield exactly the given delays.
// With no arguments, sessions are exhausted immediately and nothing is ever
// retried.
func Durations(delays ...time.Duration) DurationsBuilder {
	return DurationsBuilder{delays: slices.Clone(delays)}
}

// Build implements [Builder].
func (b DurationsBuilder) Build() Backoff {
	i := 0
	return Func(func() (time.Duration, bool) {
		if i >= len(b.delays) {
			return 0, false
		}
		d := b.delays[i]
		i++
		return d, true
	})
}
