package retry

import "time"

// policy is the per-run decision bundle shared by every retrier variant: the
// retryability predicate and the pre-pause notify hook. Sleepers live on the
// variants themselves because the two execution models need different shapes.
type policy struct {
	retryable func(error) bool
	notify    func(error, time.Duration)
}

func defaultPolicy() policy {
	return policy{
		retryable: func(error) bool { return true },
		notify:    func(error, time.Duration) {},
	}
}
