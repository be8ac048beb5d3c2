package retry_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"corin.dev/retry"
	"corin.dev/retry/backoff"
)

var ErrBusy = errors.New("upstream busy")

func ExampleRetrier() {
	calls := 0
	flaky := func() (int, error) {
		calls++
		if calls < 3 {
			return 0, ErrBusy
		}
		return 42, nil
	}

	val, err := retry.New(flaky, backoff.Durations(time.Millisecond, 2*time.Millisecond)).
		Notify(func(err error, d time.Duration) {
			fmt.Printf("failed with %q, next try in %v\n", err, d)
		}).
		Call()
	if err != nil {
		fmt.Println("gave up:", err)
		return
	}
	fmt.Println("got:", val)
	// Output:
	// failed with "upstream busy", next try in 1ms
	// failed with "upstream busy", next try in 2ms
	// got: 42
}

func ExampleStateRetrier() {
	type session struct {
		dialed int
	}

	dial := func(s session) (session, string, error) {
		s.dialed++
		if s.dialed < 2 {
			return s, "", ErrBusy
		}
		return s, "connected", nil
	}

	final, status, err := retry.NewState(dial, backoff.Durations(time.Millisecond)).
		State(session{}).
		Call()
	if err != nil {
		fmt.Println("gave up:", err)
		return
	}
	fmt.Printf("%s after %d dials\n", status, final.dialed)
	// Output:
	// connected after 2 dials
}

func ExampleErrorsIs() {
	ErrCorrupt := errors.New("corrupt payload")

	calls := 0
	fetch := func() (string, error) {
		calls++
		if calls == 1 {
			return "", ErrBusy
		}
		return "", ErrCorrupt
	}

	_, err := retry.New(fetch, backoff.Durations(time.Millisecond, time.Millisecond)).
		When(retry.ErrorsIs(ErrBusy)).
		Call()

	fmt.Printf("stopped after %d calls: %v\n", calls, err)
	// Output:
	// stopped after 2 calls: corrupt payload
}

func ExampleCtxRetrier() {
	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(errors.New("deploy rolled back"))

	calls := 0
	_, err := retry.NewCtx(func(context.Context) (string, error) {
		calls++
		return "", ErrBusy
	}, backoff.Constant().WithDelay(time.Hour)).
		Call(ctx)

	fmt.Printf("stopped after %d call: %v\n", calls, err)
	// Output:
	// stopped after 1 call: deploy rolled back
}
