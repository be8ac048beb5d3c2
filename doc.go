/*
Package retry drives fallible functions to completion.

Given a function and a [backoff.Builder], a retrier invokes the function,
and on failure pauses for the backoff's next delay and tries again, until the
function succeeds, the backoff runs out of delays, or a predicate declares
the error terminal.

Features:
  - Declarative call-site syntax: wrap the function, chain configuration,
    finish with Call.
  - Four retrier shapes covering blocking and context-aware execution, with
    and without carried state.
  - Pluggable pause mechanisms, retry predicates, and per-retry notification
    hooks, all with sensible defaults.
  - Errors come back exactly as the function produced them, never wrapped.

# Supported Function Types

	|            Function Signature            | Constructor |
	|------------------------------------------|-------------|
	| func() (T, error)                        | New         |
	| func(context.Context) (T, error)         | NewCtx      |
	| func(S) (S, T, error)                    | NewState    |
	| func(context.Context, S) (S, T, error)   | NewStateCtx |

The state-carrying shapes thread a caller-owned value S through every
attempt: the function receives it, returns it (mutated or not), and the final
value is handed back to the caller with the outcome. This gives the function
exclusive access to S for the whole run without sharing or copying.

# Retry Workflow

A run ends when one of the following occurs:
  - The function returns a nil error. Its result (and state, if carried) is
    returned.
  - The When predicate rejects the error. That error is returned unmodified.
  - The backoff session is exhausted. The error from the final attempt is
    returned unmodified; exhaustion is not a distinct error value.
  - For the context-aware shapes only: the context is cancelled during a
    pause, in which case context.Cause supplies the returned error.

Between a failed attempt and the next one, the Notify hook (if set) receives
the error and the upcoming delay, and then the configured sleeper pauses the
run. Attempts are strictly sequential; the function is never invoked
concurrently with itself.

Retriers are single-use value types. Configuration methods return modified
copies, so partial configurations are immutable snapshots, and every Call
builds its own backoff session from the builder supplied at construction.

# Basic Usage

	fetch := func() (*http.Response, error) {
		return http.Get("https://example.com/healthz")
	}

	resp, err := retry.New(fetch, backoff.Exponential().WithJitter()).
		Notify(func(err error, d time.Duration) {
			log.Printf("fetch failed (%v), next try in %v", err, d)
		}).
		Call()
*/
package retry
