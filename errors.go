package retry

import "errors"

// ErrorsIs is a shortcut to writing a When predicate of the form
//
//	func(e error) bool {
//	    return errors.Is(e, Err1) || errors.Is(e, Err2) /* ... */
//	}
//
// retrying only the listed errors and treating everything else as terminal.
func ErrorsIs(targets ...error) func(error) bool {
	return func(err error) bool {
		for i := range targets {
			if errors.Is(err, targets[i]) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate. Combined with [ErrorsIs] it expresses a deny list:
// retry everything except the listed errors.
func Not(pred func(error) bool) func(error) bool {
	return func(err error) bool {
		return !pred(err)
	}
}
