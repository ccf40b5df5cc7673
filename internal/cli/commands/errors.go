package commands

import "fmt"

// UsageError marks invalid invocations (bad filter patterns, bad flags);
// main maps it to exit status 2.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// RunFailure reports how many tests failed; main maps it to exit status 1.
// The summary banner has already been printed when this is returned.
type RunFailure struct {
	Failed int
}

func (e *RunFailure) Error() string {
	return fmt.Sprintf("%d tests failed", e.Failed)
}
