package domain

import "fmt"

// Failure describes why a test failed
type Failure struct {
	Message  string   `json:"message"`
	Stack    []string `json:"stack,omitempty"`
	Expected any      `json:"expected,omitempty"`
	Actual   any      `json:"actual,omitempty"`
	// HasDiff is set when the failing error carried expected/actual
	// values, so the reporter knows to render a comparison even when
	// one of them is nil.
	HasDiff bool `json:"has_diff,omitempty"`
}

// ComparisonError is an error carrying expected/actual values so the
// reporter can render a structured diff instead of a bare message.
type ComparisonError struct {
	Msg      string
	Expected any
	Actual   any
}

// Comparison builds a ComparisonError for a failed equality check.
func Comparison(msg string, expected, actual any) *ComparisonError {
	return &ComparisonError{Msg: msg, Expected: expected, Actual: actual}
}

func (e *ComparisonError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("expected %v, got %v", e.Expected, e.Actual)
}
