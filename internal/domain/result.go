package domain

import "time"

// TestResult represents the outcome of executing a single test case
type TestResult struct {
	Name     string
	Passed   bool
	Failure  *Failure
	Duration time.Duration
}

// RunSummary aggregates a whole run; Failed drives the exit status.
type RunSummary struct {
	Total    int
	Failed   int
	Duration time.Duration
}

// Passed reports whether the run had no failures.
func (s RunSummary) Passed() bool {
	return s.Failed == 0
}

// RunMeta contains metadata about a saved test run
type RunMeta struct {
	TotalTests      int     `json:"total_tests"`
	PassedTests     int     `json:"passed_tests"`
	FailedTests     int     `json:"failed_tests"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// FailureRecord is the serializable form of a failure, keyed by the
// qualified test name so later runs can re-select it.
type FailureRecord struct {
	TestName string   `json:"test_name"`
	Message  string   `json:"message"`
	Stack    []string `json:"stack,omitempty"`
	Detail   string   `json:"detail,omitempty"`
}

// RunOutput is the complete structure persisted after a run
type RunOutput struct {
	Meta     RunMeta         `json:"meta"`
	Failures []FailureRecord `json:"failures"`
}
