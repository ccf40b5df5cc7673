package execution

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/aredridel/best6/internal/domain"
)

// Executor runs a suite strictly one test at a time, in suite order. A
// failing test never stops the run. There is no timeout or cancellation:
// a hung test blocks the whole run.
type Executor struct {
	// OnResult is invoked after each test completes, before the next
	// one starts. May be nil.
	OnResult func(domain.TestResult)
}

// New creates an Executor reporting each result to onResult.
func New(onResult func(domain.TestResult)) *Executor {
	return &Executor{OnResult: onResult}
}

// Run executes the suite in order and returns the aggregate summary.
func (e *Executor) Run(ctx context.Context, suite []domain.TestCase) domain.RunSummary {
	start := time.Now()
	failed := 0

	for _, tc := range suite {
		result := e.runOne(ctx, tc)
		if !result.Passed {
			failed++
		}
		if e.OnResult != nil {
			e.OnResult(result)
		}
	}

	return domain.RunSummary{
		Total:    len(suite),
		Failed:   failed,
		Duration: time.Since(start),
	}
}

func (e *Executor) runOne(ctx context.Context, tc domain.TestCase) domain.TestResult {
	start := time.Now()
	err := callProtected(ctx, tc.Fn)
	result := domain.TestResult{
		Name:     tc.Name,
		Passed:   err == nil,
		Duration: time.Since(start),
	}
	if err != nil {
		result.Failure = failureFrom(err)
	}
	return result
}

// callProtected invokes the test function, converting a panic into an
// error carrying the originating stack frames.
func callProtected(ctx context.Context, fn domain.TestFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r, stack: filterStack(debug.Stack())}
		}
	}()
	return fn(ctx)
}

func failureFrom(err error) *domain.Failure {
	failure := &domain.Failure{Message: err.Error()}

	var pe *panicError
	if errors.As(err, &pe) {
		failure.Stack = pe.stack
	}

	var ce *domain.ComparisonError
	if errors.As(err, &ce) {
		failure.Expected = ce.Expected
		failure.Actual = ce.Actual
		failure.HasDiff = true
	}

	return failure
}

// panicError wraps a recovered panic value. If the value is itself an
// error it stays reachable through Unwrap, so comparison payloads survive
// a panic(err).
type panicError struct {
	value any
	stack []string
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}

// filterStack trims the capture machinery from a panic stack, keeping the
// goroutine header and the frames from the panic site down.
func filterStack(stack []byte) []string {
	lines := strings.Split(strings.TrimSpace(string(stack)), "\n")
	if len(lines) == 0 {
		return nil
	}

	filtered := []string{lines[0]}
	collect := false
	for _, line := range lines[1:] {
		if collect {
			filtered = append(filtered, line)
		} else if strings.Contains(line, "panic.go") {
			collect = true
		}
	}
	if !collect {
		return lines
	}
	return filtered
}
