package ui

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/aredridel/best6/internal/config"
	"github.com/aredridel/best6/internal/domain"
)

// stackHeaderLines is how much of a failure stack the non-verbose output
// shows: the goroutine header plus three frames (two lines each).
const stackHeaderLines = 7

// Formatter renders results, warnings and the final banner.
type Formatter struct {
	cfg    *config.Config
	out    io.Writer
	errOut io.Writer
	width  int
}

// NewFormatter creates a Formatter writing to stdout/stderr. Status lines
// are truncated to the terminal width when stdout is a terminal.
func NewFormatter(cfg *config.Config) *Formatter {
	width := 0
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}
	return &Formatter{cfg: cfg, out: color.Output, errOut: color.Error, width: width}
}

// PrintResult writes the one-line verdict for a finished test, followed
// by failure detail when it failed.
func (f *Formatter) PrintResult(result domain.TestResult) {
	if result.Passed {
		fmt.Fprintln(f.out, color.GreenString(f.fit("PASS "+result.Name)))
		return
	}
	fmt.Fprintln(f.out, color.RedString(f.fit("FAIL "+result.Name)))
	f.printFailure(result.Failure)
}

// PrintSummary writes the final aggregate line.
func (f *Formatter) PrintSummary(summary domain.RunSummary) {
	fmt.Fprintln(f.out)
	if summary.Passed() {
		color.New(color.FgGreen).Fprintf(f.out, "ALL TESTS PASSED (%d tests in %.2fs)\n", summary.Total, summary.Duration.Seconds())
	} else {
		color.New(color.FgRed, color.Bold).Fprintf(f.out, "%d TESTS FAILED\n", summary.Failed)
	}
}

// Warnf writes a non-fatal diagnostic to stderr.
func (f *Formatter) Warnf(format string, a ...any) {
	fmt.Fprintln(f.errOut, color.YellowString("warning: "+fmt.Sprintf(format, a...)))
}

func (f *Formatter) fit(line string) string {
	if f.width > 0 {
		return runewidth.Truncate(line, f.width, "…")
	}
	return line
}

func (f *Formatter) printFailure(failure *domain.Failure) {
	if failure == nil {
		return
	}
	fmt.Fprintf(f.out, "  %s\n", failure.Message)

	frames := failure.Stack
	if !f.cfg.Verbose && len(frames) > stackHeaderLines {
		frames = frames[:stackHeaderLines]
	}
	for _, frame := range frames {
		fmt.Fprintf(f.out, "  %s\n", frame)
	}

	if failure.HasDiff {
		f.printComparison(failure.Expected, failure.Actual)
	}
}

// printComparison renders a structured diff when both sides are non-nil
// objects, and a two-panel depth-bounded dump otherwise.
func (f *Formatter) printComparison(expected, actual any) {
	if isObject(expected) && isObject(actual) {
		if diff := safeDiff(expected, actual); diff != "" {
			fmt.Fprintf(f.out, "  diff (-expected +actual):\n%s", indent(diff, "    "))
			return
		}
	}
	fmt.Fprintf(f.out, "  expected: %s\n", Dump(expected, f.cfg.Depth))
	fmt.Fprintf(f.out, "  actual:   %s\n", Dump(actual, f.cfg.Depth))
}

// FailureRecord converts a failed result into its serializable form for
// last-run storage.
func (f *Formatter) FailureRecord(result domain.TestResult) domain.FailureRecord {
	record := domain.FailureRecord{TestName: result.Name}
	if result.Failure == nil {
		return record
	}
	record.Message = result.Failure.Message
	record.Stack = result.Failure.Stack
	if result.Failure.HasDiff {
		record.Detail = fmt.Sprintf("expected: %s\nactual:   %s",
			Dump(result.Failure.Expected, f.cfg.Depth),
			Dump(result.Failure.Actual, f.cfg.Depth))
	}
	return record
}

// PrintSuite prints the selected suite as a tree grouped by source
// module, without executing anything. Names present in failed are marked
// as failing in the last saved run.
func (f *Formatter) PrintSuite(suite []domain.TestCase, failed map[string]bool) {
	color.New(color.FgGreen).Fprintf(f.out, "Found %d test(s):\n", len(suite))

	type group struct {
		module string
		names  []string
	}
	var groups []group
	for _, tc := range suite {
		module := tc.Name
		if i := strings.LastIndex(tc.Name, "/"); i >= 0 {
			module = tc.Name[:i]
		}
		if len(groups) == 0 || groups[len(groups)-1].module != module {
			groups = append(groups, group{module: module})
		}
		groups[len(groups)-1].names = append(groups[len(groups)-1].names, tc.Name)
	}

	for i, g := range groups {
		connector, childPrefix := "├── ", "│   "
		if i == len(groups)-1 {
			connector, childPrefix = "└── ", "    "
		}
		color.New(color.FgCyan).Fprintf(f.out, "%s%s\n", connector, g.module)

		for j, name := range g.names {
			leaf := "├── "
			if j == len(g.names)-1 {
				leaf = "└── "
			}
			display := name[strings.LastIndex(name, "/")+1:]
			marker := ""
			if failed[name] {
				marker = " " + color.RedString("[F]")
			}
			fmt.Fprintf(f.out, "%s%s%s%s\n", childPrefix, leaf, color.YellowString(display), marker)
		}
	}
}

// safeDiff shields against cmp panicking on unexported struct fields; the
// caller falls back to the dump panels.
func safeDiff(expected, actual any) (diff string) {
	defer func() {
		if recover() != nil {
			diff = ""
		}
	}()
	return cmp.Diff(expected, actual)
}

func isObject(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer:
		return true
	}
	return false
}

func indent(s, prefix string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
