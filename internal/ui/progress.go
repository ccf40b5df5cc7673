package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/aredridel/best6/internal/domain"
)

// Progress renders a stderr progress bar while the suite runs.
type Progress struct {
	bar    *progressbar.ProgressBar
	passed int
	failed int
}

// ProgressEnabled reports whether the bar makes sense: stderr must be a
// terminal, and the PASS/FAIL stream on stdout must be redirected,
// otherwise the bar redraws over the per-test lines.
func ProgressEnabled() bool {
	stderrTTY := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return stderrTTY && !stdoutTTY
}

// NewProgress creates a progress bar for a suite of count tests.
func NewProgress(count int) *Progress {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &Progress{bar: bar}
}

// Observe records one finished test and advances the bar.
func (p *Progress) Observe(result domain.TestResult) {
	if result.Passed {
		p.passed++
	} else {
		p.failed++
	}
	p.bar.Add(1)
	p.bar.Describe(describe(p.passed, p.failed))
}

// Finish completes the bar.
func (p *Progress) Finish() {
	p.bar.Finish()
}

func describe(passed, failed int) string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
}
