package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/aredridel/best6/internal/domain"
)

// Viewer displays the failures of the last saved run in an interactive
// terminal UI: a selectable failure list on the left, detail on the
// right. Tab switches focus, q or Escape quits.
type Viewer struct{}

// NewViewer creates a Viewer.
func NewViewer() *Viewer {
	return &Viewer{}
}

// View opens the browser and returns when the user quits.
func (v *Viewer) View(output *domain.RunOutput) error {
	if len(output.Failures) == 0 {
		color.Green("✓ no failures in the last run")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetBorder(true).
		SetTitle(fmt.Sprintf(" %d failed test(s) — %s ", len(output.Failures), output.Meta.Timestamp))
	list.SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	details.SetBorder(true).SetTitle(" detail ")

	renderDetail := func(index int) {
		failure := output.Failures[index]
		var b strings.Builder
		fmt.Fprintf(&b, "[yellow]%s[white]\n\n", tview.Escape(failure.TestName))
		fmt.Fprintf(&b, "%s\n", tview.Escape(failure.Message))
		if len(failure.Stack) > 0 {
			fmt.Fprintf(&b, "\n[gray]%s[white]\n", tview.Escape(strings.Join(failure.Stack, "\n")))
		}
		if failure.Detail != "" {
			fmt.Fprintf(&b, "\n%s\n", tview.Escape(failure.Detail))
		}
		details.SetText(b.String())
		details.ScrollToBeginning()
	}

	for i, failure := range output.Failures {
		list.AddItem(fmt.Sprintf("[red]%d.[white] %s", i+1, tview.Escape(failure.TestName)), "", 0, nil)
	}
	list.SetChangedFunc(func(index int, _, _ string, _ rune) {
		renderDetail(index)
	})
	renderDetail(0)

	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(details, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			app.Stop()
			return nil
		case tcell.KeyTab:
			if list.HasFocus() {
				app.SetFocus(details)
			} else {
				app.SetFocus(list)
			}
			return nil
		}
		if event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(flex, true).Run()
}
