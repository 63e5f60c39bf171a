// Package report renders an accumulated timecard for people (styled text)
// and for programs (json, csv, yaml).
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Tiliavir/timecard/internal/timecalc"
)

const (
	dividerWidth = 25
	prompt       = "Paste in timecard data, then <Enter>, then <CTRL-D>"
	emptyMessage = `Input empty! ¯\_(ツ)_/¯`
)

// Printer writes the text report. Styling is applied only when color is on;
// otherwise the output is plain ASCII.
type Printer struct {
	w       io.Writer
	divider lipgloss.Style
	total   lipgloss.Style
	failure lipgloss.Style
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:       w,
		divider: r.NewStyle().Faint(true),
		total:   r.NewStyle().Bold(true),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")).TabWidth(lipgloss.NoTabConversion),
	}
}

// Divider prints a horizontal rule.
func (p *Printer) Divider() {
	fmt.Fprintln(p.w, p.divider.Render(strings.Repeat("-", dividerWidth)))
}

// Banner prints the pre-parse banner. The paste prompt is left out when the
// input does not come from a terminal paste.
func (p *Printer) Banner(withPrompt bool) {
	p.Divider()
	if withPrompt {
		fmt.Fprintln(p.w, prompt)
		p.Divider()
	}
}

// Empty reports that no entries were found.
func (p *Printer) Empty() {
	fmt.Fprintln(p.w, emptyMessage)
	p.Divider()
}

// Failure reports a fatal input error.
func (p *Printer) Failure(err error) {
	p.Divider()
	fmt.Fprintln(p.w, p.failure.Render(err.Error()))
}

// Report prints the day lines and the grand total. A dated day prints a
// right-aligned label; its total follows on the same line only when minutes
// were recorded, so an empty day's label runs into the next one.
func (p *Printer) Report(rep timecalc.Report) {
	p.Divider()
	for _, d := range rep.Days {
		if d.Date != nil {
			fmt.Fprintf(p.w, "%5s: ", d.Label())
		}
		if d.Minutes > 0 {
			fmt.Fprintln(p.w, timecalc.FormatHours(d.Minutes))
		}
	}
	p.Divider()
	fmt.Fprintln(p.w, p.total.Render("Total: "+timecalc.FormatHours(rep.TotalMinutes)))
	p.Divider()
}
