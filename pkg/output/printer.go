package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwalton/go-supportscolor"
	"github.com/muesli/termenv"

	"github.com/vertti/setupcheck/pkg/check"
	"github.com/vertti/setupcheck/pkg/report"
)

const ruleWidth = 60

// ColorEnabled reports whether stdout should receive ANSI colors.
func ColorEnabled(noColor bool) bool {
	return !noColor && supportscolor.Stdout().SupportsColor
}

// Printer renders check results and report sections as they happen.
type Printer struct {
	w     io.Writer
	ok    lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
	dim   lipgloss.Style
	title lipgloss.Style
}

// New creates a Printer writing to w. With color false all styling is dropped.
func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:     w,
		ok:    r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("3")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("1")),
		dim:   r.NewStyle().Faint(true),
		title: r.NewStyle().Bold(true),
	}
}

// Banner prints the report heading.
func (p *Printer) Banner(title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(p.w, "\n%s\n  %s\n%s\n", rule, p.title.Render(title), rule)
}

// Section prints a section heading.
func (p *Printer) Section(title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(p.w, "\n%s\n  %s\n%s\n\n", rule, p.title.Render(title), rule)
}

// Result prints a check result with its status label and indented details.
func (p *Printer) Result(r check.Result) {
	label, style := statusLabel(r.Status), p.styleFor(r.Status)
	fmt.Fprintf(p.w, "%s %s\n", style.Render(label), p.formatLabel(r.Name))

	indent := strings.Repeat(" ", len(label)+1)
	for _, d := range r.Details {
		fmt.Fprintf(p.w, "%s%s\n", indent, p.formatLabel(d))
	}
}

// Summary prints the closing verdict for rep followed by numbered steps.
func (p *Printer) Summary(rep *report.Report, nextSteps, troubleshooting []string) {
	p.Section("Summary")

	counts := rep.Counts()
	if rep.Passed() {
		fmt.Fprintf(p.w, "%s All checks passed! You're ready to start.\n", p.ok.Render(statusLabel(check.StatusOK)))
	} else {
		fmt.Fprintf(p.w, "%s Some checks failed. Please fix the issues above.\n", p.fail.Render(statusLabel(check.StatusFail)))
	}
	fmt.Fprintf(p.w, "%s\n", p.dim.Render(fmt.Sprintf("%d ok, %d %s, %d failed",
		counts.OK, counts.Warn, plural(counts.Warn, "warning", "warnings"), counts.Fail)))

	heading, steps := "Next steps:", nextSteps
	if !rep.Passed() {
		heading, steps = "Troubleshooting:", troubleshooting
	}
	if len(steps) > 0 {
		fmt.Fprintf(p.w, "\n%s\n", heading)
		for i, s := range steps {
			fmt.Fprintf(p.w, "%d. %s\n", i+1, s)
		}
	}

	fmt.Fprintf(p.w, "\n%s\n\n", strings.Repeat("=", ruleWidth))
}

func (p *Printer) styleFor(s check.Status) lipgloss.Style {
	switch s {
	case check.StatusOK:
		return p.ok
	case check.StatusWarn:
		return p.warn
	default:
		return p.fail
	}
}

// formatLabel dims the "kind:" prefix of a name or detail line.
func (p *Printer) formatLabel(s string) string {
	if idx := strings.Index(s, ": "); idx > 0 {
		return p.dim.Render(s[:idx+1]) + s[idx+1:]
	}
	return s
}

func statusLabel(s check.Status) string {
	return "[" + string(s) + "]"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
