package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors
var (
	matchColor = lipgloss.Color("9") // Red
	labelColor = lipgloss.Color("8") // Gray
)

// newStyles builds the printer styles against a renderer bound to the
// output writer. The color profile is forced: once the color decision
// has been made, highlighting must survive pipes and redirection.
func newStyles(out io.Writer) (match, label lipgloss.Style) {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(termenv.ANSI)

	// match highlights the email occurrences that satisfied the
	// criteria within a printed line; label dims origin labels and
	// line numbers
	match = r.NewStyle().Foreground(matchColor).Bold(true)
	label = r.NewStyle().Foreground(labelColor)
	return match, label
}
