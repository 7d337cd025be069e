package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/charliek/mailgrep/internal/domain"
	"github.com/charliek/mailgrep/internal/grep"
)

// Printer handles consistent output formatting: origin labels, line
// numbers, and match highlighting.
type Printer struct {
	out     io.Writer
	color   bool
	numbers bool

	matchStyle lipgloss.Style
	labelStyle lipgloss.Style
}

// NewPrinter creates a new Printer writing to out.
func NewPrinter(out io.Writer, color, numbers bool) *Printer {
	p := &Printer{out: out, color: color, numbers: numbers}
	if color {
		p.matchStyle, p.labelStyle = newStyles(out)
	}
	return p
}

// PrintLine prints one matching line with its prefix and highlights.
func (p *Printer) PrintLine(line grep.Line, spans []domain.Span) {
	var b strings.Builder
	if line.Origin != "" {
		b.WriteString(p.label(line.Origin))
		b.WriteByte(':')
	}
	if p.numbers {
		b.WriteString(p.label(strconv.Itoa(line.Number)))
		b.WriteByte(':')
	}
	b.WriteString(p.highlight(line.Text, spans))
	fmt.Fprintln(p.out, b.String())
}

// PrintCount prints the final match count for count-only mode.
func (p *Printer) PrintCount(n int) {
	fmt.Fprintln(p.out, n)
}

func (p *Printer) label(s string) string {
	if !p.color {
		return s
	}
	return p.labelStyle.Render(s)
}

// highlight renders the matched spans of text in the match style. Spans
// are expected in ascending order; anything out of order is skipped.
func (p *Printer) highlight(text string, spans []domain.Span) string {
	if !p.color || len(spans) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, sp := range spans {
		if sp.Start < last || sp.End > len(text) {
			continue
		}
		b.WriteString(text[last:sp.Start])
		b.WriteString(p.matchStyle.Render(text[sp.Start:sp.End]))
		last = sp.End
	}
	b.WriteString(text[last:])
	return b.String()
}
