package grep

import (
	"io"

	"github.com/charliek/mailgrep/internal/domain"
)

// Predicate decides whether a line passes and reports the spans to
// highlight within it.
type Predicate func(text string) (bool, []domain.Span)

// Printer consumes the engine's output.
type Printer interface {
	PrintLine(line Line, spans []domain.Span)
	PrintCount(n int)
}

// Options control the engine's selection and output behavior.
type Options struct {
	Invert    bool // print lines that do not match
	CountOnly bool // print only the number of matching lines
	MaxCount  int  // stop after this many matches; 0 means unlimited
}

// Engine pulls lines from a Source, applies a Predicate, and hands
// matching lines to a Printer. Inversion, counting, and the match limit
// are owned here, not by the predicate.
type Engine struct {
	opts      Options
	predicate Predicate
	printer   Printer
}

// NewEngine creates an Engine.
func NewEngine(opts Options, predicate Predicate, printer Printer) *Engine {
	return &Engine{opts: opts, predicate: predicate, printer: printer}
}

// Run drains the source and returns the number of matching lines.
func (e *Engine) Run(src Source) (int, error) {
	matched := 0
	for {
		line, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return matched, err
		}

		ok, spans := e.predicate(line.Text)
		if e.opts.Invert {
			ok = !ok
			spans = nil
		}
		if !ok {
			continue
		}

		matched++
		if !e.opts.CountOnly {
			e.printer.PrintLine(line, spans)
		}
		if e.opts.MaxCount > 0 && matched >= e.opts.MaxCount {
			break
		}
	}

	if e.opts.CountOnly {
		e.printer.PrintCount(matched)
	}
	return matched, nil
}
