package grep

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charliek/mailgrep/internal/domain"
)

type sliceSource struct {
	lines []Line
	i     int
}

func (s *sliceSource) Next() (Line, error) {
	if s.i >= len(s.lines) {
		return Line{}, io.EOF
	}
	line := s.lines[s.i]
	s.i++
	return line, nil
}

type recordingPrinter struct {
	lines  []Line
	spans  [][]domain.Span
	counts []int
}

func (p *recordingPrinter) PrintLine(line Line, spans []domain.Span) {
	p.lines = append(p.lines, line)
	p.spans = append(p.spans, spans)
}

func (p *recordingPrinter) PrintCount(n int) {
	p.counts = append(p.counts, n)
}

func makeSource(texts ...string) *sliceSource {
	src := &sliceSource{}
	for i, text := range texts {
		src.lines = append(src.lines, Line{Text: text, Number: i + 1})
	}
	return src
}

// containsX matches lines containing "x" and reports the span of the
// first occurrence.
func containsX(text string) (bool, []domain.Span) {
	i := strings.Index(text, "x")
	if i < 0 {
		return false, nil
	}
	return true, []domain.Span{{Start: i, End: i + 1}}
}

func TestEngine_PrintsMatchingLines(t *testing.T) {
	printer := &recordingPrinter{}
	engine := NewEngine(Options{}, containsX, printer)

	matched, err := engine.Run(makeSource("axe", "oak", "box"))
	require.NoError(t, err)

	assert.Equal(t, 2, matched)
	require.Len(t, printer.lines, 2)
	assert.Equal(t, "axe", printer.lines[0].Text)
	assert.Equal(t, "box", printer.lines[1].Text)
	assert.Equal(t, []domain.Span{{Start: 1, End: 2}}, printer.spans[0])
	assert.Empty(t, printer.counts)
}

func TestEngine_Invert(t *testing.T) {
	printer := &recordingPrinter{}
	engine := NewEngine(Options{Invert: true}, containsX, printer)

	matched, err := engine.Run(makeSource("axe", "oak", "box"))
	require.NoError(t, err)

	assert.Equal(t, 1, matched)
	require.Len(t, printer.lines, 1)
	assert.Equal(t, "oak", printer.lines[0].Text)

	// Inverted lines carry no highlight spans
	assert.Nil(t, printer.spans[0])
}

func TestEngine_CountOnly(t *testing.T) {
	printer := &recordingPrinter{}
	engine := NewEngine(Options{CountOnly: true}, containsX, printer)

	matched, err := engine.Run(makeSource("axe", "oak", "box"))
	require.NoError(t, err)

	assert.Equal(t, 2, matched)
	assert.Empty(t, printer.lines)
	assert.Equal(t, []int{2}, printer.counts)
}

func TestEngine_MaxCountStopsEarly(t *testing.T) {
	printer := &recordingPrinter{}
	engine := NewEngine(Options{MaxCount: 1}, containsX, printer)
	src := makeSource("axe", "box", "fox")

	matched, err := engine.Run(src)
	require.NoError(t, err)

	assert.Equal(t, 1, matched)
	assert.Len(t, printer.lines, 1)

	// The source was not drained past the limit
	assert.Equal(t, 1, src.i)
}

func TestEngine_NoMatches(t *testing.T) {
	printer := &recordingPrinter{}
	engine := NewEngine(Options{}, containsX, printer)

	matched, err := engine.Run(makeSource("oak", "elm"))
	require.NoError(t, err)

	assert.Equal(t, 0, matched)
	assert.Empty(t, printer.lines)
}
