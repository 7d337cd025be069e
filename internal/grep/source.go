// Package grep provides a generic line-oriented filtering engine: a pull
// based line source and a predicate-driven output loop.
package grep

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/charliek/mailgrep/internal/constants"
)

// Line is one physical input line together with its origin.
type Line struct {
	Text   string
	Origin string // source file name; empty for stdin or a single input
	Number int    // 1-based line number within its source
}

// Source produces a lazy, finite, non-restartable sequence of lines.
// Next returns io.EOF when the sequence is exhausted.
type Source interface {
	Next() (Line, error)
}

// WarnFunc receives non-fatal per-file failures (open or read errors).
type WarnFunc func(name string, err error)

// FileSource reads the given files in order, falling back to stdin when
// no files are given. Unopenable files are reported through the warning
// sink and skipped. Lines carry an origin label only when more than one
// file was requested.
type FileSource struct {
	paths []string
	stdin io.Reader
	warn  WarnFunc
	enc   encoding.Encoding

	idx     int
	started bool

	scanner *bufio.Scanner
	closer  io.Closer
	name    string
	origin  string
	lineNo  int
}

// NewFileSource creates a FileSource. enc may be nil for raw UTF-8 input;
// warn may be nil to discard warnings.
func NewFileSource(paths []string, stdin io.Reader, warn WarnFunc, enc encoding.Encoding) *FileSource {
	return &FileSource{
		paths: paths,
		stdin: stdin,
		warn:  warn,
		enc:   enc,
	}
}

// Next returns the next line, or io.EOF when all inputs are exhausted.
// Read errors mid-file are reported through the warning sink and the
// rest of that file is skipped.
func (s *FileSource) Next() (Line, error) {
	for {
		if s.scanner == nil {
			if !s.advance() {
				return Line{}, io.EOF
			}
		}

		if s.scanner.Scan() {
			s.lineNo++
			return Line{Text: s.scanner.Text(), Origin: s.origin, Number: s.lineNo}, nil
		}

		if err := s.scanner.Err(); err != nil {
			s.report(s.name, err)
		}
		if s.closer != nil {
			_ = s.closer.Close()
			s.closer = nil
		}
		s.scanner = nil
	}
}

// advance opens the next input, skipping files that fail to open.
func (s *FileSource) advance() bool {
	if len(s.paths) == 0 {
		if s.started || s.stdin == nil {
			return false
		}
		s.started = true
		s.use(s.stdin, "", "stdin")
		return true
	}

	for s.idx < len(s.paths) {
		path := s.paths[s.idx]
		s.idx++

		f, err := os.Open(path)
		if err != nil {
			s.report(path, err)
			continue
		}

		origin := ""
		if len(s.paths) > 1 {
			origin = path
		}
		s.closer = f
		s.use(f, origin, path)
		return true
	}
	return false
}

func (s *FileSource) use(r io.Reader, origin, name string) {
	if s.enc != nil {
		r = transform.NewReader(r, s.enc.NewDecoder())
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, constants.ScannerBufferSize), constants.ScannerMaxBufferSize)
	s.scanner = sc
	s.origin = origin
	s.name = name
	s.lineNo = 0
}

func (s *FileSource) report(name string, err error) {
	if s.warn != nil {
		s.warn(name, err)
	}
}
