// Package email finds and parses email address occurrences in plain text.
package email

import (
	"regexp"
	"strings"

	"github.com/charliek/mailgrep/internal/domain"
)

// addrRegexp is the shared address grammar: a liberal addr-spec pattern
// suitable for scanning free-form text.
var addrRegexp = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// phraseRegexp matches a display name (quoted or plain) ending a prefix
// that stops directly before "<".
var phraseRegexp = regexp.MustCompile(`("(?:[^"\\]|\\.)*"|[A-Za-z0-9][A-Za-z0-9 ._'-]*)\s*$`)

// commentRegexp matches a parenthesized comment at the start of a tail.
var commentRegexp = regexp.MustCompile(`^\s*\(([^()]*)\)`)

// Candidate is one email occurrence found in a line. Span covers the
// full visible form, including any display name, angle brackets, and
// trailing comment.
type Candidate struct {
	Span    domain.Span
	Addr    string // the addr-spec substring itself
	Phrase  string // raw display name preceding <addr>, if present
	Comment string // trailing (comment) text, if present
}

// Extract returns the ordered, non-overlapping email occurrences in a
// line, scanning left to right. Each addr-spec match is widened to an
// enclosing "phrase <addr>" form and a trailing "(comment)" when the
// surrounding text carries them. Zero matches yields nil.
func Extract(line string) []Candidate {
	locs := addrRegexp.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}

	cands := make([]Candidate, 0, len(locs))
	prevEnd := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		c := Candidate{
			Addr: line[start:end],
			Span: domain.Span{Start: start, End: end},
		}

		if start > prevEnd && line[start-1] == '<' {
			j := end
			for j < len(line) && line[j] == ' ' {
				j++
			}
			if j < len(line) && line[j] == '>' {
				c.Span.End = j + 1
				c.Span.Start = start - 1
				prefix := line[prevEnd : start-1]
				if m := phraseRegexp.FindStringSubmatchIndex(prefix); m != nil {
					c.Phrase = strings.TrimSpace(prefix[m[2]:m[3]])
					c.Span.Start = prevEnd + m[2]
				}
			}
		}

		tail := line[c.Span.End:]
		if m := commentRegexp.FindStringSubmatchIndex(tail); m != nil {
			// A comment that itself contains an address stays a
			// separate occurrence instead of being swallowed here.
			if !addrRegexp.MatchString(tail[m[2]:m[3]]) {
				c.Comment = tail[m[2]:m[3]]
				c.Span.End += m[1]
			}
		}

		prevEnd = c.Span.End
		cands = append(cands, c)
	}
	return cands
}
