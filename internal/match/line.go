package match

import (
	"github.com/charliek/mailgrep/internal/domain"
	"github.com/charliek/mailgrep/internal/email"
)

// MatchLine decides whether a line passes. The count bounds apply to the
// number of email occurrences found; a line with none passes on the
// bounds alone. Otherwise at least one parsed occurrence must satisfy
// every configured field criterion. The returned spans cover the
// occurrences that matched, for highlighting.
func (m *Matcher) MatchLine(text string) (bool, []domain.Span) {
	cands := email.Extract(text)
	n := len(cands)

	if m.criteria.MinEmails >= 0 && n < m.criteria.MinEmails {
		return false, nil
	}
	if m.criteria.MaxEmails >= 0 && n > m.criteria.MaxEmails {
		return false, nil
	}
	if n == 0 {
		return true, nil
	}

	var spans []domain.Span
	for _, c := range cands {
		if m.EmailMatches(email.Parse(c)) {
			spans = append(spans, c.Span)
		}
	}
	return len(spans) > 0, spans
}
