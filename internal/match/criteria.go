// Package match decides whether lines and the emails they contain
// satisfy the configured criteria.
package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charliek/mailgrep/internal/constants"
	"github.com/charliek/mailgrep/internal/domain"
)

// fieldMatcher holds the compiled predicates for a single email field.
type fieldMatcher struct {
	field       domain.Field
	contains    string
	notContains string
	regex       *regexp.Regexp
}

// Matcher applies a Criteria to emails and lines. All regex patterns are
// compiled at construction time so that an invalid pattern surfaces
// before any input is read.
type Matcher struct {
	criteria domain.Criteria
	fields   []fieldMatcher
}

// NewMatcher creates a new matcher from a Criteria.
func NewMatcher(criteria domain.Criteria) (*Matcher, error) {
	m := &Matcher{criteria: criteria}

	for _, f := range domain.Fields() {
		fc := criteria.Fields[f]
		if fc.IsEmpty() {
			continue
		}

		fm := fieldMatcher{field: f}
		if criteria.IgnoreCase {
			fm.contains = strings.ToLower(fc.Contains)
			fm.notContains = strings.ToLower(fc.NotContains)
		} else {
			fm.contains = fc.Contains
			fm.notContains = fc.NotContains
		}

		if fc.Matches != "" {
			if len(fc.Matches) > constants.MaxPatternLength {
				return nil, fmt.Errorf("%w: %s-matches exceeds maximum length of %d characters",
					domain.ErrInvalidPattern, f, constants.MaxPatternLength)
			}
			pattern := fc.Matches
			if criteria.IgnoreCase {
				pattern = "(?i)" + pattern
			}
			re, err := regexp.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("%w: %s-matches: %v", domain.ErrInvalidPattern, f, err)
			}
			fm.regex = re
		}

		m.fields = append(m.fields, fm)
	}

	return m, nil
}

// EmailMatches returns true if the record satisfies every configured
// field predicate. Fields without criteria impose no constraint.
func (m *Matcher) EmailMatches(rec domain.Email) bool {
	for _, fm := range m.fields {
		value := rec.Field(fm.field)
		if m.criteria.IgnoreCase {
			value = strings.ToLower(value)
		}

		if fm.contains != "" && !strings.Contains(value, fm.contains) {
			return false
		}
		if fm.notContains != "" && strings.Contains(value, fm.notContains) {
			return false
		}
		if fm.regex != nil && !fm.regex.MatchString(rec.Field(fm.field)) {
			return false
		}
	}
	return true
}
