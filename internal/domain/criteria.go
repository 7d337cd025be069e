package domain

import "github.com/charliek/mailgrep/internal/constants"

// FieldCriteria holds the filters configured for a single email field.
// Unset entries impose no constraint.
type FieldCriteria struct {
	Contains    string // substring that must be present
	NotContains string // substring that must be absent
	Matches     string // regular expression the field must match
}

// IsEmpty returns true if no filters are set for the field.
func (fc FieldCriteria) IsEmpty() bool {
	return fc.Contains == "" && fc.NotContains == "" && fc.Matches == ""
}

// Criteria is the full matcher configuration built from flags, presets,
// or both. All configured filters must pass for an email to match.
type Criteria struct {
	MinEmails  int // negative disables the lower bound
	MaxEmails  int // negative disables the upper bound
	IgnoreCase bool
	Fields     map[Field]FieldCriteria
}

// NewCriteria returns a Criteria with the default count bounds and no
// field filters configured.
func NewCriteria() Criteria {
	return Criteria{
		MinEmails: constants.DefaultMinEmails,
		MaxEmails: constants.DefaultMaxEmails,
		Fields:    make(map[Field]FieldCriteria),
	}
}
