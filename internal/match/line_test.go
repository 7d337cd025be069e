package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charliek/mailgrep/internal/domain"
)

func mustMatcher(t *testing.T, c domain.Criteria) *Matcher {
	t.Helper()
	m, err := NewMatcher(c)
	require.NoError(t, err)
	return m
}

func TestMatchLine_ZeroEmails(t *testing.T) {
	t.Run("rejected with default min of one", func(t *testing.T) {
		m := mustMatcher(t, domain.NewCriteria())
		ok, _ := m.MatchLine("nothing to see here")
		assert.False(t, ok)
	})

	t.Run("accepted when min is zero", func(t *testing.T) {
		c := domain.NewCriteria()
		c.MinEmails = 0
		m := mustMatcher(t, c)
		ok, spans := m.MatchLine("nothing to see here")
		assert.True(t, ok)
		assert.Empty(t, spans)
	})

	t.Run("accepted when lower bound is disabled", func(t *testing.T) {
		c := domain.NewCriteria()
		c.MinEmails = -1
		m := mustMatcher(t, c)
		ok, _ := m.MatchLine("nothing to see here")
		assert.True(t, ok)
	})

	t.Run("bounds gate even when field criteria are set", func(t *testing.T) {
		c := domain.NewCriteria()
		c.MinEmails = 0
		c.Fields[domain.FieldHost] = domain.FieldCriteria{Contains: "example.org"}
		m := mustMatcher(t, c)
		ok, _ := m.MatchLine("nothing to see here")
		assert.True(t, ok)
	})
}

func TestMatchLine_CountBounds(t *testing.T) {
	line := "Contact: alice@gmail.com, bob@example.org"

	t.Run("min two accepted", func(t *testing.T) {
		c := domain.NewCriteria()
		c.MinEmails = 2
		m := mustMatcher(t, c)
		ok, spans := m.MatchLine(line)
		assert.True(t, ok)
		assert.Len(t, spans, 2)
	})

	t.Run("min three rejected", func(t *testing.T) {
		c := domain.NewCriteria()
		c.MinEmails = 3
		m := mustMatcher(t, c)
		ok, _ := m.MatchLine(line)
		assert.False(t, ok)
	})

	t.Run("max one rejected", func(t *testing.T) {
		c := domain.NewCriteria()
		c.MaxEmails = 1
		m := mustMatcher(t, c)
		ok, _ := m.MatchLine(line)
		assert.False(t, ok)
	})

	t.Run("bounds apply before field criteria", func(t *testing.T) {
		c := domain.NewCriteria()
		c.MaxEmails = 1
		c.Fields[domain.FieldHost] = domain.FieldCriteria{Contains: "example.org"}
		m := mustMatcher(t, c)
		ok, _ := m.MatchLine(line)
		assert.False(t, ok)
	})
}

func TestMatchLine_ExistentialFieldCriteria(t *testing.T) {
	c := domain.NewCriteria()
	c.Fields[domain.FieldHost] = domain.FieldCriteria{Contains: "example.org"}

	t.Run("no email host matches", func(t *testing.T) {
		m := mustMatcher(t, c)
		ok, _ := m.MatchLine("alice@gmail.com only")
		assert.False(t, ok)
	})

	t.Run("at least one email host matches", func(t *testing.T) {
		m := mustMatcher(t, c)
		ok, spans := m.MatchLine("bob@example.org and carol@example.org")
		assert.True(t, ok)
		assert.Len(t, spans, 2)
	})

	t.Run("only the matching email is highlighted", func(t *testing.T) {
		m := mustMatcher(t, c)
		line := "alice@gmail.com then bob@example.org"
		ok, spans := m.MatchLine(line)
		require.True(t, ok)
		require.Len(t, spans, 1)
		assert.Equal(t, "bob@example.org", line[spans[0].Start:spans[0].End])
	})
}

func TestMatchLine_NoCriteriaHighlightsAllEmails(t *testing.T) {
	m := mustMatcher(t, domain.NewCriteria())
	line := "alice@gmail.com and bob@example.org"
	ok, spans := m.MatchLine(line)
	assert.True(t, ok)
	assert.Len(t, spans, 2)
}

func TestMatchLine_UnparseableEmailCountsTowardBounds(t *testing.T) {
	// a..b@c.com looks like an address but the parser rejects the
	// consecutive dots, leaving an empty record behind
	line := "ping a..b@c.com please"

	t.Run("counts against the upper bound", func(t *testing.T) {
		c := domain.NewCriteria()
		c.MinEmails = 0
		c.MaxEmails = 0
		m := mustMatcher(t, c)
		ok, _ := m.MatchLine(line)
		assert.False(t, ok)
	})

	t.Run("satisfies the lower bound without field criteria", func(t *testing.T) {
		m := mustMatcher(t, domain.NewCriteria())
		ok, spans := m.MatchLine(line)
		assert.True(t, ok)
		assert.Len(t, spans, 1)
	})

	t.Run("empty record fails field criteria", func(t *testing.T) {
		c := domain.NewCriteria()
		c.Fields[domain.FieldHost] = domain.FieldCriteria{Contains: "c.com"}
		m := mustMatcher(t, c)
		ok, _ := m.MatchLine(line)
		assert.False(t, ok)
	})
}

func TestMatchLine_NameCriterion(t *testing.T) {
	c := domain.NewCriteria()
	c.IgnoreCase = true
	c.Fields[domain.FieldName] = domain.FieldCriteria{Matches: "smith"}
	m := mustMatcher(t, c)

	ok, _ := m.MatchLine("Alice Smith <alice@example.org> wrote in")
	assert.True(t, ok)

	ok, _ = m.MatchLine("Bob Jones <bob@example.org> wrote in")
	assert.False(t, ok)
}

func TestMatchLine_CommentCriterion(t *testing.T) {
	c := domain.NewCriteria()
	c.Fields[domain.FieldComment] = domain.FieldCriteria{Contains: "work"}
	m := mustMatcher(t, c)

	ok, _ := m.MatchLine("john@example.net (at work)")
	assert.True(t, ok)

	ok, _ = m.MatchLine("john@example.net (at home)")
	assert.False(t, ok)
}
