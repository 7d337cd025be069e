package email

import (
	"strings"

	"github.com/emersion/go-message/mail"

	"github.com/charliek/mailgrep/internal/domain"
)

// Parse converts one extracted candidate into its structured form. It
// never fails: a candidate the address parser rejects yields the zero
// record, which still counts toward the min/max email bounds but cannot
// satisfy any configured field criteria.
func Parse(c Candidate) domain.Email {
	addr := parseAddress(reassemble(c))
	if addr == nil && c.Phrase != "" {
		// The display name may not be a valid RFC 5322 phrase even
		// though the addr-spec itself is fine.
		addr = parseAddress(c.Addr)
	}
	if addr == nil {
		return domain.Email{}
	}

	rec := domain.Email{
		Address: addr.Address,
		Name:    addr.Name,
		Comment: c.Comment,
	}
	if at := strings.LastIndex(rec.Address, "@"); at >= 0 {
		rec.User = rec.Address[:at]
		rec.Host = rec.Address[at+1:]
	}
	return rec
}

func reassemble(c Candidate) string {
	if c.Phrase == "" {
		return c.Addr
	}
	return c.Phrase + " <" + c.Addr + ">"
}

// parseAddress parses a single address through the mail header machinery,
// which also decodes RFC 2047 encoded display names.
func parseAddress(raw string) *mail.Address {
	var h mail.Header
	h.Set("From", raw)
	addrs, err := h.AddressList("From")
	if err != nil || len(addrs) == 0 {
		return nil
	}
	return addrs[0]
}
