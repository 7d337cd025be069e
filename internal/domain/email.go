package domain

// Field identifies one addressable part of an email occurrence.
type Field string

const (
	FieldAddress Field = "address"
	FieldUser    Field = "user"
	FieldHost    Field = "host"
	FieldName    Field = "name"
	FieldComment Field = "comment"
)

// Fields returns all email fields in a stable order.
func Fields() []Field {
	return []Field{FieldAddress, FieldUser, FieldHost, FieldName, FieldComment}
}

// Email is the structured form of one email occurrence found in a line.
// Any field may be empty; a failed parse yields the zero value.
type Email struct {
	User    string // local part, before the last "@"
	Host    string // domain part, after the last "@"
	Address string // full addr-spec, user@host
	Name    string // display name, if the occurrence carried one
	Comment string // trailing parenthesized comment, if any
}

// Field returns the value of the named field.
func (e Email) Field(f Field) string {
	switch f {
	case FieldAddress:
		return e.Address
	case FieldUser:
		return e.User
	case FieldHost:
		return e.Host
	case FieldName:
		return e.Name
	case FieldComment:
		return e.Comment
	}
	return ""
}

// Span marks a half-open byte range [Start, End) within a line.
type Span struct {
	Start int
	End   int
}
