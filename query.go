package uriref

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/uriref/internal/constraints"
	"github.com/ghettovoice/uriref/internal/grammar"
)

// Query is the opaque query component over the pchar / "/" / "?"
// alphabet. Presence is tracked separately from the value: "p?" and
// "p" are two distinct references.
type Query struct {
	raw   string
	isSet bool
}

// NewQuery returns a present Query holding the given raw value,
// without its leading "?".
func NewQuery(raw string) Query {
	return Query{raw: raw, isSet: true}
}

// ParseQuery parses and validates a query from the given input s
// (string or []byte).
func ParseQuery[T constraints.Byteseq](s T) (Query, error) {
	if err := validateComponent(ErrInvalidQuery, string(s), grammar.IsQueryChar); err != nil {
		return Query{}, errtrace.Wrap(err)
	}
	return NewQuery(string(s)), nil
}

// IsSet reports whether the query was present, even when empty.
func (q Query) IsSet() bool { return q.isSet }

// String returns the raw query exactly as parsed or constructed.
func (q Query) String() string { return q.raw }

// IsValid checks the query against its character class. An absent
// query is valid.
func (q Query) IsValid() bool {
	if !q.isSet {
		return true
	}
	_, v := grammar.Validate(q.raw, grammar.IsQueryChar)
	return v == grammar.OK
}

// Equal compares this query with another, accepting Query and *Query.
// The value compares case-sensitively with percent-encoding
// equivalence; absence never equals presence.
func (q Query) Equal(val any) bool {
	switch v := val.(type) {
	case Query:
		return q.Compare(v) == 0
	case *Query:
		return v != nil && q.Compare(*v) == 0
	default:
		return false
	}
}

// Compare totally orders queries; absent orders before present.
func (q Query) Compare(other Query) int {
	if c := cmpBool(q.isSet, other.isSet); c != 0 {
		return c
	}
	if !q.isSet {
		return 0
	}
	return grammar.CompareEscaped(q.raw, other.raw, false, querySafe)
}
