package uriref

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/uriref/internal/constraints"
	"github.com/ghettovoice/uriref/internal/grammar"
)

// Fragment is the opaque fragment component. It shares the query
// alphabet and, like the query, tracks presence separately from the
// value.
type Fragment struct {
	raw   string
	isSet bool
}

// NewFragment returns a present Fragment holding the given raw value,
// without its leading "#".
func NewFragment(raw string) Fragment {
	return Fragment{raw: raw, isSet: true}
}

// ParseFragment parses and validates a fragment from the given input s
// (string or []byte).
func ParseFragment[T constraints.Byteseq](s T) (Fragment, error) {
	if err := validateComponent(ErrInvalidFragment, string(s), grammar.IsFragmentChar); err != nil {
		return Fragment{}, errtrace.Wrap(err)
	}
	return NewFragment(string(s)), nil
}

// IsSet reports whether the fragment was present, even when empty.
func (f Fragment) IsSet() bool { return f.isSet }

// String returns the raw fragment exactly as parsed or constructed.
func (f Fragment) String() string { return f.raw }

// IsValid checks the fragment against its character class. An absent
// fragment is valid.
func (f Fragment) IsValid() bool {
	if !f.isSet {
		return true
	}
	_, v := grammar.Validate(f.raw, grammar.IsFragmentChar)
	return v == grammar.OK
}

// Equal compares this fragment with another, accepting Fragment and
// *Fragment. The value compares case-sensitively with percent-encoding
// equivalence; absence never equals presence.
func (f Fragment) Equal(val any) bool {
	switch v := val.(type) {
	case Fragment:
		return f.Compare(v) == 0
	case *Fragment:
		return v != nil && f.Compare(*v) == 0
	default:
		return false
	}
}

// Compare totally orders fragments; absent orders before present.
func (f Fragment) Compare(other Fragment) int {
	if c := cmpBool(f.isSet, other.isSet); c != 0 {
		return c
	}
	if !f.isSet {
		return 0
	}
	return grammar.CompareEscaped(f.raw, other.raw, false, fragmentSafe)
}
