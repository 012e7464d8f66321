package uriref

import "github.com/ghettovoice/uriref/internal/grammar"

// Per-component decoding-safe sets, derived from the component
// grammars of RFC 3986 sections 2.2 and 3. A percent-encoded octet is
// decoded during comparison only when decoding could not collide with
// a character that is reserved for that component; every reserved
// octet keeps its triplet form and compares upper-hexed per section
// 6.2.2.1. Each component's reserved set is its delimiters plus
// sub-delims, so today every safe set is the unreserved set; the table
// stays per-component so a wider set can diverge without touching the
// comparator.
var (
	userinfoSafe = grammar.IsUnreservedChar
	regNameSafe  = grammar.IsUnreservedChar
	pathSafe     = grammar.IsUnreservedChar
	querySafe    = grammar.IsUnreservedChar
	fragmentSafe = grammar.IsUnreservedChar
)

// Equal reports whether two references are equivalent under the
// RFC 3986 section 6.2 comparison rules: scheme and registered-name
// host compare case-insensitively, every other component
// case-sensitively with percent-encoding equivalence. Absence of an
// optional component never equals presence. Neither input is mutated.
func Equal(a, b *Reference) bool {
	return Compare(a, b) == 0
}

// Compare totally orders two references for use in ordered containers.
// It reports -1, 0 or +1, comparing scheme, authority (userinfo, host,
// port), path, query and fragment in that order; for each optional
// component, absence orders before presence. All percent-decoding is
// transient and scoped to the call.
func Compare(a, b *Reference) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if c := cmpBool(a.hasScheme, b.hasScheme); c != 0 {
		return c
	}
	if a.hasScheme {
		if c := a.scheme.Compare(b.scheme); c != 0 {
			return c
		}
	}

	if c := cmpBool(a.hasAuth, b.hasAuth); c != 0 {
		return c
	}
	if a.hasAuth {
		if c := a.auth.Compare(b.auth); c != 0 {
			return c
		}
	}

	if c := a.path.Compare(b.path); c != 0 {
		return c
	}
	if c := a.query.Compare(b.query); c != 0 {
		return c
	}
	return a.frag.Compare(b.frag)
}

// foldCmp orders two ASCII strings case-insensitively without
// allocating.
func foldCmp(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := foldByte(a[i]), foldByte(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) == len(b):
		return 0
	case len(a) < len(b):
		return -1
	default:
		return 1
	}
}

func foldByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
