package uriref

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/uriref/internal/constraints"
	"github.com/ghettovoice/uriref/internal/errorutil"
	"github.com/ghettovoice/uriref/internal/grammar"
	"github.com/ghettovoice/uriref/internal/stringutils"
)

// Scheme is a URI scheme token: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
// The token is stored verbatim, case preserved, and compared
// case-insensitively.
type Scheme string

// ParseScheme parses and validates a scheme token from the given input
// s (string or []byte).
func ParseScheme[T constraints.Byteseq](s T) (Scheme, error) {
	if !grammar.IsScheme(s) {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidScheme, "%q", stringutils.Ellipsis(string(s), errSubstrLen)))
	}
	return Scheme(s), nil
}

// String returns the scheme exactly as it was parsed or constructed.
func (s Scheme) String() string { return string(s) }

// IsValid checks whether the scheme is syntactically valid.
func (s Scheme) IsValid() bool { return grammar.IsScheme(string(s)) }

// Equal compares this scheme with another case-insensitively,
// accepting Scheme and *Scheme.
func (s Scheme) Equal(val any) bool {
	switch v := val.(type) {
	case Scheme:
		return stringutils.EqFold(s, v)
	case *Scheme:
		return v != nil && stringutils.EqFold(s, *v)
	default:
		return false
	}
}

// Compare orders two schemes case-insensitively.
func (s Scheme) Compare(other Scheme) int {
	return foldCmp(string(s), string(other))
}
