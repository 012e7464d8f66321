package uriref

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/uriref/internal/errorutil"
	"github.com/ghettovoice/uriref/internal/grammar"
	"github.com/ghettovoice/uriref/internal/stringutils"
)

// Error is the type of all sentinel errors reported by this package.
type Error = errorutil.Error

// Parse error taxonomy. Every parse failure wraps exactly one
// component sentinel, plus [ErrInvalidPercentEncoding] when the
// component failed on a malformed triplet; match with [errors.Is].
const (
	ErrInvalidScheme          Error = "invalid scheme"
	ErrInvalidUserInfo        Error = "invalid userinfo"
	ErrInvalidHost            Error = "invalid host"
	ErrInvalidPort            Error = "invalid port"
	ErrInvalidPath            Error = "invalid path"
	ErrInvalidQuery           Error = "invalid query"
	ErrInvalidFragment        Error = "invalid fragment"
	ErrInvalidPercentEncoding Error = "invalid percent-encoding"

	// ErrPathShapeConflict reports a path that starts with "//" while
	// the authority is absent, or a rootless path while the authority
	// is present.
	ErrPathShapeConflict Error = "authority and path shape conflict"

	// ErrAmbiguousRelativeRef reports an unescaped ":" in the first
	// path segment of a reference that has neither scheme nor
	// authority, which would collide with scheme syntax.
	ErrAmbiguousRelativeRef Error = "ambiguous relative reference first segment"

	// ErrMissingScheme is returned when an absolute URI is required
	// but the input is a relative reference.
	ErrMissingScheme Error = "missing scheme"
)

const errSubstrLen = 32

// newComponentErr wraps the component sentinel around the grammar
// violation found at pos, carrying the offending substring.
func newComponentErr(kind Error, s string, pos int, v grammar.Violation) error {
	if v == grammar.BadEscape {
		return errtrace.Wrap(errorutil.NewWrapperError(kind,
			errorutil.NewWrapperError(ErrInvalidPercentEncoding, "%q at position %d", stringutils.Ellipsis(s, errSubstrLen), pos)))
	}
	return errtrace.Wrap(errorutil.NewWrapperError(kind,
		"character %q in %q at position %d", s[pos], stringutils.Ellipsis(s, errSubstrLen), pos))
}

// validateComponent runs the character-class scan shared by the parser
// and the builder.
func validateComponent(kind Error, s string, class func(byte) bool) error {
	if pos, v := grammar.Validate(s, class); v != grammar.OK {
		return newComponentErr(kind, s, pos, v) //errtrace:skip
	}
	return nil
}
