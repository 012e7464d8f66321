// Package grammar implements the character-level rules of RFC 3986:
// per-component character classes, the percent-encoding codec and the
// sub-grammars used to classify host literals.
//
// The package is purely computational and never mutates its input.
package grammar

import "github.com/ghettovoice/uriref/internal/constraints"

// Violation reports the outcome of a component scan.
type Violation uint8

const (
	// OK means the scanned input satisfies the character class.
	OK Violation = iota
	// BadChar means a raw character outside the class was found.
	BadChar
	// BadEscape means a '%' not followed by two hex digits was found.
	BadEscape
)

// Validate scans s against the allowed-character class. Characters that
// are part of a well-formed percent-triplet are accepted regardless of
// the class. It returns the first offending position together with the
// violation kind, or (0, OK).
func Validate[T constraints.Byteseq](s T, class func(byte) bool) (int, Violation) {
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			if i+2 >= len(s) || !ishex(s[i+1]) || !ishex(s[i+2]) {
				return i, BadEscape
			}
			i += 2
			continue
		}
		if !class(s[i]) {
			return i, BadChar
		}
	}
	return 0, OK
}

// IsScheme checks the scheme rule: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func IsScheme[T constraints.Byteseq](s T) bool {
	if len(s) == 0 || !IsAlphaChar(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !IsSchemeChar(s[i]) {
			return false
		}
	}
	return true
}

// IsDigits checks that s consists of decimal digits only.
// The empty string satisfies the rule (the port grammar is *DIGIT).
func IsDigits[T constraints.Byteseq](s T) bool {
	for i := 0; i < len(s); i++ {
		if !IsDigitChar(s[i]) {
			return false
		}
	}
	return true
}
