// Package uriref parses, validates, represents and compares URIs and
// URI references conforming to RFC 3986.
//
// The package models the grammatical structure of a reference (scheme,
// authority, path, query, fragment) as immutable typed values and
// never applies implicit normalization: percent-encoding casing,
// dot-segments and scheme-specific forms are all preserved exactly as
// written, so rendering a parsed value reproduces the input byte for
// byte. Equivalence is a separate concern: [Equal] and [Compare]
// implement the section 6.2 comparison rules (case-insensitive scheme
// and registered-name host, percent-encoding-aware component
// comparison) over a transient decoding that is never written back.
//
// Values are safe for concurrent readers without synchronization;
// nothing is mutated after construction.
package uriref

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/uriref/internal/constraints"
	"github.com/ghettovoice/uriref/internal/errorutil"
)

// Parse parses a URI reference from the given input s (string or
// []byte). No trimming or case folding is applied; the empty input is
// the valid empty relative reference. On failure the error wraps the
// sentinel of the first component that failed validation.
func Parse[T constraints.Byteseq](s T) (*Reference, error) {
	return errtrace.Wrap2(parseReference(string(s)))
}

// URI is a guaranteed-absolute URI reference: a scheme is always
// present. It embeds [Reference] and shares its whole method set.
type URI struct {
	Reference
}

// ParseURI parses an absolute URI from the given input s (string or
// []byte). A relative reference fails with [ErrMissingScheme].
func ParseURI[T constraints.Byteseq](s T) (*URI, error) {
	ref, err := Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(NewURI(ref))
}

// NewURI creates an absolute URI from an existing reference. It
// returns [ErrMissingScheme] when the reference is relative.
func NewURI(ref *Reference) (*URI, error) {
	if !ref.IsAbsolute() {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMissingScheme, "%q", ref.String()))
	}
	return &URI{Reference: *ref}, nil
}

// Scheme returns the scheme component, always present for a URI.
func (u *URI) Scheme() Scheme {
	s, _ := u.Reference.Scheme()
	return s
}

// Equal compares this URI with another for RFC 3986 section 6.2
// equivalence, accepting URI, *URI, Reference and *Reference.
func (u *URI) Equal(val any) bool {
	if u == nil {
		return false
	}
	switch v := val.(type) {
	case URI:
		return u.Reference.Equal(&v.Reference)
	case *URI:
		return v != nil && u.Reference.Equal(&v.Reference)
	default:
		return u.Reference.Equal(val)
	}
}

// Clone returns a deep copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	return &URI{Reference: *u.Reference.Clone()}
}

// UnmarshalText implements [encoding.TextUnmarshaler], ensuring the
// decoded reference is absolute.
func (u *URI) UnmarshalText(text []byte) error {
	var ref Reference
	if err := ref.UnmarshalText(text); err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	u2, err := NewURI(&ref)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u2
	return nil
}
