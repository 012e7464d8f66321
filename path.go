package uriref

import (
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriref/internal/constraints"
	"github.com/ghettovoice/uriref/internal/grammar"
)

// PathShape tags the overall form of a path.
type PathShape uint8

const (
	// PathEmpty is the zero-length path.
	PathEmpty PathShape = iota
	// PathAbsolute is a path that leads with "/".
	PathAbsolute
	// PathRootless is a non-empty path without a leading "/".
	PathRootless
)

// String returns a short name for the path shape.
func (s PathShape) String() string {
	switch s {
	case PathEmpty:
		return "empty"
	case PathAbsolute:
		return "absolute"
	default:
		return "rootless"
	}
}

// Path is an ordered sequence of segments. Empty segments produced by
// adjacent or trailing slashes are preserved verbatim; nothing is ever
// collapsed or reordered.
type Path struct {
	segments []string
	rooted   bool
}

// ParsePath parses and validates a path from the given input s
// (string or []byte). Segments are split on unescaped "/" and each is
// checked against the pchar rule.
func ParsePath[T constraints.Byteseq](s T) (Path, error) {
	str := string(s)
	if str == "" {
		return Path{}, nil
	}

	var p Path
	if str[0] == '/' {
		p.rooted = true
		str = str[1:]
	}
	p.segments = strings.Split(str, "/")
	for _, seg := range p.segments {
		if err := validateComponent(ErrInvalidPath, seg, grammar.IsPcharChar); err != nil {
			return Path{}, errtrace.Wrap(err)
		}
	}
	return p, nil
}

// Shape returns the form tag of the path.
func (p Path) Shape() PathShape {
	switch {
	case p.rooted:
		return PathAbsolute
	case len(p.segments) == 0:
		return PathEmpty
	default:
		return PathRootless
	}
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segments) }

// Segment returns the i-th segment verbatim.
func (p Path) Segment(i int) string { return p.segments[i] }

// Segments returns a copy of the segment sequence.
func (p Path) Segments() []string { return slices.Clone(p.segments) }

// String joins the segments back into the exact textual path.
func (p Path) String() string {
	joined := strings.Join(p.segments, "/")
	if p.rooted {
		return "/" + joined
	}
	return joined
}

// IsValid checks every segment against the pchar rule.
func (p Path) IsValid() bool {
	for _, seg := range p.segments {
		if _, v := grammar.Validate(seg, grammar.IsPcharChar); v != grammar.OK {
			return false
		}
	}
	return true
}

// IsZero checks whether the path is empty.
func (p Path) IsZero() bool { return !p.rooted && len(p.segments) == 0 }

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	p.segments = slices.Clone(p.segments)
	return p
}

// Equal compares this path with another, accepting Path and *Path.
// Segments compare case-sensitively with percent-encoding equivalence;
// a percent-encoded slash stays a segment character and never equals
// the separator.
func (p Path) Equal(val any) bool {
	switch v := val.(type) {
	case Path:
		return p.Compare(v) == 0
	case *Path:
		return v != nil && p.Compare(*v) == 0
	default:
		return false
	}
}

// Compare totally orders paths: by shape, then segment-by-segment,
// then by segment count.
func (p Path) Compare(other Path) int {
	if p.Shape() != other.Shape() {
		if p.Shape() < other.Shape() {
			return -1
		}
		return 1
	}
	for i := 0; i < len(p.segments) && i < len(other.segments); i++ {
		if c := grammar.CompareEscaped(p.segments[i], other.segments[i], false, pathSafe); c != 0 {
			return c
		}
	}
	switch {
	case len(p.segments) == len(other.segments):
		return 0
	case len(p.segments) < len(other.segments):
		return -1
	default:
		return 1
	}
}
