package uriref

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriref/internal/errorutil"
	"github.com/ghettovoice/uriref/internal/grammar"
)

// parseState enumerates the assembler states. Delimiters drive the
// transitions strictly left to right, each consumed at most once:
// scheme, then authority, then path, then query, then fragment.
type parseState uint8

const (
	stateSchemeOrPath parseState = iota
	stateAuthority
	statePath
	stateQuery
	stateFragment
	stateDone
)

// parseReference runs the assembler over s. On any component failure
// the whole parse fails atomically with that component's error; no
// partial value is ever returned.
func parseReference(s string) (*Reference, error) {
	var (
		r    Reference
		rest = s
		st   = stateSchemeOrPath
	)

	for st != stateDone {
		switch st {
		case stateSchemeOrPath:
			st = stateAuthority
			i := strings.IndexAny(rest, ":/?#")
			if i < 0 || rest[i] != ':' {
				break
			}
			if !grammar.IsScheme(rest[:i]) {
				// Not a scheme; the colon belongs to the first path
				// segment and the ambiguity invariant decides below.
				break
			}
			r.scheme, r.hasScheme = Scheme(rest[:i]), true
			rest = rest[i+1:]

		case stateAuthority:
			st = statePath
			if !strings.HasPrefix(rest, "//") {
				break
			}
			end := len(rest)
			if i := strings.IndexAny(rest[2:], "/?#"); i >= 0 {
				end = i + 2
			}
			auth, err := ParseAuthority(rest[2:end])
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			r.auth, r.hasAuth = auth, true
			rest = rest[end:]

		case statePath:
			st = stateQuery
			end := len(rest)
			if i := strings.IndexAny(rest, "?#"); i >= 0 {
				end = i
			}
			path, err := ParsePath(rest[:end])
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			r.path = path
			rest = rest[end:]

		case stateQuery:
			st = stateFragment
			if !strings.HasPrefix(rest, "?") {
				break
			}
			end := len(rest)
			if i := strings.IndexByte(rest, '#'); i >= 0 {
				end = i
			}
			query, err := ParseQuery(rest[1:end])
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			r.query = query
			rest = rest[end:]

		case stateFragment:
			st = stateDone
			if !strings.HasPrefix(rest, "#") {
				break
			}
			frag, err := ParseFragment(rest[1:])
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			r.frag = frag
			rest = ""
		}
	}

	if err := checkInvariants(r.hasScheme, r.hasAuth, r.path); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &r, nil
}

// checkInvariants enforces the cross-component rules shared by the
// parser and the builder: the authority-vs-path-shape rule of RFC 3986
// section 3.3 and the relative-reference first-segment colon rule.
func checkInvariants(hasScheme, hasAuth bool, path Path) error {
	if hasAuth {
		if path.Shape() == PathRootless {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrPathShapeConflict,
				"authority is present but path %q does not start with a slash", path.String()))
		}
		return nil
	}

	if path.rooted && len(path.segments) > 1 && path.segments[0] == "" {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrPathShapeConflict,
			"path %q starts with // without an authority", path.String()))
	}

	if !hasScheme && path.Shape() == PathRootless && strings.ContainsRune(path.segments[0], ':') {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrAmbiguousRelativeRef,
			"first segment %q contains an unescaped colon", path.segments[0]))
	}
	return nil
}
