package uriref

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriref/internal/ioutil"
	"github.com/ghettovoice/uriref/internal/stringutils"
)

// Reference is a parsed URI reference: an optional scheme, an optional
// authority, a path and optional query and fragment components. Values
// are produced by [Parse] or [Builder.Build] and are immutable
// afterwards; every component literal is preserved verbatim, so
// rendering reproduces the original text byte for byte.
type Reference struct {
	scheme    Scheme
	hasScheme bool
	auth      Authority
	hasAuth   bool
	path      Path
	query     Query
	frag      Fragment
}

// Scheme returns the scheme component and whether it is present.
func (r *Reference) Scheme() (Scheme, bool) {
	if r == nil {
		return "", false
	}
	return r.scheme, r.hasScheme
}

// Authority returns the authority component and whether it is present.
func (r *Reference) Authority() (Authority, bool) {
	if r == nil {
		return Authority{}, false
	}
	return r.auth, r.hasAuth
}

// Path returns the path component. A path is always present, though it
// may be empty.
func (r *Reference) Path() Path {
	if r == nil {
		return Path{}
	}
	return r.path
}

// Query returns the query component; check [Query.IsSet] for presence.
func (r *Reference) Query() Query {
	if r == nil {
		return Query{}
	}
	return r.query
}

// Fragment returns the fragment component; check [Fragment.IsSet] for
// presence.
func (r *Reference) Fragment() Fragment {
	if r == nil {
		return Fragment{}
	}
	return r.frag
}

// IsAbsolute reports whether the reference carries a scheme.
func (r *Reference) IsAbsolute() bool { return r != nil && r.hasScheme }

// IsRelative reports whether the reference lacks a scheme.
func (r *Reference) IsRelative() bool { return !r.IsAbsolute() }

// RenderTo writes the reference to the provided writer in its original
// component-joined textual form.
func (r *Reference) RenderTo(w io.Writer) (num int, err error) {
	if r == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if r.hasScheme {
		cw.WriteString(string(r.scheme))
		cw.WriteString(":")
	}
	if r.hasAuth {
		cw.WriteString("//")
		cw.Call(func(w io.Writer) (int, error) {
			return errtrace.Wrap2(r.auth.RenderTo(w))
		})
	}
	cw.WriteString(r.path.String())
	if r.query.isSet {
		cw.WriteString("?")
		cw.WriteString(r.query.raw)
	}
	if r.frag.isSet {
		cw.WriteString("#")
		cw.WriteString(r.frag.raw)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the reference.
func (r *Reference) Render() string {
	if r == nil {
		return ""
	}
	sb := stringutils.GetStringBuilder()
	defer stringutils.FreeStringBuilder(sb)
	r.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the reference.
func (r *Reference) String() string {
	return r.Render()
}

// Format implements fmt.Formatter for custom formatting of the reference.
func (r *Reference) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			r.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, r.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(r.String()))
		return
	default:
		type hideMethods Reference
		type Reference hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Reference)(r))
		return
	}
}

// Clone returns a deep copy of the reference.
func (r *Reference) Clone() *Reference {
	if r == nil {
		return nil
	}
	r2 := *r
	r2.path = r.path.Clone()
	return &r2
}

// IsValid checks whether every component is syntactically valid and
// the cross-component invariants hold.
func (r *Reference) IsValid() bool {
	if r == nil {
		return false
	}
	if r.hasScheme && !r.scheme.IsValid() {
		return false
	}
	if r.hasAuth && !r.auth.IsValid() {
		return false
	}
	if !r.path.IsValid() || !r.query.IsValid() || !r.frag.IsValid() {
		return false
	}
	return checkInvariants(r.hasScheme, r.hasAuth, r.path) == nil
}

// IsZero checks whether the reference is the empty relative reference.
func (r *Reference) IsZero() bool {
	return r == nil || !r.hasScheme && !r.hasAuth && r.path.IsZero() && !r.query.isSet && !r.frag.isSet
}

// Equal compares this reference with another for RFC 3986 section 6.2
// equivalence, accepting Reference and *Reference. Neither value is
// mutated or re-encoded; all percent-decoding is transient.
func (r *Reference) Equal(val any) bool {
	var other *Reference
	switch v := val.(type) {
	case Reference:
		other = &v
	case *Reference:
		other = v
	default:
		return false
	}
	return Compare(r, other) == 0
}

// MarshalText implements [encoding.TextMarshaler].
func (r *Reference) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (r *Reference) UnmarshalText(text []byte) error {
	r2, err := Parse(text)
	if err != nil {
		*r = Reference{}
		return errtrace.Wrap(err)
	}
	*r = *r2
	return nil
}
