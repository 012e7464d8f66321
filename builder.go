package uriref

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriref/internal/errorutil"
	"github.com/ghettovoice/uriref/internal/grammar"
)

// Builder assembles a [Reference] component by component. Setters
// accumulate raw component text without validation and may be chained;
// [Builder.Build] then runs exactly the parser's validators and
// cross-component invariants, so a builder can never produce a value
// that [Parse] would reject. The zero Builder builds the empty
// relative reference.
type Builder struct {
	scheme    string
	hasScheme bool
	user      string
	hasUser   bool
	host      string
	hasHost   bool
	port      string
	hasPort   bool
	path      string
	query     string
	hasQuery  bool
	frag      string
	hasFrag   bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return &Builder{} }

// NewBuilderFrom returns a builder pre-populated with the components
// of an existing reference, for deriving a modified copy.
func NewBuilderFrom(ref *Reference) *Builder {
	b := NewBuilder()
	if ref == nil {
		return b
	}
	if ref.hasScheme {
		b.SetScheme(string(ref.scheme))
	}
	if ref.hasAuth {
		if ref.auth.user.isSet {
			b.SetUserInfo(ref.auth.user.raw)
		}
		b.SetHost(ref.auth.host.lit)
		if ref.auth.port.isSet {
			b.SetPortDigits(ref.auth.port.digits)
		}
	}
	b.SetPath(ref.path.String())
	if ref.query.isSet {
		b.SetQuery(ref.query.raw)
	}
	if ref.frag.isSet {
		b.SetFragment(ref.frag.raw)
	}
	return b
}

// SetScheme sets the scheme component.
func (b *Builder) SetScheme(scheme string) *Builder {
	b.scheme, b.hasScheme = scheme, true
	return b
}

// UnsetScheme removes the scheme component.
func (b *Builder) UnsetScheme() *Builder {
	b.scheme, b.hasScheme = "", false
	return b
}

// SetUserInfo sets the userinfo subcomponent. The value may contain
// percent-encoded octets and is kept verbatim. A host must also be set
// for the build to succeed.
func (b *Builder) SetUserInfo(raw string) *Builder {
	b.user, b.hasUser = raw, true
	return b
}

// UnsetUserInfo removes the userinfo subcomponent.
func (b *Builder) UnsetUserInfo() *Builder {
	b.user, b.hasUser = "", false
	return b
}

// SetHost sets the host subcomponent from its textual form: a
// registered name, an IPv4 literal, or a bracketed IP-literal. Setting
// a host makes the authority present; the empty string is the valid
// empty host.
func (b *Builder) SetHost(host string) *Builder {
	b.host, b.hasHost = host, true
	return b
}

// UnsetHost removes the host subcomponent and with it the authority.
func (b *Builder) UnsetHost() *Builder {
	b.host, b.hasHost = "", false
	return b
}

// SetPortDigits sets the port subcomponent from its literal digit
// string, which may be empty and may carry leading zeros. A host must
// also be set for the build to succeed.
func (b *Builder) SetPortDigits(digits string) *Builder {
	b.port, b.hasPort = digits, true
	return b
}

// SetPortNumber sets the port subcomponent from a number.
func (b *Builder) SetPortNumber(n uint16) *Builder {
	return b.SetPortDigits(strconv.Itoa(int(n)))
}

// UnsetPort removes the port subcomponent.
func (b *Builder) UnsetPort() *Builder {
	b.port, b.hasPort = "", false
	return b
}

// SetPath sets the path component from its raw textual form, slashes
// and percent-encoding included.
func (b *Builder) SetPath(raw string) *Builder {
	b.path = raw
	return b
}

// AppendSegment appends one segment to the accumulated path, inserting
// the "/" separator when the path is non-empty. Appending to an empty
// path yields a rootless path; call SetPath("/") first for an absolute
// one.
func (b *Builder) AppendSegment(seg string) *Builder {
	switch {
	case b.path == "":
		b.path = seg
	case b.path == "/":
		b.path += seg
	default:
		b.path += "/" + seg
	}
	return b
}

// SetQuery sets the query component, without its leading "?".
func (b *Builder) SetQuery(raw string) *Builder {
	b.query, b.hasQuery = raw, true
	return b
}

// UnsetQuery removes the query component.
func (b *Builder) UnsetQuery() *Builder {
	b.query, b.hasQuery = "", false
	return b
}

// SetFragment sets the fragment component, without its leading "#".
func (b *Builder) SetFragment(raw string) *Builder {
	b.frag, b.hasFrag = raw, true
	return b
}

// UnsetFragment removes the fragment component.
func (b *Builder) UnsetFragment() *Builder {
	b.frag, b.hasFrag = "", false
	return b
}

// Build validates the accumulated components and assembles the
// reference. It fails with the same sentinel the parser would report
// for the first invalid component, and additionally with
// [ErrInvalidHost] when userinfo or port are set without a host. The
// builder itself is left untouched and may be reused.
func (b *Builder) Build() (*Reference, error) {
	var r Reference

	if b.hasScheme {
		scheme, err := ParseScheme(b.scheme)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		r.scheme, r.hasScheme = scheme, true
	}

	if !b.hasHost && (b.hasUser || b.hasPort) {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost,
			"userinfo or port set without a host"))
	}
	if b.hasHost {
		var auth Authority
		if b.hasUser {
			if err := validateComponent(ErrInvalidUserInfo, b.user, grammar.IsUserinfoChar); err != nil {
				return nil, errtrace.Wrap(err)
			}
			auth.user = User(b.user)
		}
		host, err := ParseHost(b.host)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		auth.host = host
		if b.hasPort {
			if !grammar.IsDigits(b.port) {
				return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPort, "%q", b.port))
			}
			auth.port = PortDigits(b.port)
		}
		r.auth, r.hasAuth = auth, true
	}

	path, err := ParsePath(b.path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	r.path = path

	if b.hasQuery {
		query, err := ParseQuery(b.query)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		r.query = query
	}
	if b.hasFrag {
		frag, err := ParseFragment(b.frag)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		r.frag = frag
	}

	if err := checkInvariants(r.hasScheme, r.hasAuth, r.path); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &r, nil
}

// BuildURI builds the reference and requires it to be absolute.
func (b *Builder) BuildURI() (*URI, error) {
	ref, err := b.Build()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(NewURI(ref))
}
