package uriref

import (
	"bytes"
	"net"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriref/internal/constraints"
	"github.com/ghettovoice/uriref/internal/errorutil"
	"github.com/ghettovoice/uriref/internal/grammar"
	"github.com/ghettovoice/uriref/internal/stringutils"
)

// HostKind tags the syntactic alternative a host literal matched.
type HostKind uint8

const (
	// HostRegName is a registered name, possibly percent-encoded.
	HostRegName HostKind = iota
	// HostIPv4 is a dotted-quad IPv4 literal.
	HostIPv4
	// HostIPv6 is a bracketed IPv6 literal, optionally zoned.
	HostIPv6
	// HostIPvFuture is a bracketed version-tagged future literal.
	HostIPvFuture
)

// String returns the ABNF rule name of the host kind.
func (k HostKind) String() string {
	switch k {
	case HostRegName:
		return "reg-name"
	case HostIPv4:
		return "IPv4address"
	case HostIPv6:
		return "IPv6address"
	case HostIPvFuture:
		return "IPvFuture"
	default:
		return "unknown"
	}
}

// Host is the authority host component as a tagged variant. The
// original literal is always preserved, including brackets for
// IP-literals; classification never rewrites it.
type Host struct {
	kind HostKind
	lit  string
	v4   [4]byte
	v6   [16]byte
	zone string
	ver  string
	data string
}

// RegName returns a registered-name Host. The name is stored verbatim;
// use [Host.IsValid] to check it against the reg-name rule.
func RegName(name string) Host {
	return Host{kind: HostRegName, lit: name}
}

// ParseHost classifies and validates a host literal from the given
// input s (string or []byte). Alternatives are tried in the order
// mandated by RFC 3986: bracketed IP-literal, then the strict
// IPv4address grammar, then reg-name. A dotted quad that fails the
// IPv4 grammar (e.g. "999.999.999.999") classifies as a reg-name.
func ParseHost[T constraints.Byteseq](s T) (Host, error) {
	str := string(s)

	if strings.HasPrefix(str, "[") {
		if !strings.HasSuffix(str, "]") || len(str) < 3 {
			return Host{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost,
				"unterminated IP-literal %q", stringutils.Ellipsis(str, errSubstrLen)))
		}
		interior := str[1 : len(str)-1]
		if interior[0] == 'v' || interior[0] == 'V' {
			ver, payload, ok := grammar.ParseIPvFuture(interior)
			if !ok {
				return Host{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost,
					"malformed IPvFuture literal %q", stringutils.Ellipsis(str, errSubstrLen)))
			}
			return Host{kind: HostIPvFuture, lit: str, ver: ver, data: payload}, nil
		}
		addr, zone, ok := grammar.ParseIPv6(interior)
		if !ok {
			return Host{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost,
				"malformed IPv6 literal %q", stringutils.Ellipsis(str, errSubstrLen)))
		}
		return Host{kind: HostIPv6, lit: str, v6: addr, zone: zone}, nil
	}

	if octets, ok := grammar.ParseIPv4(str); ok {
		return Host{kind: HostIPv4, lit: str, v4: octets}, nil
	}

	if err := validateComponent(ErrInvalidHost, str, grammar.IsRegNameChar); err != nil {
		return Host{}, errtrace.Wrap(err)
	}
	return Host{kind: HostRegName, lit: str}, nil
}

// Kind returns the syntactic alternative the host matched.
func (h Host) Kind() HostKind { return h.kind }

// String returns the host literal exactly as it was parsed,
// including brackets for IP-literals.
func (h Host) String() string { return h.lit }

// IP returns a copy of the address bytes for IPv4 and IPv6 hosts,
// nil for any other kind.
func (h Host) IP() net.IP {
	switch h.kind {
	case HostIPv4:
		return net.IP(h.v4[:]).To4()
	case HostIPv6:
		ip := make(net.IP, net.IPv6len)
		copy(ip, h.v6[:])
		return ip
	default:
		return nil
	}
}

// Zone returns the IPv6 zone identifier without its delimiter, or the
// empty string when absent or not an IPv6 host.
func (h Host) Zone() string { return h.zone }

// Version returns the IPvFuture version tag without the leading "v".
func (h Host) Version() string { return h.ver }

// Payload returns the IPvFuture payload after the version dot. The
// payload is opaque and stays unparsed.
func (h Host) Payload() string { return h.data }

// IsZero checks whether the host is the zero value. Note that an empty
// reg-name parsed from an empty authority host is also zero: the
// reg-name rule admits the empty string.
func (h Host) IsZero() bool { return h.kind == HostRegName && h.lit == "" }

// IsValid checks whether the literal still satisfies its own kind.
func (h Host) IsValid() bool {
	parsed, err := ParseHost(h.lit)
	return err == nil && parsed.kind == h.kind
}

// Equal compares this host with another, accepting Host and *Host.
// Registered names compare case-insensitively with percent-encoding
// equivalence; IP variants compare byte-identically, including the
// IPv6 zone.
func (h Host) Equal(val any) bool {
	var other Host
	switch v := val.(type) {
	case Host:
		other = v
	case *Host:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return h.Compare(other) == 0
}

// Compare totally orders hosts: by kind first, then within the kind.
func (h Host) Compare(other Host) int {
	if h.kind != other.kind {
		if h.kind < other.kind {
			return -1
		}
		return 1
	}
	switch h.kind {
	case HostRegName:
		return grammar.CompareEscaped(h.lit, other.lit, true, regNameSafe)
	case HostIPv4:
		return bytes.Compare(h.v4[:], other.v4[:])
	case HostIPv6:
		if c := bytes.Compare(h.v6[:], other.v6[:]); c != 0 {
			return c
		}
		return strings.Compare(h.zone, other.zone)
	default: // HostIPvFuture
		return strings.Compare(h.lit, other.lit)
	}
}
