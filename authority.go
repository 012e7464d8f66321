package uriref

import (
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriref/internal/constraints"
	"github.com/ghettovoice/uriref/internal/errorutil"
	"github.com/ghettovoice/uriref/internal/grammar"
	"github.com/ghettovoice/uriref/internal/ioutil"
	"github.com/ghettovoice/uriref/internal/stringutils"
)

// UserInfo is the opaque userinfo subcomponent. Presence is tracked
// separately from the value: "u@h", "@h" and "h" are three distinct
// authorities.
type UserInfo struct {
	raw   string
	isSet bool
}

// User returns a present UserInfo holding the given raw value. The
// value may contain percent-encoded octets and is stored verbatim.
func User(raw string) UserInfo {
	return UserInfo{raw: raw, isSet: true}
}

// IsSet reports whether the userinfo was present, even when empty.
func (ui UserInfo) IsSet() bool { return ui.isSet }

// String returns the raw userinfo exactly as parsed or constructed.
func (ui UserInfo) String() string { return ui.raw }

// IsValid checks the userinfo against its character class. An absent
// userinfo is valid.
func (ui UserInfo) IsValid() bool {
	if !ui.isSet {
		return true
	}
	_, v := grammar.Validate(ui.raw, grammar.IsUserinfoChar)
	return v == grammar.OK
}

// Equal compares this userinfo with another, accepting UserInfo and
// *UserInfo. The value compares case-sensitively with percent-encoding
// equivalence; absence never equals presence.
func (ui UserInfo) Equal(val any) bool {
	switch v := val.(type) {
	case UserInfo:
		return ui.Compare(v) == 0
	case *UserInfo:
		return v != nil && ui.Compare(*v) == 0
	default:
		return false
	}
}

// Compare totally orders userinfo values; absent orders before present.
func (ui UserInfo) Compare(other UserInfo) int {
	if c := cmpBool(ui.isSet, other.isSet); c != 0 {
		return c
	}
	if !ui.isSet {
		return 0
	}
	return grammar.CompareEscaped(ui.raw, other.raw, false, userinfoSafe)
}

// Port is the authority port subcomponent. The literal digit string is
// preserved for fidelity; "h:80", "h:" and "h" are three distinct
// authorities.
type Port struct {
	digits string
	isSet  bool
}

// PortDigits returns a present Port holding the given literal digit
// string, which may be empty.
func PortDigits(digits string) Port {
	return Port{digits: digits, isSet: true}
}

// PortNumber returns a present Port for the given number.
func PortNumber(n uint16) Port {
	return Port{digits: strconv.Itoa(int(n)), isSet: true}
}

// IsSet reports whether the port delimiter was present, even when no
// digits followed it.
func (p Port) IsSet() bool { return p.isSet }

// Digits returns the literal digit string, leading zeros preserved.
func (p Port) Digits() string { return p.digits }

// String returns the literal digit string.
func (p Port) String() string { return p.digits }

// Number returns the numeric port value. It reports false when the
// port is absent, empty, or does not fit in uint64.
func (p Port) Number() (uint64, bool) {
	if !p.isSet || p.digits == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(p.digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsValid checks the port against the *DIGIT rule. An absent port is
// valid.
func (p Port) IsValid() bool {
	return !p.isSet || grammar.IsDigits(p.digits)
}

// Equal compares this port with another by numeric value, accepting
// Port and *Port. Absent, present-empty and zero are three distinct
// categories.
func (p Port) Equal(val any) bool {
	switch v := val.(type) {
	case Port:
		return p.Compare(v) == 0
	case *Port:
		return v != nil && p.Compare(*v) == 0
	default:
		return false
	}
}

// Compare totally orders ports: absent, then present-empty, then by
// numeric value; leading zeros are ignored for ordering only.
func (p Port) Compare(other Port) int {
	if c := cmpBool(p.isSet, other.isSet); c != 0 {
		return c
	}
	if !p.isSet {
		return 0
	}
	if c := cmpBool(p.digits != "", other.digits != ""); c != 0 {
		return c
	}
	a, b := strings.TrimLeft(p.digits, "0"), strings.TrimLeft(other.digits, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// Authority is the [userinfo "@"] host [":" port] component.
type Authority struct {
	user UserInfo
	host Host
	port Port
}

// ParseAuthority parses and validates an authority from the given
// input s (string or []byte), without its leading "//". Userinfo is
// split off at the last "@", the port at the last ":" outside IPv6
// brackets. The first failing subcomponent aborts the parse.
func ParseAuthority[T constraints.Byteseq](s T) (Authority, error) {
	var auth Authority
	str := string(s)

	hp := str
	if at := strings.LastIndexByte(str, '@'); at >= 0 {
		ui := str[:at]
		if err := validateComponent(ErrInvalidUserInfo, ui, grammar.IsUserinfoChar); err != nil {
			return Authority{}, errtrace.Wrap(err)
		}
		auth.user = User(ui)
		hp = str[at+1:]
	}

	hostText := hp
	if strings.HasPrefix(hp, "[") {
		rb := strings.IndexByte(hp, ']')
		if rb < 0 {
			return Authority{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost,
				"unterminated IP-literal %q", stringutils.Ellipsis(hp, errSubstrLen)))
		}
		hostText = hp[:rb+1]
		switch rest := hp[rb+1:]; {
		case rest == "":
		case rest[0] == ':':
			auth.port = PortDigits(rest[1:])
		default:
			return Authority{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost,
				"trailing %q after IP-literal", stringutils.Ellipsis(rest, errSubstrLen)))
		}
	} else if col := strings.LastIndexByte(hp, ':'); col >= 0 {
		hostText = hp[:col]
		auth.port = PortDigits(hp[col+1:])
	}

	host, err := ParseHost(hostText)
	if err != nil {
		return Authority{}, errtrace.Wrap(err)
	}
	auth.host = host

	if auth.port.isSet && !grammar.IsDigits(auth.port.digits) {
		return Authority{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPort,
			"%q", stringutils.Ellipsis(auth.port.digits, errSubstrLen)))
	}
	return auth, nil
}

// UserInfo returns the userinfo subcomponent.
func (a Authority) UserInfo() UserInfo { return a.user }

// Host returns the host subcomponent.
func (a Authority) Host() Host { return a.host }

// Port returns the port subcomponent.
func (a Authority) Port() Port { return a.port }

// String returns the textual authority form, [userinfo "@"] host [":" port].
func (a Authority) String() string {
	sb := stringutils.GetStringBuilder()
	defer stringutils.FreeStringBuilder(sb)
	a.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// RenderTo writes the authority to the provided writer.
func (a Authority) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if a.user.isSet {
		cw.WriteString(a.user.raw)
		cw.WriteString("@")
	}
	cw.WriteString(a.host.lit)
	if a.port.isSet {
		cw.WriteString(":")
		cw.WriteString(a.port.digits)
	}
	return errtrace.Wrap2(cw.Result())
}

// IsValid checks whether every present subcomponent is syntactically
// valid.
func (a Authority) IsValid() bool {
	return a.user.IsValid() && a.host.IsValid() && a.port.IsValid()
}

// IsZero checks whether the authority carries no information.
func (a Authority) IsZero() bool {
	return !a.user.isSet && a.host.IsZero() && !a.port.isSet
}

// Equal compares this authority with another, accepting Authority and
// *Authority.
func (a Authority) Equal(val any) bool {
	switch v := val.(type) {
	case Authority:
		return a.Compare(v) == 0
	case *Authority:
		return v != nil && a.Compare(*v) == 0
	default:
		return false
	}
}

// Compare totally orders authorities by userinfo, host, then port.
func (a Authority) Compare(other Authority) int {
	if c := a.user.Compare(other.user); c != 0 {
		return c
	}
	if c := a.host.Compare(other.host); c != 0 {
		return c
	}
	return a.port.Compare(other.port)
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
