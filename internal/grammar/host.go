package grammar

import (
	"net"
	"strings"

	"github.com/ghettovoice/uriref/internal/constraints"
)

// ParseIPv4 parses s against the strict IPv4address rule: exactly four
// dec-octets separated by dots, each octet in 0..=255 with no redundant
// leading zeros. Inputs that fail the rule (e.g. "999.999.999.999" or
// "01.2.3.4") are legal reg-names, not IPv4 literals.
func ParseIPv4[T constraints.Byteseq](s T) ([4]byte, bool) {
	var octets [4]byte
	str := string(s)
	for i := 0; i < 4; i++ {
		var part string
		if i < 3 {
			dot := strings.IndexByte(str, '.')
			if dot < 0 {
				return octets, false
			}
			part, str = str[:dot], str[dot+1:]
		} else {
			part = str
		}
		v, ok := parseDecOctet(part)
		if !ok {
			return octets, false
		}
		octets[i] = v
	}
	return octets, true
}

// parseDecOctet checks the dec-octet rule:
// DIGIT / %x31-39 DIGIT / "1" 2DIGIT / "2" %x30-34 DIGIT / "25" %x30-35.
func parseDecOctet(s string) (byte, bool) {
	switch len(s) {
	case 1:
		if !IsDigitChar(s[0]) {
			return 0, false
		}
		return s[0] - '0', true
	case 2:
		if s[0] < '1' || s[0] > '9' || !IsDigitChar(s[1]) {
			return 0, false
		}
		return (s[0]-'0')*10 + s[1] - '0', true
	case 3:
		if !IsDigitChar(s[0]) || !IsDigitChar(s[1]) || !IsDigitChar(s[2]) {
			return 0, false
		}
		v := int(s[0]-'0')*100 + int(s[1]-'0')*10 + int(s[2]-'0')
		if s[0] == '0' || v > 255 {
			return 0, false
		}
		return byte(v), true
	default:
		return 0, false
	}
}

// ParseIPv6 parses the interior of a bracketed IP-literal as an
// IPv6address with an optional zone identifier. The zone must be
// introduced by the "%25" delimiter of RFC 6874 (a bare "%" is
// malformed percent-encoding); the identifier that follows is
// 1*( unreserved / pct-encoded ) and is returned without the
// delimiter, percent-triplets kept verbatim.
func ParseIPv6[T constraints.Byteseq](s T) ([16]byte, string, bool) {
	var addr [16]byte
	str := string(s)

	var zone string
	if i := strings.IndexByte(str, '%'); i >= 0 {
		rest := str[i+1:]
		str = str[:i]
		if !strings.HasPrefix(rest, "25") {
			return addr, "", false
		}
		zone = rest[2:]
		if zone == "" {
			return addr, "", false
		}
		if _, v := Validate(zone, IsZoneChar); v != OK {
			return addr, "", false
		}
	}

	// The colon requirement keeps net.ParseIP from accepting a bare
	// dotted quad here; embedded IPv4 forms like "::ffff:1.2.3.4" pass.
	if !strings.Contains(str, ":") {
		return addr, "", false
	}
	ip := net.ParseIP(str)
	if ip == nil {
		return addr, "", false
	}
	copy(addr[:], ip.To16())
	return addr, zone, true
}

// ParseIPvFuture parses the interior of a bracketed IP-literal as an
// IPvFuture: "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" ).
// The returned version excludes the leading "v", the payload excludes
// the dot. The payload stays unparsed beyond its character class.
func ParseIPvFuture[T constraints.Byteseq](s T) (version, payload string, ok bool) {
	str := string(s)
	if len(str) < 4 || (str[0] != 'v' && str[0] != 'V') {
		return "", "", false
	}
	dot := strings.IndexByte(str, '.')
	if dot < 2 {
		return "", "", false
	}
	version = str[1:dot]
	for i := 0; i < len(version); i++ {
		if !IsHexChar(version[i]) {
			return "", "", false
		}
	}
	payload = str[dot+1:]
	if len(payload) == 0 {
		return "", "", false
	}
	for i := 0; i < len(payload); i++ {
		if !IsIPvFutureChar(payload[i]) {
			return "", "", false
		}
	}
	return version, payload, true
}
