package grammar

import (
	"bytes"

	"github.com/ghettovoice/uriref/internal/constraints"
)

// Unescape decodes each well-formed "% HEXDIG HEXDIG" triplet in s into
// the octet it encodes. Malformed triplets are copied through verbatim;
// callers that need strict checking run [Validate] first.
func Unescape[T constraints.Byteseq](s T) T {
	var i int
	for i = 0; i < len(s); i++ {
		if s[i] == '%' {
			break
		}
	}
	if i == len(s) {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	b.WriteString(string(s[:i]))
	for ; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Escape replaces each char matched by the shouldEscape callback with
// its "% HEXDIG HEXDIG" form. Existing well-formed triplets are kept
// as-is. A nil callback escapes everything outside the unreserved set.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsUnreservedChar(c) }
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			b.WriteByte(s[i+2])
			i += 2
		case shouldEscape(s[i]):
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
