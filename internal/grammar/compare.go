package grammar

import "cmp"

// escCursor walks a component string yielding the normalized byte
// stream used for RFC 3986 §6.2 comparison. A percent-triplet whose
// octet is in the safe set yields the decoded octet; any other triplet
// yields its upper-hex form (§6.2.2.1); remaining bytes pass through,
// case-folded when fold is set. The input is never modified.
type escCursor struct {
	s    string
	i    int
	fold bool
	safe func(byte) bool
	buf  [2]byte
	bufn int
	bufi int
}

func (c *escCursor) next() (byte, bool) {
	if c.bufi < c.bufn {
		b := c.buf[c.bufi]
		c.bufi++
		return b, true
	}
	if c.i >= len(c.s) {
		return 0, false
	}

	b := c.s[c.i]
	if b == '%' && c.i+2 < len(c.s) && ishex(c.s[c.i+1]) && ishex(c.s[c.i+2]) {
		d := unhex(c.s[c.i+1])<<4 | unhex(c.s[c.i+2])
		c.i += 3
		if c.safe(d) {
			if c.fold && 'A' <= d && d <= 'Z' {
				d += 'a' - 'A'
			}
			return d, true
		}
		c.buf[0] = upperhex[d>>4]
		c.buf[1] = upperhex[d&15]
		c.bufn, c.bufi = 2, 0
		return '%', true
	}

	c.i++
	if c.fold && 'A' <= b && b <= 'Z' {
		b += 'a' - 'A'
	}
	return b, true
}

// CompareEscaped compares two component strings under percent-encoding
// equivalence: triplets whose octet is in the safe set compare decoded,
// all other triplets compare in their upper-hex form, and raw bytes
// compare directly. When fold is set, raw and decoded bytes compare
// case-insensitively. It reports
// -1, 0 or +1 and performs no allocation.
func CompareEscaped(a, b string, fold bool, safe func(byte) bool) int {
	ca := escCursor{s: a, fold: fold, safe: safe}
	cb := escCursor{s: b, fold: fold, safe: safe}
	for {
		ba, oka := ca.next()
		bb, okb := cb.next()
		switch {
		case !oka && !okb:
			return 0
		case !oka:
			return -1
		case !okb:
			return 1
		}
		if ba != bb {
			return cmp.Compare(ba, bb)
		}
	}
}

// EqualEscaped reports whether two component strings are equivalent
// under [CompareEscaped].
func EqualEscaped(a, b string, fold bool, safe func(byte) bool) bool {
	return CompareEscaped(a, b, fold, safe) == 0
}
