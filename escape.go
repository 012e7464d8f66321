package uriref

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/uriref/internal/constraints"
	"github.com/ghettovoice/uriref/internal/errorutil"
	"github.com/ghettovoice/uriref/internal/grammar"
	"github.com/ghettovoice/uriref/internal/stringutils"
)

// PctDecode decodes every percent-encoded triplet in the given input s
// (string or []byte) into the octet it encodes. A triplet that is not
// "%" HEXDIG HEXDIG fails with [ErrInvalidPercentEncoding]; no other
// character restriction applies, the input is an opaque component
// value.
func PctDecode[T constraints.Byteseq](s T) (T, error) {
	if pos, v := grammar.Validate(s, anyOctet); v != grammar.OK {
		var zero T
		return zero, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPercentEncoding,
			"%q at position %d", stringutils.Ellipsis(string(s), errSubstrLen), pos))
	}
	return grammar.Unescape(s), nil
}

func anyOctet(byte) bool { return true }

// PctEncode returns s with every byte outside the unreserved set
// replaced by its percent-encoded triplet. Existing well-formed
// triplets are kept verbatim, so the call is idempotent.
func PctEncode[T constraints.Byteseq](s T) T {
	return grammar.Escape(s, nil)
}
