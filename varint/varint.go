// Package varint implements the single variable-length unsigned integer
// encoding TokenStream uses uniformly for both tokens and chunk lengths,
// plus recognition of the 0xF8 list-escape prefix.
//
//	v < 0x80:     1 byte,  the value itself
//	v < 0x7800:   2 bytes, big-endian, 0x8000 | v
//	otherwise:    1 prefix byte 0xF7+n, then n big-endian bytes (2 <= n <= 8),
//	              the minimum-length encoding of v with leading zero bytes
//	              trimmed
//
// 0xF8 is reserved: it can never be produced by Encode (a 1-byte encoding
// >= 0x80 is impossible by construction), so package stream uses it to
// recognize the list-escape at the start of a chunk, where a token would
// otherwise begin.
package varint

import "github.com/scottkmaxwell/tokenstream/errs"

// ListEscape is the reserved first byte that introduces a list prefix at
// the start of a chunk (see package stream). It is never emitted by Encode.
const ListEscape = 0xF8

const (
	oneByteMax = 0x80   // values below this fit in one byte
	twoByteMax = 0x7800 // values below this fit in the two-byte form
)

// Len returns the number of bytes Encode would produce for v, without
// allocating.
func Len(v uint64) int {
	switch {
	case v < oneByteMax:
		return 1
	case v < twoByteMax:
		return 2
	default:
		return 1 + significantBytes(v)
	}
}

// significantBytes returns the minimum number of big-endian bytes (1..8)
// needed to represent v with no redundant leading zero byte.
func significantBytes(v uint64) int {
	n := 8
	for n > 1 && v>>((n-1)*8) == 0 {
		n--
	}

	return n
}

// Encode appends the varint encoding of v to dst and returns the extended
// slice.
func Encode(dst []byte, v uint64) []byte {
	switch {
	case v < oneByteMax:
		return append(dst, byte(v))
	case v < twoByteMax:
		return append(dst, byte(0x80|(v>>8)), byte(v))
	default:
		n := significantBytes(v)
		dst = append(dst, byte(0xF7+n))
		for i := n - 1; i >= 0; i-- {
			dst = append(dst, byte(v>>(uint(i)*8)))
		}

		return dst
	}
}

// IsListEscape reports whether b is the reserved list-escape prefix byte.
// Callers at a position where a list prefix may start must check this
// before calling Decode, since Decode itself treats 0xF8 as malformed.
func IsListEscape(b byte) bool { return b == ListEscape }

// Decode reads one varint from src, returning the decoded value and the
// number of bytes consumed. It returns (0, 0, err) on truncated or
// malformed input. A leading byte of 0xF8 is reported via
// errs.ErrMalformedVarint: callers at a position where a list prefix may
// start must check for ListEscape themselves before calling Decode.
func Decode(src []byte) (uint64, int, error) {
	if len(src) == 0 {
		return 0, 0, errs.ErrTruncated
	}

	b := src[0]
	switch {
	case b < oneByteMax:
		return uint64(b), 1, nil
	case b < ListEscape:
		if len(src) < 2 {
			return 0, 0, errs.ErrTruncated
		}

		return (uint64(b&0x7F) << 8) | uint64(src[1]), 2, nil
	case b == ListEscape:
		return 0, 0, errs.ErrMalformedVarint
	default:
		n := int(b - 0xF7)
		if len(src) < 1+n {
			return 0, 0, errs.ErrTruncated
		}

		var v uint64
		for i := 0; i < n; i++ {
			v = (v << 8) | uint64(src[1+i])
		}

		return v, 1 + n, nil
	}
}
