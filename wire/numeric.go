// Package wire implements TokenStream's numeric codec (spec §4.2): integers
// in big-endian order with redundant leading bytes trimmed (leading 0x00 for
// unsigned and non-negative signed values, leading 0xFF for negative signed
// values, stopping one byte before the sign bit of the remaining
// most-significant byte would flip meaning); floats in their natural
// little-endian IEEE-754 byte order with redundant trailing zero bytes
// trimmed; booleans as a single 0x01 byte or an empty payload; strings as
// raw UTF-8 bytes with no terminator, the chunk length carrying the byte
// count.
//
// Every Append* function appends a chunk payload (not a chunk) to dst and
// returns the extended slice; every Decode*/Extend* function interprets a
// chunk payload already isolated by package stream. This split mirrors the
// teacher's NumericRawEncoder.Write/Bytes vs. decoder All/At split: the
// payload shape is this package's concern, framing is stream's.
package wire

import (
	"math"

	"github.com/scottkmaxwell/tokenstream/endian"
)

// AppendUint appends the trimmed big-endian payload for an unsigned value.
// A zero value produces a zero-length payload.
func AppendUint(dst []byte, v uint64) []byte {
	n := significantBytesUnsigned(v)
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(v>>(uint(i)*8)))
	}

	return dst
}

func significantBytesUnsigned(v uint64) int {
	n := 8
	for n > 0 && v>>(uint(n-1)*8) == 0 {
		n--
	}

	return n
}

// ExtendUint decodes an unsigned integer from a chunk payload, zero-padding
// on the left (the high end) to fill the destination width. A zero-length
// payload decodes to 0.
func ExtendUint(payload []byte) uint64 {
	var v uint64
	for _, b := range payload {
		v = (v << 8) | uint64(b)
	}

	return v
}

// AppendInt appends the trimmed big-endian two's-complement payload for a
// signed value: leading 0x00 bytes are stripped for v >= 0, leading 0xFF
// bytes for v < 0, stopping one byte short of flipping the remaining sign
// bit. A zero value produces a zero-length payload.
func AppendInt(dst []byte, v int64) []byte {
	if v == 0 {
		return dst
	}

	var full [8]byte
	endian.Big().PutUint64(full[:], uint64(v))

	negative := v < 0
	fill := byte(0x00)
	if negative {
		fill = 0xFF
	}

	i := 0
	for i < 7 && full[i] == fill {
		i++
	}

	if negative {
		if full[i]&0x80 == 0 {
			i--
		}
	} else if full[i]&0x80 != 0 {
		i--
	}

	return append(dst, full[i:]...)
}

// ExtendInt decodes a signed integer from a chunk payload, sign-extending on
// the left to fill the destination width. A zero-length payload decodes to
// 0.
func ExtendInt(payload []byte) int64 {
	if len(payload) == 0 {
		return 0
	}

	fill := byte(0x00)
	if payload[0]&0x80 != 0 {
		fill = 0xFF
	}

	var full [8]byte
	for i := range full {
		full[i] = fill
	}
	copy(full[8-len(payload):], payload)

	return int64(endian.Big().Uint64(full[:]))
}

// AppendFloat64 appends the little-endian IEEE-754 payload for v with
// redundant trailing (high byte-index) zero bytes trimmed.
func AppendFloat64(dst []byte, v float64) []byte {
	var full [8]byte
	endian.Little().PutUint64(full[:], math.Float64bits(v))

	n := len(full)
	for n > 0 && full[n-1] == 0 {
		n--
	}

	return append(dst, full[:n]...)
}

// ExtendFloat64 decodes a float64 from a chunk payload, zero-filling any
// missing trailing bytes.
func ExtendFloat64(payload []byte) float64 {
	var full [8]byte
	copy(full[:], payload)

	return math.Float64frombits(endian.Little().Uint64(full[:]))
}

// AppendFloat32 appends the little-endian IEEE-754 payload for v with
// redundant trailing zero bytes trimmed.
func AppendFloat32(dst []byte, v float32) []byte {
	var full [4]byte
	endian.Little().PutUint32(full[:], math.Float32bits(v))

	n := len(full)
	for n > 0 && full[n-1] == 0 {
		n--
	}

	return append(dst, full[:n]...)
}

// ExtendFloat32 decodes a float32 from a chunk payload, zero-filling any
// missing trailing bytes.
func ExtendFloat32(payload []byte) float32 {
	var full [4]byte
	copy(full[:], payload)

	return math.Float32frombits(endian.Little().Uint32(full[:]))
}

// AppendBool appends the payload for a boolean: a single 0x01 byte for
// true, or nothing for false (false, like the integer zero value, is
// represented by chunk absence under trim-defaults and by an explicit
// zero-length payload otherwise).
func AppendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 0x01)
	}

	return dst
}

// ExtendBool decodes a boolean from a chunk payload: any payload containing
// at least one nonzero byte is true.
func ExtendBool(payload []byte) bool {
	for _, b := range payload {
		if b != 0 {
			return true
		}
	}

	return false
}

// AppendString appends s's raw UTF-8 bytes with no terminator; the chunk
// length already carries the byte count. Scenario A's worked example
// shows a trailing NUL byte, but that is the calling C-string
// convention's own terminator character embedded in the *value*, not
// something this codec adds - see the string encoding note in
// DESIGN.md.
func AppendString(dst []byte, s string) []byte {
	return append(dst, s...)
}

// ExtendString decodes a string from a chunk payload. The returned string
// shares no memory with payload.
func ExtendString(payload []byte) string {
	return string(payload)
}
