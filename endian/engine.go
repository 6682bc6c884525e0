// Package endian supplies the two fixed byte-order engines the TokenStream
// wire format requires: big-endian for tokens, lengths, and integer
// payloads, and little-endian for float payloads (see package wire).
//
// Unlike a format with a caller-selectable byte order, TokenStream's byte
// order is part of the wire grammar itself and is never a runtime choice.
// This package exists anyway because encoding/binary.ByteOrder and
// AppendByteOrder are two separate interfaces; combining them into one
// EndianEngine lets callers append directly into a growing buffer without
// allocating a temporary array first.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface. binary.LittleEndian and binary.BigEndian both
// satisfy it without modification.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Big returns the engine used for tokens, lengths, and integer payloads.
func Big() EndianEngine { return binary.BigEndian }

// Little returns the engine used for float32/float64 payloads.
func Little() EndianEngine { return binary.LittleEndian }
