// Package tokenstream provides convenient top-level wrappers around the
// stream, schema, and archive packages, simplifying the most common use
// case: encode a Go struct to a token stream and back.
//
// # Core Features
//
//   - Self-describing (token, length, data) chunks: unrecognized fields are
//     skipped by readers that don't know them, forward- and
//     backward-compatible by construction
//   - Static schema binding (schema.Map[T]) for compile-time struct layouts
//   - Dynamic runtime records (record.Record) for schemas assembled at
//     runtime
//   - Optional whole-stream compression and checksumming (archive), layered
//     strictly outside the wire grammar
//
// # Basic Usage
//
// Describing a struct's wire layout and round-tripping it:
//
//	type Point struct {
//	    X, Y uint64
//	}
//
//	pointSchema, _ := schema.NewMap[Point](
//	    schema.Uint64Field(0x00, func(p *Point) *uint64 { return &p.X }, 0),
//	    schema.Uint64Field(0x01, func(p *Point) *uint64 { return &p.Y }, 0),
//	)
//
//	data, _ := tokenstream.Marshal(pointSchema, &Point{X: 3, Y: 4})
//
//	var out Point
//	_ = tokenstream.Unmarshal(pointSchema, data, &out)
//
// # Package Structure
//
// This package provides convenience wrappers around stream.Writer/Reader,
// schema.Map, and archive.Write/Read. For advanced usage and fine-grained
// control - sub-stream scoping, container iteration, custom codecs, dynamic
// records - use those packages directly.
package tokenstream

import (
	"bytes"

	"github.com/scottkmaxwell/tokenstream/archive"
	"github.com/scottkmaxwell/tokenstream/schema"
	"github.com/scottkmaxwell/tokenstream/stream"
)

// Marshal encodes src according to m and returns the complete token stream.
//
// Parameters:
//   - m: the schema describing src's wire layout
//   - src: the value to encode
//   - opts: optional stream.Writer configuration, e.g. stream.WithTrimDefaults(true)
//
// Returns:
//   - []byte: the encoded token stream, safe to retain independent of m or src
//   - error: an error if any field failed to encode
func Marshal[T any](m *schema.Map[T], src *T, opts ...stream.Option) ([]byte, error) {
	w := stream.NewMemoryWriter(opts...)

	if err := m.WriteTo(w, src); err != nil {
		_ = w.Close()
		return nil, err
	}

	out := append([]byte(nil), w.Bytes()...)

	return out, w.Close()
}

// Unmarshal decodes data into dst according to m.
//
// Unrecognized tokens in data are silently skipped, so data produced by a
// schema with additional fields decodes cleanly into an older m.
func Unmarshal[T any](m *schema.Map[T], data []byte, dst *T) error {
	return m.ReadFrom(stream.NewReader(data), dst)
}

// MarshalArchive encodes src and wraps the result in a compressed,
// checksummed archive container (see package archive), for callers that
// want whole-stream persistence rather than a bare byte slice.
func MarshalArchive[T any](m *schema.Map[T], src *T, tag archive.Tag, codec archive.Codec, opts ...stream.Option) ([]byte, error) {
	raw, err := Marshal(m, src, opts...)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := archive.Write(&buf, tag, codec, raw); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalArchive reverses MarshalArchive: it verifies the archive's
// checksum, decompresses its body, then decodes the recovered token stream
// into dst according to m.
func UnmarshalArchive[T any](m *schema.Map[T], data []byte, dst *T) error {
	raw, err := archive.Read(bytes.NewReader(data))
	if err != nil {
		return err
	}

	return Unmarshal(m, raw, dst)
}
