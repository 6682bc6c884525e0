// Package archive wraps a complete, already-encoded token stream (typically
// the output of stream.MemoryWriter.Bytes()) in a compressed, checksummed
// container external to the wire grammar itself. Grounded on the teacher's
// compress package: same Codec interface shape, same pooled zstd
// encoder/decoder reuse, same cgo/pure build-tag split, with the
// per-column time-series framing stripped since archive wraps one opaque
// blob rather than mebo's per-section payloads.
package archive

import "fmt"

// Codec compresses and decompresses one opaque byte blob. It mirrors the
// teacher's compress.Codec (Compressor+Decompressor) collapsed into a
// single interface, since archive never needs the two capabilities split.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Tag identifies which Codec produced a body, recorded in the archive
// header so Read can reconstruct the matching codec without the caller
// having to remember which one it used at write time.
type Tag byte

const (
	TagNone Tag = 0
	TagS2   Tag = 1
	TagLZ4  Tag = 2
	TagZstd Tag = 3
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagS2:
		return "s2"
	case TagLZ4:
		return "lz4"
	case TagZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// CodecFor returns the built-in Codec registered for tag.
func CodecFor(tag Tag) (Codec, error) {
	switch tag {
	case TagNone:
		return NoopCodec{}, nil
	case TagS2:
		return S2Codec{}, nil
	case TagLZ4:
		return LZ4Codec{}, nil
	case TagZstd:
		return ZstdCodec{}, nil
	default:
		return nil, fmt.Errorf("archive: unknown codec tag %d", tag)
	}
}
