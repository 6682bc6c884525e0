package archive

import (
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/scottkmaxwell/tokenstream/errs"
	"github.com/scottkmaxwell/tokenstream/varint"
)

// magic identifies an archive container; it is not part of the token-level
// wire grammar, only this outer whole-stream framing.
var magic = [4]byte{'T', 'K', 'S', '1'}

// Write wraps payload (typically the complete output of a
// stream.MemoryWriter) in an archive container:
//
//	magic      [4]byte   "TKS1"
//	codecTag   byte      archive.Tag
//	rawLen     uvarint   len(payload) before compression
//	checksum   [8]byte   big-endian xxHash64 of payload
//	body       []byte    codec.Compress(payload)
func Write(w io.Writer, tag Tag, codec Codec, payload []byte) error {
	body, err := codec.Compress(payload)
	if err != nil {
		return err
	}

	header := make([]byte, 0, 4+1+varint.Len(uint64(len(payload)))+8)
	header = append(header, magic[:]...)
	header = append(header, byte(tag))
	header = varint.Encode(header, uint64(len(payload)))

	sum := xxhash.Sum64(payload)
	header = append(header,
		byte(sum>>56), byte(sum>>48), byte(sum>>40), byte(sum>>32),
		byte(sum>>24), byte(sum>>16), byte(sum>>8), byte(sum),
	)

	if _, err := w.Write(header); err != nil {
		return errs.ErrIOFailure
	}
	if _, err := w.Write(body); err != nil {
		return errs.ErrIOFailure
	}

	return nil
}

// Read reverses Write: it decompresses the body with the codec named by
// the header's tag and verifies the recovered payload's checksum, so
// corruption in either the compressed body or the header itself is caught
// before the caller ever hands the bytes to a stream.Reader.
func Read(r io.Reader) ([]byte, error) {
	all, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.ErrIOFailure
	}

	if len(all) < 5 || [4]byte(all[:4]) != magic {
		return nil, errs.ErrBadMagic
	}

	tag := Tag(all[4])
	rest := all[5:]

	rawLen, n, err := varint.Decode(rest)
	if err != nil {
		return nil, err
	}
	rest = rest[n:]

	if len(rest) < 8 {
		return nil, errs.ErrTruncated
	}
	wantSum := uint64(rest[0])<<56 | uint64(rest[1])<<48 | uint64(rest[2])<<40 | uint64(rest[3])<<32 |
		uint64(rest[4])<<24 | uint64(rest[5])<<16 | uint64(rest[6])<<8 | uint64(rest[7])
	body := rest[8:]

	codec, err := CodecFor(tag)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(body)
	if err != nil {
		return nil, err
	}

	if uint64(len(payload)) != rawLen {
		return nil, errs.ErrPayloadTooLarge
	}
	if xxhash.Sum64(payload) != wantSum {
		return nil, errs.ErrChecksumMismatch
	}

	return payload, nil
}
