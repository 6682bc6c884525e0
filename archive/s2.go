package archive

import "github.com/klauspost/compress/s2"

// S2Codec wraps klauspost/compress/s2, a Snappy-compatible codec tuned for
// speed over ratio - the right default for an archive that is written and
// read far more often than it sits cold on disk.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
