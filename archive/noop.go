package archive

// NoopCodec passes data through unchanged. Useful for archives where the
// caller wants the magic/checksum framing without paying a compression
// cost, or where the payload is already compressed upstream.
type NoopCodec struct{}

var _ Codec = (*NoopCodec)(nil)

func (NoopCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (NoopCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
