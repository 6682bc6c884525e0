package archive

// ZstdCodec wraps Zstandard, the best-ratio codec of the four - the right
// choice for cold storage or network transfer where decompression
// frequency is low relative to the cost of the bytes saved. The actual
// Compress/Decompress methods live in zstd_cgo.go and zstd_pure.go behind
// matching build tags, mirroring the teacher's cgo/pure split for the same
// library choice.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)
