package dataset

// zstdCodec compresses payloads with Zstandard, the default for Encode.
// The implementation is selected at build time: the cgo build uses
// valyala/gozstd, pure-Go builds use klauspost/compress/zstd.
type zstdCodec struct{}

var _ Codec = zstdCodec{}
