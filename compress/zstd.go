package compress

// ZstdCompressor provides Zstandard compression of token payloads.
//
// Zstd gives the best ratio of the supported algorithms on long tokens and
// the largest framing overhead on short ones.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
