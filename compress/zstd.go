package compress

// ZstdCompressor provides Zstandard compression, the recommended codec for
// feature identity payloads.
//
// Identity payloads are concatenated (name, term) strings with heavy shared
// prefixes across entries, where Zstd routinely reaches 5:1 or better.
//
// Two implementations exist behind build tags:
//   - cgo builds use valyala/gozstd (libzstd bindings, fastest)
//   - non-cgo builds use klauspost/compress/zstd (pure Go)
//
// Both produce standard Zstandard frames and are wire compatible.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
