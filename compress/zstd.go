package compress

// ZstdCompressor provides Zstandard compression for capture files.
//
// Zstd favors compression ratio over speed, which suits archived
// characterization captures that are written once and replotted many
// times. Two implementations back this type:
//   - a pure-Go implementation (klauspost/compress/zstd), the default
//   - a cgo implementation (valyala/gozstd), selected with the "gozstd"
//     build tag on hosts where the C library's throughput matters
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
