package secondary

// ZstdCompressor compresses with Zstandard, favoring ratio over speed. Its
// Compress/Decompress methods live in zstd_pure.go (pure-Go, builds with cgo
// disabled) and zstd_cgo.go (cgo build, linking the reference libzstd via
// gozstd).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
