package secondary

// NoOpCompressor bypasses compression and returns its input unchanged.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-op compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
