package compress

// NoOpCompressor passes data through without compression.
// It backs plain-text capture files and keeps the dataset read path
// uniform regardless of whether a capture was compressed.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data as-is without copying.
// The returned slice shares the input's underlying memory.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data as-is without copying.
// The returned slice shares the input's underlying memory.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
