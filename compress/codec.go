package compress

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kelly-tou/scum-code/errs"
)

// Type identifies a compression algorithm for capture files.
type Type uint8

const (
	// TypeNone represents no compression.
	TypeNone Type = 0x1
	// TypeZstd represents Zstandard compression.
	TypeZstd Type = 0x2
	// TypeS2 represents S2 compression.
	TypeS2 Type = 0x3
	// TypeLZ4 represents LZ4 block compression.
	TypeLZ4 Type = 0x4
)

// String returns the string representation of the compression type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// TypeFromString returns the compression type for a given name.
// Returns Type(0) for unknown names.
func TypeFromString(name string) Type {
	switch strings.ToLower(name) {
	case "none", "":
		return TypeNone
	case "zstd":
		return TypeZstd
	case "s2":
		return TypeS2
	case "lz4":
		return TypeLZ4
	default:
		return Type(0)
	}
}

// FromPath infers the compression type from a capture-file extension.
// Paths without a recognized compression extension map to TypeNone.
func FromPath(path string) Type {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return TypeZstd
	case ".s2":
		return TypeS2
	case ".lz4":
		return TypeLZ4
	default:
		return TypeNone
	}
}

// TrimExt strips a recognized compression extension from a capture-file path,
// leaving the underlying data extension (e.g. "data.csv.zst" -> "data.csv").
func TrimExt(path string) string {
	if FromPath(path) == TypeNone {
		return path
	}

	return strings.TrimSuffix(path, filepath.Ext(path))
}

// Compressor compresses a complete capture-file payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified. Internal buffers may be reused.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a capture-file payload compressed with the
// matching algorithm.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Returns an error if the data is corrupted or was compressed with an
	// incompatible algorithm. The returned slice is newly allocated and
	// owned by the caller.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the specified
// compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrUnknownCompression for unrecognized types
func CreateCodec(compressionType Type, target string) (Codec, error) {
	switch compressionType {
	case TypeNone:
		return NewNoOpCompressor(), nil
	case TypeZstd:
		return NewZstdCompressor(), nil
	case TypeS2:
		return NewS2Compressor(), nil
	case TypeLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrUnknownCompression, target, compressionType)
	}
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCompressor(),
	TypeZstd: NewZstdCompressor(),
	TypeS2:   NewS2Compressor(),
	TypeLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType Type) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, compressionType)
}
