package secondary

import "fmt"

// Algorithm identifies a secondary compression codec applied on top of a
// Gorilla- or Entropy-encoded byte stream.
type Algorithm uint8

const (
	// None applies no secondary compression.
	None Algorithm = iota
	// Zstd applies Zstandard compression.
	Zstd
	// S2 applies S2 (a Snappy-compatible, faster-compressing format) compression.
	S2
	// LZ4 applies LZ4 compression.
	LZ4
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Compressor compresses an encoded byte stream.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a stream previously produced by the matching
// Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of a secondary compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Algorithm]Codec{
	None: NewNoOpCompressor(),
	Zstd: NewZstdCompressor(),
	S2:   NewS2Compressor(),
	LZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the given algorithm.
func GetCodec(alg Algorithm) (Codec, error) {
	if codec, ok := builtinCodecs[alg]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("secondary: unsupported algorithm: %s", alg)
}

// ParseAlgorithm maps a CLI-facing name to its Algorithm value.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "none", "":
		return None, nil
	case "zstd":
		return Zstd, nil
	case "s2":
		return S2, nil
	case "lz4":
		return LZ4, nil
	default:
		return 0, fmt.Errorf("secondary: unknown algorithm %q", name)
	}
}
