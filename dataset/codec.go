package dataset

import (
	"fmt"

	"github.com/lcmslab/achrom/errs"
)

// CompressionType identifies the payload compression algorithm.
type CompressionType uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone CompressionType = 0x1
	// CompressionZstd compresses the payload with Zstandard.
	CompressionZstd CompressionType = 0x2
	// CompressionS2 compresses the payload with S2.
	CompressionS2 CompressionType = 0x3
	// CompressionLZ4 compresses the payload with LZ4 block compression.
	CompressionLZ4 CompressionType = 0x4
)

// String returns the compression type name.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Codec compresses and decompresses dataset payloads.
//
// Implementations never modify the input slice and return newly allocated
// output (except CompressionNone, which passes the input through).
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// codecFor returns the Codec for the given compression type.
func codecFor(compression CompressionType) (Codec, error) {
	switch compression {
	case CompressionNone:
		return noopCodec{}, nil
	case CompressionZstd:
		return zstdCodec{}, nil
	case CompressionS2:
		return s2Codec{}, nil
	case CompressionLZ4:
		return lz4Codec{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCompression, compression)
	}
}
