// Package dataset stores calibration samples — peptide sequences paired with
// observed retention times — in a compact, checksummed binary envelope.
//
// The envelope layout is:
//
//	bytes 0-3   magic "ACDS"
//	byte  4     format version (currently 1)
//	byte  5     compression type
//	bytes 6-7   reserved (zero)
//	bytes 8-15  xxHash64 of the compressed payload (little endian)
//	bytes 16-   compressed JSON payload
//
// The payload compresses well for realistic sample sets (thousands of
// peptides with long shared substrings), so Zstd is the default codec.
package dataset

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/lcmslab/achrom/errs"
	"github.com/lcmslab/achrom/internal/options"
)

const (
	headerSize = 16
	version1   = 1
)

var magic = [4]byte{'A', 'C', 'D', 'S'}

// Dataset is an ordered calibration sample set. Order carries no meaning for
// the math, but Peptides[i] and RTs[i] must describe the same sample.
type Dataset struct {
	// Peptides holds the peptide sequences.
	Peptides []string `json:"peptides"`
	// RTs holds the observed retention times, aligned with Peptides.
	RTs []float64 `json:"rts"`
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Peptides)
}

// Append adds one sample to the set.
func (d *Dataset) Append(sequence string, rt float64) {
	d.Peptides = append(d.Peptides, sequence)
	d.RTs = append(d.RTs, rt)
}

// Validate checks that sequences and retention times are aligned.
func (d *Dataset) Validate() error {
	if len(d.Peptides) != len(d.RTs) {
		return fmt.Errorf("%w: %d peptides vs %d retention times",
			errs.ErrDimensionMismatch, len(d.Peptides), len(d.RTs))
	}

	return nil
}

// Encode serializes the dataset into the binary envelope.
func Encode(d *Dataset, opts ...Option) ([]byte, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	codec, err := codecFor(cfg.compression)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	buf := make([]byte, 0, headerSize+len(compressed))
	buf = append(buf, magic[:]...)
	buf = append(buf, version1, byte(cfg.compression), 0, 0)
	buf = binary.LittleEndian.AppendUint64(buf, xxhash.Sum64(compressed))
	buf = append(buf, compressed...)

	return buf, nil
}

// Decode parses a binary envelope produced by Encode.
//
// Returns errs.ErrInvalidHeaderSize, errs.ErrInvalidMagic,
// errs.ErrUnsupportedVersion, errs.ErrInvalidCompression or
// errs.ErrChecksumMismatch when the envelope is malformed or corrupted.
func Decode(data []byte) (*Dataset, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}
	if [4]byte(data[:4]) != magic {
		return nil, errs.ErrInvalidMagic
	}
	if data[4] != version1 {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, data[4])
	}

	codec, err := codecFor(CompressionType(data[5]))
	if err != nil {
		return nil, err
	}

	compressed := data[headerSize:]
	if sum := xxhash.Sum64(compressed); sum != binary.LittleEndian.Uint64(data[8:16]) {
		return nil, errs.ErrChecksumMismatch
	}

	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	var d Dataset
	if err := json.Unmarshal(payload, &d); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Save writes the dataset to a file.
func Save(path string, d *Dataset, opts ...Option) error {
	data, err := Encode(d, opts...)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Load reads a dataset from a file written by Save.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(data)
}
