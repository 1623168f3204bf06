// Package errs defines the sentinel errors returned by achrom packages.
//
// All errors are precondition violations detected before numeric work begins.
// They are surfaced directly to the caller and never retried or recovered
// internally. Callers should match them with errors.Is since most call sites
// wrap them with additional context.
package errs

import "errors"

// Calibration errors.
var (
	// ErrDimensionMismatch indicates that the number of peptide sequences does
	// not match the number of retention time observations.
	ErrDimensionMismatch = errors.New("peptide and retention time counts differ")

	// ErrEmptyAlphabet indicates that no residue categories could be detected,
	// leaving nothing to estimate coefficients for.
	ErrEmptyAlphabet = errors.New("no residue categories detected")

	// ErrInvalidFactorRange indicates an empty or inverted search interval for
	// the length correction factor.
	ErrInvalidFactorRange = errors.New("invalid length correction factor range")
)

// Prediction and featurization errors.
var (
	// ErrUnknownCategory indicates that a sequence contains a category the
	// model has no coefficient for.
	ErrUnknownCategory = errors.New("category not present in model")

	// ErrInvalidSequence indicates that a sequence could not be tokenized
	// against the configured alphabet.
	ErrInvalidSequence = errors.New("invalid peptide sequence")
)

// Dataset format errors.
var (
	// ErrInvalidHeaderSize indicates that the input is too short to contain a
	// dataset header.
	ErrInvalidHeaderSize = errors.New("invalid dataset header size")

	// ErrInvalidMagic indicates that the input does not start with the dataset
	// magic bytes.
	ErrInvalidMagic = errors.New("invalid dataset magic")

	// ErrUnsupportedVersion indicates a dataset format version this build
	// cannot read.
	ErrUnsupportedVersion = errors.New("unsupported dataset version")

	// ErrInvalidCompression indicates an unknown compression type byte.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrChecksumMismatch indicates that the payload checksum does not match,
	// i.e. the dataset bytes were corrupted or truncated.
	ErrChecksumMismatch = errors.New("dataset checksum mismatch")
)
