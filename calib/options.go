package calib

import (
	"github.com/lcmslab/achrom/internal/options"
	"github.com/lcmslab/achrom/peptide"
)

// config holds calibration settings shared by Calibrate and
// CalibrateSearchingFactor.
type config struct {
	terminal bool
	alphabet peptide.Alphabet
}

func defaultConfig() config {
	return config{alphabet: peptide.StdAminoAcids}
}

// Option is a functional option for calibration.
type Option = options.Option[*config]

// WithTerminal enables separate coefficient sets for N- and C-terminal
// residues.
func WithTerminal() Option {
	return options.NoError(func(cfg *config) {
		cfg.terminal = true
	})
}

// WithAlphabet overrides the residue alphabet used to featurize the sample.
// The default is peptide.StdAminoAcids.
func WithAlphabet(alphabet peptide.Alphabet) Option {
	return options.NoError(func(cfg *config) {
		cfg.alphabet = alphabet
	})
}
