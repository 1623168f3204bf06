// Package achrom implements the additive model of polypeptide chromatography
// for peptide retention time prediction:
//
//	RT = (1 + lcf*ln(N)) * Σ RC_i + const
//
// Here RC_i is the retention coefficient of the i-th residue, N is the
// residue count, lcf is the length correction factor and const is a constant
// retention time shift. The model is composition-only: any two peptides with
// the same residue counts get the same prediction, except for the optional
// distinguished treatment of terminal residues.
//
// # Calibration
//
// Coefficients are found by calibrating against a peptide sample with known
// retention times:
//
//	model, err := achrom.Calibrate(
//	    []string{"AGKL", "GGKW", "LLAK"},
//	    []float64{11.2, 14.9, 19.3},
//	    0.0,
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rt, err := model.Predict("AGLW")
//
// When the best length correction factor is unknown, search for it:
//
//	model, err := achrom.CalibrateSearchingFactor(peptides, rts, -1.0, 1.0)
//
// Terminal residues often retain differently from interior ones; enable
// separate terminal coefficient sets with calib.WithTerminal(). Non-standard
// residues (e.g. phosphorylated "pS") are supported through
// calib.WithAlphabet.
//
// # Published coefficient sets
//
// The refcoeff package ships literature coefficient tables (Guo, Meek,
// Browne, Palmblad, Yoshida) that can be used with Predict directly, without
// calibration, when the chromatographic conditions match.
//
// # Sample persistence
//
// The dataset package stores calibration samples in a compact, checksummed
// and compressed binary format; CalibrateDataset calibrates straight from a
// loaded dataset.
//
// This package provides convenient top-level wrappers around the calib
// package, which holds the full API.
package achrom

import (
	"github.com/lcmslab/achrom/calib"
	"github.com/lcmslab/achrom/dataset"
)

// Calibrate finds retention coefficients for a peptide sample with known
// retention times and a fixed length correction factor.
// See calib.Calibrate.
func Calibrate(peptides []string, rts []float64, lcf float64, opts ...calib.Option) (*calib.Model, error) {
	return calib.Calibrate(peptides, rts, lcf, opts...)
}

// CalibrateSearchingFactor finds the best combination of length correction
// factor within [lo, hi) and retention coefficients for a peptide sample.
// See calib.CalibrateSearchingFactor.
func CalibrateSearchingFactor(peptides []string, rts []float64, lo, hi float64, opts ...calib.Option) (*calib.Model, error) {
	return calib.CalibrateSearchingFactor(peptides, rts, lo, hi, opts...)
}

// CalibrateDataset calibrates from a stored sample set with a fixed length
// correction factor.
func CalibrateDataset(d *dataset.Dataset, lcf float64, opts ...calib.Option) (*calib.Model, error) {
	return calib.Calibrate(d.Peptides, d.RTs, lcf, opts...)
}

// Predict calculates the retention time of a peptide sequence with a fitted
// or literature coefficient model. See calib.Model.Predict.
func Predict(sequence string, model *calib.Model) (float64, error) {
	return model.Predict(sequence)
}
