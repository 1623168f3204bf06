package calib

import (
	"fmt"
	"sort"

	"github.com/lcmslab/achrom/peptide"
)

// Model is a fitted coefficient set: one retention coefficient per category,
// a constant retention time shift, and the length correction factor the
// coefficients were estimated with.
//
// A Model is immutable after construction. Calibration produces a fresh Model
// per call; the Predict method only reads it, so a single Model may be shared
// across goroutines.
type Model struct {
	// Coeffs maps each category to its retention coefficient.
	Coeffs map[peptide.Category]float64
	// Const is the constant retention time shift.
	Const float64
	// LCF is the length correction factor, a single global scalar shared by
	// all categories of the model.
	LCF float64
	// Terminal reports whether the model distinguishes terminal residues.
	// Prediction featurizes sequences accordingly.
	Terminal bool
}

// Alphabet returns the interior residue labels the model can score, sorted
// for determinism. Prediction tokenizes sequences against this alphabet.
func (m *Model) Alphabet() peptide.Alphabet {
	labels := make([]string, 0, len(m.Coeffs))
	for cat := range m.Coeffs {
		if !cat.IsTerminal() {
			labels = append(labels, cat.Residue)
		}
	}
	sort.Strings(labels)

	return labels
}

// String returns a short human-readable summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Categories: %d, Const: %.4f, LCF: %.4f, Terminal: %t}",
		len(m.Coeffs), m.Const, m.LCF, m.Terminal)
}
