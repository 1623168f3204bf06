package calib

import (
	"gonum.org/v1/gonum/stat"

	"github.com/lcmslab/achrom/peptide"
)

// inferTerminalCoeffs fills in terminal coefficients that could not be
// estimated directly because no sampled peptide exhibited them.
//
// For each terminus it regresses the directly estimated terminal coefficients
// on their interior counterparts and applies the fitted line
// terminal = slope*interior + intercept to every missing terminal category.
// A terminus with no estimated pairs is skipped entirely: the gap stays in
// the model and Predict reports errs.ErrUnknownCategory when a sequence
// needs it.
func inferTerminalCoeffs(m *Model) {
	for _, term := range []peptide.Terminus{peptide.TermN, peptide.TermC} {
		var paired, missing []peptide.Category
		for cat := range m.Coeffs {
			if cat.IsTerminal() {
				continue
			}
			if _, ok := m.Coeffs[cat.WithTerminus(term)]; ok {
				paired = append(paired, cat)
			} else {
				missing = append(missing, cat)
			}
		}
		if len(missing) == 0 || len(paired) == 0 {
			continue
		}

		interior := make([]float64, len(paired))
		terminal := make([]float64, len(paired))
		for i, cat := range paired {
			interior[i] = m.Coeffs[cat]
			terminal[i] = m.Coeffs[cat.WithTerminus(term)]
		}

		intercept, slope := stat.LinearRegression(interior, terminal, nil, false)
		for _, cat := range missing {
			m.Coeffs[cat.WithTerminus(term)] = slope*m.Coeffs[cat] + intercept
		}
	}
}
