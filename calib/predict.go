package calib

import (
	"fmt"
	"math"

	"github.com/lcmslab/achrom/errs"
	"github.com/lcmslab/achrom/peptide"
)

// Predict calculates the retention time of a peptide sequence using the
// model's coefficient set:
//
//	RT = (1 + lcf*ln(N)) * Σ count(cat)*RC(cat) + const
//
// The sequence is featurized with terminal tagging when the model carries
// terminal coefficients. N is the residue count of the sequence; terminal
// tagging does not change it.
//
// Returns errs.ErrUnknownCategory if the sequence contains a category the
// model has no coefficient for, and errs.ErrInvalidSequence if it cannot be
// tokenized against the model's alphabet.
func (m *Model) Predict(sequence string) (float64, error) {
	comp, err := peptide.Featurize(sequence, m.Terminal, m.Alphabet())
	if err != nil {
		// The sequence tokenizes against the model's own alphabet, so a
		// tokenization failure means the model cannot score some residue.
		return 0, fmt.Errorf("%w: %v", errs.ErrUnknownCategory, err)
	}

	sum := 0.0
	for cat, count := range comp {
		rc, ok := m.Coeffs[cat]
		if !ok {
			return 0, fmt.Errorf("%w: %s", errs.ErrUnknownCategory, cat)
		}
		sum += float64(count) * rc
	}

	rt := sum*(1.0+m.LCF*math.Log(float64(comp.Length()))) + m.Const

	return rt, nil
}
