package calib

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lcmslab/achrom/errs"
	"github.com/lcmslab/achrom/peptide"
)

func TestPredict(t *testing.T) {
	model := &Model{
		Coeffs: map[peptide.Category]float64{
			peptide.Internal("A"): 1.1,
		},
		Const: 0.1,
	}

	// RT = 2*1.1 + 0.1
	rt, err := model.Predict("AA")
	require.NoError(t, err)
	require.InDelta(t, 2.3, rt, 1e-6)
}

func TestPredictTerminal(t *testing.T) {
	model := &Model{
		Coeffs: map[peptide.Category]float64{
			peptide.NTerm("A"):    1.0,
			peptide.Internal("A"): 1.1,
			peptide.CTerm("A"):    1.2,
		},
		Const:    0.1,
		Terminal: true,
	}

	// RT = 1.0 + 1.1 + 1.2 + 0.1
	rt, err := model.Predict("AAA")
	require.NoError(t, err)
	require.InDelta(t, 3.4, rt, 1e-6)
}

func TestPredictLengthCorrection(t *testing.T) {
	model := &Model{
		Coeffs: map[peptide.Category]float64{
			peptide.Internal("A"): 2.0,
		},
		LCF: 0.5,
	}

	// RT = (1 + 0.5*ln(2)) * 4.0
	rt, err := model.Predict("AA")
	require.NoError(t, err)
	require.InDelta(t, (1.0+0.5*0.6931471805599453)*4.0, rt, 1e-9)
}

func TestPredictCompositionOnly(t *testing.T) {
	model := &Model{
		Coeffs: map[peptide.Category]float64{
			peptide.Internal("A"): 1.3,
			peptide.Internal("G"): 0.7,
			peptide.Internal("L"): 2.4,
		},
		Const: 0.2,
		LCF:   0.3,
	}

	// Permutations of the same composition predict identically.
	want, err := model.Predict("AGLA")
	require.NoError(t, err)
	for _, p := range []string{"GALA", "LAAG", "AALG", "GLAA"} {
		rt, err := model.Predict(p)
		require.NoError(t, err)
		require.InDelta(t, want, rt, 1e-12, "peptide %s", p)
	}
}

func TestPredictScaling(t *testing.T) {
	base := &Model{
		Coeffs: map[peptide.Category]float64{
			peptide.Internal("A"): 1.3,
			peptide.Internal("G"): 0.7,
		},
		LCF: 0.2,
	}
	scaled := &Model{
		Coeffs: map[peptide.Category]float64{
			peptide.Internal("A"): 2.0 * 1.3,
			peptide.Internal("G"): 2.0 * 0.7,
		},
		LCF: 0.2,
	}

	// With a zero constant, scaling the coefficients scales the prediction.
	rtBase, err := base.Predict("AGAG")
	require.NoError(t, err)
	rtScaled, err := scaled.Predict("AGAG")
	require.NoError(t, err)
	require.InDelta(t, 2.0*rtBase, rtScaled, 1e-9)

	// A nonzero constant breaks pure scaling: it is added after the scaled
	// coefficient sum.
	base.Const = 0.5
	scaled.Const = 0.5
	rtBase, err = base.Predict("AGAG")
	require.NoError(t, err)
	rtScaled, err = scaled.Predict("AGAG")
	require.NoError(t, err)
	require.InDelta(t, 2.0*(rtBase-0.5)+0.5, rtScaled, 1e-9)
}

func TestPredictUnknownCategory(t *testing.T) {
	model := &Model{
		Coeffs: map[peptide.Category]float64{
			peptide.Internal("A"): 1.1,
		},
	}

	// B is not in the model's alphabet at all.
	_, err := model.Predict("AB")
	require.ErrorIs(t, err, errs.ErrUnknownCategory)
}

func TestPredictTerminalGap(t *testing.T) {
	// The model scores interior and N-terminal A but carries no C-terminal
	// coefficient, so any sequence ending in A is out of reach.
	model := &Model{
		Coeffs: map[peptide.Category]float64{
			peptide.NTerm("A"):    1.0,
			peptide.Internal("A"): 1.1,
		},
		Terminal: true,
	}

	_, err := model.Predict("AAA")
	require.ErrorIs(t, err, errs.ErrUnknownCategory)
}

func TestModelAlphabet(t *testing.T) {
	model := &Model{
		Coeffs: map[peptide.Category]float64{
			peptide.Internal("S"):  0.5,
			peptide.Internal("A"):  1.1,
			peptide.Internal("pS"): -2.0,
			peptide.NTerm("G"):     0.3,
		},
	}

	// Sorted, interior labels only.
	require.Equal(t, peptide.Alphabet{"A", "S", "pS"}, model.Alphabet())
}
