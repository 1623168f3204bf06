package refcoeff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lcmslab/achrom/calib"
	"github.com/lcmslab/achrom/peptide"
)

func TestTables(t *testing.T) {
	tests := []struct {
		name       string
		table      *calib.Model
		categories int
	}{
		{name: "GuoPH2", table: GuoPH2, categories: 20},
		{name: "GuoPH7", table: GuoPH7, categories: 20},
		{name: "MeekPH2", table: MeekPH2, categories: 20},
		{name: "MeekPH7", table: MeekPH7, categories: 20},
		{name: "BrowneTFA", table: BrowneTFA, categories: 23},
		{name: "BrowneHFBA", table: BrowneHFBA, categories: 23},
		{name: "Palmblad", table: Palmblad, categories: 20},
		{name: "Yoshida", table: Yoshida, categories: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, tt.table.Coeffs, tt.categories)
			require.Zero(t, tt.table.Const)
			require.Zero(t, tt.table.LCF)
			require.False(t, tt.table.Terminal)

			// Interior residues only, covering the 20 standard amino acids.
			for cat := range tt.table.Coeffs {
				require.False(t, cat.IsTerminal(), "category %s", cat)
			}
			for _, label := range peptide.StdAminoAcids {
				require.Contains(t, tt.table.Coeffs, peptide.Internal(label))
			}
		})
	}
}

func TestTablePredict(t *testing.T) {
	// RC(A) = 2.0 per residue, no length correction, no constant.
	rt, err := GuoPH2.Predict("AAA")
	require.NoError(t, err)
	require.InDelta(t, 6.0, rt, 1e-9)

	// Mixed composition: W + K + G.
	rt, err = GuoPH2.Predict("WKG")
	require.NoError(t, err)
	require.InDelta(t, 8.8-2.1-0.2, rt, 1e-9)
}

func TestTablePredictPhosphorylated(t *testing.T) {
	// Browne tables tokenize multi-character phosphorylated labels.
	rt, err := BrowneTFA.Predict("ApSG")
	require.NoError(t, err)
	require.InDelta(t, 7.3-6.5-1.2, rt, 1e-9)

	// Non-Browne tables do not know pS and must refuse the sequence.
	_, err = GuoPH2.Predict("ApSG")
	require.Error(t, err)
}
