// Package refcoeff provides published retention coefficient sets for the
// additive model, ready to use with calib.Model.Predict.
//
// Each table is immutable static configuration determined under the
// chromatographic conditions documented on the value. None of the tables
// carries a length correction (LCF = 0), a constant shift (Const = 0) or
// terminal coefficients; they describe interior residues only. Callers must
// treat the tables as read-only.
package refcoeff

import (
	"github.com/lcmslab/achrom/calib"
	"github.com/lcmslab/achrom/peptide"
)

// GuoPH2 is the coefficient set of Guo, Mant, Taneja, Parker and Hodges
// (J. Chromatogr. A, 1986, 359, 499-518).
//
// Conditions: Synchropak RP-P C18 column (250 x 4.1 mm I.D.), gradient
// (A = 0.1% aq. TFA, pH 2.0; B = 0.1% TFA in acetonitrile) at 1% B/min,
// flow rate 1 ml/min, 26 centigrades.
var GuoPH2 = &calib.Model{
	Coeffs: map[peptide.Category]float64{
		peptide.Internal("K"): -2.1,
		peptide.Internal("G"): -0.2,
		peptide.Internal("L"): 8.1,
		peptide.Internal("A"): 2.0,
		peptide.Internal("C"): 2.6,
		peptide.Internal("E"): 1.1,
		peptide.Internal("D"): 0.2,
		peptide.Internal("F"): 8.1,
		peptide.Internal("I"): 7.4,
		peptide.Internal("H"): -2.1,
		peptide.Internal("M"): 5.5,
		peptide.Internal("N"): -0.6,
		peptide.Internal("Q"): 0.0,
		peptide.Internal("P"): 2.0,
		peptide.Internal("S"): -0.2,
		peptide.Internal("R"): -0.6,
		peptide.Internal("T"): 0.6,
		peptide.Internal("W"): 8.8,
		peptide.Internal("V"): 5.0,
		peptide.Internal("Y"): 4.5,
	},
}

// GuoPH7 is the coefficient set of Guo, Mant, Taneja, Parker and Hodges
// (J. Chromatogr. A, 1986, 359, 499-518).
//
// Conditions: Synchropak RP-P C18 column (250 x 4.1 mm I.D.), gradient
// (A = aq. 10 mM (NH4)2HPO4 - 0.1 M NaClO4, pH 7.0; B = 0.1 M NaClO4 in 60%
// aq. acetonitrile) at 1.67% B/min, flow rate 1 ml/min, 26 centigrades.
var GuoPH7 = &calib.Model{
	Coeffs: map[peptide.Category]float64{
		peptide.Internal("K"): -0.2,
		peptide.Internal("G"): -0.2,
		peptide.Internal("L"): 9.0,
		peptide.Internal("A"): 2.2,
		peptide.Internal("C"): 2.6,
		peptide.Internal("E"): -1.3,
		peptide.Internal("D"): -2.6,
		peptide.Internal("F"): 9.0,
		peptide.Internal("I"): 8.3,
		peptide.Internal("H"): 2.2,
		peptide.Internal("M"): 6.0,
		peptide.Internal("N"): -0.8,
		peptide.Internal("Q"): 0.0,
		peptide.Internal("P"): 2.2,
		peptide.Internal("S"): -0.5,
		peptide.Internal("R"): 0.9,
		peptide.Internal("T"): 0.3,
		peptide.Internal("W"): 9.5,
		peptide.Internal("V"): 5.7,
		peptide.Internal("Y"): 4.6,
	},
}

// MeekPH2 is the coefficient set of Meek (PNAS, 1980, 77 (3), 1632-1636).
//
// Conditions: Bio-Rad "ODS" column, gradient (A = 0.1 M NaClO4, 0.1%
// phosphoric acid in water; B = 0.1 M NaClO4, 0.1% phosphoric acid in 60%
// aq. acetonitrile) at 1.25% B/min, room temperature, pH 2.1.
var MeekPH2 = &calib.Model{
	Coeffs: map[peptide.Category]float64{
		peptide.Internal("K"): -3.2,
		peptide.Internal("G"): -0.5,
		peptide.Internal("L"): 10.0,
		peptide.Internal("A"): -0.1,
		peptide.Internal("C"): -2.2,
		peptide.Internal("E"): -7.5,
		peptide.Internal("D"): -2.8,
		peptide.Internal("F"): 13.9,
		peptide.Internal("I"): 11.8,
		peptide.Internal("H"): 0.8,
		peptide.Internal("M"): 7.1,
		peptide.Internal("N"): -1.6,
		peptide.Internal("Q"): -2.5,
		peptide.Internal("P"): 8.0,
		peptide.Internal("S"): -3.7,
		peptide.Internal("R"): -4.5,
		peptide.Internal("T"): 1.5,
		peptide.Internal("W"): 18.1,
		peptide.Internal("V"): 3.3,
		peptide.Internal("Y"): 8.2,
	},
}

// MeekPH7 is the coefficient set of Meek (PNAS, 1980, 77 (3), 1632-1636).
//
// Conditions: Bio-Rad "ODS" column, gradient (A = 0.1 M NaClO4, 5 mM
// phosphate buffer in water; B = 0.1 M NaClO4, 5 mM phosphate buffer in 60%
// aq. acetonitrile) at 1.25% B/min, room temperature, pH 7.4.
var MeekPH7 = &calib.Model{
	Coeffs: map[peptide.Category]float64{
		peptide.Internal("K"): 0.1,
		peptide.Internal("G"): 0.0,
		peptide.Internal("L"): 8.8,
		peptide.Internal("A"): 0.5,
		peptide.Internal("C"): -6.8,
		peptide.Internal("E"): -16.9,
		peptide.Internal("D"): -8.2,
		peptide.Internal("F"): 13.2,
		peptide.Internal("I"): 13.9,
		peptide.Internal("H"): -3.5,
		peptide.Internal("M"): 4.8,
		peptide.Internal("N"): 0.8,
		peptide.Internal("Q"): -4.8,
		peptide.Internal("P"): 6.1,
		peptide.Internal("S"): 1.2,
		peptide.Internal("R"): 0.8,
		peptide.Internal("T"): 2.7,
		peptide.Internal("W"): 14.9,
		peptide.Internal("V"): 2.7,
		peptide.Internal("Y"): 6.1,
	},
}

// BrowneTFA is the coefficient set of Browne, Bennett and Solomon
// (Anal. Biochem., 1982, 124 (1), 201-208), including phosphorylated
// residues pS, pT and pY.
//
// Conditions: Waters muBondapak C18 column, gradient (A = 0.1% aq. TFA,
// B = 0.1% TFA in acetonitrile) at 0.33% B/min, flow rate 1.5 ml/min.
var BrowneTFA = &calib.Model{
	Coeffs: map[peptide.Category]float64{
		peptide.Internal("K"):  -3.7,
		peptide.Internal("G"):  -1.2,
		peptide.Internal("L"):  20.0,
		peptide.Internal("A"):  7.3,
		peptide.Internal("C"):  -9.2,
		peptide.Internal("E"):  -7.1,
		peptide.Internal("D"):  -2.9,
		peptide.Internal("F"):  19.2,
		peptide.Internal("I"):  6.6,
		peptide.Internal("H"):  -2.1,
		peptide.Internal("M"):  5.6,
		peptide.Internal("N"):  -5.7,
		peptide.Internal("Q"):  -0.3,
		peptide.Internal("P"):  5.1,
		peptide.Internal("S"):  -4.1,
		peptide.Internal("pS"): -6.5,
		peptide.Internal("R"):  -3.6,
		peptide.Internal("T"):  0.8,
		peptide.Internal("pT"): -1.6,
		peptide.Internal("W"):  16.3,
		peptide.Internal("V"):  3.5,
		peptide.Internal("Y"):  5.9,
		peptide.Internal("pY"): 3.5,
	},
}

// BrowneHFBA is the coefficient set of Browne, Bennett and Solomon
// (Anal. Biochem., 1982, 124 (1), 201-208), including phosphorylated
// residues pS, pT and pY.
//
// Conditions: Waters muBondapak C18 column, gradient (A = 0.13% aq. HFBA,
// B = 0.13% HFBA in acetonitrile) at 0.33% B/min, flow rate 1.5 ml/min.
var BrowneHFBA = &calib.Model{
	Coeffs: map[peptide.Category]float64{
		peptide.Internal("K"):  -2.5,
		peptide.Internal("G"):  -2.3,
		peptide.Internal("L"):  15.0,
		peptide.Internal("A"):  3.9,
		peptide.Internal("C"):  -14.3,
		peptide.Internal("E"):  -7.5,
		peptide.Internal("D"):  -2.8,
		peptide.Internal("F"):  14.7,
		peptide.Internal("I"):  11.0,
		peptide.Internal("H"):  2.0,
		peptide.Internal("M"):  4.1,
		peptide.Internal("N"):  -2.8,
		peptide.Internal("Q"):  1.8,
		peptide.Internal("P"):  5.6,
		peptide.Internal("S"):  -3.5,
		peptide.Internal("pS"): -7.6,
		peptide.Internal("R"):  3.2,
		peptide.Internal("T"):  1.1,
		peptide.Internal("pT"): -3.0,
		peptide.Internal("W"):  17.8,
		peptide.Internal("V"):  2.1,
		peptide.Internal("Y"):  3.8,
		peptide.Internal("pY"): -0.3,
	},
}

// Palmblad is the coefficient set of Palmblad, Ramstrom, Markides, Hakansson
// and Bergquist (Anal. Chem., 2002, 74 (22), 5826-5830).
//
// Conditions: a fused silica column (80-100 x 0.200 mm I.D.) packed in-house
// with C18 ODS-AQ; solvent A = 0.5% aq. HAc, B = 0.5% HAc in acetonitrile.
var Palmblad = &calib.Model{
	Coeffs: map[peptide.Category]float64{
		peptide.Internal("K"): -0.66,
		peptide.Internal("G"): -0.29,
		peptide.Internal("L"): 2.28,
		peptide.Internal("A"): 0.41,
		peptide.Internal("C"): -1.32,
		peptide.Internal("E"): -0.26,
		peptide.Internal("D"): 0.04,
		peptide.Internal("F"): 2.68,
		peptide.Internal("I"): 2.70,
		peptide.Internal("H"): 0.57,
		peptide.Internal("M"): 0.98,
		peptide.Internal("N"): -0.54,
		peptide.Internal("Q"): 1.02,
		peptide.Internal("P"): 0.97,
		peptide.Internal("S"): -0.71,
		peptide.Internal("R"): -0.76,
		peptide.Internal("T"): 0.37,
		peptide.Internal("W"): 4.68,
		peptide.Internal("V"): 2.44,
		peptide.Internal("Y"): 2.78,
	},
}

// Yoshida is the coefficient set of Yoshida (J. Chromatogr. A, 1998, 808
// (1-2), 105-112), determined in normal-phase liquid chromatography.
//
// Conditions: TSK gel Amide-80 column (250 x 4.6 mm I.D.), gradient
// (A = 0.1% TFA in ACN-water (90:10); B = 0.1% TFA in ACN-water (55:45))
// at 0.6% water/min, flow rate 1.0 ml/min, 40 centigrades.
var Yoshida = &calib.Model{
	Coeffs: map[peptide.Category]float64{
		peptide.Internal("K"): 2.77,
		peptide.Internal("G"): -0.16,
		peptide.Internal("L"): -2.31,
		peptide.Internal("A"): 0.28,
		peptide.Internal("C"): 0.80,
		peptide.Internal("E"): 1.58,
		peptide.Internal("D"): 2.45,
		peptide.Internal("F"): -2.94,
		peptide.Internal("I"): -1.34,
		peptide.Internal("H"): 3.44,
		peptide.Internal("M"): -0.14,
		peptide.Internal("N"): 3.25,
		peptide.Internal("Q"): 2.35,
		peptide.Internal("P"): 0.77,
		peptide.Internal("S"): 2.53,
		peptide.Internal("R"): 3.90,
		peptide.Internal("T"): 1.73,
		peptide.Internal("W"): -1.80,
		peptide.Internal("V"): -2.19,
		peptide.Internal("Y"): -0.11,
	},
}
