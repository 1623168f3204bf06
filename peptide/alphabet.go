package peptide

// Alphabet is the set of residue labels a sequence may be built from.
// Labels may be longer than one character (e.g. "pS" for phosphoserine);
// tokenization always prefers the longest matching label.
type Alphabet []string

// StdAminoAcids lists the 20 standard amino acid residues in the one-letter
// code. This is the default alphabet for calibration and featurization.
var StdAminoAcids = Alphabet{
	"A", "C", "D", "E", "F", "G", "H", "I", "K", "L",
	"M", "N", "P", "Q", "R", "S", "T", "V", "W", "Y",
}
