// Package peptide provides residue-level featurization of peptide sequences:
// tokenizing a sequence against a residue alphabet and counting how often
// each category occurs, optionally distinguishing the terminal residues.
//
// The additive retention model is composition-only: two peptides with the
// same residue counts featurize identically regardless of residue order,
// except for the optional first/last-residue tagging.
package peptide

import (
	"fmt"

	"github.com/lcmslab/achrom/errs"
)

// Composition maps each detected category to its occurrence count in one
// sequence. Categories not present are implicitly zero.
type Composition map[Category]int

// Length returns the residue count of the sequence the composition was built
// from. Terminal tagging moves counts between categories but never changes
// the total, so Length is valid for the ln(N) length correction term.
func (c Composition) Length() int {
	n := 0
	for _, count := range c {
		n += count
	}

	return n
}

// Tokenize splits a sequence into residue labels drawn from the alphabet,
// preferring the longest matching label at each position.
//
// Returns errs.ErrInvalidSequence if the sequence is empty or contains a
// position where no alphabet label matches.
func Tokenize(sequence string, alphabet Alphabet) ([]string, error) {
	if sequence == "" {
		return nil, fmt.Errorf("%w: empty sequence", errs.ErrInvalidSequence)
	}

	labels := make(map[string]struct{}, len(alphabet))
	maxLen := 0
	for _, label := range alphabet {
		labels[label] = struct{}{}
		if len(label) > maxLen {
			maxLen = len(label)
		}
	}

	tokens := make([]string, 0, len(sequence))
	for i := 0; i < len(sequence); {
		matched := ""
		limit := min(maxLen, len(sequence)-i)
		for l := limit; l >= 1; l-- {
			if _, ok := labels[sequence[i:i+l]]; ok {
				matched = sequence[i : i+l]
				break
			}
		}
		if matched == "" {
			return nil, fmt.Errorf("%w: unrecognized residue at offset %d of %q", errs.ErrInvalidSequence, i, sequence)
		}
		tokens = append(tokens, matched)
		i += len(matched)
	}

	return tokens, nil
}

// Featurize converts a sequence into its composition vector.
//
// With terminal enabled the first residue is counted under its N-terminal
// category and the last under its C-terminal category; interior residues keep
// their plain categories. A single-residue sequence counts as N-terminal.
func Featurize(sequence string, terminal bool, alphabet Alphabet) (Composition, error) {
	tokens, err := Tokenize(sequence, alphabet)
	if err != nil {
		return nil, err
	}

	comp := make(Composition, len(tokens))
	for i, tok := range tokens {
		cat := Category{Residue: tok}
		if terminal {
			switch {
			case i == 0:
				cat.Terminus = TermN
			case i == len(tokens)-1:
				cat.Terminus = TermC
			}
		}
		comp[cat]++
	}

	return comp, nil
}
