package calib

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/lcmslab/achrom/errs"
	"github.com/lcmslab/achrom/internal/options"
	"github.com/lcmslab/achrom/peptide"
)

// rcond is the relative threshold for treating singular values as zero when
// determining the rank of the design matrix.
const rcond = 1e-12

// Calibrate estimates retention coefficients from a peptide sample with known
// retention times and a fixed length correction factor.
//
// The unknowns are the categories actually observed in the sample (after
// terminal expansion when WithTerminal is set) plus the constant shift. Each
// peptide contributes one row with entries count*(1 + lcf*ln(N)) and a
// trailing 1.0 for the constant. With terminal coefficients enabled, one
// zero-target normalization row per terminus is appended internally; the
// caller's rts slice is never modified.
//
// Returns errs.ErrDimensionMismatch if the peptide and retention time counts
// differ, and errs.ErrEmptyAlphabet if no categories are detected. A
// rank-deficient system is not an error: the solver returns the minimum-norm
// solution.
func Calibrate(peptides []string, rts []float64, lcf float64, opts ...Option) (*Model, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return calibrate(peptides, rts, lcf, cfg)
}

func calibrate(peptides []string, rts []float64, lcf float64, cfg config) (*Model, error) {
	if len(peptides) != len(rts) {
		return nil, fmt.Errorf("%w: %d peptides vs %d retention times",
			errs.ErrDimensionMismatch, len(peptides), len(rts))
	}
	if len(cfg.alphabet) == 0 {
		return nil, errs.ErrEmptyAlphabet
	}

	comps := make([]peptide.Composition, len(peptides))
	detected := make(map[peptide.Category]struct{})
	for i, p := range peptides {
		comp, err := peptide.Featurize(p, cfg.terminal, cfg.alphabet)
		if err != nil {
			return nil, fmt.Errorf("peptide %d: %w", i, err)
		}
		comps[i] = comp
		for cat := range comp {
			detected[cat] = struct{}{}
		}
	}
	if len(detected) == 0 {
		return nil, errs.ErrEmptyAlphabet
	}

	cats := sortedCategories(detected)

	rows := len(peptides)
	if cfg.terminal {
		rows += 2
	}
	cols := len(cats) + 1 // trailing unknown is the constant shift

	a := mat.NewDense(rows, cols, nil)
	b := mat.NewVecDense(rows, nil)
	for i, comp := range comps {
		scale := 1.0 + lcf*math.Log(float64(comp.Length()))
		for j, cat := range cats {
			if count := comp[cat]; count != 0 {
				a.Set(i, j, float64(count)*scale)
			}
		}
		a.Set(i, len(cats), 1.0)
		b.SetVec(i, rts[i])
	}

	// The normalization condition is arbitrary but well established: the sum
	// of terminal coefficients minus the sum of the matching interior ones is
	// forced to zero, one row per terminus with a zero target.
	if cfg.terminal {
		for t, term := range []peptide.Terminus{peptide.TermN, peptide.TermC} {
			row := len(peptides) + t
			for j, cat := range cats {
				switch {
				case cat.Terminus == term:
					a.Set(row, j, 1.0)
				case !cat.IsTerminal():
					if _, ok := detected[cat.WithTerminus(term)]; ok {
						a.Set(row, j, -1.0)
					}
				}
			}
		}
	}

	solution, err := solveMinNorm(a, b)
	if err != nil {
		return nil, err
	}

	model := &Model{
		Coeffs:   make(map[peptide.Category]float64, len(cats)),
		Const:    solution[len(cats)],
		LCF:      lcf,
		Terminal: cfg.terminal,
	}
	for j, cat := range cats {
		model.Coeffs[cat] = solution[j]
	}

	if cfg.terminal {
		inferTerminalCoeffs(model)
	}

	return model, nil
}

// solveMinNorm solves the least-squares problem min |Ax - b| via SVD,
// returning the minimum-norm solution when A is rank deficient.
func solveMinNorm(a *mat.Dense, b *mat.VecDense) ([]float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, errors.New("svd factorization failed")
	}

	values := svd.Values(nil)
	rank := 0
	for _, sv := range values {
		if sv > rcond*values[0] {
			rank++
		}
	}
	if rank == 0 {
		return nil, errors.New("design matrix has zero rank")
	}

	var x mat.VecDense
	svd.SolveVecTo(&x, b, rank)

	solution := make([]float64, x.Len())
	for i := range solution {
		solution[i] = x.AtVec(i)
	}

	return solution, nil
}

// sortedCategories orders the detected categories deterministically so that
// matrix construction and solution unpacking agree on column positions.
func sortedCategories(detected map[peptide.Category]struct{}) []peptide.Category {
	cats := make([]peptide.Category, 0, len(detected))
	for cat := range detected {
		cats = append(cats, cat)
	}
	slices.SortFunc(cats, func(x, y peptide.Category) int {
		if x.Terminus != y.Terminus {
			return int(x.Terminus) - int(y.Terminus)
		}

		return strings.Compare(x.Residue, y.Residue)
	})

	return cats
}
