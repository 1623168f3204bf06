package calib

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/lcmslab/achrom/errs"
	"github.com/lcmslab/achrom/internal/options"
)

// gridTolerance stops the coarse-to-fine search once the step between
// candidate factors is at most this wide.
const gridTolerance = 0.1

// gridPoints is the number of candidate factors sampled per refinement round.
const gridPoints = 10

// CalibrateSearchingFactor finds the best combination of length correction
// factor and retention coefficients for a peptide sample.
//
// It grid-searches the interval [lo, hi): each round samples
// gridPoints evenly spaced factors across the current interval, calibrates a
// model per factor, and scores it by the Pearson correlation between the
// retention times the model predicts for the sample and the observed ones.
// The interval is then re-centered on the best factor found so far and
// shrunk, until the step falls to gridTolerance. At least one round always
// runs, so a model is returned even for very narrow intervals.
//
// The search assumes the correlation surface is unimodal near the optimum
// within [lo, hi]; it converges to a local best, not a guaranteed global one.
//
// Returns errs.ErrInvalidFactorRange if hi <= lo, and any calibration failure
// of an individual candidate (the same conditions as Calibrate).
func CalibrateSearchingFactor(peptides []string, rts []float64, lo, hi float64, opts ...Option) (*Model, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if hi <= lo {
		return nil, fmt.Errorf("%w: [%g, %g]", errs.ErrInvalidFactorRange, lo, hi)
	}

	var (
		best  *Model
		bestR float64
	)

	step := (hi - lo) / gridPoints
	for {
		for i := 0; i < gridPoints; i++ {
			lcf := lo + float64(i)*step

			model, err := calibrate(peptides, rts, lcf, cfg)
			if err != nil {
				return nil, fmt.Errorf("factor %g: %w", lcf, err)
			}

			predicted := make([]float64, len(peptides))
			for j, p := range peptides {
				predicted[j], err = model.Predict(p)
				if err != nil {
					return nil, fmt.Errorf("factor %g: %w", lcf, err)
				}
			}

			// best==nil keeps the first candidate even when the correlation
			// is NaN (constant predictions), so the search always returns
			// a model.
			if r := stat.Correlation(rts, predicted, nil); best == nil || r > bestR {
				best = model
				bestR = r
			}
		}

		lo = best.LCF - step
		hi = best.LCF + step
		step = (hi - lo) / gridPoints
		if step <= gridTolerance {
			break
		}
	}

	return best, nil
}
