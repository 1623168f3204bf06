// Package calib implements calibration and evaluation of the additive model
// of polypeptide chromatography:
//
//	RT = (1 + lcf*ln(N)) * Σ RC_i + const
//
// where RC_i is the retention coefficient of the i-th residue, N is the
// residue count, lcf is the length correction factor and const is a constant
// retention time shift.
//
// # Calibration
//
// Calibrate estimates retention coefficients from a peptide sample with known
// retention times and a fixed length correction factor. It builds one
// design-matrix row per peptide from its composition vector, scaled by
// (1 + lcf*ln(N)), plus a trailing column for the constant shift, and solves
// the system by least squares. Rank-deficient systems are resolved with the
// minimum-norm solution rather than reported as errors.
//
// With terminal coefficients enabled (WithTerminal), the first and last
// residues of each peptide are estimated separately from interior ones. The
// system is then normalized with one synthetic constraint row per terminus
// forcing the sum of terminal coefficients minus the sum of their interior
// counterparts to zero. Terminal categories never observed in the sample are
// filled in afterwards by regressing terminal coefficients on interior ones;
// a terminus with no estimated pairs at all is left unfilled, and Predict
// reports errs.ErrUnknownCategory for sequences that need it.
//
// CalibrateSearchingFactor additionally searches for the best length
// correction factor with a coarse-to-fine grid search scored by the Pearson
// correlation of predicted versus observed retention times. The search
// assumes the correlation surface is unimodal near the optimum within the
// initial interval; it is a local heuristic with no convergence guarantee.
//
// # Prediction
//
// Model.Predict applies a fitted (or literature) coefficient set to a new
// sequence. All operations are pure functions of their inputs: no call
// mutates its arguments or shares state with other calls, so calibrations
// and predictions may run concurrently.
package calib
