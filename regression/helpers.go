package regression

import (
	"fmt"
	"math"

	"github.com/kelly-tou/scum-code/errs"
)

// validateSamples checks the common preconditions of every fit: non-empty
// input, matched lengths, and at least minPoints samples where minPoints is
// the model's number of free parameters.
func validateSamples(x, y []float64, minPoints int) error {
	if len(x) == 0 || len(y) == 0 {
		return errs.ErrNoData
	}
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d x values vs %d y values", errs.ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < minPoints {
		return fmt.Errorf("%w: need at least %d points, got %d", errs.ErrInsufficientData, minPoints, len(x))
	}

	return nil
}

// calculateRSquared calculates the coefficient of determination (R²).
//
// R² measures the proportion of variance in the observed values that is
// explained by the model. Values range from 0 to 1 for reasonable fits,
// where 1 indicates a perfect fit. A model that fits worse than the mean
// of the data yields a negative value.
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: Sum of squares of residuals (observed - predicted)²
//   - SS_tot: Total sum of squares (observed - mean)²
//
// Constant observed data (SS_tot = 0) returns 1 when the residuals are also
// zero and 0 otherwise, so a flat line fitted to flat data ranks as perfect.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := calculateMean(observed)
	ssTot := 0.0 // Total sum of squares
	ssRes := 0.0 // Residual sum of squares

	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}

		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// calculateRMSE calculates the root mean square error.
//
// RMSE measures the standard deviation of the residuals in the same units as
// the observed values. Lower values indicate a better fit.
//
// Formula: RMSE = √(Σ(observed - predicted)² / n)
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

// calculateMean calculates the arithmetic mean. Returns 0 for an empty slice.
func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
