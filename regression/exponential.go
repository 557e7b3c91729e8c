package regression

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// exponentialInit seeds the optimizer for y = a*e^(b*x) + c by shifting the
// data slightly below its minimum and fitting ln(y - shift) linearly in x.
// The shift keeps the logarithm defined for the sample closest to the
// asymptote. Falls back to a crude guess when the transform fit fails, e.g.
// for non-monotonic data.
func exponentialInit(x, y []float64) []float64 {
	yMin := floats.Min(y)
	yMax := floats.Max(y)
	shift := yMin - 1e-3*(yMax-yMin)
	if yMax == yMin {
		shift = yMin - 1e-3
	}

	u := make([]float64, len(y))
	for i, yi := range y {
		u[i] = math.Log(yi - shift)
	}

	coeffs, err := fitPolynomial(x, u, 1)
	if err != nil {
		return []float64{yMax - yMin, -1, yMin}
	}

	return []float64{math.Exp(coeffs[0]), coeffs[1], shift}
}

// FitExponential fits an exponential curve y = a*e^(b*x) + c to the data.
//
// For an RC discharge transient b is negative and the decay time constant is
// available as TimeConstant() on the returned estimator.
//
// Returns:
//   - *ExponentialEstimator: The fitted curve
//   - error: errs.ErrFitDiverged when the optimizer fails, or the sample
//     validation errors of FitPolynomial
func FitExponential(x, y []float64, maxIterations int, tolerance float64) (*ExponentialEstimator, error) {
	if err := validateSamples(x, y, ModelTypeExponential.freeParams()); err != nil {
		return nil, err
	}

	fn := func(params []float64, xi float64) float64 {
		return params[0]*math.Exp(params[1]*xi) + params[2]
	}

	params, err := fitCurve(x, y, fn, exponentialInit(x, y), maxIterations, tolerance)
	if err != nil {
		return nil, err
	}

	return NewExponentialEstimator(params[0], params[1], params[2]), nil
}
