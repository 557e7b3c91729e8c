package regression

import (
	"fmt"
	"math"

	"github.com/kelly-tou/scum-code/errs"
)

// logarithmicInit seeds the optimizer with the exact least-squares solution
// of the transformed linear problem y = a*u + b where u = ln(x). For clean
// data this is already the optimum and the optimizer converges in a step.
func logarithmicInit(x, y []float64) ([]float64, error) {
	u := make([]float64, len(x))
	for i, xi := range x {
		u[i] = math.Log(xi)
	}

	coeffs, err := fitPolynomial(u, y, 1)
	if err != nil {
		return nil, err
	}

	return []float64{coeffs[1], coeffs[0]}, nil
}

// FitLogarithmic fits a logarithmic curve y = a*ln(x) + b to the data.
//
// All x values must be strictly positive.
//
// Returns:
//   - *LogarithmicEstimator: The fitted curve
//   - error: errs.ErrDomain when any x <= 0, errs.ErrFitDiverged when the
//     optimizer fails, or the sample validation errors of FitPolynomial
func FitLogarithmic(x, y []float64, maxIterations int, tolerance float64) (*LogarithmicEstimator, error) {
	if err := validateSamples(x, y, ModelTypeLogarithmic.freeParams()); err != nil {
		return nil, err
	}
	for i, xi := range x {
		if xi <= 0 {
			return nil, fmt.Errorf("%w: logarithmic fit requires x > 0, got x[%d] = %g", errs.ErrDomain, i, xi)
		}
	}

	init, err := logarithmicInit(x, y)
	if err != nil {
		return nil, err
	}

	fn := func(params []float64, xi float64) float64 {
		return params[0]*math.Log(xi) + params[1]
	}

	params, err := fitCurve(x, y, fn, init, maxIterations, tolerance)
	if err != nil {
		return nil, err
	}

	return NewLogarithmicEstimator(params[0], params[1]), nil
}
