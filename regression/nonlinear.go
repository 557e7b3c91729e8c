package regression

import (
	"fmt"
	"math"

	"github.com/maorshutman/lm"

	"github.com/kelly-tou/scum-code/errs"
)

// curveFunc evaluates a parametric curve at x for the given parameters.
type curveFunc func(params []float64, x float64) float64

// fitCurve fits a nonlinear parametric curve to the data with the
// Levenberg-Marquardt algorithm, starting from init. The Jacobian is
// approximated numerically. Logarithmic and exponential fits build on this
// with model-specific initial guesses.
func fitCurve(x, y []float64, fn curveFunc, init []float64, maxIterations int, tolerance float64) ([]float64, error) {
	if err := validateSamples(x, y, len(init)); err != nil {
		return nil, err
	}

	residuals := func(dst, params []float64) {
		for i := range x {
			dst[i] = fn(params, x[i]) - y[i]
		}
	}

	jac := lm.NumJac{Func: residuals}
	problem := lm.LMProblem{
		Dim:        len(init),
		Size:       len(x),
		Func:       residuals,
		Jac:        jac.Jac,
		InitParams: init,
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	results, err := lm.LM(problem, &lm.Settings{Iterations: maxIterations, ObjectiveTol: tolerance})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrFitDiverged, err)
	}

	for _, param := range results.X {
		if math.IsNaN(param) || math.IsInf(param, 0) {
			return nil, fmt.Errorf("%w: optimizer produced non-finite parameters", errs.ErrFitDiverged)
		}
	}

	return results.X, nil
}
