package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/kelly-tou/scum-code/errs"
)

// vandermonde builds the Vandermonde design matrix for a polynomial fit of
// the given degree: row i is [1, x[i], x[i]², ..., x[i]^degree].
func vandermonde(x []float64, degree int) *mat.Dense {
	v := mat.NewDense(len(x), degree+1, nil)
	for i, xi := range x {
		p := 1.0
		for j := 0; j <= degree; j++ {
			v.Set(i, j, p)
			p *= xi
		}
	}

	return v
}

// fitPolynomial solves the least-squares polynomial fit of the given degree
// via QR decomposition of the Vandermonde matrix. Coefficients are returned
// in ascending order: [c0, c1, ..., cd].
func fitPolynomial(x, y []float64, degree int) ([]float64, error) {
	if err := validateSamples(x, y, degree+1); err != nil {
		return nil, err
	}

	a := vandermonde(x, degree)
	b := mat.NewVecDense(len(y), y)

	var qr mat.QR
	qr.Factorize(a)

	c := mat.NewVecDense(degree+1, nil)
	if err := qr.SolveVecTo(c, false, b); err != nil {
		return nil, fmt.Errorf("%w: degree-%d fit on %d points: %v", errs.ErrSingular, degree, len(x), err)
	}

	coeffs := c.RawVector().Data
	for _, coeff := range coeffs {
		if math.IsNaN(coeff) || math.IsInf(coeff, 0) {
			return nil, fmt.Errorf("%w: degree-%d fit produced non-finite coefficients", errs.ErrSingular, degree)
		}
	}

	return coeffs, nil
}

// FitPolynomial fits a polynomial of the given degree to the data by
// least squares.
//
// Coefficients are returned inside the estimator in ascending order, so
// Coefficients()[k] multiplies x^k.
//
// Returns:
//   - *PolynomialEstimator: The fitted polynomial
//   - error: errs.ErrNoData, errs.ErrLengthMismatch, errs.ErrInsufficientData
//     when fewer than degree+1 points are given, or errs.ErrSingular when the
//     normal system cannot be solved (e.g. duplicate x values)
func FitPolynomial(x, y []float64, degree int) (*PolynomialEstimator, error) {
	if degree < 1 {
		return nil, fmt.Errorf("%w: polynomial degree must be >= 1, got %d", errs.ErrInvalidCoefficients, degree)
	}

	coeffs, err := fitPolynomial(x, y, degree)
	if err != nil {
		return nil, err
	}

	return &PolynomialEstimator{coeffs: coeffs}, nil
}

// FitLinear fits a straight line y = c0 + c1*x to the data by least squares.
//
// Returns:
//   - *LinearEstimator: The fitted line, exposing Slope() and Intercept()
//   - error: see FitPolynomial
func FitLinear(x, y []float64) (*LinearEstimator, error) {
	coeffs, err := fitPolynomial(x, y, 1)
	if err != nil {
		return nil, err
	}

	return NewLinearEstimator(coeffs[0], coeffs[1]), nil
}

// FitParabolic fits a parabola y = c0 + c1*x + c2*x² to the data by
// least squares.
//
// Returns:
//   - *ParabolicEstimator: The fitted parabola
//   - error: see FitPolynomial
func FitParabolic(x, y []float64) (*ParabolicEstimator, error) {
	coeffs, err := fitPolynomial(x, y, 2)
	if err != nil {
		return nil, err
	}

	return NewParabolicEstimator(coeffs[0], coeffs[1], coeffs[2]), nil
}
