package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/kelly-tou/scum-code/errs"
)

// Estimator defines the interface for evaluating a fitted curve.
type Estimator interface {
	// Estimate evaluates the fitted curve at the given x.
	Estimate(x float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns the model coefficients.
	Coefficients() []float64
	// SetCoefficients updates the coefficients of the model.
	// This allows runtime updates to the estimator without creating a new
	// instance. The number of coefficients must match the model's expected
	// count:
	//   - 2 coefficients: linear, logarithmic
	//   - 3 coefficients: parabolic, exponential
	//   - degree+1 coefficients: polynomial
	SetCoefficients(coeffs []float64) error
}

// LinearEstimator implements the linear model: y = c0 + c1*x
type LinearEstimator struct {
	intercept, slope float64
	coeffs           []float64 // Cached coefficient slice to avoid allocations
}

// NewLinearEstimator creates a new linear estimator with the given
// intercept and slope.
func NewLinearEstimator(intercept, slope float64) *LinearEstimator {
	return &LinearEstimator{
		intercept: intercept,
		slope:     slope,
		coeffs:    make([]float64, 2),
	}
}

// Estimate evaluates the line at x.
func (l *LinearEstimator) Estimate(x float64) float64 {
	return l.intercept + l.slope*x
}

// Type returns the model type.
func (l *LinearEstimator) Type() ModelType {
	return ModelTypeLinear
}

// Slope returns the fitted slope c1.
func (l *LinearEstimator) Slope() float64 {
	return l.slope
}

// Intercept returns the fitted intercept c0.
func (l *LinearEstimator) Intercept() float64 {
	return l.intercept
}

// Coefficients returns the model coefficients [intercept, slope].
func (l *LinearEstimator) Coefficients() []float64 {
	l.coeffs[0] = l.intercept
	l.coeffs[1] = l.slope

	return l.coeffs
}

// SetCoefficients updates the coefficients of the linear model.
// Expects exactly 2 coefficients: [intercept, slope].
func (l *LinearEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("%w: linear model expects exactly 2 coefficients, got %d", errs.ErrInvalidCoefficients, len(coeffs))
	}
	l.intercept = coeffs[0]
	l.slope = coeffs[1]

	return nil
}

// ParabolicEstimator implements the parabolic model: y = c0 + c1*x + c2*x²
type ParabolicEstimator struct {
	c0, c1, c2 float64
	coeffs     []float64 // Cached coefficient slice to avoid allocations
}

// NewParabolicEstimator creates a new parabolic estimator with the given
// coefficients in ascending order.
func NewParabolicEstimator(c0, c1, c2 float64) *ParabolicEstimator {
	return &ParabolicEstimator{
		c0:     c0,
		c1:     c1,
		c2:     c2,
		coeffs: make([]float64, 3),
	}
}

// Estimate evaluates the parabola at x.
func (p *ParabolicEstimator) Estimate(x float64) float64 {
	return p.c0 + p.c1*x + p.c2*x*x
}

// Type returns the model type.
func (p *ParabolicEstimator) Type() ModelType {
	return ModelTypeParabolic
}

// Coefficients returns the model coefficients [c0, c1, c2].
func (p *ParabolicEstimator) Coefficients() []float64 {
	p.coeffs[0] = p.c0
	p.coeffs[1] = p.c1
	p.coeffs[2] = p.c2

	return p.coeffs
}

// SetCoefficients updates the coefficients of the parabolic model.
// Expects exactly 3 coefficients: [c0, c1, c2].
func (p *ParabolicEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 3 {
		return fmt.Errorf("%w: parabolic model expects exactly 3 coefficients, got %d", errs.ErrInvalidCoefficients, len(coeffs))
	}
	p.c0 = coeffs[0]
	p.c1 = coeffs[1]
	p.c2 = coeffs[2]

	return nil
}

// PolynomialEstimator implements a polynomial model of arbitrary degree:
// y = c0 + c1*x + ... + cd*x^d. Coefficients are stored in ascending order.
type PolynomialEstimator struct {
	coeffs []float64
}

// NewPolynomialEstimator creates a new polynomial estimator from ascending
// coefficients. The degree is len(coeffs)-1.
func NewPolynomialEstimator(coeffs []float64) *PolynomialEstimator {
	return &PolynomialEstimator{coeffs: slices.Clone(coeffs)}
}

// Estimate evaluates the polynomial at x using Horner's scheme.
func (p *PolynomialEstimator) Estimate(x float64) float64 {
	y := 0.0
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}

	return y
}

// Type returns the model type.
func (p *PolynomialEstimator) Type() ModelType {
	return ModelTypePolynomial
}

// Degree returns the polynomial degree.
func (p *PolynomialEstimator) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns the model coefficients in ascending order.
func (p *PolynomialEstimator) Coefficients() []float64 {
	return p.coeffs
}

// SetCoefficients updates the coefficients of the polynomial model.
// The coefficient count must match the estimator's degree+1.
func (p *PolynomialEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != len(p.coeffs) {
		return fmt.Errorf("%w: degree-%d polynomial expects %d coefficients, got %d",
			errs.ErrInvalidCoefficients, p.Degree(), len(p.coeffs), len(coeffs))
	}
	copy(p.coeffs, coeffs)

	return nil
}

// LogarithmicEstimator implements the logarithmic model: y = a*ln(x) + b
type LogarithmicEstimator struct {
	a, b   float64
	coeffs []float64 // Cached coefficient slice to avoid allocations
}

// NewLogarithmicEstimator creates a new logarithmic estimator with the given
// coefficients.
func NewLogarithmicEstimator(a, b float64) *LogarithmicEstimator {
	return &LogarithmicEstimator{
		a:      a,
		b:      b,
		coeffs: make([]float64, 2),
	}
}

// Estimate evaluates the logarithmic curve at x.
// Returns NaN outside the model domain (x <= 0).
func (l *LogarithmicEstimator) Estimate(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}

	return l.a*math.Log(x) + l.b
}

// Type returns the model type.
func (l *LogarithmicEstimator) Type() ModelType {
	return ModelTypeLogarithmic
}

// Coefficients returns the model coefficients [a, b].
func (l *LogarithmicEstimator) Coefficients() []float64 {
	l.coeffs[0] = l.a
	l.coeffs[1] = l.b

	return l.coeffs
}

// SetCoefficients updates the coefficients of the logarithmic model.
// Expects exactly 2 coefficients: [a, b] for the formula y = a*ln(x) + b.
func (l *LogarithmicEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("%w: logarithmic model expects exactly 2 coefficients, got %d", errs.ErrInvalidCoefficients, len(coeffs))
	}
	l.a = coeffs[0]
	l.b = coeffs[1]

	return nil
}

// ExponentialEstimator implements the exponential model: y = a*e^(b*x) + c.
// With b < 0 this is the RC discharge curve measured during ADC transient
// characterization.
type ExponentialEstimator struct {
	a, b, c float64
	coeffs  []float64 // Cached coefficient slice to avoid allocations
}

// NewExponentialEstimator creates a new exponential estimator with the given
// coefficients.
func NewExponentialEstimator(a, b, c float64) *ExponentialEstimator {
	return &ExponentialEstimator{
		a:      a,
		b:      b,
		c:      c,
		coeffs: make([]float64, 3),
	}
}

// Estimate evaluates the exponential curve at x.
func (e *ExponentialEstimator) Estimate(x float64) float64 {
	return e.a*math.Exp(e.b*x) + e.c
}

// Type returns the model type.
func (e *ExponentialEstimator) Type() ModelType {
	return ModelTypeExponential
}

// TimeConstant returns the decay time constant -1/b of an RC discharge fit.
// Returns +Inf for b = 0.
func (e *ExponentialEstimator) TimeConstant() float64 {
	if e.b == 0 {
		return math.Inf(1)
	}

	return -1 / e.b
}

// Coefficients returns the model coefficients [a, b, c].
func (e *ExponentialEstimator) Coefficients() []float64 {
	e.coeffs[0] = e.a
	e.coeffs[1] = e.b
	e.coeffs[2] = e.c

	return e.coeffs
}

// SetCoefficients updates the coefficients of the exponential model.
// Expects exactly 3 coefficients: [a, b, c] for the formula y = a*e^(b*x) + c.
func (e *ExponentialEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 3 {
		return fmt.Errorf("%w: exponential model expects exactly 3 coefficients, got %d", errs.ErrInvalidCoefficients, len(coeffs))
	}
	e.a = coeffs[0]
	e.b = coeffs[1]
	e.c = coeffs[2]

	return nil
}

// newEmptyEstimator creates an empty estimator for the given ModelType.
// This is used internally by NewEstimator to create estimators and validate
// coefficients. Polynomial estimators size themselves from coeffCount.
func newEmptyEstimator(modelType ModelType, coeffCount int) Estimator {
	switch modelType {
	case ModelTypeLinear:
		return NewLinearEstimator(0, 0)
	case ModelTypeParabolic:
		return NewParabolicEstimator(0, 0, 0)
	case ModelTypePolynomial:
		if coeffCount < 2 {
			coeffCount = 2
		}
		return NewPolynomialEstimator(make([]float64, coeffCount))
	case ModelTypeLogarithmic:
		return NewLogarithmicEstimator(0, 0)
	case ModelTypeExponential:
		return NewExponentialEstimator(0, 0, 0)
	default:
		return nil
	}
}

// NewEstimator creates a new estimator by name and coefficients.
//
// This factory builds estimator implementations dynamically, e.g. to
// re-evaluate a curve from coefficients recorded in a previous run's log.
//
// Parameters:
//   - name: The model name (case-insensitive): "linear", "parabolic",
//     "polynomial", "logarithmic" or "exponential"
//   - coeffs: The model coefficients. The count must match the model
//     (2 for linear/logarithmic, 3 for parabolic/exponential, any >= 2
//     for polynomial where the degree is len(coeffs)-1)
//
// Returns:
//   - Estimator: The created estimator instance
//   - error: errs.ErrUnknownModel or errs.ErrInvalidCoefficients
//
// Example:
//
//	estimator, err := regression.NewEstimator("exponential", []float64{1.2, -0.5, 0.1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v := estimator.Estimate(3.0)
func NewEstimator(name string, coeffs []float64) (Estimator, error) {
	modelType := ModelTypeFromString(name)
	if modelType == ModelType(-1) {
		// Build list of supported types for the error message
		supportedTypes := make([]string, 0, len(modelTypeNames))
		for _, modelTypeName := range modelTypeNames {
			supportedTypes = append(supportedTypes, modelTypeName)
		}
		slices.Sort(supportedTypes)

		return nil, fmt.Errorf("%w: %s (supported: %s)", errs.ErrUnknownModel, name, strings.Join(supportedTypes, ", "))
	}

	estimator := newEmptyEstimator(modelType, len(coeffs))
	if estimator == nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownModel, name)
	}

	// SetCoefficients validates the coefficient count
	if err := estimator.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return estimator, nil
}
