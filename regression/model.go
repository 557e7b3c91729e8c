package regression

import (
	"fmt"
	"strings"
)

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypeLinear represents the linear model: y = c0 + c1*x
	ModelTypeLinear ModelType = iota
	// ModelTypeParabolic represents the parabolic model: y = c0 + c1*x + c2*x²
	ModelTypeParabolic
	// ModelTypePolynomial represents a polynomial model of configurable degree.
	ModelTypePolynomial
	// ModelTypeLogarithmic represents the logarithmic model: y = a*ln(x) + b
	ModelTypeLogarithmic
	// ModelTypeExponential represents the exponential model: y = a*e^(b*x) + c
	ModelTypeExponential
)

// modelTypeNames maps ModelType to their string representations.
var modelTypeNames = map[ModelType]string{
	ModelTypeLinear:      "linear",
	ModelTypeParabolic:   "parabolic",
	ModelTypePolynomial:  "polynomial",
	ModelTypeLogarithmic: "logarithmic",
	ModelTypeExponential: "exponential",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// modelTypeFromString maps string names to ModelType.
var modelTypeFromString = map[string]ModelType{
	"linear":      ModelTypeLinear,
	"parabolic":   ModelTypeParabolic,
	"polynomial":  ModelTypePolynomial,
	"logarithmic": ModelTypeLogarithmic,
	"exponential": ModelTypeExponential,
}

// ModelTypeFromString returns the ModelType for a given string name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	if modelType, exists := modelTypeFromString[strings.ToLower(name)]; exists {
		return modelType
	}

	return ModelType(-1) // Invalid ModelType
}

// freeParams returns the number of free parameters of the model type.
// Polynomial models depend on their degree; degree+1 applies instead.
func (mt ModelType) freeParams() int {
	switch mt {
	case ModelTypeLinear, ModelTypeLogarithmic:
		return 2
	case ModelTypeParabolic, ModelTypeExponential:
		return 3
	case ModelTypePolynomial:
		return 2 // Degree-1 minimum; fits validate against the actual degree.
	default:
		return 0
	}
}

// Model represents a fitted regression model with metadata and the concrete
// estimator.
//
// Fields:
//   - Type: The mathematical model type
//   - Coefficients: The fitted parameters of the model
//   - RSquared: Coefficient of determination (0-1, higher is better)
//   - RMSE: Root mean square error (lower is better)
//   - Formula: Human-readable mathematical formula
//   - Estimator: Concrete implementation for evaluating the fitted curve
type Model struct {
	// Type is the model type.
	Type ModelType
	// Coefficients contains the fitted model coefficients.
	Coefficients []float64
	// RSquared is the coefficient of determination (goodness of fit, 0-1).
	RSquared float64
	// RMSE is the root mean square error.
	RMSE float64
	// Formula is a human-readable representation of the fitted curve.
	Formula string
	// Estimator is the concrete estimator implementation.
	Estimator Estimator
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Result represents the result of fitting multiple candidate models to the
// same samples.
//
// BestFit is selected by the highest R² value; AllModels keeps every
// successfully fitted candidate ranked best first so callers can compare
// alternatives.
type Result struct {
	// BestFit is the best-fit model (highest R²).
	BestFit *Model
	// AllModels contains all candidate models ranked by R² (best first).
	AllModels []*Model
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d}",
		r.BestFit, len(r.AllModels))
}
