package regression

import (
	"errors"
	"math"
	"testing"

	"github.com/kelly-tou/scum-code/errs"
)

// TestEstimatorImplementations tests the concrete estimator implementations.
func TestEstimatorImplementations(t *testing.T) {
	tests := []struct {
		name      string
		estimator Estimator
		x         float64
		expected  float64
		coeffs    int
	}{
		{
			name:      "LinearEstimator",
			estimator: NewLinearEstimator(3.0, 2.0),
			x:         4.0,
			expected:  11.0, // 3.0 + 2.0*4.0
			coeffs:    2,
		},
		{
			name:      "ParabolicEstimator",
			estimator: NewParabolicEstimator(1.0, -2.0, 0.5),
			x:         4.0,
			expected:  1.0, // 1.0 - 2.0*4.0 + 0.5*16.0
			coeffs:    3,
		},
		{
			name:      "PolynomialEstimator",
			estimator: NewPolynomialEstimator([]float64{1.0, 0.0, 2.0}),
			x:         3.0,
			expected:  19.0, // 1.0 + 0.0*3.0 + 2.0*9.0
			coeffs:    3,
		},
		{
			name:      "LogarithmicEstimator",
			estimator: NewLogarithmicEstimator(2.0, 5.0),
			x:         100.0,
			expected:  2.0*math.Log(100.0) + 5.0,
			coeffs:    2,
		},
		{
			name:      "ExponentialEstimator",
			estimator: NewExponentialEstimator(2.0, -0.5, 1.0),
			x:         2.0,
			expected:  2.0*math.Exp(-1.0) + 1.0,
			coeffs:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := tt.estimator.Estimate(tt.x)
			if math.Abs(actual-tt.expected) > 1e-10 {
				t.Errorf("Estimate() = %f, expected %f", actual, tt.expected)
			}

			coeffs := tt.estimator.Coefficients()
			if len(coeffs) != tt.coeffs {
				t.Errorf("Expected %d coefficients, got %d", tt.coeffs, len(coeffs))
			}
		})
	}
}

// TestLogarithmicEstimatorDomain verifies the out-of-domain behavior.
func TestLogarithmicEstimatorDomain(t *testing.T) {
	logarithmic := NewLogarithmicEstimator(2.0, 5.0)

	if !math.IsNaN(logarithmic.Estimate(0)) {
		t.Error("LogarithmicEstimator should return NaN for x = 0")
	}
	if !math.IsNaN(logarithmic.Estimate(-1)) {
		t.Error("LogarithmicEstimator should return NaN for negative x")
	}
}

// TestLinearEstimatorAccessors tests the Slope and Intercept accessors.
func TestLinearEstimatorAccessors(t *testing.T) {
	line := NewLinearEstimator(3.5, -0.25)

	if line.Intercept() != 3.5 {
		t.Errorf("Intercept() = %f, expected 3.5", line.Intercept())
	}
	if line.Slope() != -0.25 {
		t.Errorf("Slope() = %f, expected -0.25", line.Slope())
	}
}

// TestPolynomialEstimatorDegree tests the Degree accessor.
func TestPolynomialEstimatorDegree(t *testing.T) {
	cubic := NewPolynomialEstimator([]float64{1, 2, 3, 4})
	if cubic.Degree() != 3 {
		t.Errorf("Degree() = %d, expected 3", cubic.Degree())
	}
}

// TestExponentialTimeConstant tests the RC time constant accessor.
func TestExponentialTimeConstant(t *testing.T) {
	decay := NewExponentialEstimator(2.0, -0.5, 1.0)
	if math.Abs(decay.TimeConstant()-2.0) > 1e-12 {
		t.Errorf("TimeConstant() = %f, expected 2.0", decay.TimeConstant())
	}

	flat := NewExponentialEstimator(2.0, 0, 1.0)
	if !math.IsInf(flat.TimeConstant(), 1) {
		t.Errorf("TimeConstant() = %f, expected +Inf for b = 0", flat.TimeConstant())
	}
}

// TestSetCoefficients tests coefficient updates and validation for each
// estimator type.
func TestSetCoefficients(t *testing.T) {
	t.Run("Linear", func(t *testing.T) {
		line := NewLinearEstimator(0, 0)
		if err := line.SetCoefficients([]float64{1.0, 2.0}); err != nil {
			t.Fatalf("SetCoefficients failed: %v", err)
		}
		if got := line.Estimate(3.0); got != 7.0 {
			t.Errorf("Estimate(3.0) = %f after update, expected 7.0", got)
		}

		err := line.SetCoefficients([]float64{1.0})
		if !errors.Is(err, errs.ErrInvalidCoefficients) {
			t.Errorf("Expected ErrInvalidCoefficients for wrong count, got %v", err)
		}
	})

	t.Run("Parabolic", func(t *testing.T) {
		parabola := NewParabolicEstimator(0, 0, 0)
		if err := parabola.SetCoefficients([]float64{1.0, 0.0, 1.0}); err != nil {
			t.Fatalf("SetCoefficients failed: %v", err)
		}
		if got := parabola.Estimate(2.0); got != 5.0 {
			t.Errorf("Estimate(2.0) = %f after update, expected 5.0", got)
		}

		err := parabola.SetCoefficients([]float64{1.0, 2.0})
		if !errors.Is(err, errs.ErrInvalidCoefficients) {
			t.Errorf("Expected ErrInvalidCoefficients for wrong count, got %v", err)
		}
	})

	t.Run("Polynomial", func(t *testing.T) {
		cubic := NewPolynomialEstimator(make([]float64, 4))
		if err := cubic.SetCoefficients([]float64{0, 0, 0, 1}); err != nil {
			t.Fatalf("SetCoefficients failed: %v", err)
		}
		if got := cubic.Estimate(2.0); got != 8.0 {
			t.Errorf("Estimate(2.0) = %f after update, expected 8.0", got)
		}

		err := cubic.SetCoefficients([]float64{1, 2})
		if !errors.Is(err, errs.ErrInvalidCoefficients) {
			t.Errorf("Expected ErrInvalidCoefficients for degree mismatch, got %v", err)
		}
	})

	t.Run("Logarithmic", func(t *testing.T) {
		logarithmic := NewLogarithmicEstimator(0, 0)
		if err := logarithmic.SetCoefficients([]float64{2.0, 5.0}); err != nil {
			t.Fatalf("SetCoefficients failed: %v", err)
		}
		if got := logarithmic.Estimate(1.0); got != 5.0 {
			t.Errorf("Estimate(1.0) = %f after update, expected 5.0", got)
		}

		err := logarithmic.SetCoefficients(nil)
		if !errors.Is(err, errs.ErrInvalidCoefficients) {
			t.Errorf("Expected ErrInvalidCoefficients for nil coefficients, got %v", err)
		}
	})

	t.Run("Exponential", func(t *testing.T) {
		decay := NewExponentialEstimator(0, 0, 0)
		if err := decay.SetCoefficients([]float64{2.0, 0.0, 1.0}); err != nil {
			t.Fatalf("SetCoefficients failed: %v", err)
		}
		if got := decay.Estimate(10.0); got != 3.0 {
			t.Errorf("Estimate(10.0) = %f after update, expected 3.0", got)
		}

		err := decay.SetCoefficients([]float64{1.0, 2.0, 3.0, 4.0})
		if !errors.Is(err, errs.ErrInvalidCoefficients) {
			t.Errorf("Expected ErrInvalidCoefficients for wrong count, got %v", err)
		}
	})
}

// TestNewEstimator tests the estimator factory.
func TestNewEstimator(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		coeffs   []float64
		x        float64
		expected float64
	}{
		{name: "Linear", model: "linear", coeffs: []float64{1.0, 2.0}, x: 3.0, expected: 7.0},
		{name: "LinearMixedCase", model: "Linear", coeffs: []float64{1.0, 2.0}, x: 3.0, expected: 7.0},
		{name: "Parabolic", model: "parabolic", coeffs: []float64{1.0, 0.0, 1.0}, x: 2.0, expected: 5.0},
		{name: "Cubic", model: "polynomial", coeffs: []float64{0.0, 0.0, 0.0, 1.0}, x: 2.0, expected: 8.0},
		{name: "Logarithmic", model: "logarithmic", coeffs: []float64{2.0, 5.0}, x: 1.0, expected: 5.0},
		{name: "Exponential", model: "exponential", coeffs: []float64{2.0, 0.0, 1.0}, x: 4.0, expected: 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimator, err := NewEstimator(tt.model, tt.coeffs)
			if err != nil {
				t.Fatalf("NewEstimator failed: %v", err)
			}

			actual := estimator.Estimate(tt.x)
			if math.Abs(actual-tt.expected) > 1e-10 {
				t.Errorf("Estimate(%g) = %f, expected %f", tt.x, actual, tt.expected)
			}
		})
	}
}

// TestNewEstimatorErrors tests factory error handling.
func TestNewEstimatorErrors(t *testing.T) {
	t.Run("UnknownModel", func(t *testing.T) {
		_, err := NewEstimator("hyperbolic", []float64{1.0, 2.0})
		if !errors.Is(err, errs.ErrUnknownModel) {
			t.Errorf("Expected ErrUnknownModel, got %v", err)
		}
	})

	t.Run("WrongCoefficientCount", func(t *testing.T) {
		_, err := NewEstimator("linear", []float64{1.0, 2.0, 3.0})
		if !errors.Is(err, errs.ErrInvalidCoefficients) {
			t.Errorf("Expected ErrInvalidCoefficients, got %v", err)
		}
	})

	t.Run("PolynomialTooFewCoefficients", func(t *testing.T) {
		_, err := NewEstimator("polynomial", []float64{1.0})
		if !errors.Is(err, errs.ErrInvalidCoefficients) {
			t.Errorf("Expected ErrInvalidCoefficients, got %v", err)
		}
	})
}

// TestModelTypeString tests the String method of ModelType.
func TestModelTypeString(t *testing.T) {
	tests := []struct {
		modelType ModelType
		expected  string
	}{
		{ModelTypeLinear, "linear"},
		{ModelTypeParabolic, "parabolic"},
		{ModelTypePolynomial, "polynomial"},
		{ModelTypeLogarithmic, "logarithmic"},
		{ModelTypeExponential, "exponential"},
		{ModelType(999), "unknown"},
	}

	for _, tt := range tests {
		actual := tt.modelType.String()
		if actual != tt.expected {
			t.Errorf("ModelType.String() = %s, expected %s", actual, tt.expected)
		}
	}
}

// TestModelTypeFromString tests the reverse mapping of model names.
func TestModelTypeFromString(t *testing.T) {
	tests := []struct {
		name     string
		expected ModelType
	}{
		{"linear", ModelTypeLinear},
		{"parabolic", ModelTypeParabolic},
		{"polynomial", ModelTypePolynomial},
		{"logarithmic", ModelTypeLogarithmic},
		{"exponential", ModelTypeExponential},
		{"Exponential", ModelTypeExponential},
		{"hyperbolic", ModelType(-1)},
		{"", ModelType(-1)},
	}

	for _, tt := range tests {
		actual := ModelTypeFromString(tt.name)
		if actual != tt.expected {
			t.Errorf("ModelTypeFromString(%q) = %v, expected %v", tt.name, actual, tt.expected)
		}
	}
}
