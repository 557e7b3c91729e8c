package regression

import (
	"fmt"

	"github.com/kelly-tou/scum-code/errs"
	"github.com/kelly-tou/scum-code/internal/options"
)

// FitConfig holds configuration for the Fit entry point.
type FitConfig struct {
	// Models is the list of model types fitted and ranked by Fit.
	Models []ModelType
	// PolynomialDegree is the degree used by ModelTypePolynomial.
	PolynomialDegree int
	// MaxIterations caps the optimizer iterations of nonlinear fits.
	MaxIterations int
	// Tolerance is the objective tolerance that stops nonlinear fits.
	Tolerance float64
}

// defaultFitConfig returns the default config: all model types, cubic
// polynomial, and optimizer limits that converge for typical capture sizes.
func defaultFitConfig() FitConfig {
	return FitConfig{
		Models: []ModelType{
			ModelTypeLinear,
			ModelTypeParabolic,
			ModelTypePolynomial,
			ModelTypeLogarithmic,
			ModelTypeExponential,
		},
		PolynomialDegree: 3,
		MaxIterations:    100,
		Tolerance:        1e-16,
	}
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithModels restricts the fit to the given model types.
func WithModels(models ...ModelType) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if len(models) == 0 {
			return fmt.Errorf("%w: at least one model type required", errs.ErrUnknownModel)
		}
		for _, modelType := range models {
			if _, ok := modelTypeNames[modelType]; !ok {
				return fmt.Errorf("%w: %d", errs.ErrUnknownModel, int(modelType))
			}
		}
		cfg.Models = models

		return nil
	})
}

// WithPolynomialDegree sets the degree of the polynomial model.
func WithPolynomialDegree(degree int) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if degree < 1 {
			return fmt.Errorf("%w: polynomial degree must be >= 1, got %d", errs.ErrInvalidCoefficients, degree)
		}
		cfg.PolynomialDegree = degree

		return nil
	})
}

// WithMaxIterations caps the iterations of nonlinear model fits.
func WithMaxIterations(iterations int) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if iterations < 1 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidIterations, iterations)
		}
		cfg.MaxIterations = iterations

		return nil
	})
}

// WithTolerance sets the objective tolerance of nonlinear model fits.
func WithTolerance(tolerance float64) FitOption {
	return options.NoError(func(cfg *FitConfig) {
		cfg.Tolerance = tolerance
	})
}
