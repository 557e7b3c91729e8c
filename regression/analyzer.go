package regression

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kelly-tou/scum-code/errs"
	"github.com/kelly-tou/scum-code/internal/options"
)

// Fit fits the configured regression models to the sample data and returns
// a single best-fit model.
//
// All configured models are fitted to the same (x, y) pairs and ranked by R²
// (coefficient of determination). Models whose fit fails, e.g. a logarithmic
// model on data with x <= 0, are skipped; Fit only returns an error when no
// configured model could be fitted.
//
// Parameters:
//   - x: Independent variable samples (e.g. scan counts, elapsed time)
//   - y: Dependent variable samples (e.g. ADC output, measured voltage)
//   - opts: Optional fit configuration, see WithModels, WithPolynomialDegree,
//     WithMaxIterations and WithTolerance
//
// Returns:
//   - *Result: Fit result with best-fit model and all candidate models
//   - error: errs.ErrNoData, errs.ErrLengthMismatch, or the joined fit
//     errors when every configured model failed
//
// Example:
//
//	result, err := regression.Fit(scans, readings)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v := result.BestFit.Estimator.Estimate(100.0) // Predict reading at scan 100
func Fit(x, y []float64, opts ...FitOption) (*Result, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	// Basic sample validation happens once here; per-model minimum point
	// counts are enforced by the individual fits.
	if len(x) == 0 || len(y) == 0 {
		return nil, errs.ErrNoData
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x values vs %d y values", errs.ErrLengthMismatch, len(x), len(y))
	}

	models := make([]*Model, 0, len(cfg.Models))
	fitErrs := make([]error, 0, len(cfg.Models))

	for _, modelType := range cfg.Models {
		model, err := fitModel(modelType, x, y, &cfg)
		if err != nil {
			fitErrs = append(fitErrs, fmt.Errorf("%s: %w", modelType, err))
			continue
		}
		models = append(models, model)
	}

	if len(models) == 0 {
		return nil, errors.Join(fitErrs...)
	}

	// Sort models by R² (best first)
	slices.SortFunc(models, func(a, b *Model) int {
		if a.RSquared > b.RSquared {
			return -1
		}
		if a.RSquared < b.RSquared {
			return 1
		}

		return 0
	})

	return &Result{
		BestFit:   models[0],
		AllModels: models,
	}, nil
}

// fitModel fits a single model type and wraps the estimator with its
// goodness-of-fit statistics.
func fitModel(modelType ModelType, x, y []float64, cfg *FitConfig) (*Model, error) {
	var (
		estimator Estimator
		err       error
	)

	switch modelType {
	case ModelTypeLinear:
		estimator, err = FitLinear(x, y)
	case ModelTypeParabolic:
		estimator, err = FitParabolic(x, y)
	case ModelTypePolynomial:
		estimator, err = FitPolynomial(x, y, cfg.PolynomialDegree)
	case ModelTypeLogarithmic:
		estimator, err = FitLogarithmic(x, y, cfg.MaxIterations, cfg.Tolerance)
	case ModelTypeExponential:
		estimator, err = FitExponential(x, y, cfg.MaxIterations, cfg.Tolerance)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownModel, int(modelType))
	}

	if err != nil {
		return nil, err
	}

	return newModel(estimator, x, y), nil
}

// newModel bundles a fitted estimator with R², RMSE and a printable formula.
func newModel(estimator Estimator, x, y []float64) *Model {
	predicted := make([]float64, len(x))
	for i, xi := range x {
		predicted[i] = estimator.Estimate(xi)
	}

	return &Model{
		Type:         estimator.Type(),
		Coefficients: slices.Clone(estimator.Coefficients()),
		RSquared:     calculateRSquared(y, predicted),
		RMSE:         calculateRMSE(y, predicted),
		Formula:      formatFormula(estimator),
		Estimator:    estimator,
	}
}

// formatFormula renders a fitted model as a human-readable equation, e.g.
// "y = 1.985*ln(x) + 3.012" for log output and plot legends.
func formatFormula(estimator Estimator) string {
	coeffs := estimator.Coefficients()

	switch estimator.Type() {
	case ModelTypeLinear:
		return fmt.Sprintf("y = %.4g + %.4g*x", coeffs[0], coeffs[1])
	case ModelTypeParabolic:
		return fmt.Sprintf("y = %.4g + %.4g*x + %.4g*x²", coeffs[0], coeffs[1], coeffs[2])
	case ModelTypePolynomial:
		return polynomialFormula(coeffs)
	case ModelTypeLogarithmic:
		return fmt.Sprintf("y = %.4g*ln(x) + %.4g", coeffs[0], coeffs[1])
	case ModelTypeExponential:
		return fmt.Sprintf("y = %.4g*e^(%.4g*x) + %.4g", coeffs[0], coeffs[1], coeffs[2])
	default:
		return ""
	}
}

// polynomialFormula renders an ascending coefficient slice as
// "y = c0 + c1*x + c2*x^2 + ...".
func polynomialFormula(coeffs []float64) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "y = %.4g", coeffs[0])
	for i, coeff := range coeffs[1:] {
		if i == 0 {
			fmt.Fprintf(&sb, " + %.4g*x", coeff)
		} else {
			fmt.Fprintf(&sb, " + %.4g*x^%d", coeff, i+1)
		}
	}

	return sb.String()
}
