// Package regression provides curve fitting for SCuM sensor characterization data.
//
// This package fits candidate models to paired (x, y) samples collected from
// the Single Chip Micro Mote, e.g. ADC readings against a voltage sweep or an
// RC discharge transient against time, and selects the best-fit model for
// calibration and reporting.
//
// # Key Features
//
//   - **Multiple Model Types**: Supports linear, parabolic, polynomial,
//     logarithmic and exponential models
//   - **Automatic Model Selection**: Chooses the best-fit model based on R² coefficient
//   - **Direct Fits**: Each model is also available as a standalone fit
//     function returning a typed estimator
//   - **Robust Numerics**: Polynomial fits solve the least-squares system by
//     QR decomposition; nonlinear fits use Levenberg-Marquardt with
//     model-specific initial guesses
//
// # Usage Patterns
//
// ## Automatic Model Selection
//
// Fit all candidate models and pick the best:
//
//	result, err := regression.Fit(scans, readings)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Use the best-fit estimator for predictions
//	estimator := result.BestFit.Estimator
//	v := estimator.Estimate(100.0) // Predict the reading at scan 100
//
// ## Direct Fits
//
// Fit a known model shape and use its typed accessors:
//
//	line, err := regression.FitLinear(voltages, readings)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("LSB size: %.4f V (offset %.4f)\n", line.Slope(), line.Intercept())
//
//	decay, err := regression.FitExponential(times, readings, 100, 1e-16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("RC time constant: %.4g s\n", decay.TimeConstant())
//
// ## Model Comparison
//
// Compare all candidate models to understand their performance:
//
//	for _, model := range result.AllModels {
//	    fmt.Printf("%s: R²=%.4f, Formula=%s\n", model.Type, model.RSquared, model.Formula)
//	}
//
// # Model Types
//
// The package supports five regression models:
//
//   - **Linear**: y = c0 + c1*x
//   - **Parabolic**: y = c0 + c1*x + c2*x²
//   - **Polynomial**: y = c0 + c1*x + ... + cd*x^d (configurable degree)
//   - **Logarithmic**: y = a*ln(x) + b (requires x > 0)
//   - **Exponential**: y = a*e^(b*x) + c
//
// The best-fit model is automatically selected based on the highest R² coefficient.
//
// # Coefficient Order
//
// Polynomial-family coefficients are ascending: Coefficients()[k] multiplies
// x^k. Logarithmic coefficients are [a, b] for y = a*ln(x) + b, and
// exponential coefficients are [a, b, c] for y = a*e^(b*x) + c.
//
// # Failure Modes
//
// Fits fail with sentinel errors from the errs package:
//
//   - errs.ErrNoData / errs.ErrLengthMismatch: malformed input samples
//   - errs.ErrInsufficientData: fewer points than the model's free parameters
//   - errs.ErrDomain: logarithmic fit with x <= 0
//   - errs.ErrSingular: degenerate least-squares system (e.g. all x equal)
//   - errs.ErrFitDiverged: nonlinear optimizer failed to converge
//
// Test the cause with errors.Is.
package regression
