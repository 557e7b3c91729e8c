package regression_test

import (
	"fmt"
	"log"
	"math"

	"github.com/kelly-tou/scum-code/regression"
)

// ExampleFit demonstrates automatic model selection on ADC sweep data.
func ExampleFit() {
	// Readings from a linear ADC transfer region: reading = 3 + 2*scan
	scans := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	readings := []float64{5, 7, 9, 11, 13, 15, 17, 19}

	result, err := regression.Fit(scans, readings, regression.WithModels(regression.ModelTypeLinear))
	if err != nil {
		log.Fatal(err)
	}

	// Print the best-fit model
	fmt.Printf("Best-fit model: %s\n", result.BestFit.Type)
	fmt.Printf("Formula: %s\n", result.BestFit.Formula)
	fmt.Printf("R²: %.4f\n", result.BestFit.RSquared)

	// Use the estimator to predict readings at unmeasured scans
	estimator := result.BestFit.Estimator
	fmt.Printf("Predicted reading at scan 10: %.2f\n", estimator.Estimate(10.0))

	// Output:
	// Best-fit model: linear
	// Formula: y = 3 + 2*x
	// R²: 1.0000
	// Predicted reading at scan 10: 23.00
}

// ExampleFitLinear demonstrates extracting LSB size from an ADC sweep.
func ExampleFitLinear() {
	// ADC readings against a voltage sweep
	voltages := []float64{0.0, 0.2, 0.4, 0.6, 0.8, 1.0}
	readings := []float64{10.0, 60.0, 110.0, 160.0, 210.0, 260.0}

	line, err := regression.FitLinear(voltages, readings)
	if err != nil {
		log.Fatal(err)
	}

	// The inverse slope is the ADC's LSB size in volts
	fmt.Printf("Slope: %.2f counts/V\n", line.Slope())
	fmt.Printf("Offset: %.2f counts\n", line.Intercept())
	fmt.Printf("LSB size: %.4f V\n", 1.0/line.Slope())

	// Output:
	// Slope: 250.00 counts/V
	// Offset: 10.00 counts
	// LSB size: 0.0040 V
}

// ExampleFitExponential demonstrates extracting an RC time constant from a
// discharge transient.
func ExampleFitExponential() {
	// Discharge samples: reading = 2*e^(-0.5*t) + 1
	times := make([]float64, 20)
	readings := make([]float64, 20)
	for i := range times {
		t := float64(i) * 0.3
		times[i] = t
		readings[i] = 2.0*math.Exp(-0.5*t) + 1.0
	}

	decay, err := regression.FitExponential(times, readings, 100, 1e-16)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Time constant: %.2f s\n", decay.TimeConstant())

	// Output:
	// Time constant: 2.00 s
}

// ExampleNewEstimator demonstrates rebuilding an estimator from recorded
// coefficients.
func ExampleNewEstimator() {
	// Coefficients recorded from a previous characterization run
	estimator, err := regression.NewEstimator("logarithmic", []float64{2.0, 5.0})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Model type: %s\n", estimator.Type())
	fmt.Printf("Estimate at x=1: %.2f\n", estimator.Estimate(1.0))
	fmt.Printf("Coefficients: %v\n", estimator.Coefficients())

	// Output:
	// Model type: logarithmic
	// Estimate at x=1: 5.00
	// Coefficients: [2 5]
}
