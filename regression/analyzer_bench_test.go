package regression

import (
	"fmt"
	"math"
	"testing"
)

// BenchmarkLinearFitting benchmarks linear regression specifically
func BenchmarkLinearFitting(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			x, y := generateBenchmarkData(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = FitLinear(x, y)
			}
		})
	}
}

// BenchmarkParabolicFitting benchmarks parabolic regression
func BenchmarkParabolicFitting(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			x, y := generateBenchmarkData(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = FitParabolic(x, y)
			}
		})
	}
}

// BenchmarkPolynomialFitting benchmarks cubic polynomial regression
func BenchmarkPolynomialFitting(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			x, y := generateBenchmarkData(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = FitPolynomial(x, y, 3)
			}
		})
	}
}

// BenchmarkLogarithmicFitting benchmarks logarithmic regression
func BenchmarkLogarithmicFitting(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			x, y := generateBenchmarkData(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = FitLogarithmic(x, y, 100, 1e-16)
			}
		})
	}
}

// BenchmarkExponentialFitting benchmarks exponential regression
func BenchmarkExponentialFitting(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			x, y := generateDecayData(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = FitExponential(x, y, 100, 1e-16)
			}
		})
	}
}

// BenchmarkFit benchmarks the full multi-model analysis
func BenchmarkFit(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			x, y := generateBenchmarkData(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = Fit(x, y)
			}
		})
	}
}

// BenchmarkEstimatorEstimate benchmarks estimator calculations
func BenchmarkEstimatorEstimate(b *testing.B) {
	estimators := []struct {
		name string
		est  Estimator
	}{
		{"Linear", NewLinearEstimator(3.0, 2.0)},
		{"Parabolic", NewParabolicEstimator(1.0, 2.0, 0.5)},
		{"Polynomial", NewPolynomialEstimator([]float64{1.0, 2.0, 0.5, 0.1})},
		{"Logarithmic", NewLogarithmicEstimator(8.0, 2.0)},
		{"Exponential", NewExponentialEstimator(2.0, -0.5, 1.0)},
	}

	xValues := []float64{0.5, 1, 2, 5, 10, 20}

	for _, est := range estimators {
		b.Run(est.name, func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				for _, x := range xValues {
					_ = est.est.Estimate(x)
				}
			}
		})
	}
}

// BenchmarkStatisticalCalculations benchmarks R² and RMSE calculations
func BenchmarkStatisticalCalculations(b *testing.B) {
	sizes := []int{100, 1000, 10000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Size_%d", size), func(b *testing.B) {
			observed, predicted := generateBenchmarkData(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = calculateRSquared(observed, predicted)
				_ = calculateRMSE(observed, predicted)
			}
		})
	}
}

// generateBenchmarkData creates parabola-like samples with positive x values
// so every model type can fit them.
func generateBenchmarkData(size int) (x, y []float64) {
	x = make([]float64, size)
	y = make([]float64, size)

	for i := 0; i < size; i++ {
		xi := float64(i+1) * 0.01
		x[i] = xi
		y[i] = 1.0 + 2.0*xi + 0.5*xi*xi + 0.1*math.Sin(float64(i))
	}

	return x, y
}

// generateDecayData creates RC-discharge-like samples.
func generateDecayData(size int) (x, y []float64) {
	x = make([]float64, size)
	y = make([]float64, size)

	for i := 0; i < size; i++ {
		xi := float64(i) * (10.0 / float64(size))
		x[i] = xi
		y[i] = 2.0*math.Exp(-0.5*xi) + 1.0 + 0.001*math.Sin(float64(i))
	}

	return x, y
}
