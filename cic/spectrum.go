package cic

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/kelly-tou/scum-code/errs"
)

// SpectrumMagnitude calculates the magnitude of the signal's spectrum.
//
// The signal is zero-padded or truncated to the FFT length. The returned
// omega axis spans [0, 2π) in radians per sample, one bin per magnitude
// value.
//
// Returns errs.ErrInvalidFFTLength for lengths below 1.
func SpectrumMagnitude(signal []float64, length int) (omega, magnitude []float64, err error) {
	if length < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", errs.ErrInvalidFFTLength, length)
	}

	sequence := make([]complex128, length)
	for i := 0; i < length && i < len(signal); i++ {
		sequence[i] = complex(signal[i], 0)
	}

	fft := fourier.NewCmplxFFT(length)
	coefficients := fft.Coefficients(nil, sequence)

	omega = make([]float64, length)
	magnitude = make([]float64, length)
	for k, coefficient := range coefficients {
		omega[k] = 2 * math.Pi * float64(k) / float64(length)
		magnitude[k] = cmplx.Abs(coefficient)
	}

	return omega, magnitude, nil
}
