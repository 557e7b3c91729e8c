// Package cic simulates SCuM's cascaded integrator-comb (CIC) decimation
// filter.
//
// The hardware filter integrates the oversampled ADC bitstream N times,
// decimates by R, and differentiates N times with a comb stage. Decimator
// reproduces that pipeline over float64 samples so filter responses can be
// checked against captures before committing tap choices to silicon.
package cic

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kelly-tou/scum-code/errs"
)

// Decimator is a CIC filter with decimation factor R and N
// integrator/comb stages.
type Decimator struct {
	r, n     int
	taps     []float64
	combDiff []float64
}

// New creates a CIC decimator.
//
// Parameters:
//   - r: Decimation factor, at least 1
//   - n: Number of integrator/comb stages, at least 1
//   - taps: Optional comb filter taps. Defaults to a single unit tap. Taps
//     are normalized by their mean, and the tap count must divide r.
//
// Returns errs.ErrInvalidDecimation, errs.ErrInvalidStages,
// errs.ErrTapsNotDivisor or errs.ErrInvalidTaps for invalid parameters.
func New(r, n int, taps ...float64) (*Decimator, error) {
	if r < 1 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidDecimation, r)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidStages, n)
	}

	if len(taps) == 0 {
		taps = []float64{1}
	} else {
		taps = slices.Clone(taps)
	}
	if r%len(taps) != 0 {
		return nil, fmt.Errorf("%w: %d taps for decimation factor %d", errs.ErrTapsNotDivisor, len(taps), r)
	}

	// Normalize the taps by their mean
	mean := stat.Mean(taps, nil)
	if mean == 0 {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidTaps, taps)
	}
	floats.Scale(1/mean, taps)

	return &Decimator{
		r:        r,
		n:        n,
		taps:     taps,
		combDiff: combDiff(taps),
	}, nil
}

// Decimation returns the decimation factor R.
func (d *Decimator) Decimation() int {
	return d.r
}

// Stages returns the number of integrator/comb stages N.
func (d *Decimator) Stages() int {
	return d.n
}

// Taps returns the normalized comb filter taps.
func (d *Decimator) Taps() []float64 {
	return slices.Clone(d.taps)
}

// Filter filters and decimates the given signal.
//
// With downsampling enabled the output has roughly len(signal)/R samples;
// without it the full filtered signal is returned. Boundary effects appear
// only at the beginning of the output.
func (d *Decimator) Filter(signal []float64, downsampling bool) []float64 {
	downsamplingRatio := d.r / len(d.taps)

	// Repeated integration grows the running sums without bound, so deeper
	// filters convolve with the expanded comb response instead.
	if d.n <= 4 && downsampling {
		// Integrate the signal N times
		integrated := slices.Clone(signal)
		for range d.n {
			cumsum(integrated)
		}

		// Downsample the integrated signal to reduce the number of comb
		// filter taps
		downsampled := downsample(integrated, downsamplingRatio)

		// Apply the difference comb filter N times
		combed := downsampled
		for range d.n {
			combed = convolve(combed, d.combDiff)
		}

		return downsample(combed, len(d.taps))
	}

	// Expand the comb filter to filter before downsampling
	expanded := make([]float64, 0, len(d.taps)*downsamplingRatio)
	for _, tap := range d.taps {
		for range downsamplingRatio {
			expanded = append(expanded, tap)
		}
	}

	filtered := signal
	for range d.n {
		filtered = convolve(filtered, expanded)
	}

	if downsampling {
		return downsample(filtered, d.r)
	}

	return filtered
}

// cumsum replaces the signal with its running sum in place.
func cumsum(signal []float64) {
	for i := 1; i < len(signal); i++ {
		signal[i] += signal[i-1]
	}
}

// downsample keeps every factor-th sample starting at the first.
func downsample(signal []float64, factor int) []float64 {
	if factor <= 1 {
		return signal
	}

	out := make([]float64, 0, (len(signal)+factor-1)/factor)
	for i := 0; i < len(signal); i += factor {
		out = append(out, signal[i])
	}

	return out
}

// convolve convolves two signals, keeping boundary effects only at the
// beginning: the full convolution is truncated to the longer input's length.
func convolve(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]float64, max(len(a), len(b)))
	for i := range a {
		for j := range b {
			if n := i + j; n < len(out) {
				out[n] += a[i] * b[j]
			}
		}
	}

	return out
}

// combDiff returns the first difference of the zero-padded comb taps, the
// coefficients applied after integration.
func combDiff(taps []float64) []float64 {
	diff := make([]float64, len(taps)+1)
	for i := range diff {
		var prev, next float64
		if i > 0 {
			prev = taps[i-1]
		}
		if i < len(taps) {
			next = taps[i]
		}
		diff[i] = next - prev
	}

	return diff
}
