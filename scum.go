// Package scumcode provides data-analysis utilities for SCuM (Single Chip
// Micro Mote) sensor characterization.
//
// SCuM boards emit capture files of raw measurements: ADC readouts in LSB
// counts, time-constant tick ratios, RSSI samples. This module turns those
// captures into calibrated numbers, fitted models and plots.
//
// # Package Structure
//
//   - regression: curve fitting (linear, parabolic, polynomial, logarithmic,
//     exponential) with ranked model selection
//   - dataset: capture-file tables with grouping and summary statistics
//   - adc: per-board ADC calibration and tick-ratio evaluation
//   - compress: capture-file codecs (zstd, s2, lz4)
//   - plotter: static plot rendering for analysis results
//   - cic: CIC filter decimator simulation
//   - mesh: differential mesh solvers and error simulation
//
// This package provides convenient top-level wrappers around the most common
// flows. For fine-grained control, use the underlying packages directly.
//
// # Basic Usage
//
// Fitting a model to a two-column capture file:
//
//	model, err := scumcode.FitCapture("transient.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model.Formula)
//	v := model.Estimator.Estimate(100.0) // Predict the reading at x = 100
package scumcode

import (
	"github.com/kelly-tou/scum-code/dataset"
	"github.com/kelly-tou/scum-code/internal/hash"
	"github.com/kelly-tou/scum-code/regression"
)

// ReadCapture loads a capture file into a dataset table.
//
// The file's compression codec is selected from its extension, comment lines
// are skipped, and cells are parsed as float64 unless a dataset.ReadOption
// overrides the parser for a column.
//
// Parameters:
//   - path: The capture file to read
//   - opts: Optional parsing configuration (see dataset.WithCellParser,
//     dataset.WithCellParserAt, dataset.WithDefaultCellParser)
//
// Returns:
//   - *dataset.Table: The parsed capture table
//   - error: An error if the file cannot be read or parsed
//
// Example:
//
//	table, err := scumcode.ReadCapture("capture.csv.zst",
//	    dataset.WithCellParser("tau_0", adc.EvalRatio),
//	)
func ReadCapture(path string, opts ...dataset.ReadOption) (*dataset.Table, error) {
	return dataset.Read(path, opts...)
}

// BestFit fits the configured regression models to the samples and returns
// the model with the highest R².
//
// By default every model type is fitted; restrict or tune the candidates
// with regression options.
//
// Parameters:
//   - x: Independent variable samples
//   - y: Dependent variable samples
//   - opts: Optional fit configuration (see regression.WithModels,
//     regression.WithPolynomialDegree, regression.WithMaxIterations,
//     regression.WithTolerance)
//
// Returns:
//   - *regression.Model: The best-fit model
//   - error: An error if no configured model could be fitted
//
// Example:
//
//	model, err := scumcode.BestFit(scans, readings,
//	    regression.WithModels(regression.ModelTypeExponential),
//	)
func BestFit(x, y []float64, opts ...regression.FitOption) (*regression.Model, error) {
	result, err := regression.Fit(x, y, opts...)
	if err != nil {
		return nil, err
	}

	return result.BestFit, nil
}

// FitCapture reads a capture file and fits regression models to its first
// two columns, x then y.
//
// This is the shortest path from a capture file to a fitted model. It
// composes ReadCapture and BestFit with default parsing.
//
// Parameters:
//   - path: The capture file to read
//   - opts: Optional fit configuration, forwarded to BestFit
//
// Returns:
//   - *regression.Model: The best-fit model of column 1 over column 0
//   - error: An error if the capture cannot be read, has fewer than two
//     columns, or no configured model could be fitted
func FitCapture(path string, opts ...regression.FitOption) (*regression.Model, error) {
	table, err := dataset.Read(path)
	if err != nil {
		return nil, err
	}

	x, err := table.ColumnAt(0)
	if err != nil {
		return nil, err
	}
	y, err := table.ColumnAt(1)
	if err != nil {
		return nil, err
	}

	return BestFit(x, y, opts...)
}

// Fingerprint computes the xxHash64 content fingerprint of raw capture
// bytes. It matches the Fingerprint field of tables read by ReadCapture,
// so callers can identify a capture without re-reading it.
func Fingerprint(data []byte) uint64 {
	return hash.Sum(data)
}
