package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kelly-tou/scum-code/errs"
)

// Table is a numeric capture table with named columns.
//
// Data is stored column-major: every column is a contiguous []float64 ready
// for fitting and plotting without further copying.
type Table struct {
	// Path is the file the table was read from.
	Path string
	// Fingerprint is the xxHash64 of the file's raw bytes.
	Fingerprint uint64
	// Columns holds the header names in file order.
	Columns []string

	data [][]float64
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	if len(t.data) == 0 {
		return 0
	}

	return len(t.data[0])
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.Columns)
}

// Column returns the values of the named column.
//
// Returns errs.ErrUnknownColumn when no header matches.
func (t *Table) Column(name string) ([]float64, error) {
	for i, column := range t.Columns {
		if column == name {
			return t.data[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %q", errs.ErrUnknownColumn, name)
}

// ColumnAt returns the values of the column at the given position.
//
// Returns errs.ErrColumnOutOfRange for positions outside the table.
func (t *Table) ColumnAt(index int) ([]float64, error) {
	if index < 0 || index >= len(t.data) {
		return nil, fmt.Errorf("%w: %d (table has %d columns)", errs.ErrColumnOutOfRange, index, len(t.data))
	}

	return t.data[index], nil
}

// Index returns the row indices as float64 values, the x axis of readout
// plots.
func (t *Table) Index() []float64 {
	index := make([]float64, t.NumRows())
	for i := range index {
		index[i] = float64(i)
	}

	return index
}

// ColumnSummary holds the per-column statistics reported by Describe.
type ColumnSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
}

// String renders the summary as a single log-friendly line.
func (s ColumnSummary) String() string {
	return fmt.Sprintf("%s: count=%d mean=%.4g std=%.4g min=%.4g max=%.4g",
		s.Column, s.Count, s.Mean, s.Std, s.Min, s.Max)
}

// Describe returns per-column count, mean, sample standard deviation,
// minimum and maximum. Single-row tables report NaN standard deviations.
func (t *Table) Describe() []ColumnSummary {
	summaries := make([]ColumnSummary, len(t.Columns))
	for i, name := range t.Columns {
		column := t.data[i]
		summaries[i] = ColumnSummary{
			Column: name,
			Count:  len(column),
			Mean:   stat.Mean(column, nil),
			Std:    stat.StdDev(column, nil),
			Min:    floats.Min(column),
			Max:    floats.Max(column),
		}
	}

	return summaries
}
