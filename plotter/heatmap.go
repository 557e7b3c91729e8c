package plotter

import (
	"fmt"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"

	"github.com/kelly-tou/scum-code/errs"
)

// nodeGrid adapts a row-major value slice to the plotter.GridXYZ interface.
// Rows and columns are numbered from 1 to match mesh node layouts.
type nodeGrid struct {
	rows, cols int
	values     []float64
}

func (g nodeGrid) Dims() (c, r int)   { return g.cols, g.rows }
func (g nodeGrid) Z(c, r int) float64 { return g.values[r*g.cols+c] }
func (g nodeGrid) X(c int) float64    { return float64(c + 1) }
func (g nodeGrid) Y(r int) float64    { return float64(r + 1) }

// AddHeatMap draws a rows x cols heat map of the given row-major values.
//
// Parameters:
//   - rows: Number of grid rows, drawn bottom to top
//   - cols: Number of grid columns, drawn left to right
//   - values: Cell values in row-major order, len(values) == rows*cols
//
// Returns:
//   - error: errs.ErrNoData for non-positive dimensions, or
//     errs.ErrLengthMismatch when the value count does not match the grid
func (p *Plot) AddHeatMap(rows, cols int, values []float64) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: %dx%d heat map", errs.ErrNoData, rows, cols)
	}
	if len(values) != rows*cols {
		return fmt.Errorf("%w: %d values for a %dx%d heat map", errs.ErrLengthMismatch, len(values), rows, cols)
	}

	grid := nodeGrid{rows: rows, cols: cols, values: values}
	p.p.Add(plotter.NewHeatMap(grid, palette.Heat(12, 1)))

	return nil
}
