package plotter

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// AlignedPair is a pair of vertically stacked plot panels that share an x
// axis, such as the muxed ADC voltages above their time constants.
type AlignedPair struct {
	// Top is the upper panel.
	Top *Plot
	// Bottom is the lower panel, which usually carries the x axis label.
	Bottom *Plot
}

// NewAlignedPair creates an aligned pair from two panels.
func NewAlignedPair(top, bottom *Plot) *AlignedPair {
	return &AlignedPair{Top: top, Bottom: bottom}
}

// Save renders both panels onto one PNG canvas with their x axes aligned
// and spanning the same range.
func (a *AlignedPair) Save(path string, width, height vg.Length) error {
	a.shareXRange()

	img := vgimg.New(width, height)
	canvases := plot.Align(
		[][]*plot.Plot{{a.Top.p}, {a.Bottom.p}},
		draw.Tiles{Rows: 2, Cols: 1, PadY: vg.Millimeter * 2},
		draw.New(img),
	)
	a.Top.p.Draw(canvases[0][0])
	a.Bottom.p.Draw(canvases[1][0])

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plot file %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write plot %s: %w", path, err)
	}

	return nil
}

// shareXRange widens both panels' x axes to their common data range. A
// panel without data adopts its sibling's range.
func (a *AlignedPair) shareXRange() {
	top, bottom := &a.Top.p.X, &a.Bottom.p.X
	xmin := math.Min(top.Min, bottom.Min)
	xmax := math.Max(top.Max, bottom.Max)
	top.Min, bottom.Min = xmin, xmin
	top.Max, bottom.Max = xmax, xmax
}
