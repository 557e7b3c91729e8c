// Package plotter renders SCuM capture data to image files.
//
// It wraps gonum/plot with the surface the plotting commands need: named
// data series with cycled colors, error-bar series for grouped
// measurements, and vertically aligned panel pairs that share an x axis.
package plotter

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/kelly-tou/scum-code/errs"
	"github.com/kelly-tou/scum-code/internal/options"
)

// Default plot dimensions.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

// Plot is a single-panel plot that series are added to.
type Plot struct {
	p      *plot.Plot
	series int
}

// PlotConfig holds configuration for a new plot.
type PlotConfig struct {
	// Grid draws grid lines behind the series.
	Grid bool
	// LegendLeft places the legend on the left side of the plot.
	LegendLeft bool
}

// Option is a functional option for PlotConfig.
type Option = options.Option[*PlotConfig]

// WithGrid draws grid lines behind the series.
func WithGrid() Option {
	return options.NoError(func(cfg *PlotConfig) {
		cfg.Grid = true
	})
}

// WithLegendLeft places the legend on the left side of the plot.
func WithLegendLeft() Option {
	return options.NoError(func(cfg *PlotConfig) {
		cfg.LegendLeft = true
	})
}

// New creates an empty plot with the given title and axis labels.
func New(title, xLabel, yLabel string, opts ...Option) (*Plot, error) {
	var cfg PlotConfig
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	if cfg.Grid {
		p.Add(plotter.NewGrid())
	}
	if cfg.LegendLeft {
		p.Legend.Left = true
	}

	return &Plot{p: p}, nil
}

// AddSeries adds a named data series drawn in the given style. Colors
// cycle per series, non-finite points are dropped, and an empty name
// leaves the series out of the legend.
//
// Returns errs.ErrNoData, errs.ErrLengthMismatch or errs.ErrUnknownStyle
// for invalid input.
func (p *Plot) AddSeries(name string, x, y []float64, style Style) error {
	pts, err := makeXYs(x, y)
	if err != nil {
		return err
	}
	color := plotutil.Color(p.series)

	switch style {
	case StyleLines:
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to build series %q: %w", name, err)
		}
		line.Color = color
		p.p.Add(line)
		if name != "" {
			p.p.Legend.Add(name, line)
		}
	case StylePoints:
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("failed to build series %q: %w", name, err)
		}
		scatter.GlyphStyle.Color = color
		p.p.Add(scatter)
		if name != "" {
			p.p.Legend.Add(name, scatter)
		}
	case StyleLinesPoints:
		line, scatter, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("failed to build series %q: %w", name, err)
		}
		line.Color = color
		scatter.GlyphStyle.Color = color
		p.p.Add(line, scatter)
		if name != "" {
			p.p.Legend.Add(name, line, scatter)
		}
	default:
		return fmt.Errorf("%w: %d", errs.ErrUnknownStyle, int(style))
	}
	p.series++

	return nil
}

// AddErrorBars adds a named series of pyramid-marked points with vertical
// error bars. A NaN error, as produced by single-sample groups, draws as
// a bar of zero height.
//
// Returns errs.ErrNoData or errs.ErrLengthMismatch for invalid input.
func (p *Plot) AddErrorBars(name string, x, y, yerr []float64) error {
	if len(x) == 0 {
		return fmt.Errorf("%w: empty series %q", errs.ErrNoData, name)
	}
	if len(x) != len(y) || len(x) != len(yerr) {
		return fmt.Errorf("%w: %d x values, %d y values, %d errors", errs.ErrLengthMismatch, len(x), len(y), len(yerr))
	}

	data := errorPoints{}
	for i := range x {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			continue
		}
		sigma := yerr[i]
		if math.IsNaN(sigma) {
			sigma = 0
		}
		data.XYs = append(data.XYs, plotter.XY{X: x[i], Y: y[i]})
		data.YErrors = append(data.YErrors, struct{ Low, High float64 }{Low: sigma, High: sigma})
	}
	if len(data.XYs) == 0 {
		return fmt.Errorf("%w: no finite points in series %q", errs.ErrNoData, name)
	}

	bars, err := plotter.NewYErrorBars(data)
	if err != nil {
		return fmt.Errorf("failed to build series %q: %w", name, err)
	}
	scatter, err := plotter.NewScatter(data.XYs)
	if err != nil {
		return fmt.Errorf("failed to build series %q: %w", name, err)
	}

	color := plotutil.Color(p.series)
	bars.LineStyle.Color = color
	scatter.GlyphStyle.Color = color
	scatter.GlyphStyle.Shape = draw.PyramidGlyph{}
	p.p.Add(bars, scatter)
	if name != "" {
		p.p.Legend.Add(name, scatter)
	}
	p.series++

	return nil
}

// Save renders the plot to the given file. The format follows the file
// extension.
func (p *Plot) Save(path string, width, height vg.Length) error {
	if err := p.p.Save(width, height, path); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", path, err)
	}

	return nil
}

// errorPoints carries points together with their y errors.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// makeXYs validates a series and converts it to plot points, dropping
// non-finite pairs.
func makeXYs(x, y []float64) (plotter.XYs, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: empty series", errs.ErrNoData)
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", errs.ErrLengthMismatch, len(x), len(y))
	}

	pts := make(plotter.XYs, 0, len(x))
	for i := range x {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("%w: no finite points", errs.ErrNoData)
	}

	return pts, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
