package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/kelly-tou/scum-code/dataset"
	"github.com/kelly-tou/scum-code/plotter"
	"github.com/kelly-tou/scum-code/regression"
)

var (
	modelName string
	degree    int
)

// fitCurveSamples is the number of points used to draw the fitted curve.
const fitCurveSamples = 200

func fitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit regression models to a two-column capture",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dataPath == "" {
				return fmt.Errorf("capture file required (--data)")
			}
			if outputPath == "" {
				outputPath = "fit.png"
			}

			opts := []regression.FitOption{regression.WithPolynomialDegree(degree)}
			if modelName != "" {
				modelType := regression.ModelTypeFromString(modelName)
				if modelType == regression.ModelType(-1) {
					return fmt.Errorf("unknown model %q (supported: linear, parabolic, polynomial, logarithmic, exponential)", modelName)
				}
				opts = append(opts, regression.WithModels(modelType))
			}

			return plotFit(opts)
		},
	}

	cmd.Flags().StringVar(&modelName, "model", "", "fit a single model instead of ranking all of them")
	cmd.Flags().IntVar(&degree, "degree", 3, "polynomial model degree")
	return cmd
}

// plotFit fits the configured models to the capture's first two columns and
// renders the samples together with the best-fit curve.
func plotFit(opts []regression.FitOption) error {
	table, err := dataset.Read(dataPath)
	if err != nil {
		return err
	}
	for _, summary := range table.Describe() {
		log.Info(summary)
	}
	if table.NumCols() < 2 {
		return fmt.Errorf("capture %s needs two columns to fit, has %d", dataPath, table.NumCols())
	}

	x, err := table.ColumnAt(0)
	if err != nil {
		return err
	}
	y, err := table.ColumnAt(1)
	if err != nil {
		return err
	}

	result, err := regression.Fit(x, y, opts...)
	if err != nil {
		return err
	}
	for i, model := range result.AllModels {
		log.Infof("%d. %s", i+1, model)
	}

	best := result.BestFit
	curveX := make([]float64, fitCurveSamples)
	floats.Span(curveX, floats.Min(x), floats.Max(x))
	curveY := make([]float64, len(curveX))
	for i, xi := range curveX {
		curveY[i] = best.Estimator.Estimate(xi)
	}

	title := fmt.Sprintf("%s vs. %s", table.Columns[1], table.Columns[0])
	p, err := plotter.New(title, table.Columns[0], table.Columns[1], plotter.WithGrid())
	if err != nil {
		return err
	}
	if err := p.AddSeries(table.Columns[1], x, y, plotter.StylePoints); err != nil {
		return err
	}
	if err := p.AddSeries(fmt.Sprintf("%s fit", best.Type), curveX, curveY, plotter.StyleLines); err != nil {
		return err
	}

	if err := p.Save(outputPath, plotter.DefaultWidth, plotter.DefaultHeight); err != nil {
		return err
	}
	log.Infof("Wrote %s", outputPath)

	return nil
}
