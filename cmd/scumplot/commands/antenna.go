package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kelly-tou/scum-code/dataset"
	"github.com/kelly-tou/scum-code/plotter"
)

func antennaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "antenna",
		Short: "Plot antenna RSSI against distance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dataPath == "" {
				return fmt.Errorf("capture file required (--data)")
			}
			if outputPath == "" {
				outputPath = "antenna.png"
			}

			return plotAntenna()
		},
	}
}

// plotAntenna renders per-antenna RSSI error bars against distance. The
// capture's first column holds the distance; every other column is one
// antenna's RSSI samples, repeated over rows for the same distance.
func plotAntenna() error {
	table, err := dataset.Read(dataPath)
	if err != nil {
		return err
	}
	for _, summary := range table.Describe() {
		log.Info(summary)
	}
	if table.NumCols() < 2 {
		return fmt.Errorf("capture %s has no antenna columns", dataPath)
	}

	groups, err := table.GroupBy(0)
	if err != nil {
		return err
	}
	distances := make([]float64, len(groups))
	for i, group := range groups {
		distances[i] = group.Key
	}

	p, err := plotter.New("Antenna RSSI", table.Columns[0], "RSSI [dBm]", plotter.WithGrid())
	if err != nil {
		return err
	}

	for column := 1; column < table.NumCols(); column++ {
		means := make([]float64, len(groups))
		stds := make([]float64, len(groups))
		for i, group := range groups {
			means[i], stds[i], err = group.MeanStd(column)
			if err != nil {
				return err
			}
		}

		if err := p.AddErrorBars(table.Columns[column], distances, means, stds); err != nil {
			return err
		}
	}

	if err := p.Save(outputPath, plotter.DefaultWidth, plotter.DefaultHeight); err != nil {
		return err
	}
	log.Infof("Wrote %s", outputPath)

	return nil
}
