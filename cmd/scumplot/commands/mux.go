package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kelly-tou/scum-code/adc"
	"github.com/kelly-tou/scum-code/dataset"
	"github.com/kelly-tou/scum-code/plotter"
)

var board string

// muxedADCColumns is the number of leading capture columns that hold raw
// ADC readings. The columns after them hold time constant tick ratios.
const muxedADCColumns = 2

func muxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mux",
		Short: "Plot muxed ADC readouts and time constants",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dataPath == "" {
				return fmt.Errorf("capture file required (--data)")
			}
			if outputPath == "" {
				outputPath = "mux.png"
			}

			style, err := plotter.StyleFromString(styleName)
			if err != nil {
				return err
			}
			config, err := adc.ConfigFromString(board)
			if err != nil {
				return err
			}

			return plotMux(config, style)
		},
	}

	cmd.Flags().StringVar(&board, "board", cfg.Board, "SCuM board config")
	cmd.Flags().StringVar(&styleName, "style", plotter.StyleLines.String(), "series style (lines, points, linespoints)")
	return cmd
}

// plotMux renders a capture of muxed sensor readouts as two stacked panels
// sharing the readout index axis: ADC readings in volts on top, time
// constants below.
func plotMux(config adc.Config, style plotter.Style) error {
	// Time constant cells are tick ratio expressions; EvalRatio also passes
	// the plain numeric ADC cells through unchanged.
	table, err := dataset.Read(dataPath, dataset.WithDefaultCellParser(adc.EvalRatio))
	if err != nil {
		return err
	}
	for _, summary := range table.Describe() {
		log.Info(summary)
	}

	top, err := plotter.New("Muxed sensor readouts", "", "ADC output [V]", plotter.WithGrid())
	if err != nil {
		return err
	}
	bottom, err := plotter.New("", "Readout index", "Time constant [s]", plotter.WithGrid())
	if err != nil {
		return err
	}

	index := table.Index()
	for i, name := range table.Columns {
		column, err := table.ColumnAt(i)
		if err != nil {
			return err
		}

		if i < muxedADCColumns {
			volts := make([]float64, len(column))
			for j, lsb := range column {
				volts[j] = config.LSBToVolt(lsb)
			}
			if err := top.AddSeries(name, index, volts, style); err != nil {
				return err
			}
			continue
		}

		if err := bottom.AddSeries(name, index, column, style); err != nil {
			return err
		}
	}

	pair := plotter.NewAlignedPair(top, bottom)
	if err := pair.Save(outputPath, plotter.DefaultWidth, 2*plotter.DefaultHeight); err != nil {
		return err
	}
	log.Infof("Wrote %s", outputPath)

	return nil
}
