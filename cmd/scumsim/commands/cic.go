package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kelly-tou/scum-code/cic"
	"github.com/kelly-tou/scum-code/errs"
	"github.com/kelly-tou/scum-code/plotter"
)

var (
	decimation int
	stages     int
	taps       []float64
	fftLength  int
)

func cicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cic",
		Short: "Plot the frequency response of a CIC decimator",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = "cic.png"
			}

			return plotCICResponse()
		},
	}

	cmd.Flags().IntVarP(&decimation, "decimation", "r", 16, "decimation ratio")
	cmd.Flags().IntVarP(&stages, "stages", "n", 2, "number of integrator and comb stages")
	cmd.Flags().Float64SliceVar(&taps, "taps", nil, "comb filter taps (default single unit tap)")
	cmd.Flags().IntVar(&fftLength, "fft-length", 1024, "FFT length of the plotted spectrum")
	return cmd
}

// plotCICResponse runs an impulse through the CIC decimator and plots the
// magnitude spectrum of the decimated output.
func plotCICResponse() error {
	decimator, err := cic.New(decimation, stages, taps...)
	if err != nil {
		return err
	}
	if fftLength < 1 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidFFTLength, fftLength)
	}

	impulse := make([]float64, fftLength)
	impulse[0] = 1
	response := decimator.Filter(impulse, true)
	log.Infof("Filtered %d samples down to %d", len(impulse), len(response))

	omega, magnitude, err := cic.SpectrumMagnitude(response, fftLength)
	if err != nil {
		return err
	}

	p, err := plotter.New("CIC decimator response", "Frequency [rad/sample]", "Magnitude", plotter.WithGrid())
	if err != nil {
		return err
	}
	name := fmt.Sprintf("R=%d, N=%d", decimator.Decimation(), decimator.Stages())
	if err := p.AddSeries(name, omega, magnitude, plotter.StyleLines); err != nil {
		return err
	}

	if err := p.Save(outputPath, plotter.DefaultWidth, plotter.DefaultHeight); err != nil {
		return err
	}
	log.Infof("Wrote %s", outputPath)

	return nil
}
