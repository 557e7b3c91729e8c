// Package commands implements the scumplot subcommands for plotting SCuM
// sensor captures.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/kelly-tou/scum-code/internal/cliconfig"
)

var (
	cfg *cliconfig.Config

	dataPath   string
	outputPath string
	styleName  string
)

func Execute() error {
	cfg = cliconfig.Load()
	cliconfig.InitLogger(cfg)

	root := &cobra.Command{
		Use:   "scumplot",
		Short: "Plot SCuM sensor captures",
	}

	root.PersistentFlags().StringVar(&dataPath, "data", "", "capture file to plot")
	root.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output image file")

	root.AddCommand(muxCmd(), antennaCmd(), fitCmd())
	return root.Execute()
}
