// Package commands implements the scumsim subcommands for simulating SCuM
// signal chains.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/kelly-tou/scum-code/internal/cliconfig"
)

var (
	cfg *cliconfig.Config

	outputPath string
)

func Execute() error {
	cfg = cliconfig.Load()
	cliconfig.InitLogger(cfg)

	root := &cobra.Command{
		Use:   "scumsim",
		Short: "Simulate SCuM signal chains",
	}

	root.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output image file")

	root.AddCommand(cicCmd(), meshCmd())
	return root.Execute()
}
