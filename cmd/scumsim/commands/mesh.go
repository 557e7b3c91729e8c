package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kelly-tou/scum-code/mesh"
	"github.com/kelly-tou/scum-code/plotter"
)

var (
	rows       int
	cols       int
	solverName string
	noise      float64
	iterations int
)

func meshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Simulate node potential errors of a differential mesh",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = "mesh.png"
			}

			return plotMeshErrors()
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 3, "number of grid rows")
	cmd.Flags().IntVar(&cols, "cols", 4, "number of grid columns")
	cmd.Flags().StringVar(&solverName, "solver", cfg.Solver, "mesh solver (matrix, priority, stochastic)")
	cmd.Flags().Float64Var(&noise, "noise", 1, "measurement noise standard deviation")
	cmd.Flags().IntVar(&iterations, "iterations", 10000, "number of noise simulations")
	return cmd
}

// plotMeshErrors simulates measurement noise on a differential mesh grid
// and renders the per-node potential standard errors as a heat map.
func plotMeshErrors() error {
	grid, err := mesh.NewGrid(rows, cols)
	if err != nil {
		return err
	}
	solver, err := mesh.NewSolver(solverName)
	if err != nil {
		return err
	}

	simulated, err := mesh.NewSimulator(grid).NodeStandardErrors(solver, noise, iterations, nil)
	if err != nil {
		return err
	}
	calculated, err := grid.NodeStandardErrors(noise)
	if err != nil {
		return err
	}

	log.Info("Node potential standard errors:")
	for i := range simulated {
		log.Infof("node %d: simulated=%.4f calculated=%.4f", i+1, simulated[i], calculated[i])
	}

	p, err := plotter.New("Node potential standard errors", "Column", "Row")
	if err != nil {
		return err
	}
	if err := p.AddHeatMap(rows, cols, simulated); err != nil {
		return err
	}

	if err := p.Save(outputPath, plotter.DefaultWidth, plotter.DefaultHeight); err != nil {
		return err
	}
	log.Infof("Wrote %s", outputPath)

	return nil
}
