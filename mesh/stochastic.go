package mesh

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/kelly-tou/scum-code/errs"
	"github.com/kelly-tou/scum-code/internal/options"
)

// StochasticSolver solves for the node potentials iteratively, updating
// randomly chosen nodes.
type StochasticSolver struct {
	cfg SolverConfig
}

// NewStochasticSolver creates a stochastic solver.
func NewStochasticSolver(opts ...SolverOption) (*StochasticSolver, error) {
	cfg := defaultSolverConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &StochasticSolver{cfg: cfg}, nil
}

// Solve solves for the node potentials.
//
// Each iteration picks a random node whose absolute node error exceeds
// MaxError and sets its potential to the average of its neighbors'
// estimates. The solve converges once every absolute node error is within
// MaxError.
//
// Returns errs.ErrSolverDiverged when MaxIterations is reached first.
func (s *StochasticSolver) Solve(grid *Grid) error {
	grid.ResetPotentials()

	intN := rand.IntN
	if s.cfg.Src != nil {
		intN = rand.New(s.cfg.Src).IntN
	}

	iterations := 0
	for !converged(grid, s.cfg.MaxError) {
		if iterations >= s.cfg.MaxIterations {
			rezeroToRoot(grid)
			return fmt.Errorf("%w: after %d iterations", errs.ErrSolverDiverged, iterations)
		}
		iterations++

		node := s.chooseNode(grid, intN)
		grid.setPotential(node, averageNeighborEstimate(grid, node))
	}

	rezeroToRoot(grid)

	return nil
}

// chooseNode returns a random node whose absolute node error exceeds
// MaxError. At least one such node exists while the solve has not
// converged.
func (s *StochasticSolver) chooseNode(grid *Grid, intN func(int) int) int64 {
	for {
		node := int64(intN(grid.NumNodes()) + 1)
		if math.Abs(grid.NodeError(node)) > s.cfg.MaxError {
			return node
		}
	}
}
