package mesh

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/kelly-tou/scum-code/errs"
	"github.com/kelly-tou/scum-code/internal/options"
)

// Solver solves a differential mesh grid for its node potentials.
//
// Solve overwrites any existing potentials on the grid. In the solved
// state every node takes on the average potential that its neighbors
// estimate for it, which is the least-squares solution of the edge
// measurements with the root node at potential zero.
type Solver interface {
	Solve(grid *Grid) error
}

// solverNames lists the registered solver names in sorted order.
var solverNames = []string{"matrix", "priority", "stochastic"}

// SolverNames returns the names accepted by NewSolver.
func SolverNames() []string {
	return solverNames
}

// SolverConfig holds configuration for the iterative solvers.
type SolverConfig struct {
	// MaxError is the largest absolute node error at which an iterative
	// solver declares convergence.
	MaxError float64
	// MaxIterations caps the node updates of an iterative solver.
	MaxIterations int
	// Src is the random source of the stochastic solver. A nil source
	// draws from the global one.
	Src rand.Source
}

// defaultSolverConfig returns the default config: a 0.001 node error bound
// and effectively unlimited iterations.
func defaultSolverConfig() SolverConfig {
	return SolverConfig{
		MaxError:      1e-3,
		MaxIterations: math.MaxInt,
	}
}

// SolverOption is a functional option for SolverConfig.
type SolverOption = options.Option[*SolverConfig]

// WithMaxError sets the node error bound that ends an iterative solve.
func WithMaxError(maxError float64) SolverOption {
	return options.NoError(func(cfg *SolverConfig) {
		cfg.MaxError = maxError
	})
}

// WithMaxIterations caps the node updates of an iterative solve.
func WithMaxIterations(iterations int) SolverOption {
	return options.New(func(cfg *SolverConfig) error {
		if iterations < 1 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidIterations, iterations)
		}
		cfg.MaxIterations = iterations

		return nil
	})
}

// WithSource sets the random source of the stochastic solver.
func WithSource(src rand.Source) SolverOption {
	return options.NoError(func(cfg *SolverConfig) {
		cfg.Src = src
	})
}

// NewSolver creates the named solver. Names are case-insensitive, and the
// options apply only to the iterative solvers.
//
// Returns errs.ErrUnknownSolver for a name absent from the registry.
func NewSolver(name string, opts ...SolverOption) (Solver, error) {
	cfg := defaultSolverConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	switch strings.ToLower(name) {
	case "matrix":
		return MatrixSolver{}, nil
	case "priority":
		return &PrioritySolver{cfg: cfg}, nil
	case "stochastic":
		return &StochasticSolver{cfg: cfg}, nil
	default:
		return nil, fmt.Errorf("%w: %s (supported: %s)", errs.ErrUnknownSolver, name, strings.Join(solverNames, ", "))
	}
}
