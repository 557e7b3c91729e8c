package mesh

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/kelly-tou/scum-code/errs"
)

// Simulator estimates how measurement noise propagates into the solved
// node potentials of a grid.
type Simulator struct {
	grid *Grid
}

// NewSimulator creates a simulator over the given grid. The grid itself is
// never modified; each trial runs on a noisy copy.
func NewSimulator(grid *Grid) *Simulator {
	return &Simulator{grid: grid}
}

// NodeStandardErrors simulates the standard error of each node potential.
//
// Each iteration clones the grid, adds Gaussian measurement noise with the
// given standard deviation, and solves for the node potentials. The
// returned slice holds the sample standard deviation of each node's
// potential across the iterations, ordered by node. At least two
// iterations are needed for a finite result.
//
// Parameters:
//   - solver: Solver run on each noisy copy
//   - sigma: Standard deviation of the measurement noise
//   - iterations: Number of noisy solves
//   - src: Random source for the noise. A nil source draws from the
//     global one.
//
// Returns errs.ErrInvalidIterations for a non-positive iteration count,
// or the first solver error.
func (s *Simulator) NodeStandardErrors(solver Solver, sigma float64, iterations int, src rand.Source) ([]float64, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidIterations, iterations)
	}

	n := s.grid.NumNodes()
	samples := make([][]float64, n)
	for i := range samples {
		samples[i] = make([]float64, 0, iterations)
	}

	for range iterations {
		trial := s.grid.Clone()
		trial.AddMeasurementNoise(sigma, src)
		if err := solver.Solve(trial); err != nil {
			return nil, err
		}
		for i, potential := range trial.Potentials() {
			samples[i] = append(samples[i], potential)
		}
	}

	stderrs := make([]float64, n)
	for i := range samples {
		stderrs[i] = stat.StdDev(samples[i], nil)
	}

	return stderrs, nil
}

// NodeStandardErrors calculates the standard error of each node potential
// under Gaussian measurement noise with the given standard deviation.
//
// The solved potentials are a linear image of the edge measurements, so
// each node's standard error is sigma times the Euclidean norm of the
// node's row in the inverse grounded Laplacian applied to the grid's
// incidence matrix. The returned slice is ordered by node.
//
// Returns errs.ErrSingular when the Laplacian system cannot be solved.
func (g *Grid) NodeStandardErrors(sigma float64) ([]float64, error) {
	n := g.NumNodes()
	if len(g.edges) == 0 {
		return make([]float64, n), nil
	}

	a := groundedLaplacian(g)

	// Incidence matrix with the root node's row zeroed, matching the
	// grounded right-hand side of the matrix solver.
	b := mat.NewDense(n, len(g.edges), nil)
	for k, e := range g.edges {
		b.Set(int(e.u-1), k, 1)
		b.Set(int(e.v-1), k, -1)
	}
	for k := range g.edges {
		b.Set(int(RootNode-1), k, 0)
	}

	var m mat.Dense
	if err := m.Solve(a, b); err != nil {
		return nil, fmt.Errorf("%w: node covariance system: %v", errs.ErrSingular, err)
	}

	stderrs := make([]float64, n)
	for i := range stderrs {
		stderrs[i] = sigma * floats.Norm(mat.Row(nil, i, &m), 2)
	}

	return stderrs, nil
}
