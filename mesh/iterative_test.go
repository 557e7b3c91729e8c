package mesh

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelly-tou/scum-code/errs"
)

func TestPrioritySolverConsistent(t *testing.T) {
	grid, err := NewGrid(2, 2)
	require.NoError(t, err)
	require.NoError(t, grid.SetMeasurement(1, 2, 1))
	require.NoError(t, grid.SetMeasurement(1, 3, 2))
	require.NoError(t, grid.SetMeasurement(2, 4, 2))
	require.NoError(t, grid.SetMeasurement(3, 4, 1))

	solver, err := NewPrioritySolver(WithMaxError(1e-9), WithMaxIterations(100000))
	require.NoError(t, err)
	require.NoError(t, solver.Solve(grid))

	assert.InDeltaSlice(t, []float64{0, -1, -2, -3}, grid.Potentials(), 1e-6)
	assert.InDelta(t, 0, grid.MeanSquaredError(), 1e-12)
}

func TestPrioritySolverMatchesMatrix(t *testing.T) {
	grid := inconsistentGrid(t)

	solver, err := NewPrioritySolver(WithMaxError(1e-9), WithMaxIterations(100000))
	require.NoError(t, err)
	require.NoError(t, solver.Solve(grid))

	assert.InDeltaSlice(t, []float64{0, -0.5, -0.5, -1}, grid.Potentials(), 1e-6)
	assert.Zero(t, grid.Potential(RootNode))
}

func TestPrioritySolverPath(t *testing.T) {
	grid := pathGrid(t)

	solver, err := NewPrioritySolver(WithMaxError(1e-9), WithMaxIterations(100000))
	require.NoError(t, err)
	require.NoError(t, solver.Solve(grid))

	assert.InDeltaSlice(t, []float64{0, -1, -3}, grid.Potentials(), 1e-6)
}

func TestStochasticSolverMatchesMatrix(t *testing.T) {
	grid := inconsistentGrid(t)

	solver, err := NewStochasticSolver(
		WithMaxError(1e-9),
		WithMaxIterations(1000000),
		WithSource(rand.NewPCG(5, 6)),
	)
	require.NoError(t, err)
	require.NoError(t, solver.Solve(grid))

	assert.InDeltaSlice(t, []float64{0, -0.5, -0.5, -1}, grid.Potentials(), 1e-6)
	assert.Zero(t, grid.Potential(RootNode))
}

func TestPrioritySolverDiverged(t *testing.T) {
	grid := inconsistentGrid(t)

	solver, err := NewPrioritySolver(WithMaxError(1e-15), WithMaxIterations(1))
	require.NoError(t, err)

	err = solver.Solve(grid)
	require.ErrorIs(t, err, errs.ErrSolverDiverged)
	assert.Zero(t, grid.Potential(RootNode))
}

func TestStochasticSolverDiverged(t *testing.T) {
	grid := inconsistentGrid(t)

	solver, err := NewStochasticSolver(
		WithMaxError(1e-15),
		WithMaxIterations(1),
		WithSource(rand.NewPCG(7, 9)),
	)
	require.NoError(t, err)

	require.ErrorIs(t, solver.Solve(grid), errs.ErrSolverDiverged)
}

func TestIterativeSolversSingleNode(t *testing.T) {
	priority, err := NewPrioritySolver()
	require.NoError(t, err)
	stochastic, err := NewStochasticSolver(WithSource(rand.NewPCG(1, 1)))
	require.NoError(t, err)

	for _, solver := range []Solver{priority, stochastic} {
		grid, err := NewGrid(1, 1)
		require.NoError(t, err)
		require.NoError(t, solver.Solve(grid))
		assert.Equal(t, []float64{0}, grid.Potentials())
	}
}
