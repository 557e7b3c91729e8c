package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelly-tou/scum-code/errs"
)

func TestNewSolver(t *testing.T) {
	tests := []struct {
		name string
		want Solver
	}{
		{name: "matrix", want: MatrixSolver{}},
		{name: "MATRIX", want: MatrixSolver{}},
		{name: "priority", want: &PrioritySolver{}},
		{name: "stochastic", want: &StochasticSolver{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solver, err := NewSolver(tt.name)
			require.NoError(t, err)
			assert.IsType(t, tt.want, solver)
		})
	}
}

func TestNewSolverUnknown(t *testing.T) {
	_, err := NewSolver("gradient")
	require.ErrorIs(t, err, errs.ErrUnknownSolver)
	assert.Contains(t, err.Error(), "matrix, priority, stochastic")
}

func TestNewSolverInvalidOption(t *testing.T) {
	_, err := NewSolver("priority", WithMaxIterations(0))
	require.ErrorIs(t, err, errs.ErrInvalidIterations)
}

func TestSolverNames(t *testing.T) {
	assert.Equal(t, []string{"matrix", "priority", "stochastic"}, SolverNames())
}

func TestNodeQueue(t *testing.T) {
	queue := newNodeQueue(3)
	queue.push(1, 0.5)
	queue.push(2, 2)
	queue.push(3, 1)

	assert.Equal(t, 2.0, queue.peek())
	assert.Equal(t, int64(2), queue.pop())

	// Reprioritizing moves a node ahead of the rest.
	queue.update(3, 5)
	assert.Equal(t, int64(3), queue.pop())
	assert.Equal(t, int64(1), queue.pop())

	// Popped and unknown nodes are ignored.
	queue.update(2, 10)
	assert.Zero(t, queue.peek())
}
