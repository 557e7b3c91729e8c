package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/kelly-tou/scum-code/errs"
)

// MatrixSolver solves for the node potentials directly by solving the
// grounded Laplacian system of the grid.
type MatrixSolver struct{}

// NewMatrixSolver creates a matrix solver.
func NewMatrixSolver() MatrixSolver {
	return MatrixSolver{}
}

// Solve solves for the node potentials.
//
// The Laplacian matrix of the grid is modified by replacing the root
// node's row with an elementary basis vector, which grounds the root at
// potential zero. The right-hand side holds the directed sum of the
// incident edge measurements at each node.
//
// Returns errs.ErrSingular when the system cannot be solved.
func (MatrixSolver) Solve(grid *Grid) error {
	grid.ResetPotentials()

	a := groundedLaplacian(grid)
	b := measurementSums(grid)

	var potentials mat.VecDense
	if err := potentials.SolveVec(a, b); err != nil {
		return fmt.Errorf("%w: node potential system: %v", errs.ErrSingular, err)
	}

	for i := 0; i < grid.NumNodes(); i++ {
		grid.setPotential(int64(i+1), potentials.AtVec(i))
	}

	return nil
}

// groundedLaplacian returns the Laplacian matrix of the grid with the root
// node's row replaced by an elementary basis vector. Node n maps to row
// and column n-1.
func groundedLaplacian(g *Grid) *mat.Dense {
	n := g.NumNodes()
	a := mat.NewDense(n, n, nil)
	for _, e := range g.edges {
		ui, vi := int(e.u-1), int(e.v-1)
		a.Set(ui, vi, a.At(ui, vi)-1)
		a.Set(vi, ui, a.At(vi, ui)-1)
		a.Set(ui, ui, a.At(ui, ui)+1)
		a.Set(vi, vi, a.At(vi, vi)+1)
	}

	root := int(RootNode - 1)
	for j := 0; j < n; j++ {
		a.Set(root, j, 0)
	}
	a.Set(root, root, 1)

	return a
}

// measurementSums returns the directed sum of the incident edge
// measurements at each node, with the root node's entry zeroed.
func measurementSums(g *Grid) *mat.VecDense {
	b := mat.NewVecDense(g.NumNodes(), nil)
	for _, e := range g.edges {
		m, _ := g.graph.Weight(e.u, e.v)
		ui, vi := int(e.u-1), int(e.v-1)
		b.SetVec(ui, b.AtVec(ui)+m)
		b.SetVec(vi, b.AtVec(vi)-m)
	}
	b.SetVec(int(RootNode-1), 0)

	return b
}
