// Package mesh simulates differential measurement meshes for SCuM sensor
// arrays.
//
// A differential mesh is a 2-D grid of nodes in which every directed edge
// carries a differential measurement, the measured difference between the
// potentials of its incident nodes. Solvers recover the absolute node
// potentials from the edge measurements with the root node held at
// potential zero. The simulator estimates how measurement noise propagates
// into the recovered potentials.
package mesh

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kelly-tou/scum-code/errs"
)

// RootNode is the node held at potential zero.
const RootNode int64 = 1

// edge identifies a directed edge from node u to node v.
type edge struct {
	u, v int64
}

// Grid is a 2-D differential mesh grid.
//
// Nodes are labeled 1 through rows*cols in row-major order, and each node
// has a directed edge to its right and bottom neighbors. Edge weights hold
// the differential measurements.
type Grid struct {
	rows, cols int
	graph      *simple.WeightedDirectedGraph
	edges      []edge
	potentials []float64
}

// NewGrid creates a rows-by-cols grid with all edge measurements set to
// zero.
//
// Returns errs.ErrInvalidGridSize for non-positive dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", errs.ErrInvalidGridSize, rows, cols)
	}

	g := &Grid{
		rows:       rows,
		cols:       cols,
		graph:      simple.NewWeightedDirectedGraph(0, math.NaN()),
		potentials: make([]float64, rows*cols),
	}
	for node := int64(1); node <= int64(rows*cols); node++ {
		g.graph.AddNode(simple.Node(node))
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			node := int64(row*cols + col + 1)
			if col < cols-1 {
				g.addEdge(node, node+1)
			}
			if row < rows-1 {
				g.addEdge(node, node+int64(cols))
			}
		}
	}

	return g, nil
}

func (g *Grid) addEdge(u, v int64) {
	g.graph.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u), T: simple.Node(v), W: 0})
	g.edges = append(g.edges, edge{u: u, v: v})
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// NumNodes returns the number of nodes.
func (g *Grid) NumNodes() int {
	return g.rows * g.cols
}

// NumEdges returns the number of directed edges.
func (g *Grid) NumEdges() int {
	return len(g.edges)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		rows:       g.rows,
		cols:       g.cols,
		graph:      simple.NewWeightedDirectedGraph(0, math.NaN()),
		edges:      slices.Clone(g.edges),
		potentials: slices.Clone(g.potentials),
	}
	for node := int64(1); node <= int64(g.rows*g.cols); node++ {
		clone.graph.AddNode(simple.Node(node))
	}
	for _, e := range g.edges {
		w, _ := g.graph.Weight(e.u, e.v)
		clone.graph.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.u), T: simple.Node(e.v), W: w})
	}

	return clone
}

// Measurement returns the differential measurement along the edge from u
// to v.
//
// Returns errs.ErrMissingEdge when the grid has no such edge.
func (g *Grid) Measurement(u, v int64) (float64, error) {
	if !g.graph.HasEdgeFromTo(u, v) {
		return 0, fmt.Errorf("%w: (%d, %d)", errs.ErrMissingEdge, u, v)
	}
	w, _ := g.graph.Weight(u, v)

	return w, nil
}

// SetMeasurement sets the differential measurement along the edge from u
// to v.
//
// Returns errs.ErrMissingEdge when the grid has no such edge.
func (g *Grid) SetMeasurement(u, v int64, measurement float64) error {
	if !g.graph.HasEdgeFromTo(u, v) {
		return fmt.Errorf("%w: (%d, %d)", errs.ErrMissingEdge, u, v)
	}
	g.graph.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u), T: simple.Node(v), W: measurement})

	return nil
}

// AddMeasurementNoise adds Gaussian noise with the given standard
// deviation to every edge measurement.
//
// A nil src draws from the global random source.
func (g *Grid) AddMeasurementNoise(sigma float64, src rand.Source) {
	noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}
	for _, e := range g.edges {
		w, _ := g.graph.Weight(e.u, e.v)
		g.graph.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.u), T: simple.Node(e.v), W: w + noise.Rand()})
	}
}

// Potential returns the node's potential. The node must be in
// [1, NumNodes].
func (g *Grid) Potential(node int64) float64 {
	return g.potentials[node-1]
}

func (g *Grid) setPotential(node int64, potential float64) {
	g.potentials[node-1] = potential
}

// Potentials returns the node potentials ordered by node, so index i holds
// the potential of node i+1.
func (g *Grid) Potentials() []float64 {
	return slices.Clone(g.potentials)
}

// ResetPotentials sets all node potentials to zero.
func (g *Grid) ResetPotentials() {
	clear(g.potentials)
}

// EdgeError returns the error along the edge from u to v, the difference
// between the incident nodes' potential difference and the differential
// measurement.
//
// Returns errs.ErrMissingEdge when the grid has no such edge.
func (g *Grid) EdgeError(u, v int64) (float64, error) {
	measurement, err := g.Measurement(u, v)
	if err != nil {
		return 0, err
	}

	return g.Potential(u) - g.Potential(v) - measurement, nil
}

// NodeError returns the node's error, the sum of its outgoing edge errors
// minus the sum of its incoming edge errors. The error is zero at every
// node exactly when the potentials are a least-squares solution.
func (g *Grid) NodeError(node int64) float64 {
	var nodeError float64
	for it := g.graph.From(node); it.Next(); {
		edgeError, _ := g.EdgeError(node, it.Node().ID())
		nodeError += edgeError
	}
	for it := g.graph.To(node); it.Next(); {
		edgeError, _ := g.EdgeError(it.Node().ID(), node)
		nodeError -= edgeError
	}

	return nodeError
}

// MeanSquaredError returns the mean squared edge error, or NaN for a grid
// without edges.
func (g *Grid) MeanSquaredError() float64 {
	if len(g.edges) == 0 {
		return math.NaN()
	}

	var sum float64
	for _, e := range g.edges {
		edgeError, _ := g.EdgeError(e.u, e.v)
		sum += edgeError * edgeError
	}

	return sum / float64(len(g.edges))
}
