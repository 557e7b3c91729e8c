package mesh

import "math"

// averageNeighborEstimate returns the mean of the neighbors' estimates of
// the node's potential. Setting the node to this potential zeroes its node
// error.
func averageNeighborEstimate(g *Grid, node int64) float64 {
	var sum float64
	degree := 0
	for it := g.graph.From(node); it.Next(); {
		v := it.Node().ID()
		m, _ := g.graph.Weight(node, v)
		sum += g.Potential(v) + m
		degree++
	}
	for it := g.graph.To(node); it.Next(); {
		u := it.Node().ID()
		m, _ := g.graph.Weight(u, node)
		sum += g.Potential(u) - m
		degree++
	}

	return sum / float64(degree)
}

// converged reports whether every absolute node error is within maxError.
func converged(g *Grid, maxError float64) bool {
	for node := int64(1); node <= int64(g.NumNodes()); node++ {
		if math.Abs(g.NodeError(node)) > maxError {
			return false
		}
	}

	return true
}

// rezeroToRoot shifts all potentials so the root node sits at zero again.
// Iterative solvers may update the root along the way.
func rezeroToRoot(g *Grid) {
	root := g.Potential(RootNode)
	if root == 0 {
		return
	}
	for node := int64(1); node <= int64(g.NumNodes()); node++ {
		g.setPotential(node, g.Potential(node)-root)
	}
}
