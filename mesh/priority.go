package mesh

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/kelly-tou/scum-code/errs"
	"github.com/kelly-tou/scum-code/internal/options"
)

// PrioritySolver solves for the node potentials iteratively, always
// updating the node with the largest absolute node error.
type PrioritySolver struct {
	cfg SolverConfig
}

// NewPrioritySolver creates a priority solver.
func NewPrioritySolver(opts ...SolverOption) (*PrioritySolver, error) {
	cfg := defaultSolverConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &PrioritySolver{cfg: cfg}, nil
}

// Solve solves for the node potentials.
//
// Each iteration pops the node with the largest absolute node error and
// sets its potential to the average of its neighbors' estimates, which
// zeroes the node's own error and perturbs only its neighbors'. The solve
// converges once every absolute node error is within MaxError.
//
// Returns errs.ErrSolverDiverged when MaxIterations is reached first.
func (s *PrioritySolver) Solve(grid *Grid) error {
	grid.ResetPotentials()

	queue := newNodeQueue(grid.NumNodes())
	for node := int64(1); node <= int64(grid.NumNodes()); node++ {
		queue.push(node, math.Abs(grid.NodeError(node)))
	}

	iterations := 0
	for queue.peek() > s.cfg.MaxError {
		if iterations >= s.cfg.MaxIterations {
			rezeroToRoot(grid)
			return fmt.Errorf("%w: after %d iterations", errs.ErrSolverDiverged, iterations)
		}
		iterations++

		node := queue.pop()
		grid.setPotential(node, averageNeighborEstimate(grid, node))
		queue.push(node, 0)

		for it := grid.graph.From(node); it.Next(); {
			neighbor := it.Node().ID()
			queue.update(neighbor, math.Abs(grid.NodeError(neighbor)))
		}
		for it := grid.graph.To(node); it.Next(); {
			neighbor := it.Node().ID()
			queue.update(neighbor, math.Abs(grid.NodeError(neighbor)))
		}
	}

	rezeroToRoot(grid)

	return nil
}

// queueItem is a node with its queue priority, the absolute node error.
type queueItem struct {
	node     int64
	priority float64
	index    int
}

// nodeQueue is a max-heap of nodes keyed by absolute node error.
type nodeQueue struct {
	items  []*queueItem
	byNode map[int64]*queueItem
}

func newNodeQueue(capacity int) *nodeQueue {
	return &nodeQueue{
		items:  make([]*queueItem, 0, capacity),
		byNode: make(map[int64]*queueItem, capacity),
	}
}

func (q *nodeQueue) Len() int {
	return len(q.items)
}

func (q *nodeQueue) Less(i, j int) bool {
	return q.items[i].priority > q.items[j].priority
}

func (q *nodeQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

func (q *nodeQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(q.items)
	q.items = append(q.items, item)
	q.byNode[item.node] = item
}

func (q *nodeQueue) Pop() any {
	item := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]
	delete(q.byNode, item.node)

	return item
}

// push adds the node with the given priority.
func (q *nodeQueue) push(node int64, priority float64) {
	heap.Push(q, &queueItem{node: node, priority: priority})
}

// pop removes and returns the node with the highest priority.
func (q *nodeQueue) pop() int64 {
	return heap.Pop(q).(*queueItem).node
}

// peek returns the highest priority without removing its node, or zero for
// an empty queue.
func (q *nodeQueue) peek() float64 {
	if len(q.items) == 0 {
		return 0
	}

	return q.items[0].priority
}

// update reprioritizes the node if it is still queued.
func (q *nodeQueue) update(node int64, priority float64) {
	item, ok := q.byNode[node]
	if !ok {
		return
	}
	item.priority = priority
	heap.Fix(q, item.index)
}
