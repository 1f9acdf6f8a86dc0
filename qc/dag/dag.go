// Package dag computes a rendering layout over a flat gate sequence: which
// time-step column and which wire/line each gate lands on. It has no
// relationship to the evaluator — the evaluator walks a circuit's gate list
// directly — this package exists purely to feed qc/renderer a topologically
// consistent diagram layout.
package dag

import (
	"fmt"
	"sync/atomic"

	"github.com/kegliz/qplay/qc/gate"
)

// NodeID is stable across passes/serialisation.
type NodeID uint64

var idCtr uint64

// Node holds one DAG vertex: a single gate application plus its computed
// adjacency (which prior gates on its qubits must happen first).
type Node struct {
	ID     NodeID
	G      gate.Gate
	Qubits []int
	Step   int // 0-indexed rendering column, set by Validate

	parents  []NodeID
	children []NodeID
}

// Parents returns a copy of the parent node IDs.
func (n *Node) Parents() []NodeID {
	result := make([]NodeID, len(n.parents))
	copy(result, n.parents)
	return result
}

// DAG is mutable until Validate() is called; then frozen.
type DAG struct {
	qubits int

	nodes map[NodeID]*Node
	byQ   [][]NodeID
	last  []NodeID

	valid bool

	topoOrder []*Node
	depth     int
}

// New creates a new, empty DAG over qb qubits.
func New(qb int) *DAG {
	return &DAG{
		qubits: qb,
		nodes:  make(map[NodeID]*Node),
		byQ:    make([][]NodeID, qb),
		last:   make([]NodeID, qb),
		depth:  -1,
	}
}

func nextID() NodeID { return NodeID(atomic.AddUint64(&idCtr, 1)) }

// Qubits returns the number of qubits.
func (d *DAG) Qubits() int { return d.qubits }

// AddGate adds a gate application to the DAG, wiring it to the most recent
// prior gate on each of its qubits.
func (d *DAG) AddGate(g gate.Gate) error {
	if d.valid {
		return ErrValidated
	}
	qs := g.Qubits()
	if err := d.checkGate(g, qs); err != nil {
		return err
	}

	n := &Node{ID: nextID(), G: g, Qubits: append([]int(nil), qs...)}
	d.nodes[n.ID] = n

	parentSet := make(map[NodeID]struct{})
	for _, q := range qs {
		if prev := d.last[q]; prev != 0 {
			if _, exists := parentSet[prev]; !exists {
				parentSet[prev] = struct{}{}
				n.parents = append(n.parents, prev)
				d.nodes[prev].children = append(d.nodes[prev].children, n.ID)
			}
		}
		d.last[q] = n.ID
		d.byQ[q] = append(d.byQ[q], n.ID)
	}
	return nil
}

// Validate checks the DAG is acyclic (it always is, by construction, since
// edges only ever point from an earlier gate to a later one — but this
// guards against future construction paths that might violate that) and
// computes the topological order and depth. A no-op once already validated.
func (d *DAG) Validate() error {
	if d.valid {
		return nil
	}
	if err := d.acyclic(); err != nil {
		return err
	}
	d.topoOrder = d.calculateTopoSort()
	d.depth = d.calculateDepth()
	d.valid = true
	return nil
}

// Operations returns nodes in topological order. Requires Validate() to
// have been called; returns nil otherwise.
func (d *DAG) Operations() []*Node {
	if !d.valid {
		return nil
	}
	result := make([]*Node, len(d.topoOrder))
	copy(result, d.topoOrder)
	return result
}

// Depth returns the calculated depth. Requires Validate() to have been
// called first.
func (d *DAG) Depth() int { return d.depth }

func (d *DAG) checkGate(g gate.Gate, qs []int) error {
	if len(qs) != g.QubitSpan() {
		return ErrSpan
	}
	seen := make(map[int]bool)
	for _, q := range qs {
		if q < 0 || q >= d.qubits {
			return ErrBadQubit
		}
		if seen[q] {
			return fmt.Errorf("dag: duplicate qubit %d specified for gate %s", q, g.Name())
		}
		seen[q] = true
	}
	return nil
}

func (d *DAG) calculateTopoSort() []*Node {
	inDeg := make(map[NodeID]int, len(d.nodes))
	for id, node := range d.nodes {
		inDeg[id] = len(node.parents)
	}

	queue := make([]NodeID, 0, len(d.nodes))
	for id, deg := range inDeg {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]*Node, 0, len(d.nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		node := d.nodes[id]
		order = append(order, node)
		for _, childID := range node.children {
			inDeg[childID]--
			if inDeg[childID] == 0 {
				queue = append(queue, childID)
			}
		}
	}

	if len(order) != len(d.nodes) {
		panic("dag: topological sort couldn't process all nodes; cycle not caught by acyclic()")
	}
	return order
}

func (d *DAG) calculateDepth() int {
	if len(d.topoOrder) == 0 {
		return 0
	}
	nodeDepth := make(map[NodeID]int)
	maxDepth := 0
	for _, node := range d.topoOrder {
		depth := 0
		for _, parentID := range node.parents {
			if parentDepth, ok := nodeDepth[parentID]; ok && parentDepth > depth {
				depth = parentDepth
			}
		}
		depth++
		nodeDepth[node.ID] = depth
		node.Step = depth - 1
		if depth > maxDepth {
			maxDepth = depth
		}
	}
	return maxDepth
}

func (d *DAG) acyclic() error {
	state := make(map[NodeID]int) // 0 unvisited, 1 visiting, 2 visited
	var dfs func(NodeID) error
	dfs = func(id NodeID) error {
		switch state[id] {
		case 1:
			return fmt.Errorf("dag: cycle detected involving node %d (%s)", id, d.nodes[id].G.Name())
		case 2:
			return nil
		}
		state[id] = 1
		for _, childID := range d.nodes[id].children {
			if err := dfs(childID); err != nil {
				return err
			}
		}
		state[id] = 2
		return nil
	}
	for id := range d.nodes {
		if state[id] == 0 {
			if err := dfs(id); err != nil {
				return err
			}
		}
	}
	return nil
}

// FromGates builds and validates a DAG directly from a flat gate sequence,
// the shape qc/circuit.Circuit exposes via Gates().
func FromGates(qubits int, gates []gate.Gate) (*DAG, error) {
	d := New(qubits)
	for _, g := range gates {
		if err := d.AddGate(g); err != nil {
			return nil, err
		}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
