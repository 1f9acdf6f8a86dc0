// Package evaluator implements the lazy entanglement-partitioning circuit
// walker: it keeps qubits split into independent groups for as long as
// possible, merging two groups only when a gate actually entangles them, and
// short-circuiting controlled gates whose control is classically resolved.
// It is the core of this module; everything else exists to feed it a gate
// sequence or to consume its result.
package evaluator

import (
	"fmt"

	"github.com/kegliz/qplay/qc/gate"
	"github.com/kegliz/qplay/qc/group"
)

// Partition is the evaluator's working set: the live groups a circuit's
// qubits are currently split into, keyed by qubit id for O(1) lookup.
type Partition struct {
	byQubit map[int]*group.Group
	order   []int // every qubit id 0..n-1, ascending; Finalize dedupes their groups
}

// NewPartition returns a fresh partition of n singleton groups for qubit ids
// 0..n-1.
func NewPartition(n int) *Partition {
	p := &Partition{byQubit: make(map[int]*group.Group, n), order: make([]int, 0, n)}
	for i := 0; i < n; i++ {
		g := group.NewSingleton(i)
		p.byQubit[i] = g
		p.order = append(p.order, i)
	}
	return p
}

func (p *Partition) groupOf(qubitID int) *group.Group {
	g, ok := p.byQubit[qubitID]
	if !ok {
		panic(fmt.Sprintf("evaluator: qubit %d is not part of this partition", qubitID))
	}
	return g
}

// mergeInto merges every group among ids into one and rebinds all of their
// member qubits to point at the merged group. Groups already identical are
// merged trivially (deduplicated first).
func (p *Partition) mergeInto(ids ...int) *group.Group {
	seen := make(map[*group.Group]bool)
	var groups []*group.Group
	for _, id := range ids {
		g := p.groupOf(id)
		if !seen[g] {
			seen[g] = true
			groups = append(groups, g)
		}
	}
	if len(groups) == 1 {
		return groups[0]
	}
	merged := group.Merge(groups...)
	for _, q := range merged.Qubits {
		p.byQubit[q] = merged
	}
	return merged
}

// relabelSwap exchanges the global qubit-id labels a and b across every
// group in the partition, per spec: swap never touches amplitudes, only
// which global id each slot currently represents.
func (p *Partition) relabelSwap(a, b int) {
	ga, gb := p.groupOf(a), p.groupOf(b)
	relabelOne := func(g *group.Group) {
		for i, q := range g.Qubits {
			switch q {
			case a:
				g.Qubits[i] = b
			case b:
				g.Qubits[i] = a
			}
		}
	}
	relabelOne(ga)
	if gb != ga {
		relabelOne(gb)
	}
	p.byQubit[a], p.byQubit[b] = gb, ga
}

type classification int

const (
	classZero classification = iota
	classOne
	classSuper
)

// classify labels a control group as zero/one/super: zero and one require
// the group to be an exact-basis singleton; anything else, including any
// multi-qubit group, is super and forces the merge path.
func classify(g *group.Group) classification {
	if g.Len() != 1 {
		return classSuper
	}
	if g.IsKet0() {
		return classZero
	}
	if g.IsKet1() {
		return classOne
	}
	return classSuper
}

// Apply walks a single gate against the partition, performing the merge,
// short-circuit, or relabel the gate's kind calls for.
func (p *Partition) Apply(g gate.Gate) {
	switch g.Kind() {
	case gate.SwapKind:
		a, b := g.SwapQubits()
		p.relabelSwap(a, b)

	case gate.Single:
		grp := p.groupOf(g.Target())
		grp.ApplySingle(g)

	case gate.Controlled:
		p.applyControlled(g)

	case gate.DoubleControlled:
		p.applyDoubleControlled(g)

	default:
		panic(fmt.Sprintf("evaluator: unknown gate kind %v", g.Kind()))
	}
}

func (p *Partition) applyControlled(g gate.Gate) {
	gc := p.groupOf(g.Control())
	switch classify(gc) {
	case classZero:
		return // gate is identity
	case classOne:
		single := singleFromControlled(g)
		gt := p.groupOf(g.Target())
		gt.ApplySingle(single)
	default: // super
		merged := p.mergeInto(g.Control(), g.Target())
		merged.ApplyControlled(g)
	}
}

func (p *Partition) applyDoubleControlled(g gate.Gate) {
	gc1 := p.groupOf(g.Control())
	gc2 := p.groupOf(g.Control2())
	c1, c2 := classify(gc1), classify(gc2)

	switch {
	case c1 == classZero || c2 == classZero:
		return

	case c1 == classOne && c2 == classOne:
		single := doubleToSingle(g)
		gt := p.groupOf(g.Target())
		gt.ApplySingle(single)

	case c1 == classOne && c2 == classSuper:
		reduced := doubleToControlled(g, g.Control2())
		merged := p.mergeInto(g.Control2(), g.Target())
		merged.ApplyControlled(reduced)

	case c1 == classSuper && c2 == classOne:
		reduced := doubleToControlled(g, g.Control())
		merged := p.mergeInto(g.Control(), g.Target())
		merged.ApplyControlled(reduced)

	default: // super, super
		merged := p.mergeInto(g.Control(), g.Control2(), g.Target())
		merged.ApplyDoubleControlled(g)
	}
}

// singleFromControlled rebuilds the plain Single gate a Controlled gate
// reduces to once its control is classically |1>.
func singleFromControlled(g gate.Gate) gate.Gate {
	return gate.NewSingle(g.Name(), g.DrawSymbol(), g.Target(), g.U())
}

// doubleToSingle rebuilds the plain Single gate a DoubleControlled gate
// reduces to once both controls are classically |1>.
func doubleToSingle(g gate.Gate) gate.Gate {
	return gate.NewSingle(g.Name(), g.DrawSymbol(), g.Target(), g.U())
}

// doubleToControlled rebuilds the Controlled gate a DoubleControlled gate
// reduces to when exactly one control is classically |1> and the other is
// still in superposition: `remainingControl` becomes the sole control.
func doubleToControlled(g gate.Gate, remainingControl int) gate.Gate {
	return gate.NewControlled(g.Name(), g.DrawSymbol(), remainingControl, g.Target(), g.U())
}
