// Package group implements the fundamental dynamic entity of the lazy
// evaluator: an ordered list of global qubit ids sharing one dense amplitude
// vector, plus the gate-application and merge operations the evaluator
// drives. A group of k qubits owns a state vector of length 2^k; position i
// within qubits maps to bit i of a group-local basis index, most significant
// bit first (big-endian), matching qc/matrix's convention.
package group

import (
	"fmt"

	"github.com/kegliz/qplay/qc/gate"
	"github.com/kegliz/qplay/qc/matrix"
)

// Group is a single entanglement partition: the qubits in it share one
// amplitude vector and cannot be described independently.
type Group struct {
	Qubits []int
	State  []complex128
}

// NewSingleton returns the ket-|0> group for a single qubit id.
func NewSingleton(qubitID int) *Group {
	return &Group{Qubits: []int{qubitID}, State: []complex128{1, 0}}
}

// Len returns how many qubits this group holds.
func (g *Group) Len() int { return len(g.Qubits) }

// IndexOf returns the position of qubitID within g.Qubits, or -1 if absent.
func (g *Group) IndexOf(qubitID int) int {
	for i, q := range g.Qubits {
		if q == qubitID {
			return i
		}
	}
	return -1
}

// Contains reports whether qubitID belongs to this group.
func (g *Group) Contains(qubitID int) bool { return g.IndexOf(qubitID) >= 0 }

func (g *Group) mustIndexOf(qubitID int) int {
	pos := g.IndexOf(qubitID)
	if pos < 0 {
		panic(fmt.Sprintf("group: qubit %d is not a member of this group %v", qubitID, g.Qubits))
	}
	return pos
}

// ApplySingle applies a Single-kind gate's base matrix at its target
// qubit's position within this group.
func (g *Group) ApplySingle(gt gate.Gate) {
	pos := g.mustIndexOf(gt.Target())
	m := matrix.Expand(gt.U(), pos, g.Len())
	g.State = matrix.MatVec(m, g.State)
}

// ApplyControlled applies a Controlled-kind gate; both the control and the
// target must already be members of this group.
func (g *Group) ApplyControlled(gt gate.Gate) {
	cPos := g.mustIndexOf(gt.Control())
	tPos := g.mustIndexOf(gt.Target())
	m := matrix.ExpandControlled(gt.U(), cPos, tPos, g.Len())
	g.State = matrix.MatVec(m, g.State)
}

// ApplyDoubleControlled applies a DoubleControlled-kind gate; all three
// qubits must already be members of this group.
func (g *Group) ApplyDoubleControlled(gt gate.Gate) {
	c1Pos := g.mustIndexOf(gt.Control())
	c2Pos := g.mustIndexOf(gt.Control2())
	tPos := g.mustIndexOf(gt.Target())
	m := matrix.ExpandDoubleControlled(gt.U(), c1Pos, c2Pos, tPos, g.Len())
	g.State = matrix.MatVec(m, g.State)
}

// Merge combines groups (in the given order) into a single new group: the
// qubit list is the concatenation of each group's qubits in argument order,
// and the state is the Kronecker product of their state vectors in the same
// order. This is the only place groups combine; the evaluator must use the
// same ordering convention here and when computing positions for apply.
func Merge(groups ...*Group) *Group {
	if len(groups) == 0 {
		panic("group: Merge requires at least one group")
	}
	qubits := make([]int, 0, sumLen(groups))
	qubits = append(qubits, groups[0].Qubits...)

	state := groups[0].State
	var scratch []complex128 // tracks the last pooled buffer, if any, to return
	for _, g := range groups[1:] {
		next := kronScratch(state, g.State)
		if scratch != nil {
			putScratch(scratch)
		}
		scratch = next
		state = next
		qubits = append(qubits, g.Qubits...)
	}

	out := make([]complex128, len(state))
	copy(out, state)
	if scratch != nil {
		putScratch(scratch)
	}
	return &Group{Qubits: qubits, State: out}
}

func sumLen(groups []*Group) int {
	n := 0
	for _, g := range groups {
		n += g.Len()
	}
	return n
}

// kronScratch computes a (x) b into a pooled buffer. Per the spec's buffer
// pooling allowance, these intermediates never alias a live group's State;
// Merge always copies its final product into a freshly allocated slice
// before returning.
func kronScratch(a, b []complex128) []complex128 {
	out := getScratch(len(a) * len(b))
	for i, ai := range a {
		if ai == 0 {
			for j := range b {
				out[i*len(b)+j] = 0
			}
			continue
		}
		for j, bj := range b {
			out[i*len(b)+j] = ai * bj
		}
	}
	return out
}

// IsKet0 reports whether a singleton group is exactly in state |0>. It
// panics if the group holds more than one qubit: classifying a multi-qubit
// group as a basis state of one of its members is a misuse the spec treats
// as a fatal, unconditional error, not a normal failure mode.
func (g *Group) IsKet0() bool {
	g.mustBeSingleton("IsKet0")
	return g.State[0] == 1 && g.State[1] == 0
}

// IsKet1 reports whether a singleton group is exactly in state |1>. See
// IsKet0 for the panic condition on multi-qubit groups.
func (g *Group) IsKet1() bool {
	g.mustBeSingleton("IsKet1")
	return g.State[0] == 0 && g.State[1] == 1
}

func (g *Group) mustBeSingleton(op string) {
	if g.Len() != 1 {
		panic(fmt.Sprintf("group: %s called on a %d-qubit group, only valid for singletons", op, g.Len()))
	}
}
