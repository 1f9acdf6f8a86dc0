// Package builder implements a fluent declarative DSL for building
// circuits, one gate call at a time, bailing out on the first construction
// error rather than returning one from every call.
package builder

import (
	"github.com/kegliz/qplay/qc/circuit"
	"github.com/kegliz/qplay/qc/gate"
)

// Builder is a fluent wrapper over circuit.Circuit.
type Builder interface {
	H(q int) Builder
	X(q int) Builder
	Y(q int) Builder
	Z(q int) Builder
	S(q int) Builder
	T(q int) Builder
	RX(q int, theta float64) Builder
	RY(q int, theta float64) Builder
	RZ(q int, theta float64) Builder
	Phase(q int, theta float64) Builder

	CX(ctrl, tgt int) Builder
	CY(ctrl, tgt int) Builder
	CZ(ctrl, tgt int) Builder
	CH(ctrl, tgt int) Builder
	CS(ctrl, tgt int) Builder
	CPhase(ctrl, tgt int, theta float64) Builder
	CRX(ctrl, tgt int, theta float64) Builder
	CRY(ctrl, tgt int, theta float64) Builder
	CRZ(ctrl, tgt int, theta float64) Builder

	CCX(c1, c2, tgt int) Builder
	CCZ(c1, c2, tgt int) Builder
	Swap(a, b int) Builder

	// Build finalises the builder, returning the first construction error
	// encountered (if any) or the built circuit.
	Build() (*circuit.Circuit, error)
}

// New returns a fresh Builder over a qubits-qubit circuit.
func New(qubits int) Builder {
	return &b{c: circuit.New(qubits)}
}

type b struct {
	c   *circuit.Circuit
	err error
}

func (bd *b) bail(err error) Builder {
	if bd.err == nil {
		bd.err = err
	}
	return bd
}

func (bd *b) add(g gate.Gate) Builder {
	if bd.err != nil {
		return bd
	}
	if err := bd.c.Apply(g); err != nil {
		return bd.bail(err)
	}
	return bd
}

func (bd *b) H(q int) Builder                    { return bd.add(gate.H(q)) }
func (bd *b) X(q int) Builder                    { return bd.add(gate.X(q)) }
func (bd *b) Y(q int) Builder                    { return bd.add(gate.Y(q)) }
func (bd *b) Z(q int) Builder                    { return bd.add(gate.Z(q)) }
func (bd *b) S(q int) Builder                    { return bd.add(gate.S(q)) }
func (bd *b) T(q int) Builder                    { return bd.add(gate.T(q)) }
func (bd *b) RX(q int, theta float64) Builder    { return bd.add(gate.RX(q, theta)) }
func (bd *b) RY(q int, theta float64) Builder    { return bd.add(gate.RY(q, theta)) }
func (bd *b) RZ(q int, theta float64) Builder    { return bd.add(gate.RZ(q, theta)) }
func (bd *b) Phase(q int, theta float64) Builder { return bd.add(gate.Phase(q, theta)) }

func (bd *b) CX(c, t int) Builder                    { return bd.add(gate.CX(c, t)) }
func (bd *b) CY(c, t int) Builder                    { return bd.add(gate.CY(c, t)) }
func (bd *b) CZ(c, t int) Builder                    { return bd.add(gate.CZ(c, t)) }
func (bd *b) CH(c, t int) Builder                    { return bd.add(gate.CH(c, t)) }
func (bd *b) CS(c, t int) Builder                    { return bd.add(gate.CS(c, t)) }
func (bd *b) CPhase(c, t int, theta float64) Builder { return bd.add(gate.CPhase(c, t, theta)) }
func (bd *b) CRX(c, t int, theta float64) Builder    { return bd.add(gate.CRX(c, t, theta)) }
func (bd *b) CRY(c, t int, theta float64) Builder    { return bd.add(gate.CRY(c, t, theta)) }
func (bd *b) CRZ(c, t int, theta float64) Builder    { return bd.add(gate.CRZ(c, t, theta)) }

func (bd *b) CCX(c1, c2, t int) Builder { return bd.add(gate.CCX(c1, c2, t)) }
func (bd *b) CCZ(c1, c2, t int) Builder { return bd.add(gate.CCZ(c1, c2, t)) }
func (bd *b) Swap(a, bq int) Builder    { return bd.add(gate.Swap(a, bq)) }

func (bd *b) Build() (*circuit.Circuit, error) {
	if bd.err != nil {
		return nil, bd.err
	}
	return bd.c, nil
}
