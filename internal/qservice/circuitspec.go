// Package qservice turns a wire-format circuit description into a
// qc/circuit.Circuit, stores built circuits by id, and serves them back as
// probability tables or rendered diagrams for the HTTP layer.
package qservice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kegliz/qplay/qc/circuit"
	"github.com/kegliz/qplay/qc/gate"
)

type (
	// GateSpec is one operation in a wire-format circuit: a gate name, the
	// absolute qubit ids it acts on, an optional rotation angle for the
	// parametrised gates, and the declared time step (gates are applied in
	// step order, then declaration order within a step).
	GateSpec struct {
		Type   string   `json:"type"`
		Qubits []int    `json:"qubits"`
		Theta  *float64 `json:"theta,omitempty"`
		Step   int      `json:"step"`
	}

	// CircuitSpec is the JSON shape the HTTP API accepts for a circuit.
	CircuitSpec struct {
		Qubits int        `json:"qubits"`
		Gates  []GateSpec `json:"gates"`
	}
)

// BuildCircuit converts a CircuitSpec into a circuit.Circuit, applying gates
// in step order. A malformed gate (wrong qubit count, unknown name, missing
// theta) is reported as an ordinary error naming the offending gate index,
// since the spec arrives from untrusted HTTP input.
func BuildCircuit(spec CircuitSpec) (*circuit.Circuit, error) {
	if spec.Qubits <= 0 {
		return nil, fmt.Errorf("qservice: qubits must be positive, got %d", spec.Qubits)
	}

	gates := make([]GateSpec, len(spec.Gates))
	copy(gates, spec.Gates)
	sort.SliceStable(gates, func(i, j int) bool { return gates[i].Step < gates[j].Step })

	c := circuit.New(spec.Qubits)
	for i, gs := range gates {
		g, err := buildGate(gs)
		if err != nil {
			return nil, fmt.Errorf("qservice: gate %d (%s): %w", i, gs.Type, err)
		}
		if err := c.Apply(g); err != nil {
			return nil, fmt.Errorf("qservice: gate %d (%s): %w", i, gs.Type, err)
		}
	}
	return c, nil
}

// rotated builds a gate that takes a rotation angle, one entry per
// parametrised name the plain gate.Factory lookup doesn't cover.
var rotated = map[string]func(theta float64, qubits []int) (gate.Gate, error){
	"rx":     func(theta float64, q []int) (gate.Gate, error) { return unaryTheta(gate.RX, theta, q) },
	"ry":     func(theta float64, q []int) (gate.Gate, error) { return unaryTheta(gate.RY, theta, q) },
	"rz":     func(theta float64, q []int) (gate.Gate, error) { return unaryTheta(gate.RZ, theta, q) },
	"phase":  func(theta float64, q []int) (gate.Gate, error) { return unaryTheta(gate.Phase, theta, q) },
	"crx":    func(theta float64, q []int) (gate.Gate, error) { return controlledTheta(gate.CRX, theta, q) },
	"cry":    func(theta float64, q []int) (gate.Gate, error) { return controlledTheta(gate.CRY, theta, q) },
	"crz":    func(theta float64, q []int) (gate.Gate, error) { return controlledTheta(gate.CRZ, theta, q) },
	"cphase": func(theta float64, q []int) (gate.Gate, error) { return controlledTheta(gate.CPhase, theta, q) },
}

func buildGate(gs GateSpec) (gate.Gate, error) {
	name := norm(gs.Type)
	if ctor, ok := rotated[name]; ok {
		if gs.Theta == nil {
			return gate.Gate{}, fmt.Errorf("gate requires a theta angle")
		}
		return ctor(*gs.Theta, gs.Qubits)
	}
	return gate.Factory(gs.Type, gs.Qubits...)
}

func unaryTheta(ctor func(int, float64) gate.Gate, theta float64, q []int) (gate.Gate, error) {
	if len(q) != 1 {
		return gate.Gate{}, fmt.Errorf("expected 1 qubit, got %d", len(q))
	}
	return ctor(q[0], theta), nil
}

func controlledTheta(ctor func(int, int, float64) gate.Gate, theta float64, q []int) (gate.Gate, error) {
	if len(q) != 2 {
		return gate.Gate{}, fmt.Errorf("expected 2 qubits (control, target), got %d", len(q))
	}
	return ctor(q[0], q[1], theta), nil
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
