package qservice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCircuit_BellState(t *testing.T) {
	spec := CircuitSpec{
		Qubits: 2,
		Gates: []GateSpec{
			{Type: "H", Qubits: []int{0}, Step: 0},
			{Type: "CX", Qubits: []int{0, 1}, Step: 1},
		},
	}

	c, err := BuildCircuit(spec)
	require.NoError(t, err)

	probs := c.ProbabilityDict()
	assert.InDelta(t, 0.5, probs["00"], 1e-9)
	assert.InDelta(t, 0.5, probs["11"], 1e-9)
	assert.Len(t, probs, 2)
}

func TestBuildCircuit_StepOrderingIndependentOfDeclarationOrder(t *testing.T) {
	spec := CircuitSpec{
		Qubits: 2,
		Gates: []GateSpec{
			{Type: "CX", Qubits: []int{0, 1}, Step: 1},
			{Type: "H", Qubits: []int{0}, Step: 0},
		},
	}

	c, err := BuildCircuit(spec)
	require.NoError(t, err)
	assert.Equal(t, "H", c.Gates()[0].Name())
	assert.Equal(t, "CX", c.Gates()[1].Name())
}

func TestBuildCircuit_RotationGate(t *testing.T) {
	theta := math.Pi
	spec := CircuitSpec{
		Qubits: 1,
		Gates:  []GateSpec{{Type: "RX", Qubits: []int{0}, Theta: &theta}},
	}

	c, err := BuildCircuit(spec)
	require.NoError(t, err)

	probs := c.ProbabilityDict()
	assert.InDelta(t, 1.0, probs["1"], 1e-9)
}

func TestBuildCircuit_MissingTheta(t *testing.T) {
	spec := CircuitSpec{
		Qubits: 1,
		Gates:  []GateSpec{{Type: "RX", Qubits: []int{0}}},
	}
	_, err := BuildCircuit(spec)
	assert.Error(t, err)
}

func TestBuildCircuit_UnknownGate(t *testing.T) {
	spec := CircuitSpec{
		Qubits: 1,
		Gates:  []GateSpec{{Type: "NOPE", Qubits: []int{0}}},
	}
	_, err := BuildCircuit(spec)
	assert.Error(t, err)
}

func TestBuildCircuit_QubitOutOfRange(t *testing.T) {
	spec := CircuitSpec{
		Qubits: 1,
		Gates:  []GateSpec{{Type: "H", Qubits: []int{5}}},
	}
	_, err := BuildCircuit(spec)
	assert.Error(t, err)
}

func TestBuildCircuit_ZeroQubits(t *testing.T) {
	_, err := BuildCircuit(CircuitSpec{Qubits: 0})
	assert.Error(t, err)
}
