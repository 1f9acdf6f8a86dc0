package circuit

import (
	"testing"

	"github.com/kegliz/qplay/qc/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulator_EvaluateCircuitMatchesState(t *testing.T) {
	c := New(2)
	c.MustApply(gate.H(0)).MustApply(gate.CX(0, 1))
	assert.False(t, c.Evaluated())

	sim := &Simulator{}
	state := sim.EvaluateCircuit(c)

	assert.True(t, c.Evaluated())
	assert.Equal(t, c.State(), state)
}

func TestSimulator_EvaluateCircuitsSequential(t *testing.T) {
	a := New(1)
	a.MustApply(gate.X(0))
	b := New(2)
	b.MustApply(gate.H(0)).MustApply(gate.CX(0, 1))

	sim := &Simulator{Workers: 0}
	sim.EvaluateCircuits([]*Circuit{a, b})

	require.True(t, a.Evaluated())
	require.True(t, b.Evaluated())
	assert.InDelta(t, 1.0, a.ProbabilityDict()["1"], 1e-9)
	assert.InDelta(t, 0.5, b.ProbabilityDict()["00"], 1e-9)
	assert.InDelta(t, 0.5, b.ProbabilityDict()["11"], 1e-9)
}

func TestSimulator_EvaluateCircuitsConcurrent(t *testing.T) {
	circuits := make([]*Circuit, 0, 8)
	for i := 0; i < 8; i++ {
		c := New(2)
		c.MustApply(gate.H(0)).MustApply(gate.CX(0, 1))
		circuits = append(circuits, c)
	}

	sim := &Simulator{Workers: 4}
	sim.EvaluateCircuits(circuits)

	for _, c := range circuits {
		assert.True(t, c.Evaluated())
		assert.InDelta(t, 0.5, c.ProbabilityDict()["00"], 1e-9)
		assert.InDelta(t, 0.5, c.ProbabilityDict()["11"], 1e-9)
	}
}

func TestSimulator_EvaluateCircuitsEmpty(t *testing.T) {
	sim := &Simulator{}
	sim.EvaluateCircuits(nil)
}
