package dag

import (
	"testing"

	"github.com/kegliz/qplay/qc/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDAG_New(t *testing.T) {
	d := New(5)
	assert.NotNil(t, d)
	assert.Equal(t, 5, d.Qubits())
	assert.False(t, d.valid)
}

func TestDAG_AddGateWiresParents(t *testing.T) {
	d := New(3)
	require.NoError(t, d.AddGate(gate.H(0)))
	require.NoError(t, d.AddGate(gate.CX(0, 1)))
	require.NoError(t, d.AddGate(gate.CCX(0, 1, 2)))

	require.NoError(t, d.Validate())
	ops := d.Operations()
	require.Len(t, ops, 3)
	assert.Equal(t, "H", ops[0].G.Name())
	assert.Equal(t, "CX", ops[1].G.Name())
	assert.Equal(t, "CCX", ops[2].G.Name())
	assert.Equal(t, 3, d.Depth())
}

func TestDAG_RejectsOutOfRangeQubit(t *testing.T) {
	d := New(2)
	err := d.AddGate(gate.H(5))
	assert.ErrorIs(t, err, ErrBadQubit)
}

func TestDAG_RejectsMutationAfterValidate(t *testing.T) {
	d := New(1)
	require.NoError(t, d.AddGate(gate.X(0)))
	require.NoError(t, d.Validate())
	assert.ErrorIs(t, d.AddGate(gate.X(0)), ErrValidated)
}

func TestDAG_ParallelGatesShareDepthLayer(t *testing.T) {
	d := New(3)
	require.NoError(t, d.AddGate(gate.H(0)))
	require.NoError(t, d.AddGate(gate.H(1))) // independent of qubit 0, same layer
	require.NoError(t, d.AddGate(gate.CX(0, 2)))

	require.NoError(t, d.Validate())
	assert.Equal(t, 2, d.Depth())
}

func TestFromGatesBuildsAndValidates(t *testing.T) {
	d, err := FromGates(2, []gate.Gate{gate.H(0), gate.CX(0, 1)})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Depth())
}

func TestFromGatesPropagatesConstructionError(t *testing.T) {
	_, err := FromGates(1, []gate.Gate{gate.H(7)})
	assert.ErrorIs(t, err, ErrBadQubit)
}

func TestEmptyDAGHasZeroDepth(t *testing.T) {
	d := New(2)
	require.NoError(t, d.Validate())
	assert.Equal(t, 0, d.Depth())
	assert.Empty(t, d.Operations())
}
