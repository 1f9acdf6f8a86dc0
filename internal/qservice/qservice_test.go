package qservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CreateEvaluateRender(t *testing.T) {
	s := NewService(ServiceOptions{})

	id, err := s.CreateCircuit(CircuitSpec{
		Qubits: 2,
		Gates: []GateSpec{
			{Type: "H", Qubits: []int{0}},
			{Type: "CX", Qubits: []int{0, 1}, Step: 1},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	probs, err := s.Evaluate(id)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, probs["00"], 1e-9)
	assert.InDelta(t, 0.5, probs["11"], 1e-9)

	img, err := s.RenderCircuit(id)
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Greater(t, img.Bounds().Dx(), 0)
	assert.Greater(t, img.Bounds().Dy(), 0)
}

func TestService_UnknownID(t *testing.T) {
	s := NewService(ServiceOptions{})

	_, err := s.Evaluate("missing")
	assert.Error(t, err)

	_, err = s.RenderCircuit("missing")
	assert.Error(t, err)
}

func TestCircuitStore_SaveGet(t *testing.T) {
	store := NewCircuitStore()
	c, err := BuildCircuit(CircuitSpec{Qubits: 1, Gates: []GateSpec{{Type: "X", Qubits: []int{0}}}})
	require.NoError(t, err)

	id, err := store.Save(c)
	require.NoError(t, err)

	got, err := store.Get(id)
	require.NoError(t, err)
	assert.Same(t, c, got)

	_, err = store.Get("nope")
	assert.Error(t, err)
}
