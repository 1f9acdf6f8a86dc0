package itsu

import (
	"sort"
	"testing"

	"github.com/kegliz/qplay/qc/builder"
	"github.com/kegliz/qplay/qc/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pretty prints the histogram in a deterministic, sorted order
func prettyPS(t *testing.T, hist map[string]int, shots int) {
	keys := make([]string, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t.Log("Histogram (key : count / %):")
	for _, k := range keys {
		c := hist[k]
		pct := 100 * float64(c) / float64(shots)
		t.Logf("  %s : %4d (%.1f%%)", k, c, pct)
	}
}

// TestBellStatePS prepares the |Φ⁺⟩ Bell state and checks ~50/50 statistics
// by sampling the itsu backend many times in parallel.
func TestBellStatePS(t *testing.T) {
	shots := 2048
	c, err := builder.New(2).H(0).CX(0, 1).Build()
	require.NoError(t, err)

	sim := simulator.NewSimulator(simulator.SimulatorOptions{Shots: shots, Runner: NewItsuOneShotRunner()})
	hist, err := sim.RunParallelStatic(c)
	require.NoError(t, err)

	prettyPS(t, hist, shots)

	assert.InDelta(t, 0.5, float64(hist["00"])/float64(shots), 0.1)
	assert.InDelta(t, 0.5, float64(hist["11"])/float64(shots), 0.1)
	assert.Equal(t, 0, hist["01"], "unexpected outcome 01")
	assert.Equal(t, 0, hist["10"], "unexpected outcome 10")
}

// TestGrover2QubitPS demonstrates one Grover iteration on a 2-qubit search
// space, amplifying the |11⟩ state.
func TestGrover2QubitPS(t *testing.T) {
	shots := 1024
	c, err := builder.New(2).
		H(0).H(1).
		CZ(0, 1).
		H(0).H(1).X(0).X(1).CZ(0, 1).X(0).X(1).H(0).H(1).
		Build()
	require.NoError(t, err)

	sim := simulator.NewSimulator(simulator.SimulatorOptions{Shots: shots, Runner: NewItsuOneShotRunner()})
	hist, err := sim.RunParallelStatic(c)
	require.NoError(t, err)

	prettyPS(t, hist, shots)

	assert.Greater(t, hist["11"], int(0.75*float64(shots)), "Grover did not amplify |11⟩ sufficiently")
}

func TestGrover3QubitPS(t *testing.T) {
	shots := 1024
	c, err := builder.New(3).
		H(0).H(1).H(2).
		H(2).CCX(0, 1, 2).H(2). // CCZ via H-CCX-H
		H(0).H(1).H(2).X(0).X(1).X(2).
		H(2).CCX(0, 1, 2).H(2).
		X(0).X(1).X(2).H(0).H(1).H(2).
		Build()
	require.NoError(t, err)

	sim := simulator.NewSimulator(simulator.SimulatorOptions{Shots: shots, Runner: NewItsuOneShotRunner()})
	hist, err := sim.RunParallelStatic(c)
	require.NoError(t, err)

	prettyPS(t, hist, shots)

	assert.Greater(t, hist["111"], int(0.75*float64(shots)), "Grover did not amplify |111⟩ sufficiently")
}
