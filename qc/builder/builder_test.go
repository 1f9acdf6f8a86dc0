package builder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BellPair(t *testing.T) {
	c, err := New(2).H(0).CX(0, 1).Build()
	require.NoError(t, err)

	probs := c.Probabilities()
	assert.InDelta(t, 0.5, probs[0], 1e-9)
	assert.InDelta(t, 0.5, probs[3], 1e-9)
}

func TestBuilder_BailsOutOnFirstError(t *testing.T) {
	c, err := New(2).H(0).CX(0, 5).H(1).Build()
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestBuilder_FullCatalogueChains(t *testing.T) {
	c, err := New(3).
		H(0).X(1).Y(1).Z(1).S(1).T(1).
		RX(0, math.Pi/2).RY(0, 0.3).RZ(0, 0.1).Phase(0, 0.2).
		CX(0, 1).CY(0, 1).CZ(0, 1).CH(0, 1).CS(0, 1).
		CPhase(0, 1, 0.4).CRX(0, 1, 0.4).CRY(0, 1, 0.4).CRZ(0, 1, 0.4).
		CCX(0, 1, 2).CCZ(0, 1, 2).Swap(0, 2).
		Build()

	require.NoError(t, err)
	assert.Equal(t, 22, c.Depth())
}
