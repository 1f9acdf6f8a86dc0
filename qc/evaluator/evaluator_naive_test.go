package evaluator

import (
	"math"
	"testing"

	"github.com/kegliz/qplay/qc/gate"
	"github.com/kegliz/qplay/qc/matrix"
)

// TestEvaluatorMatchesNaiveUnitary cross-checks the lazy evaluator against a
// from-scratch 2^n x 2^n unitary built independently of any partitioning.
// Agreement here is the strongest single correctness property this module
// has: it does not depend on the merge/short-circuit machinery being right
// in any particular case, only on the final state vector matching.
func TestEvaluatorMatchesNaiveUnitary(t *testing.T) {
	cases := []struct {
		name   string
		qubits int
		gates  []gate.Gate
	}{
		{"bell", 2, []gate.Gate{gate.H(0), gate.CX(0, 1)}},
		{"ghz3", 3, []gate.Gate{gate.H(0), gate.CX(0, 1), gate.CX(1, 2)}},
		{"rotation", 1, []gate.Gate{gate.RX(0, math.Pi)}},
		{"swap", 2, []gate.Gate{gate.X(0), gate.Swap(0, 1)}},
		{"toffoli_classical", 3, []gate.Gate{gate.X(0), gate.X(1), gate.CCX(0, 1, 2)}},
		{"controlled_idle", 2, []gate.Gate{gate.CX(0, 1)}},
		{
			"mixed_catalogue", 3, []gate.Gate{
				gate.H(0), gate.T(1), gate.CX(0, 1), gate.RY(2, 0.9),
				gate.CCZ(0, 1, 2), gate.Swap(1, 2), gate.CPhase(0, 2, 0.4),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.qubits, tc.gates)

			u := matrix.BuildUnitary(tc.gates, tc.qubits)
			zero := make([]complex128, 1<<tc.qubits)
			zero[0] = 1
			want := matrix.MatVec(u, zero)

			assertStateClose(t, want, got)
		})
	}
}
