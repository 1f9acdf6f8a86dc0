package evaluator

import (
	"math"
	"testing"

	"github.com/kegliz/qplay/qc/gate"
	"github.com/stretchr/testify/assert"
)

const invSqrt2 = 1 / math.Sqrt2

func assertStateClose(t *testing.T, want, got []complex128) {
	t.Helper()
	if !assert.Equal(t, len(want), len(got), "state length mismatch") {
		return
	}
	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), 1e-9, "real part at index %d", i)
		assert.InDelta(t, imag(want[i]), imag(got[i]), 1e-9, "imag part at index %d", i)
	}
}

func TestBellPair(t *testing.T) {
	state := Evaluate(2, []gate.Gate{gate.H(0), gate.CX(0, 1)})
	want := []complex128{complex(invSqrt2, 0), 0, 0, complex(invSqrt2, 0)}
	assertStateClose(t, want, state)
}

func TestGHZThree(t *testing.T) {
	state := Evaluate(3, []gate.Gate{gate.H(0), gate.CX(0, 1), gate.CX(1, 2)})
	want := make([]complex128, 8)
	want[0] = complex(invSqrt2, 0)
	want[7] = complex(invSqrt2, 0)
	assertStateClose(t, want, state)
}

func TestRotation(t *testing.T) {
	state := Evaluate(1, []gate.Gate{gate.RX(0, math.Pi)})
	want := []complex128{0, -1i}
	assertStateClose(t, want, state)
}

func TestSwap(t *testing.T) {
	state := Evaluate(2, []gate.Gate{gate.X(0), gate.Swap(0, 1)})
	want := []complex128{0, 1, 0, 0}
	assertStateClose(t, want, state)
}

func TestToffoliClassical(t *testing.T) {
	state := Evaluate(3, []gate.Gate{gate.X(0), gate.X(1), gate.CCX(0, 1, 2)})
	want := make([]complex128, 8)
	want[7] = 1
	assertStateClose(t, want, state)
}

func TestControlledIdleDoesNotMergeGroups(t *testing.T) {
	p := NewPartition(2)
	p.Apply(gate.CX(0, 1))

	g0 := p.groupOf(0)
	g1 := p.groupOf(1)
	assert.NotSame(t, g0, g1, "CX on a classically-|0> control must not merge groups")
	assert.Equal(t, 1, g0.Len())
	assert.Equal(t, 1, g1.Len())

	state := p.Finalize(2)
	want := []complex128{1, 0, 0, 0}
	assertStateClose(t, want, state)
}

func TestControlledOneShortCircuitsToSingle(t *testing.T) {
	p := NewPartition(2)
	p.Apply(gate.X(0)) // control is now classically |1>
	p.Apply(gate.CX(0, 1))

	g0 := p.groupOf(0)
	g1 := p.groupOf(1)
	assert.NotSame(t, g0, g1, "a classically-|1> control reduces to apply_single, no merge")

	state := p.Finalize(2)
	want := []complex128{0, 0, 0, 1} // |11>
	assertStateClose(t, want, state)
}

func TestDoubleControlledBothOneReducesToSingleNoMerge(t *testing.T) {
	p := NewPartition(3)
	p.Apply(gate.X(0))
	p.Apply(gate.X(1))
	p.Apply(gate.CCX(0, 1, 2))

	assert.NotSame(t, p.groupOf(0), p.groupOf(2))
	assert.NotSame(t, p.groupOf(1), p.groupOf(2))

	state := p.Finalize(3)
	want := make([]complex128, 8)
	want[7] = 1
	assertStateClose(t, want, state)
}

func TestDoubleControlledOneZeroSkips(t *testing.T) {
	p := NewPartition(3)
	p.Apply(gate.X(1)) // c2 = |1>, c1 stays |0>
	p.Apply(gate.CCX(0, 1, 2))

	state := p.Finalize(3)
	want := make([]complex128, 8)
	want[2] = 1 // |010>
	assertStateClose(t, want, state)
}

func TestDoubleControlledMixedOneSuperReducesToControlled(t *testing.T) {
	p := NewPartition(3)
	p.Apply(gate.X(0))   // c1 classically |1>
	p.Apply(gate.H(1))   // c2 in superposition
	p.Apply(gate.CCX(0, 1, 2))

	state := p.Finalize(3)
	// CCX with c1=1 reduces to CX(1,2): target flips wherever qubit 1 is 1.
	want := make([]complex128, 8)
	want[4] = complex(invSqrt2, 0) // |100>
	want[7] = complex(invSqrt2, 0) // |111>
	assertStateClose(t, want, state)
}

func TestEmptyCircuitIsAllZero(t *testing.T) {
	state := Evaluate(3, nil)
	want := make([]complex128, 8)
	want[0] = 1
	assertStateClose(t, want, state)
}

func TestSimulatorBatchSequentialAndParallelAgree(t *testing.T) {
	jobs := []Job{
		{Qubits: 2, Gates: []gate.Gate{gate.H(0), gate.CX(0, 1)}},
		{Qubits: 1, Gates: []gate.Gate{gate.X(0)}},
		{Qubits: 3, Gates: []gate.Gate{gate.X(0), gate.X(1), gate.CCX(0, 1, 2)}},
	}

	seq := (&Simulator{Workers: 1}).Evaluate(jobs)
	par := (&Simulator{Workers: 4}).Evaluate(jobs)

	for i := range jobs {
		assertStateClose(t, seq[i], par[i])
	}
}
