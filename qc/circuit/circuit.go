// Package circuit implements the append-only gate list the evaluator walks:
// Apply appends and invalidates any cached result; State, Probabilities and
// ProbabilityDict are idempotent, evaluating at most once per distinct gate
// sequence and returning the cached result on every subsequent call.
package circuit

import (
	"fmt"

	"github.com/kegliz/qplay/qc/evaluator"
	"github.com/kegliz/qplay/qc/gate"
)

// Circuit is a fixed-width register plus an ordered list of gates applied
// to it. It carries no classical bits: measurement/collapse is out of
// scope for the lazy evaluator this circuit drives.
type Circuit struct {
	qubits int
	gates  []gate.Gate

	state   []complex128 // nil until the first State()/Probabilities() call
	probs   []float64
	probMap map[string]float64
}

// New returns an empty n-qubit circuit.
func New(qubits int) *Circuit {
	if qubits <= 0 {
		panic(fmt.Sprintf("circuit: qubits must be positive, got %d", qubits))
	}
	return &Circuit{qubits: qubits}
}

// Qubits returns the register width.
func (c *Circuit) Qubits() int { return c.qubits }

// Gates returns the appended gate sequence, in application order.
func (c *Circuit) Gates() []gate.Gate { return c.gates }

// Depth is the number of gates appended so far.
func (c *Circuit) Depth() int { return len(c.gates) }

// Apply appends a gate to the circuit and invalidates any cached
// state/probabilities. Every qubit id the gate references must be within
// [0, Qubits()); out-of-range references are returned as an ordinary error
// rather than a panic, since a caller building a circuit from untrusted
// input (the HTTP layer) needs a recoverable rejection, not a fatal abort.
func (c *Circuit) Apply(g gate.Gate) error {
	for _, q := range g.Qubits() {
		if q < 0 || q >= c.qubits {
			return fmt.Errorf("circuit: gate %s references qubit %d outside [0,%d)", g.Name(), q, c.qubits)
		}
	}
	c.gates = append(c.gates, g)
	c.state, c.probs, c.probMap = nil, nil, nil
	return nil
}

// MustApply is Apply but panics on error; for trusted, in-process call
// sites (tests, the CLI demo) where an out-of-range qubit id is a
// programmer error rather than untrusted input.
func (c *Circuit) MustApply(g gate.Gate) *Circuit {
	if err := c.Apply(g); err != nil {
		panic(err)
	}
	return c
}

// Evaluated reports whether the circuit's state has already been computed
// and cached, i.e. whether the absent/present sentinel would currently
// read "absent". A freshly built circuit, or one that just had a gate
// appended via Apply/MustApply, is unevaluated.
func (c *Circuit) Evaluated() bool { return c.state != nil }

// State evaluates the circuit if necessary and returns the cached,
// globally-ordered state vector of length 2^Qubits(). This getter is a
// convenience: it always forces evaluation rather than surfacing the
// absent sentinel to the caller. Simulator.EvaluateCircuit/EvaluateCircuits
// perform the same forced-evaluation-and-cache step explicitly, for
// callers that want to batch it across several circuits up front; check
// Evaluated() first if the absent/present distinction itself matters.
func (c *Circuit) State() []complex128 {
	if c.state == nil {
		c.state = evaluator.Evaluate(c.qubits, c.gates)
	}
	return c.state
}

// Probabilities returns the element-wise |amplitude|^2 of State(), cached
// alongside it.
func (c *Circuit) Probabilities() []float64 {
	if c.probs == nil {
		state := c.State()
		probs := make([]float64, len(state))
		for i, amp := range state {
			probs[i] = real(amp)*real(amp) + imag(amp)*imag(amp)
		}
		c.probs = probs
	}
	return c.probs
}

// ProbabilityDict maps each basis-state bit-string (length Qubits(),
// big-endian over global qubit ids) to its probability, omitting entries
// whose probability is exactly zero.
func (c *Circuit) ProbabilityDict() map[string]float64 {
	if c.probMap == nil {
		probs := c.Probabilities()
		out := make(map[string]float64, len(probs))
		for i, p := range probs {
			if p == 0 {
				continue
			}
			out[bitString(i, c.qubits)] = p
		}
		c.probMap = out
	}
	return c.probMap
}

func bitString(i, n int) string {
	b := make([]byte, n)
	for pos := 0; pos < n; pos++ {
		bit := (i >> (n - 1 - pos)) & 1
		b[pos] = byte('0' + bit)
	}
	return string(b)
}
