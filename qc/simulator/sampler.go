package simulator

import (
	"math/rand"

	"github.com/kegliz/qplay/qc/circuit"
)

// Sampler is a OneShotRunner that draws classical samples directly from a
// circuit's exact final probability distribution (Circuit.Probabilities),
// with no statevector re-simulation of its own. It is the cheapest possible
// backend and the one CreateRunner("lazy") returns: useful for histogram
// tests against the evaluator itself, as opposed to itsu's independent
// statevector re-implementation.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a Sampler seeded from the package-level random source.
func NewSampler() *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(rand.Int63()))}
}

// RunOnce draws one basis-state bit-string weighted by the circuit's
// amplitudes-squared.
func (s *Sampler) RunOnce(c *circuit.Circuit) (string, error) {
	probs := c.Probabilities()
	draw := s.rng.Float64()
	cum := 0.0
	for i, p := range probs {
		cum += p
		if draw < cum {
			return bitStringOf(i, c.Qubits()), nil
		}
	}
	// Floating point rounding can leave a residual; fall back to the last
	// nonzero bucket rather than erroring out.
	for i := len(probs) - 1; i > 0; i-- {
		if probs[i] > 0 {
			return bitStringOf(i, c.Qubits()), nil
		}
	}
	return bitStringOf(0, c.Qubits()), nil
}

func bitStringOf(i, n int) string {
	b := make([]byte, n)
	for pos := 0; pos < n; pos++ {
		bit := (i >> (n - 1 - pos)) & 1
		b[pos] = byte('0' + bit)
	}
	return string(b)
}

func init() {
	MustRegisterRunner("lazy", func() OneShotRunner { return NewSampler() })
}
