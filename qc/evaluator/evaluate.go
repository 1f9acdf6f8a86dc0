package evaluator

import (
	"sync"

	"github.com/kegliz/qplay/qc/gate"
)

// Evaluate runs a gate sequence over n qubits through a fresh partition and
// returns the finalised, globally-ordered 2^n-length state vector. An empty
// gate sequence returns the all-|0> vector, per the spec's failure
// semantics for an empty circuit.
func Evaluate(n int, gates []gate.Gate) []complex128 {
	p := NewPartition(n)
	for _, g := range gates {
		p.Apply(g)
	}
	return p.Finalize(n)
}

// Job is one unit of batch work: an independent gate sequence over its own
// qubit count. Batch results preserve input order regardless of how many
// workers process them.
type Job struct {
	Qubits int
	Gates  []gate.Gate
}

// Simulator runs batches of independent circuits. Evaluation is sequential
// by default (Workers <= 1); each circuit owns its own partition so there is
// no shared mutable state between circuits, which is what makes a bounded
// worker pool safe to opt into.
type Simulator struct {
	// Workers bounds how many circuits are evaluated concurrently. Values
	// <= 1 evaluate strictly sequentially.
	Workers int
}

// Evaluate runs every job and returns one state vector per job, in the same
// order as the input.
func (s *Simulator) Evaluate(jobs []Job) [][]complex128 {
	results := make([][]complex128, len(jobs))

	if s.Workers <= 1 || len(jobs) <= 1 {
		for i, j := range jobs {
			results[i] = Evaluate(j.Qubits, j.Gates)
		}
		return results
	}

	sem := make(chan struct{}, s.Workers)
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, j Job) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = Evaluate(j.Qubits, j.Gates)
		}(i, j)
	}
	wg.Wait()
	return results
}
