// Command cli runs a few textbook circuits through the lazy evaluator and
// prints their exact probability tables, cross-checked by sampling an
// independent statevector backend.
package main

import (
	"fmt"
	"sort"

	"github.com/kegliz/qplay/qc/builder"
	"github.com/kegliz/qplay/qc/circuit"
	"github.com/kegliz/qplay/qc/simulator"
	"github.com/kegliz/qplay/qc/simulator/itsu"
)

func main() {
	shots := 1024

	demos := []struct {
		name  string
		build func() (*circuit.Circuit, error)
	}{
		{"Bell State", bellState},
		{"2-Qubit Grover (|11>)", grover2Qubit},
		{"3-Qubit Grover (|111>)", grover3Qubit},
	}

	type built struct {
		name string
		c    *circuit.Circuit
	}
	ready := make([]built, 0, len(demos))
	for _, d := range demos {
		c, err := d.build()
		if err != nil {
			fmt.Printf("%s: build error: %v\n", d.name, err)
			continue
		}
		ready = append(ready, built{name: d.name, c: c})
	}

	circuits := make([]*circuit.Circuit, len(ready))
	for i, b := range ready {
		circuits[i] = b.c
	}
	// Force every circuit's state vector up front through the batch
	// Simulator, so the per-demo printing below is just reading an
	// already-evaluated cache.
	(&circuit.Simulator{Workers: len(circuits)}).EvaluateCircuits(circuits)

	for _, b := range ready {
		fmt.Printf("\n--- %s ---\n", b.name)
		run(b.c, shots)
	}
}

// bellState prepares |Φ⁺⟩ = (|00⟩+|11⟩)/√2.
func bellState() (*circuit.Circuit, error) {
	return builder.New(2).H(0).CX(0, 1).Build()
}

// grover2Qubit runs one Grover iteration over a 2-qubit search space,
// amplifying |11⟩.
func grover2Qubit() (*circuit.Circuit, error) {
	return builder.New(2).
		H(0).H(1).
		CZ(0, 1).
		H(0).H(1).X(0).X(1).CZ(0, 1).X(0).X(1).H(0).H(1).
		Build()
}

// grover3Qubit runs one Grover iteration over a 3-qubit search space,
// amplifying |111⟩. CCZ is realised as H-CCX-H on the target.
func grover3Qubit() (*circuit.Circuit, error) {
	return builder.New(3).
		H(0).H(1).H(2).
		H(2).CCX(0, 1, 2).H(2).
		H(0).H(1).H(2).X(0).X(1).X(2).
		H(2).CCX(0, 1, 2).H(2).
		X(0).X(1).X(2).H(0).H(1).H(2).
		Build()
}

// run prints the circuit's exact probability table (from the lazy
// evaluator) alongside a classical-sample histogram drawn from an
// independent statevector backend, as a cross-check.
func run(c *circuit.Circuit, shots int) {
	if c == nil {
		return
	}

	fmt.Println("exact probabilities:")
	pretty(c.ProbabilityDict())

	sim := simulator.NewSimulator(simulator.SimulatorOptions{Shots: shots, Runner: itsu.NewItsuOneShotRunner()})
	hist, err := sim.RunSerial(c)
	if err != nil {
		fmt.Println("sample error:", err)
		return
	}
	fmt.Printf("itsu cross-check (%d shots):\n", shots)
	prettyHist(hist, shots)
}

func pretty(probs map[string]float64) {
	for _, k := range sortedKeys(probs) {
		fmt.Printf("  |%s> : %.4f\n", k, probs[k])
	}
}

func prettyHist(hist map[string]int, shots int) {
	keys := make(map[string]float64, len(hist))
	for k, v := range hist {
		keys[k] = float64(v) / float64(shots)
	}
	for _, k := range sortedKeys(keys) {
		fmt.Printf("  |%s> : %4d (%.2f%%)\n", k, hist[k], keys[k]*100)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
