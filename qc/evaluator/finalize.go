package evaluator

import (
	"sort"

	"github.com/kegliz/qplay/qc/group"
)

// Finalize aggregates every remaining live group into one global state
// vector of length 2^n, permuted so slot i represents the basis state where
// global qubit q has bit (i >> (n-1-q)) & 1 — i.e. qubit 0 is the most
// significant bit, matching qc/group and qc/matrix's convention throughout.
//
// Groups are aggregated by tensor-product merge in ascending order of each
// group's lowest-numbered qubit id: a deterministic choice the spec leaves
// open, fixed here so finalisation is reproducible across runs.
func (p *Partition) Finalize(n int) []complex128 {
	groups := p.liveGroupsInOrder()
	if len(groups) == 0 {
		state := make([]complex128, 1)
		state[0] = 1
		return state
	}

	aggregate := groups[0]
	if len(groups) > 1 {
		aggregate = group.Merge(groups...)
	}

	return permuteToGlobalOrder(aggregate, n)
}

// liveGroupsInOrder returns every distinct group currently in the
// partition, ordered by the smallest qubit id each one contains.
func (p *Partition) liveGroupsInOrder() []*group.Group {
	seen := make(map[*group.Group]bool)
	var groups []*group.Group
	for _, id := range p.order {
		g := p.byQubit[id]
		if !seen[g] {
			seen[g] = true
			groups = append(groups, g)
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		return minQubit(groups[i]) < minQubit(groups[j])
	})
	return groups
}

func minQubit(g *group.Group) int {
	m := g.Qubits[0]
	for _, q := range g.Qubits[1:] {
		if q < m {
			m = q
		}
	}
	return m
}

// permuteToGlobalOrder re-indexes an aggregate group's state vector, whose
// slot i encodes bits positioned per aggregate.Qubits order, into the
// canonical global-qubit-id order.
func permuteToGlobalOrder(aggregate *group.Group, n int) []complex128 {
	k := aggregate.Len()
	out := make([]complex128, 1<<n)

	for i, amp := range aggregate.State {
		if amp == 0 {
			continue
		}
		globalIdx := 0
		for pos, qubitID := range aggregate.Qubits {
			bit := (i >> (k - 1 - pos)) & 1
			globalIdx |= bit << (n - 1 - qubitID)
		}
		out[globalIdx] = amp
	}
	return out
}
