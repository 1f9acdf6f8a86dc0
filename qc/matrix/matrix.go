// Package matrix builds the dense complex operators the evaluator applies to
// a qubit group's state vector: tensor-expanding a 2x2 base operator into a
// q-qubit space, its controlled and double-controlled variants, and a
// from-scratch 2^N x 2^N unitary builder used as a correctness oracle in
// tests. Positions follow the same big-endian convention as qc/group: qubit
// 0 is the most significant factor in the Kronecker product.
package matrix

import "github.com/kegliz/qplay/qc/gate"

// Dense is a square complex matrix stored row-major as a slice of rows.
type Dense [][]complex128

// Identity returns the 2^n x 2^n identity matrix.
func Identity(n int) Dense {
	dim := 1 << n
	m := make(Dense, dim)
	for i := range m {
		m[i] = make([]complex128, dim)
		m[i][i] = 1
	}
	return m
}

// Proj0 is |0><0|.
func Proj0() Dense { return Dense{{1, 0}, {0, 0}} }

// Proj1 is |1><1|.
func Proj1() Dense { return Dense{{0, 0}, {0, 1}} }

func identity2() Dense { return Identity(1) }

// Kron returns the Kronecker product a (x) b.
func Kron(a, b Dense) Dense {
	ra, ca := len(a), len(a[0])
	rb, cb := len(b), len(b[0])
	out := make(Dense, ra*rb)
	for i := range out {
		out[i] = make([]complex128, ca*cb)
	}
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			aij := a[i][j]
			if aij == 0 {
				continue
			}
			for k := 0; k < rb; k++ {
				for l := 0; l < cb; l++ {
					out[i*rb+k][j*cb+l] = aij * b[k][l]
				}
			}
		}
	}
	return out
}

func from2(u gate.Matrix2) Dense {
	return Dense{
		{u[0][0], u[0][1]},
		{u[1][0], u[1][1]},
	}
}

// Expand embeds a 2x2 operator U acting on the qubit at position `target`
// inside a q-qubit register: I_2^target (x) U (x) I_2^(q-target-1). When
// q == 1 it returns U directly.
func Expand(u gate.Matrix2, target, q int) Dense {
	m := from2(u)
	if q == 1 {
		return m
	}
	if target > 0 {
		m = Kron(Identity(target), m)
	}
	after := q - (target + 1)
	if after > 0 {
		m = Kron(m, Identity(after))
	}
	return m
}

// tensorRow builds the q-qubit Kronecker product of factor(0), factor(1),
// ..., factor(q-1) in ascending position order. It's the shared core of
// ExpandControlled and ExpandDoubleControlled's summand construction,
// mirroring the original's per-position loop.
func tensorRow(q int, factor func(pos int) Dense) Dense {
	var m Dense
	for i := 0; i < q; i++ {
		f := factor(i)
		if m == nil {
			m = f
			continue
		}
		m = Kron(m, f)
	}
	return m
}

// ExpandControlled builds P0_at_control (x) I_elsewhere + (P1_at_control (x)
// U_at_target (x) I_elsewhere), the standard single-control decomposition:
// basis states with the control bit 0 are left untouched, those with the
// control bit 1 see U applied at the target.
func ExpandControlled(u gate.Matrix2, control, target, q int) Dense {
	p0, p1 := Proj0(), Proj1()
	um := from2(u)

	controlMatrix := tensorRow(q, func(pos int) Dense {
		if pos == control {
			return p0
		}
		return identity2()
	})

	targetMatrix := tensorRow(q, func(pos int) Dense {
		switch pos {
		case control:
			return p1
		case target:
			return um
		default:
			return identity2()
		}
	})

	return addInto(controlMatrix, targetMatrix)
}

// ExpandDoubleControlled builds the four-summand double-control operator:
// the three summands where at least one control is 0 carry I_2 at target,
// and the summand where both controls are 1 carries U at target. All
// summands carry the matching projector at c1/c2 and I_2 elsewhere.
func ExpandDoubleControlled(u gate.Matrix2, c1, c2, target, q int) Dense {
	p0, p1 := Proj0(), Proj1()
	um := from2(u)

	proj := func(bit1, bit2 int) func(pos int) Dense {
		p := func(b int) Dense {
			if b == 0 {
				return p0
			}
			return p1
		}
		return func(pos int) Dense {
			switch pos {
			case c1:
				return p(bit1)
			case c2:
				return p(bit2)
			default:
				return identity2()
			}
		}
	}

	m00 := tensorRow(q, proj(0, 0))
	m01 := tensorRow(q, proj(0, 1))
	m10 := tensorRow(q, proj(1, 0))

	m11 := tensorRow(q, func(pos int) Dense {
		switch pos {
		case c1:
			return p1
		case c2:
			return p1
		case target:
			return um
		default:
			return identity2()
		}
	})

	return addInto(addInto(addInto(m00, m01), m10), m11)
}

func addInto(a, b Dense) Dense {
	out := make(Dense, len(a))
	for i := range a {
		out[i] = make([]complex128, len(a[i]))
		for j := range a[i] {
			out[i][j] = a[i][j] + b[i][j]
		}
	}
	return out
}

// MatVec returns m * v.
func MatVec(m Dense, v []complex128) []complex128 {
	out := make([]complex128, len(m))
	for i := range m {
		var sum complex128
		row := m[i]
		for j, vj := range v {
			if vj == 0 {
				continue
			}
			sum += row[j] * vj
		}
		out[i] = sum
	}
	return out
}

// BuildUnitary constructs the full 2^n x 2^n unitary for a sequence of gates
// over n qubits, from scratch, independent of any partitioning. It exists as
// a correctness oracle for tests: applying it to the all-zero vector must
// match the evaluator's result for every gate sequence that fits in memory.
// SWAP is expressed through its CNOT decomposition (CX(a,b) CX(b,a) CX(a,b))
// since it carries no base matrix of its own.
func BuildUnitary(gates []gate.Gate, n int) Dense {
	result := Identity(n)
	for _, g := range gates {
		for _, step := range unitaryFactors(g, n) {
			result = mul(step, result)
		}
	}
	return result
}

func unitaryFactors(g gate.Gate, n int) []Dense {
	switch g.Kind() {
	case gate.Single:
		return []Dense{Expand(g.U(), g.Target(), n)}
	case gate.Controlled:
		return []Dense{ExpandControlled(g.U(), g.Control(), g.Target(), n)}
	case gate.DoubleControlled:
		return []Dense{ExpandDoubleControlled(g.U(), g.Control(), g.Control2(), g.Target(), n)}
	case gate.SwapKind:
		a, b := g.SwapQubits()
		cx := func(c, t int) Dense {
			return ExpandControlled(gate.Matrix2{{0, 1}, {1, 0}}, c, t, n)
		}
		return []Dense{cx(a, b), cx(b, a), cx(a, b)}
	default:
		panic("matrix: unknown gate kind")
	}
}

func mul(a, b Dense) Dense {
	n := len(a)
	out := make(Dense, n)
	for i := 0; i < n; i++ {
		out[i] = make([]complex128, n)
		for k := 0; k < n; k++ {
			aik := a[i][k]
			if aik == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out[i][j] += aik * b[k][j]
			}
		}
	}
	return out
}
