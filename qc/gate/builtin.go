package gate

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Base single-qubit matrices, the 2x2 operators every other constructor in
// this file either reuses directly or wraps with a control.

func matH() Matrix2 {
	r := complex(1/math.Sqrt2, 0)
	return Matrix2{{r, r}, {r, -r}}
}

func matX() Matrix2 {
	return Matrix2{{0, 1}, {1, 0}}
}

func matY() Matrix2 {
	return Matrix2{{0, -1i}, {1i, 0}}
}

func matZ() Matrix2 {
	return Matrix2{{1, 0}, {0, -1}}
}

func matS() Matrix2 {
	return Matrix2{{1, 0}, {0, 1i}}
}

func matT() Matrix2 {
	return Matrix2{{1, 0}, {0, cmplx.Exp(1i * complex(math.Pi/4, 0))}}
}

func matRX(theta float64) Matrix2 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return Matrix2{{c, s}, {s, c}}
}

func matRY(theta float64) Matrix2 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return Matrix2{{c, -s}, {s, c}}
}

func matRZ(theta float64) Matrix2 {
	return Matrix2{
		{cmplx.Exp(-1i * complex(theta/2, 0)), 0},
		{0, cmplx.Exp(1i * complex(theta/2, 0))},
	}
}

func matPhase(theta float64) Matrix2 {
	return Matrix2{{1, 0}, {0, cmplx.Exp(1i * complex(theta, 0))}}
}

// ---- Single-qubit gates ----

func H(target int) Gate { return newSingle("H", "H", target, matH()) }
func X(target int) Gate { return newSingle("X", "X", target, matX()) }
func Y(target int) Gate { return newSingle("Y", "Y", target, matY()) }
func Z(target int) Gate { return newSingle("Z", "Z", target, matZ()) }
func S(target int) Gate { return newSingle("S", "S", target, matS()) }
func T(target int) Gate { return newSingle("T", "T", target, matT()) }

func RX(target int, theta float64) Gate { return newSingle("RX", "Rx", target, matRX(theta)) }
func RY(target int, theta float64) Gate { return newSingle("RY", "Ry", target, matRY(theta)) }
func RZ(target int, theta float64) Gate { return newSingle("RZ", "Rz", target, matRZ(theta)) }
func Phase(target int, theta float64) Gate {
	return newSingle("Phase", "P", target, matPhase(theta))
}

// ---- Single-controlled gates ----

func CX(control, target int) Gate { return newControlled("CX", "⊕", control, target, matX()) }
func CY(control, target int) Gate { return newControlled("CY", "Y", control, target, matY()) }
func CZ(control, target int) Gate { return newControlled("CZ", "●", control, target, matZ()) }
func CH(control, target int) Gate { return newControlled("CH", "H", control, target, matH()) }
func CS(control, target int) Gate { return newControlled("CS", "S", control, target, matS()) }
func CPhase(control, target int, theta float64) Gate {
	return newControlled("CPhase", "P", control, target, matPhase(theta))
}

func CRX(control, target int, theta float64) Gate {
	return newControlled("CRX", "Rx", control, target, matRX(theta))
}
func CRY(control, target int, theta float64) Gate {
	return newControlled("CRY", "Ry", control, target, matRY(theta))
}
func CRZ(control, target int, theta float64) Gate {
	return newControlled("CRZ", "Rz", control, target, matRZ(theta))
}

// ---- Double-controlled gates ----

func CCX(c1, c2, target int) Gate {
	return newDoubleControlled("CCX", "⊕", c1, c2, target, matX())
}
func CCZ(c1, c2, target int) Gate {
	return newDoubleControlled("CCZ", "●", c1, c2, target, matZ())
}

// ---- Swap ----

func Swap(a, b int) Gate { return newSwap(a, b) }

// factory indexes every constructor above by its canonical lowercase name
// plus common aliases, for Factory's string-driven lookup. Parameterised
// gates read theta as the last float64-shaped argument via qubits' final
// slot being reinterpreted is not supported here — callers needing RX/RY/RZ/
// Phase/CRX/CRY/CRZ/CPhase from a wire format use the typed constructors
// directly; Factory only covers the fixed-matrix gates.
var factory = map[string]func(qubits ...int) (Gate, error){
	"h": func(q ...int) (Gate, error) { return unary1(H, q) },
	"x": func(q ...int) (Gate, error) { return unary1(X, q) },
	"y": func(q ...int) (Gate, error) { return unary1(Y, q) },
	"z": func(q ...int) (Gate, error) { return unary1(Z, q) },
	"s": func(q ...int) (Gate, error) { return unary1(S, q) },
	"t": func(q ...int) (Gate, error) { return unary1(T, q) },
	"cx": func(q ...int) (Gate, error) { return binary2(CX, q) },
	"cnot": func(q ...int) (Gate, error) { return binary2(CX, q) },
	"cy": func(q ...int) (Gate, error) { return binary2(CY, q) },
	"cz": func(q ...int) (Gate, error) { return binary2(CZ, q) },
	"ch": func(q ...int) (Gate, error) { return binary2(CH, q) },
	"cs": func(q ...int) (Gate, error) { return binary2(CS, q) },
	"ccx": func(q ...int) (Gate, error) { return ternary3(CCX, q) },
	"toffoli": func(q ...int) (Gate, error) { return ternary3(CCX, q) },
	"ccz": func(q ...int) (Gate, error) { return ternary3(CCZ, q) },
	"swap": func(q ...int) (Gate, error) { return swap2(q) },
}

func unary1(ctor func(int) Gate, q []int) (Gate, error) {
	if len(q) != 1 {
		return Gate{}, fmt.Errorf("gate: expected 1 qubit, got %d", len(q))
	}
	return ctor(q[0]), nil
}

func binary2(ctor func(int, int) Gate, q []int) (Gate, error) {
	if len(q) != 2 {
		return Gate{}, fmt.Errorf("gate: expected 2 qubits (control, target), got %d", len(q))
	}
	return ctor(q[0], q[1]), nil
}

func ternary3(ctor func(int, int, int) Gate, q []int) (Gate, error) {
	if len(q) != 3 {
		return Gate{}, fmt.Errorf("gate: expected 3 qubits (control1, control2, target), got %d", len(q))
	}
	return ctor(q[0], q[1], q[2]), nil
}

func swap2(q []int) (Gate, error) {
	if len(q) != 2 {
		return Gate{}, fmt.Errorf("gate: SWAP expects 2 qubits, got %d", len(q))
	}
	return Swap(q[0], q[1]), nil
}
