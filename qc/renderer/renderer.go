// Package renderer turns a circuit's gate list into a diagram image. Layout
// (which column, which wires) comes from qc/dag's topological columns; the
// renderer itself only knows how to draw a gate.Gate at a given position.
package renderer

import (
	"image"
	"image/color"

	"github.com/kegliz/qplay/qc/circuit"
)

// Renderer turns a circuit into an immutable image.
// Strategy pattern lets us supply many renderers (PNG, SVG, ASCII…).
type Renderer interface {
	Render(c *circuit.Circuit) (image.Image, error)
}

// Default look‑n‑feel knobs (colours)
var (
	WireColor  = color.Black
	GateFill   = color.White
	GateStroke = color.Black
)
