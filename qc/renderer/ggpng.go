package renderer

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/fogleman/gg" // pure-Go 2-D vector lib
	"github.com/kegliz/qplay/qc/circuit"
	"github.com/kegliz/qplay/qc/dag"
	"github.com/kegliz/qplay/qc/gate"
)

// ─── ggPNG renderer ──────────────────────────────────────────────────────
// GGPNG is a renderer that uses the gg library to create PNG images of
// quantum circuits. Column/wire layout is computed by qc/dag; this type
// only knows how to draw one gate.Gate at a given column.

type GGPNG struct{ Cell float64 }

// NewRenderer returns a renderer that emits lossless PNGs using gg.
func NewRenderer(cellPx int) GGPNG { return GGPNG{Cell: float64(cellPx)} }

func (r GGPNG) Render(c *circuit.Circuit) (image.Image, error) {
	d, err := dag.FromGates(c.Qubits(), c.Gates())
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	steps := d.Depth()
	if steps < 1 {
		steps = 1 // minimum width to show bare wires
	}
	w := int(float64(steps) * r.Cell)
	h := int(float64(c.Qubits()) * r.Cell)
	if h <= 0 {
		h = int(r.Cell)
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	for i := 0; i < c.Qubits(); i++ {
		y := r.y(i)
		dc.DrawLine(0, y, float64(w), y)
		dc.Stroke()
	}

	for _, node := range d.Operations() {
		if err := r.drawGate(dc, node); err != nil {
			return nil, err
		}
	}

	return dc.Image(), nil
}

func (r GGPNG) Save(path string, c *circuit.Circuit) error {
	img, err := r.Render(c)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// ─── helpers ──────────────────────────────────────────────────────────────

func (r GGPNG) x(step int) float64 { return float64(step)*r.Cell + r.Cell/2 }
func (r GGPNG) y(line int) float64 { return float64(line)*r.Cell + r.Cell/2 }

func (r GGPNG) drawGate(dc *gg.Context, n *dag.Node) error {
	switch n.G.Kind() {
	case gate.Single:
		r.drawBoxGate(dc, n.Step, n.G.Target(), n.G.DrawSymbol())
	case gate.SwapKind:
		a, b := n.G.SwapQubits()
		r.drawSwap(dc, n.Step, a, b)
	case gate.Controlled:
		r.drawControlled(dc, n.Step, n.G.Control(), n.G.Target(), n.G.Name(), n.G.DrawSymbol())
	case gate.DoubleControlled:
		r.drawDoubleControlled(dc, n.Step, n.G.Control(), n.G.Control2(), n.G.Target(), n.G.Name(), n.G.DrawSymbol())
	default:
		return fmt.Errorf("renderer: unsupported gate kind %v for %q", n.G.Kind(), n.G.Name())
	}
	return nil
}

func (r GGPNG) drawBoxGate(dc *gg.Context, step, line int, symbol string) {
	x, y := r.x(step), r.y(line)
	size := r.Cell * .7
	dc.DrawRectangle(x-size/2, y-size/2, size, size)
	dc.SetRGB(1, 1, 1)
	dc.FillPreserve()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.Stroke()
	dc.DrawStringAnchored(symbol, x, y, 0.5, 0.5)
}

// drawControlled draws a single-control gate: a filled control dot joined by
// a wire to the target. X-like gates (CX/CNOT) draw the target as ⊕; Z-like
// gates (CZ) draw it as a second filled dot; everything else falls back to a
// labelled box, matching how CH/CS/CPhase/CRX/CRY/CRZ have no conventional
// pictogram.
func (r GGPNG) drawControlled(dc *gg.Context, step, control, target int, name, symbol string) {
	x := r.x(step)
	yc, yt := r.y(control), r.y(target)

	dc.SetRGB(0, 0, 0)
	dc.DrawCircle(x, yc, r.Cell*0.12)
	dc.Fill()
	dc.DrawLine(x, yc, x, yt)
	dc.Stroke()

	switch name {
	case "CX":
		r.drawOplus(dc, x, yt)
	case "CZ":
		dc.DrawCircle(x, yt, r.Cell*0.12)
		dc.Fill()
	default:
		r.drawBoxGate(dc, step, target, symbol)
	}
}

func (r GGPNG) drawDoubleControlled(dc *gg.Context, step, c1, c2, target int, name, symbol string) {
	x := r.x(step)
	y1, y2, yt := r.y(c1), r.y(c2), r.y(target)

	minY, maxY := y1, y2
	if yt < minY {
		minY = yt
	}
	if yt > maxY {
		maxY = yt
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawLine(x, minY, x, maxY)
	dc.Stroke()
	dc.DrawCircle(x, y1, r.Cell*0.12)
	dc.Fill()
	dc.DrawCircle(x, y2, r.Cell*0.12)
	dc.Fill()

	switch name {
	case "CCX":
		r.drawOplus(dc, x, yt)
	case "CCZ":
		dc.DrawCircle(x, yt, r.Cell*0.12)
		dc.Fill()
	default:
		r.drawBoxGate(dc, step, target, symbol)
	}
}

func (r GGPNG) drawOplus(dc *gg.Context, x, y float64) {
	dc.DrawCircle(x, y, r.Cell*0.18)
	dc.Stroke()
	dc.DrawLine(x-r.Cell*0.18, y, x+r.Cell*0.18, y)
	dc.Stroke()
	dc.DrawLine(x, y-r.Cell*0.18, x, y+r.Cell*0.18)
	dc.Stroke()
}

func (r GGPNG) drawSwap(dc *gg.Context, step, a, b int) {
	x := r.x(step)
	ya, yb := r.y(a), r.y(b)

	dc.SetRGB(0, 0, 0)
	r.drawSwapCross(dc, x, ya)
	r.drawSwapCross(dc, x, yb)
	dc.SetLineWidth(1)
	dc.DrawLine(x, ya, x, yb)
	dc.Stroke()
}

func (r GGPNG) drawSwapCross(dc *gg.Context, x, y float64) {
	d := r.Cell * 0.18
	dc.DrawLine(x-d, y-d, x+d, y+d)
	dc.Stroke()
	dc.DrawLine(x-d, y+d, x+d, y-d)
	dc.Stroke()
}
