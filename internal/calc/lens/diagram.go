package lens

import (
	"math"

	"Optika/internal/optics"
)

// Diagram draws a thin lens at x=0 with the object on the left. Real images
// (d_i > 0) land on the right; virtual ones on the object side.
func Diagram(kind Kind, focal, objectDistance float64, img optics.ImageResult) optics.Diagram {
	title := "Converging lens"
	if kind == KindDiverging {
		title = "Diverging lens"
	}
	d := optics.Diagram{Title: title}
	if !optics.Finite(focal, objectDistance) {
		d.Fit(0.1)
		return d
	}
	span := math.Max(math.Abs(objectDistance), math.Abs(focal))
	if di, ok := img.Value(); ok {
		span = math.Max(span, math.Abs(di))
	}
	span *= 1.2
	h := 0.15 * span

	axis(&d, span)
	element(&d, 0, 2*h, "black", "Lens")
	d.Mark(optics.Point{X: -math.Abs(focal), Y: 0}, "purple", "F")
	d.Mark(optics.Point{X: math.Abs(focal), Y: 0}, "purple", "F'")
	d.Arrow(optics.Point{X: -objectDistance, Y: 0}, h, "blue", "Object")
	if di, ok := img.Value(); ok {
		d.Arrow(optics.Point{X: di, Y: 0}, img.Magnification*h, "orange", "Image")
	}
	d.Fit(0.1)
	return d
}

// ChainDiagram draws the lens and mirror system. Both elements sit at x=0,
// the way the two-step formula treats them. The intermediate image follows
// the lens convention (real images right of x=0); the final image follows
// the mirror convention, so a real final image lands back on the object side.
func ChainDiagram(objectDistance float64, chain ChainResult) optics.Diagram {
	d := optics.Diagram{Title: "Lens and mirror system"}
	if !optics.Finite(objectDistance) {
		d.Fit(0.1)
		return d
	}
	span := math.Abs(objectDistance)
	if di, ok := chain.Intermediate.Value(); ok {
		span = math.Max(span, math.Abs(di))
	}
	if di, ok := chain.Final.Value(); ok {
		span = math.Max(span, math.Abs(di))
	}
	span *= 1.2
	h := 0.15 * span

	axis(&d, span)
	element(&d, 0, 2*h, "black", "Lens")
	element(&d, 0, 2.4*h, "gray", "Mirror")
	d.Arrow(optics.Point{X: -objectDistance, Y: 0}, h, "blue", "Object")
	if di, ok := chain.Intermediate.Value(); ok {
		d.Mark(optics.Point{X: di, Y: 0}, "gray", "Intermediate image")
	}
	if di, ok := chain.Final.Value(); ok {
		m, _ := chain.TotalMagnification()
		d.Arrow(optics.Point{X: -di, Y: 0}, m*h, "orange", "Final image")
	}
	d.Fit(0.1)
	return d
}

func axis(d *optics.Diagram, span float64) {
	d.Dashed(optics.Point{X: -span, Y: 0}, optics.Point{X: span, Y: 0}, "gray", "Optical axis")
}

func element(d *optics.Diagram, x, height float64, color, label string) {
	d.Line(optics.Point{X: x, Y: -height / 2}, optics.Point{X: x, Y: height / 2}, color, label)
}
