package prism

import (
	"math"

	"Optika/internal/optics"
)

const (
	prismHeight = 1.0
	rayLength   = 0.9
)

// Diagram draws the prism with its apex up and the ray bending toward the base.
// Direction angles are measured counter-clockwise from +X; the inward normal of
// the left face points at -A/2.
func Diagram(apexDeg, incidenceDeg float64, res Result) optics.Diagram {
	d := optics.Diagram{Title: "Prism deviation"}
	if !optics.Finite(apexDeg) || apexDeg <= 0 || apexDeg >= 180 {
		d.Fit(0.1)
		return d
	}
	halfBase := prismHeight * math.Tan(optics.Radians(apexDeg/2))
	apex := optics.Point{X: 0, Y: prismHeight}
	left := optics.Point{X: -halfBase, Y: 0}
	right := optics.Point{X: halfBase, Y: 0}
	d.Polyline([]optics.Point{left, apex, right, left}, "black", "Prism")

	entry := optics.Point{X: (left.X + apex.X) / 2, Y: (left.Y + apex.Y) / 2}
	inDir := incidenceDeg - apexDeg/2
	d.Line(optics.Polar(entry, -rayLength, inDir), entry, "red", "Incident ray")

	if res.Status != optics.StatusOK {
		d.Fit(0.15)
		return d
	}
	internalDir := res.R1 - apexDeg/2
	exit, ok := intersect(entry, internalDir, apex, right)
	if ok {
		d.Line(entry, exit, "orange", "Ray inside prism")
		outDir := apexDeg/2 - res.Emergence
		d.Line(exit, optics.Polar(exit, rayLength, outDir), "green", "Emergent ray")
		d.Dashed(exit, optics.Polar(exit, rayLength, inDir), "gray", "Undeviated path")
	}
	d.Fit(0.15)
	return d
}

// intersect returns where the ray from p in direction deg meets the line a-b.
func intersect(p optics.Point, deg float64, a, b optics.Point) (optics.Point, bool) {
	dx, dy := optics.CosDeg(deg), optics.SinDeg(deg)
	ex, ey := b.X-a.X, b.Y-a.Y
	den := dx*ey - dy*ex
	if math.Abs(den) < 1e-12 {
		return optics.Point{}, false
	}
	t := ((a.X-p.X)*ey - (a.Y-p.Y)*ex) / den
	if t <= 0 {
		return optics.Point{}, false
	}
	return optics.Point{X: p.X + t*dx, Y: p.Y + t*dy}, true
}
