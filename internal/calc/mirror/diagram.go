package mirror

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"Optika/internal/optics"
)

const arcSamples = 25

// FlatDiagram draws a vertical mirror at x=0 with the incident ray arriving
// from the left at incidenceDeg to the normal and the reflected ray leaving.
func FlatDiagram(incidenceDeg float64, reflection optics.Angle) optics.Diagram {
	d := optics.Diagram{Title: "Flat mirror"}
	o := optics.Point{}
	d.Line(optics.Point{X: 0, Y: -1}, optics.Point{X: 0, Y: 1}, "black", "Mirror")
	d.Dashed(optics.Point{X: -1, Y: 0}, optics.Point{X: 1, Y: 0}, "gray", "Normal")
	if r, ok := reflection.Value(); ok {
		d.Line(optics.Point{X: -optics.CosDeg(incidenceDeg), Y: optics.SinDeg(incidenceDeg)}, o, "red", "Incident ray")
		d.Line(o, optics.Point{X: -optics.CosDeg(r), Y: -optics.SinDeg(r)}, "green", "Reflected ray")
	}
	d.Bounds = optics.Bounds{MinX: -1.2, MaxX: 1.2, MinY: -1, MaxY: 1}
	return d
}

// CurvedDiagram draws a concave or convex mirror at x=0 facing the object on
// the left, the principal axis, the focal point, and object/image arrows.
// focal is the signed focal length actually used.
func CurvedDiagram(kind Kind, focal, objectDistance float64, img optics.ImageResult) optics.Diagram {
	title := "Concave mirror"
	if kind == KindConvex {
		title = "Convex mirror"
	}
	d := optics.Diagram{Title: title}
	if !optics.Finite(focal, objectDistance) || focal == 0 {
		d.Fit(0.1)
		return d
	}

	span := math.Max(math.Abs(objectDistance), math.Abs(focal))
	if di, ok := img.Value(); ok {
		span = math.Max(span, math.Abs(di))
	}
	span *= 1.2

	radius := 2 * math.Abs(focal)
	half := math.Min(0.4*span, 0.9*radius)
	ys := make([]float64, arcSamples)
	floats.Span(ys, -half, half)
	arc := make([]optics.Point, len(ys))
	for i, y := range ys {
		// sag of a sphere of radius R; the concave face bends toward the object
		sag := radius - math.Sqrt(radius*radius-y*y)
		if kind == KindConvex {
			arc[i] = optics.Point{X: sag, Y: y}
		} else {
			arc[i] = optics.Point{X: -sag, Y: y}
		}
	}
	d.Polyline(arc, "black", "Mirror")
	d.Dashed(optics.Point{X: -span, Y: 0}, optics.Point{X: span, Y: 0}, "gray", "Principal axis")
	d.Mark(optics.Point{X: -focal, Y: 0}, "purple", "F")

	h := 0.15 * span
	d.Arrow(optics.Point{X: -objectDistance, Y: 0}, h, "blue", "Object")
	if di, ok := img.Value(); ok {
		// real images (d_i > 0) sit in front of the mirror, on the object side
		d.Arrow(optics.Point{X: -di, Y: 0}, img.Magnification*h, "orange", "Image")
	}
	d.Fit(0.1)
	return d
}
