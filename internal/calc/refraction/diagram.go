package refraction

import "Optika/internal/optics"

// The boundary lies on y=0 with medium 1 above and medium 2 below.

// SnellDiagram draws the incident ray and either the refracted ray or,
// under total internal reflection, the reflected ray.
func SnellDiagram(theta1Deg float64, refraction optics.Angle) optics.Diagram {
	d := optics.Diagram{Title: "Refraction at a boundary"}
	o := optics.Point{}
	boundary(&d)
	if !optics.Finite(theta1Deg) {
		return d
	}
	d.Line(optics.Polar(o, 1, 90+theta1Deg), o, "red", "Incident ray")
	if theta2, ok := refraction.Value(); ok {
		d.Line(o, optics.Polar(o, 1, -90+theta2), "blue", "Refracted ray")
	} else if refraction.Status == optics.StatusTotalInternalReflection {
		d.Line(o, optics.Polar(o, 1, 90-theta1Deg), "green", "Reflected ray (TIR)")
	}
	return d
}

// CriticalDiagram draws a ray at the critical angle refracting along the
// boundary.
func CriticalDiagram(critical optics.Angle) optics.Diagram {
	d := optics.Diagram{Title: "Critical angle"}
	o := optics.Point{}
	boundary(&d)
	if c, ok := critical.Value(); ok {
		d.Line(optics.Polar(o, 1, 90+c), o, "red", "Ray at critical angle")
		d.Line(o, optics.Point{X: 1, Y: 0}, "blue", "Grazing refracted ray")
	}
	return d
}

func boundary(d *optics.Diagram) {
	d.Line(optics.Point{X: -1.2, Y: 0}, optics.Point{X: 1.2, Y: 0}, "black", "Boundary")
	d.Dashed(optics.Point{X: 0, Y: -1}, optics.Point{X: 0, Y: 1}, "gray", "Normal")
	d.Bounds = optics.Bounds{MinX: -1.2, MaxX: 1.2, MinY: -1.1, MaxY: 1.1}
}
