package simulation

import (
	"strings"

	"Optika/internal/calc/dispersion"
	"Optika/internal/calc/lens"
	"Optika/internal/calc/mirror"
	"Optika/internal/calc/prism"
	"Optika/internal/calc/refraction"
	"Optika/internal/optics"
)

type evaluator func(p map[string]float64) Outcome

var evaluators = map[Kind]evaluator{
	KindMirrorFlat:    mirrorFlat,
	KindMirrorConcave: curvedMirror(mirror.KindConcave),
	KindMirrorConvex:  curvedMirror(mirror.KindConvex),
	KindRefraction:    snell,
	KindCriticalAngle: critical,
	KindPrism:         prismDeviation,
	KindLensConcave:   thinLens(lens.KindDiverging),
	KindLensConvex:    thinLens(lens.KindConverging),
	KindLensSystem:    lensSystem,
	KindDispersion:    spectrum,
}

func value(name, unit string, v float64) Quantity {
	if !optics.Finite(v) {
		return Quantity{Name: name, Unit: unit, Status: optics.StatusInvalidInput}
	}
	return Quantity{Name: name, Unit: unit, Value: v, Status: optics.StatusOK}
}

func angle(name string, a optics.Angle) Quantity {
	v, _ := a.Value()
	return Quantity{Name: name, Unit: "deg", Value: v, Status: a.Status}
}

func imageQuantities(img optics.ImageResult) []Quantity {
	q := []Quantity{
		{Name: "d_i", Unit: "cm", Value: img.ImageDistance, Status: img.Status},
		{Name: "M", Value: img.Magnification, Status: img.Status},
	}
	if img.Nature != nil {
		q = append(q, Quantity{
			Name:   "image",
			Text:   strings.Join([]string{string(img.Nature.Type), string(img.Nature.Orientation), string(img.Nature.Size)}, ", "),
			Status: optics.StatusOK,
		})
	}
	return q
}

func mirrorFlat(p map[string]float64) Outcome {
	theta := p["theta_i"]
	r := mirror.ReflectFlat(theta)
	return Outcome{
		Outputs: []Quantity{angle("theta_r", r)},
		Status:  r.Status,
		Notes:   "The reflected angle equals the incidence angle.",
		Diagram: mirror.FlatDiagram(theta, r),
	}
}

func curvedMirror(kind mirror.Kind) evaluator {
	return func(p map[string]float64) Outcome {
		f := mirror.SignedFocal(kind, p["f"])
		img := mirror.Image(f, p["d_o"])
		notes := "d_o > f gives a real, inverted image; d_o < f gives a virtual, upright image."
		if kind == mirror.KindConvex {
			notes = "The focal length is taken as negative; a convex mirror always gives a virtual, upright, reduced image behind the mirror."
		}
		return Outcome{
			Outputs: append([]Quantity{value("f_signed", "cm", f)}, imageQuantities(img)...),
			Status:  img.Status,
			Notes:   notes,
			Diagram: mirror.CurvedDiagram(kind, f, p["d_o"], img),
		}
	}
}

func snell(p map[string]float64) Outcome {
	a := refraction.Snell(p["n1"], p["n2"], p["theta1"])
	c := refraction.CriticalAngle(p["n1"], p["n2"])
	return Outcome{
		Outputs: []Quantity{angle("theta2", a), angle("theta_c", c)},
		Status:  a.Status,
		Notes:   "If n1 > n2 and the incidence angle is large, total internal reflection occurs.",
		Diagram: refraction.SnellDiagram(p["theta1"], a),
	}
}

func critical(p map[string]float64) Outcome {
	c := refraction.CriticalAngle(p["n1"], p["n2"])
	return Outcome{
		Outputs: []Quantity{angle("theta_c", c)},
		Status:  c.Status,
		Notes:   "For incidence angles above theta_c the ray is totally reflected.",
		Diagram: refraction.CriticalDiagram(c),
	}
}

func prismDeviation(p map[string]float64) Outcome {
	res := prism.Deviation(p["A"], p["n"], p["i"])
	dmin := prism.MinimumDeviation(p["A"], p["n"])
	q := func(name string, v float64) Quantity {
		return Quantity{Name: name, Unit: "deg", Value: v, Status: res.Status}
	}
	return Outcome{
		Outputs: []Quantity{q("r1", res.R1), q("r2", res.R2), q("e", res.Emergence), q("D", res.Deviation), angle("D_min", dmin)},
		Status:  res.Status,
		Notes:   "A prism deviates light toward its base and, for white light, disperses it into a spectrum.",
		Diagram: prism.Diagram(p["A"], p["i"], res),
	}
}

func thinLens(kind lens.Kind) evaluator {
	return func(p map[string]float64) Outcome {
		f := lens.SignedFocal(kind, p["f"])
		img := lens.ThinLens(f, p["d_o"])
		notes := "d_o > f gives a real, inverted image behind the lens."
		if kind == lens.KindDiverging {
			notes = "The focal length is taken as negative; the image is virtual, upright and on the object side (negative d_i)."
		}
		return Outcome{
			Outputs: append([]Quantity{value("f_signed", "cm", f)}, imageQuantities(img)...),
			Status:  img.Status,
			Notes:   notes,
			Diagram: lens.Diagram(kind, f, p["d_o"], img),
		}
	}
}

func lensSystem(p map[string]float64) Outcome {
	chain := lens.ChainTwoElements(p["f1"], p["f2"], p["d_o"])
	m, _ := chain.TotalMagnification()
	return Outcome{
		Outputs: []Quantity{
			{Name: "d_i1", Unit: "cm", Value: chain.Intermediate.ImageDistance, Status: chain.Intermediate.Status},
			{Name: "d_i2", Unit: "cm", Value: chain.Final.ImageDistance, Status: chain.Final.Status},
			{Name: "M_total", Value: m, Status: chain.Status},
		},
		Status:  chain.Status,
		Notes:   "The intermediate image of the lens is the object of the mirror.",
		Diagram: lens.ChainDiagram(p["d_o"], chain),
	}
}

func spectrum(p map[string]float64) Outcome {
	a := p["angle"]
	if !optics.Finite(a) {
		return Outcome{Status: optics.StatusInvalidInput, Diagram: dispersion.Diagram(nil)}
	}
	rays := dispersion.SpectrumRays(a, dispersion.DefaultColors)
	out := make([]Quantity, 0, len(rays))
	for _, r := range rays {
		out = append(out, value(r.Color, "deg", r.AngleDeg))
	}
	return Outcome{
		Outputs: out,
		Status:  optics.StatusOK,
		Notes:   "Illustrative spectrum: each colour leaves at a slightly different angle.",
		Diagram: dispersion.Diagram(rays),
	}
}
