package dispersion

import (
	"Optika/internal/optics"
)

const (
	// SpreadDeg is the angular step between neighbouring colours.
	SpreadDeg = 2.0
	rayLength = 1.0
)

// DefaultColors is the visible spectrum ordered by increasing wavelength.
var DefaultColors = []string{"violet", "indigo", "blue", "green", "yellow", "orange", "red"}

type Input struct {
	PrismAngleDeg float64  `json:"prism_angle_deg"`
	Colors        []string `json:"colors"`
}

type Ray struct {
	Start    optics.Point `json:"start"`
	End      optics.Point `json:"end"`
	Color    string       `json:"color"`
	AngleDeg float64      `json:"angle_deg"`
}

type Result struct {
	Rays   []Ray         `json:"rays"`
	Status optics.Status `json:"status"`
	Notes  string        `json:"notes"`
}

// SpectrumRays fans the colours out from the origin: colour k leaves at
// prismAngleDeg + k·SpreadDeg. Illustrative only; no dispersion relation
// is modelled. The returned slice is freshly allocated on every call.
func SpectrumRays(prismAngleDeg float64, colors []string) []Ray {
	rays := make([]Ray, 0, len(colors))
	if !optics.Finite(prismAngleDeg) {
		return rays
	}
	o := optics.Point{}
	for k, c := range colors {
		a := prismAngleDeg + float64(k)*SpreadDeg
		rays = append(rays, Ray{Start: o, End: optics.Polar(o, rayLength, a), Color: c, AngleDeg: a})
	}
	return rays
}

func Calculate(in Input) (Result, error) {
	if !optics.Finite(in.PrismAngleDeg) {
		return Result{Rays: []Ray{}, Status: optics.StatusInvalidInput}, nil
	}
	colors := in.Colors
	if len(colors) == 0 {
		colors = DefaultColors
	}
	return Result{
		Rays:   SpectrumRays(in.PrismAngleDeg, colors),
		Status: optics.StatusOK,
		Notes:  "White light splits into colours because the refractive index depends on wavelength (illustrative spectrum).",
	}, nil
}

func Diagram(rays []Ray) optics.Diagram {
	d := optics.Diagram{Title: "Spectrum (illustrative)"}
	for _, r := range rays {
		d.Segments = append(d.Segments, optics.Segment{From: r.Start, To: r.End, Color: r.Color, Label: r.Color, Width: 6})
	}
	d.Fit(0.1)
	return d
}
