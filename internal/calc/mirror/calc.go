package mirror

import (
	"fmt"
	"math"

	"Optika/internal/optics"
)

type Kind string

const (
	KindFlat    Kind = "flat"
	KindConcave Kind = "concave"
	KindConvex  Kind = "convex"
)

type Input struct {
	Kind           Kind    `json:"kind"`
	IncidenceDeg   float64 `json:"incidence_deg"`
	FocalLength    float64 `json:"focal_length"`
	ObjectDistance float64 `json:"object_distance"`
}

type Result struct {
	Kind        Kind                `json:"kind"`
	Reflection  *optics.Angle       `json:"reflection,omitempty"`
	Image       *optics.ImageResult `json:"image,omitempty"`
	FocalLength float64             `json:"focal_length,omitempty"`
	Status      optics.Status       `json:"status"`
	Notes       string              `json:"notes"`
}

// ReflectFlat applies the law of reflection: the reflected ray leaves at
// the incidence angle. Defined for [0, 90).
func ReflectFlat(incidenceDeg float64) optics.Angle {
	if !optics.Finite(incidenceDeg) || incidenceDeg < 0 || incidenceDeg >= 90 {
		return optics.AngleWithStatus(optics.StatusInvalidInput)
	}
	return optics.AngleOK(incidenceDeg)
}

// Image solves the mirror equation for a signed focal length.
func Image(focalLength, objectDistance float64) optics.ImageResult {
	return optics.SolveImage(focalLength, objectDistance)
}

// SignedFocal returns the focal length the mirror equation needs for kind,
// given a focal length magnitude: concave +|f|, convex -|f|.
func SignedFocal(kind Kind, f float64) float64 {
	if kind == KindConvex {
		return -math.Abs(f)
	}
	return math.Abs(f)
}

func Concave(f, objectDistance float64) optics.ImageResult {
	return Image(SignedFocal(KindConcave, f), objectDistance)
}

func Convex(f, objectDistance float64) optics.ImageResult {
	return Image(SignedFocal(KindConvex, f), objectDistance)
}

func Calculate(in Input) (Result, error) {
	switch in.Kind {
	case KindFlat:
		a := ReflectFlat(in.IncidenceDeg)
		return Result{
			Kind:       in.Kind,
			Reflection: &a,
			Status:     a.Status,
			Notes:      "Law of reflection: angle of incidence equals angle of reflection.",
		}, nil
	case KindConcave, KindConvex:
		f := SignedFocal(in.Kind, in.FocalLength)
		img := Image(f, in.ObjectDistance)
		notes := "Mirror equation 1/f = 1/d_o + 1/d_i; d_i > 0 is a real image in front of the mirror."
		if in.Kind == KindConvex {
			notes = "Convex mirror: focal length taken as negative; the image is always virtual, upright and reduced."
		}
		return Result{
			Kind:        in.Kind,
			Image:       &img,
			FocalLength: f,
			Status:      img.Status,
			Notes:       notes,
		}, nil
	default:
		return Result{}, fmt.Errorf("unknown mirror kind %q", in.Kind)
	}
}
