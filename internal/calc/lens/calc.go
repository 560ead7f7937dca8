package lens

import (
	"fmt"
	"math"

	"Optika/internal/optics"
)

type Kind string

const (
	KindConverging Kind = "converging"
	KindDiverging  Kind = "diverging"
	KindSystem     Kind = "system"
)

type Input struct {
	Kind           Kind    `json:"kind"`
	FocalLength    float64 `json:"focal_length"`
	SecondFocal    float64 `json:"second_focal_length"`
	ObjectDistance float64 `json:"object_distance"`
}

// ChainResult holds both stages of a two-element system. The final stage
// is only evaluated when the intermediate image is finite.
type ChainResult struct {
	Intermediate optics.ImageResult `json:"intermediate"`
	Final        optics.ImageResult `json:"final"`
	Status       optics.Status      `json:"status"`
}

type Result struct {
	Kind        Kind                `json:"kind"`
	FocalLength float64             `json:"focal_length"`
	Image       *optics.ImageResult `json:"image,omitempty"`
	Chain       *ChainResult        `json:"chain,omitempty"`
	Status      optics.Status       `json:"status"`
	Notes       string              `json:"notes"`
}

// ThinLens solves 1/f = 1/d_o + 1/d_i with f used exactly as given.
func ThinLens(focalLength, objectDistance float64) optics.ImageResult {
	return optics.SolveImage(focalLength, objectDistance)
}

// SignedFocal applies the element sign to a focal length magnitude:
// converging +|f|, diverging -|f|.
func SignedFocal(kind Kind, f float64) float64 {
	if kind == KindDiverging {
		return -math.Abs(f)
	}
	return math.Abs(f)
}

func Converging(f, objectDistance float64) optics.ImageResult {
	return ThinLens(SignedFocal(KindConverging, f), objectDistance)
}

func Diverging(f, objectDistance float64) optics.ImageResult {
	return ThinLens(SignedFocal(KindDiverging, f), objectDistance)
}

// ChainTwoElements images the object through the first element and uses
// that image distance as the object distance of the second.
func ChainTwoElements(f1, f2, objectDistance float64) ChainResult {
	first := ThinLens(f1, objectDistance)
	if first.Status != optics.StatusOK {
		return ChainResult{Intermediate: first, Final: optics.ImageResult{Status: first.Status}, Status: first.Status}
	}
	second := ThinLens(f2, first.ImageDistance)
	return ChainResult{Intermediate: first, Final: second, Status: second.Status}
}

// TotalMagnification is the product of the stage magnifications.
func (c ChainResult) TotalMagnification() (float64, bool) {
	if c.Status != optics.StatusOK {
		return 0, false
	}
	return c.Intermediate.Magnification * c.Final.Magnification, true
}

func Calculate(in Input) (Result, error) {
	switch in.Kind {
	case KindConverging, KindDiverging:
		f := SignedFocal(in.Kind, in.FocalLength)
		img := ThinLens(f, in.ObjectDistance)
		notes := "Thin lens equation 1/f = 1/d_o + 1/d_i; d_i > 0 is a real image behind the lens."
		if in.Kind == KindDiverging {
			notes = "Diverging lens: focal length taken as negative; the image is virtual and on the object side."
		}
		return Result{Kind: in.Kind, FocalLength: f, Image: &img, Status: img.Status, Notes: notes}, nil
	case KindSystem:
		chain := ChainTwoElements(in.FocalLength, in.SecondFocal, in.ObjectDistance)
		return Result{
			Kind:        in.Kind,
			FocalLength: in.FocalLength,
			Chain:       &chain,
			Status:      chain.Status,
			Notes:       "Two elements: the first image is the object of the second element.",
		}, nil
	default:
		return Result{}, fmt.Errorf("unknown lens kind %q", in.Kind)
	}
}
