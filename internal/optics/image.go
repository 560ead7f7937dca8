package optics

import "math"

// singularEps is the relative tolerance on 1/f - 1/d_o, scaled by the
// larger of the two terms, below which the image is taken to be at infinity.
const singularEps = 1e-12

type ImageType string

const (
	ImageReal    ImageType = "real"
	ImageVirtual ImageType = "virtual"
)

type Orientation string

const (
	OrientationInverted Orientation = "inverted"
	OrientationUpright  Orientation = "upright"
)

type Size string

const (
	SizeEnlarged Size = "enlarged"
	SizeReduced  Size = "reduced"
	SizeSame     Size = "same"
)

// Nature describes the image the way it is taught: real or virtual,
// inverted or upright, and its size relative to the object.
type Nature struct {
	Type        ImageType   `json:"type"`
	Orientation Orientation `json:"orientation"`
	Size        Size        `json:"size"`
}

// ImageResult is the outcome of the mirror/thin lens equation.
// Magnification is 0 when the image is at infinity.
type ImageResult struct {
	ImageDistance float64 `json:"image_distance"`
	Magnification float64 `json:"magnification"`
	Status        Status  `json:"status"`
	Nature        *Nature `json:"nature,omitempty"`
}

// Value returns the image distance and true only for a finite image.
func (r ImageResult) Value() (float64, bool) {
	if r.Status != StatusOK {
		return 0, false
	}
	return r.ImageDistance, true
}

// SolveImage applies 1/f = 1/d_o + 1/d_i with a signed focal length and
// magnification -d_i/d_o. Real images have positive d_i.
func SolveImage(f, do float64) ImageResult {
	if !Finite(f, do) || f == 0 || do == 0 {
		return ImageResult{Status: StatusInvalidInput}
	}
	denom := 1.0/f - 1.0/do
	if math.Abs(denom) <= singularEps*math.Max(math.Abs(1/f), math.Abs(1/do)) {
		return ImageResult{Status: StatusAtInfinity}
	}
	di := 1.0 / denom
	if !Finite(di) {
		return ImageResult{Status: StatusAtInfinity}
	}
	m := -di / do
	return ImageResult{
		ImageDistance: di,
		Magnification: m,
		Status:        StatusOK,
		Nature:        describe(di, m),
	}
}

func describe(di, m float64) *Nature {
	n := &Nature{Type: ImageReal, Orientation: OrientationInverted, Size: SizeSame}
	if di < 0 {
		n.Type = ImageVirtual
	}
	if m > 0 {
		n.Orientation = OrientationUpright
	}
	switch a := math.Abs(m); {
	case a > 1+1e-9:
		n.Size = SizeEnlarged
	case a < 1-1e-9:
		n.Size = SizeReduced
	}
	return n
}
