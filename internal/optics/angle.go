package optics

import "math"

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180.0 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180.0 / math.Pi }

// Angle is an angle in degrees tagged with its validity.
type Angle struct {
	Degrees float64 `json:"degrees"`
	Status  Status  `json:"status"`
}

func AngleOK(deg float64) Angle { return Angle{Degrees: deg, Status: StatusOK} }

func AngleWithStatus(s Status) Angle { return Angle{Status: s} }

// Value returns the angle and true only for a valid result.
func (a Angle) Value() (float64, bool) {
	if a.Status != StatusOK {
		return 0, false
	}
	return a.Degrees, true
}

// asinSlack absorbs rounding when an argument is computed to lie exactly on
// the domain boundary, e.g. Snell's law evaluated at the critical angle.
const asinSlack = 1e-12

// Asin evaluates arcsin in degrees. ok is false when x is outside [-1, 1].
func Asin(x float64) (deg float64, ok bool) {
	if math.IsNaN(x) || x < -1-asinSlack || x > 1+asinSlack {
		return 0, false
	}
	return Degrees(math.Asin(math.Max(-1, math.Min(1, x)))), true
}

// SinDeg is sin of an angle given in degrees.
func SinDeg(deg float64) float64 { return math.Sin(Radians(deg)) }

// CosDeg is cos of an angle given in degrees.
func CosDeg(deg float64) float64 { return math.Cos(Radians(deg)) }
