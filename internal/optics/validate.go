package optics

import "math"

// MinIndex is the smallest physical refractive index (vacuum).
const MinIndex = 1.0

// Finite reports whether every value is neither NaN nor infinite.
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ValidIndex reports whether n is a usable refractive index.
func ValidIndex(n float64) bool {
	return Finite(n) && n >= MinIndex
}
