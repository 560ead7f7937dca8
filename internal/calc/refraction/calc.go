package refraction

import (
	"fmt"

	"Optika/internal/optics"
)

type Mode string

const (
	ModeSnell    Mode = "snell"
	ModeCritical Mode = "critical"
)

type Input struct {
	Mode         Mode    `json:"mode"`
	N1           float64 `json:"n1"`
	N2           float64 `json:"n2"`
	IncidenceDeg float64 `json:"incidence_deg"`
}

type Result struct {
	Mode          Mode          `json:"mode"`
	Refraction    *optics.Angle `json:"refraction,omitempty"`
	CriticalAngle optics.Angle  `json:"critical_angle"`
	Status        optics.Status `json:"status"`
	Notes         string        `json:"notes"`
}

// Snell returns the refraction angle for n1·sin θ1 = n2·sin θ2, or
// StatusTotalInternalReflection when n1·sin θ1 / n2 leaves [-1, 1].
func Snell(n1, n2, theta1Deg float64) optics.Angle {
	if !optics.ValidIndex(n1) || !optics.ValidIndex(n2) || !optics.Finite(theta1Deg) {
		return optics.AngleWithStatus(optics.StatusInvalidInput)
	}
	arg := n1 * optics.SinDeg(theta1Deg) / n2
	theta2, ok := optics.Asin(arg)
	if !ok {
		return optics.AngleWithStatus(optics.StatusTotalInternalReflection)
	}
	return optics.AngleOK(theta2)
}

// CriticalAngle is asin(n2/n1); it exists only when n1 > n2.
func CriticalAngle(n1, n2 float64) optics.Angle {
	if !optics.ValidIndex(n1) || !optics.ValidIndex(n2) {
		return optics.AngleWithStatus(optics.StatusInvalidInput)
	}
	if n1 <= n2 {
		return optics.AngleWithStatus(optics.StatusNotApplicable)
	}
	theta, ok := optics.Asin(n2 / n1)
	if !ok {
		return optics.AngleWithStatus(optics.StatusNotApplicable)
	}
	return optics.AngleOK(theta)
}

func Calculate(in Input) (Result, error) {
	switch in.Mode {
	case ModeSnell, "":
		a := Snell(in.N1, in.N2, in.IncidenceDeg)
		return Result{
			Mode:          ModeSnell,
			Refraction:    &a,
			CriticalAngle: CriticalAngle(in.N1, in.N2),
			Status:        a.Status,
			Notes:         "Snell's law n1 sin(theta1) = n2 sin(theta2); TIR when n1 > n2 and the incidence angle exceeds the critical angle.",
		}, nil
	case ModeCritical:
		c := CriticalAngle(in.N1, in.N2)
		return Result{
			Mode:          ModeCritical,
			CriticalAngle: c,
			Status:        c.Status,
			Notes:         "Critical angle theta_c = asin(n2/n1); beyond it the ray is totally reflected.",
		}, nil
	default:
		return Result{}, fmt.Errorf("unknown refraction mode %q", in.Mode)
	}
}
