package prism

import (
	"Optika/internal/optics"
)

type Input struct {
	ApexDeg         float64 `json:"apex_deg"`
	RefractiveIndex float64 `json:"refractive_index"`
	IncidenceDeg    float64 `json:"incidence_deg"`
}

// Result carries every intermediate angle of the two-surface trace.
// All angles are zero unless Status is ok.
type Result struct {
	R1               float64       `json:"r1_deg"`
	R2               float64       `json:"r2_deg"`
	Emergence        float64       `json:"emergence_deg"`
	Deviation        float64       `json:"deviation_deg"`
	MinimumDeviation optics.Angle  `json:"minimum_deviation"`
	Status           optics.Status `json:"status"`
	Notes            string        `json:"notes"`
}

func (r Result) Value() (float64, bool) {
	if r.Status != optics.StatusOK {
		return 0, false
	}
	return r.Deviation, true
}

// Deviation traces a ray through a prism with apex angle A and index n:
// r1 = asin(sin i / n), r2 = A - r1, e = asin(n sin r2), D = i + e - A.
func Deviation(apexDeg, n, incidenceDeg float64) Result {
	if !optics.Finite(apexDeg, incidenceDeg) || !optics.ValidIndex(n) {
		return Result{Status: optics.StatusInvalidInput}
	}
	r1, ok := optics.Asin(optics.SinDeg(incidenceDeg) / n)
	if !ok {
		return Result{Status: optics.StatusNoSolution}
	}
	r2 := apexDeg - r1
	e, ok := optics.Asin(n * optics.SinDeg(r2))
	if !ok {
		return Result{Status: optics.StatusNoSolution}
	}
	return Result{
		R1:        r1,
		R2:        r2,
		Emergence: e,
		Deviation: incidenceDeg + e - apexDeg,
		Status:    optics.StatusOK,
	}
}

// MinimumDeviation is 2·asin(n sin(A/2)) - A, reached for the symmetric path.
func MinimumDeviation(apexDeg, n float64) optics.Angle {
	if !optics.Finite(apexDeg) || !optics.ValidIndex(n) {
		return optics.AngleWithStatus(optics.StatusInvalidInput)
	}
	half, ok := optics.Asin(n * optics.SinDeg(apexDeg/2))
	if !ok {
		return optics.AngleWithStatus(optics.StatusNoSolution)
	}
	return optics.AngleOK(2*half - apexDeg)
}

func Calculate(in Input) (Result, error) {
	res := Deviation(in.ApexDeg, in.RefractiveIndex, in.IncidenceDeg)
	res.MinimumDeviation = MinimumDeviation(in.ApexDeg, in.RefractiveIndex)
	res.Notes = "Two refractions: D = i + e - A. White light is also dispersed into a spectrum."
	return res, nil
}
