// Package optics holds the vocabulary shared by the formula packages:
// result status tags, angle conversion, input checks and diagram geometry.
package optics

// Status tags every engine result. Numeric fields are only meaningful when
// the status is StatusOK; otherwise they are left at zero.
type Status string

const (
	StatusOK                      Status = "ok"
	StatusAtInfinity              Status = "at_infinity"
	StatusTotalInternalReflection Status = "total_internal_reflection"
	StatusNoSolution              Status = "no_solution"
	StatusNotApplicable           Status = "not_applicable"
	StatusInvalidInput            Status = "invalid_input"
)

// Category groups statuses into the failure kinds a consumer has to handle.
type Category string

const (
	CategoryNone            Category = ""
	CategoryDomainViolation Category = "domain_violation"
	CategorySingularity     Category = "singularity"
)

func (s Status) OK() bool { return s == StatusOK }

func (s Status) Category() Category {
	switch s {
	case StatusOK:
		return CategoryNone
	case StatusAtInfinity:
		return CategorySingularity
	default:
		return CategoryDomainViolation
	}
}

// Warning is the sentence shown next to a result that carries no value.
func (s Status) Warning() string {
	switch s {
	case StatusAtInfinity:
		return "Object is at the focal point: the image forms at infinity."
	case StatusTotalInternalReflection:
		return "Incidence angle exceeds the critical angle: total internal reflection, no refracted ray."
	case StatusNoSolution:
		return "The ray cannot leave the prism for these parameters: no solution."
	case StatusNotApplicable:
		return "n1 <= n2: there is no critical angle and no total internal reflection."
	case StatusInvalidInput:
		return "Input is outside the valid range for this formula."
	default:
		return ""
	}
}

// Worst returns the first non-ok status, or StatusOK.
func Worst(statuses ...Status) Status {
	for _, s := range statuses {
		if s != StatusOK {
			return s
		}
	}
	return StatusOK
}
