// Package simulation runs one of the lab's simulations from a flat map of
// named parameters and gathers everything the presentation needs: inputs,
// outputs, status, warning text and the diagram.
package simulation

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"Optika/internal/catalog"
	"Optika/internal/optics"
)

type Kind string

const (
	KindMirrorFlat    Kind = "mirror-flat"
	KindMirrorConcave Kind = "mirror-concave"
	KindMirrorConvex  Kind = "mirror-convex"
	KindRefraction    Kind = "refraction"
	KindCriticalAngle Kind = "critical-angle"
	KindPrism         Kind = "prism"
	KindLensConcave   Kind = "lens-concave"
	KindLensConvex    Kind = "lens-convex"
	KindLensSystem    Kind = "lens-system"
	KindDispersion    Kind = "dispersion"
)

var (
	ErrUnknownKind  = errors.New("unknown simulation kind")
	ErrUnknownParam = errors.New("unknown parameter")
)

// Quantity is one named input or output. Text replaces the number for
// descriptive outputs such as the nature of an image.
type Quantity struct {
	Name   string        `json:"name"`
	Label  string        `json:"label,omitempty"`
	Unit   string        `json:"unit,omitempty"`
	Value  float64       `json:"value"`
	Text   string        `json:"text,omitempty"`
	Status optics.Status `json:"status"`
}

// Format renders the quantity for a report line.
func (q Quantity) Format() string {
	if q.Status != optics.StatusOK {
		return string(q.Status)
	}
	if q.Text != "" {
		return q.Text
	}
	s := strconv.FormatFloat(q.Value, 'f', 4, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		s = "0"
	}
	if q.Unit != "" {
		s += " " + q.Unit
	}
	return s
}

type Outcome struct {
	Kind    Kind           `json:"kind"`
	Title   string         `json:"title"`
	Formula string         `json:"formula"`
	Concept string         `json:"concept"`
	Inputs  []Quantity     `json:"inputs"`
	Outputs []Quantity     `json:"outputs"`
	Status  optics.Status  `json:"status"`
	Warning string         `json:"warning,omitempty"`
	Notes   string         `json:"notes"`
	Diagram optics.Diagram `json:"diagram"`
}

// Params returns the inputs as a name/value map.
func (o Outcome) Params() map[string]float64 {
	out := make(map[string]float64, len(o.Inputs))
	for _, q := range o.Inputs {
		out[q.Name] = q.Value
	}
	return out
}

// Resolve merges params over the catalog defaults for kind. Names the
// simulation does not accept are rejected.
func Resolve(kind Kind, params map[string]float64) (catalog.Simulation, map[string]float64, error) {
	sim, ok := catalog.Default().Lookup(string(kind))
	if !ok {
		return catalog.Simulation{}, nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	merged := sim.Defaults()
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := sim.Param(name); !ok {
			return catalog.Simulation{}, nil, fmt.Errorf("%w %q for %s", ErrUnknownParam, name, kind)
		}
		merged[name] = params[name]
	}
	return sim, merged, nil
}

// Run evaluates one simulation. Numeric problems with the parameters are
// reported through Outcome.Status; only an unknown kind or parameter name
// is an error. NaN and infinite values never reach the outcome: they are
// zeroed and tagged invalid_input.
func Run(kind Kind, params map[string]float64) (Outcome, error) {
	sim, p, err := Resolve(kind, params)
	if err != nil {
		return Outcome{}, err
	}
	eval, ok := evaluators[kind]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	out := eval(p)
	out.Kind = kind
	out.Title = sim.Title
	out.Formula = sim.Formula
	out.Concept = sim.Concept
	out.Inputs = make([]Quantity, 0, len(sim.Params))
	for _, def := range sim.Params {
		q := Quantity{Name: def.Name, Label: def.Label, Unit: def.Unit, Value: p[def.Name], Status: optics.StatusOK}
		if !optics.Finite(q.Value) {
			q.Value, q.Status = 0, optics.StatusInvalidInput
			out.Status = optics.StatusInvalidInput
		}
		out.Inputs = append(out.Inputs, q)
	}
	for i, q := range out.Outputs {
		if !optics.Finite(q.Value) {
			out.Outputs[i].Value, out.Outputs[i].Status = 0, optics.StatusInvalidInput
		}
	}
	out.Diagram.DropNonFinite()
	if out.Status != optics.StatusOK {
		out.Warning = out.Status.Warning()
	}
	return out, nil
}

// Kinds lists every kind Run accepts, in catalog order.
func Kinds() []Kind {
	names := catalog.Default().Kinds()
	out := make([]Kind, 0, len(names))
	for _, n := range names {
		if _, ok := evaluators[Kind(n)]; ok {
			out = append(out, Kind(n))
		}
	}
	return out
}
