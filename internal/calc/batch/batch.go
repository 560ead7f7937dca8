// Package batch evaluates many simulation queries in one call.
package batch

import (
	"errors"
	"fmt"

	"Optika/internal/calc/simulation"
)

// MaxItems bounds one batch.
const MaxItems = 1000

var (
	ErrEmpty    = errors.New("no items")
	ErrTooLarge = fmt.Errorf("more than %d items", MaxItems)
)

type Item struct {
	Ref    string             `json:"ref,omitempty"`
	Kind   simulation.Kind    `json:"kind"`
	Params map[string]float64 `json:"params"`
	// Err marks an item that could not be read; it is reported, not run.
	Err string `json:"-"`
}

type ItemResult struct {
	Ref     string              `json:"ref,omitempty"`
	Kind    simulation.Kind     `json:"kind"`
	Outcome *simulation.Outcome `json:"outcome,omitempty"`
	Error   string              `json:"error,omitempty"`
}

type Input struct {
	Items []Item `json:"items"`
}

type Result struct {
	Count   int          `json:"count"`
	Failed  int          `json:"failed"`
	Results []ItemResult `json:"results"`
}

// Calculate runs every item. A failing item is recorded on its own result
// and does not stop the rest.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, ErrEmpty
	}
	if len(in.Items) > MaxItems {
		return Result{}, ErrTooLarge
	}
	out := Result{Results: make([]ItemResult, 0, len(in.Items))}
	for _, item := range in.Items {
		res := ItemResult{Ref: item.Ref, Kind: item.Kind}
		if item.Err != "" {
			res.Error = item.Err
		} else if o, err := simulation.Run(item.Kind, item.Params); err != nil {
			res.Error = err.Error()
		} else {
			res.Outcome = &o
		}
		if res.Error != "" {
			out.Failed++
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)
	return out, nil
}
