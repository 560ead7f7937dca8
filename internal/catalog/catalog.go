// Package catalog describes the simulations offered by the lab: titles,
// teaching notes and the parameters each one accepts.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed simulations.yaml
var embedded []byte

type Param struct {
	Name    string  `yaml:"name" json:"name"`
	Label   string  `yaml:"label" json:"label"`
	Unit    string  `yaml:"unit" json:"unit"`
	Min     float64 `yaml:"min" json:"min"`
	Max     float64 `yaml:"max" json:"max"`
	Default float64 `yaml:"default" json:"default"`
}

type Simulation struct {
	Kind    string  `yaml:"kind" json:"kind"`
	Title   string  `yaml:"title" json:"title"`
	Concept string  `yaml:"concept" json:"concept"`
	Formula string  `yaml:"formula" json:"formula"`
	Params  []Param `yaml:"params" json:"params"`
}

// Param returns the parameter definition called name.
func (s Simulation) Param(name string) (Param, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Defaults returns a fresh map of every parameter's default value.
func (s Simulation) Defaults() map[string]float64 {
	out := make(map[string]float64, len(s.Params))
	for _, p := range s.Params {
		out[p.Name] = p.Default
	}
	return out
}

type Catalog struct {
	Simulations []Simulation `yaml:"simulations" json:"simulations"`
	byKind      map[string]int
}

// Parse reads a catalog document and checks it for duplicate kinds and
// inconsistent ranges.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	c.byKind = make(map[string]int, len(c.Simulations))
	for i, s := range c.Simulations {
		if s.Kind == "" {
			return nil, fmt.Errorf("simulation %d has no kind", i)
		}
		if _, dup := c.byKind[s.Kind]; dup {
			return nil, fmt.Errorf("duplicate simulation kind %q", s.Kind)
		}
		for _, p := range s.Params {
			if p.Min > p.Max || p.Default < p.Min || p.Default > p.Max {
				return nil, fmt.Errorf("%s: parameter %q has inconsistent range", s.Kind, p.Name)
			}
		}
		c.byKind[s.Kind] = i
	}
	return &c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embedded)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func (c *Catalog) Lookup(kind string) (Simulation, bool) {
	i, ok := c.byKind[kind]
	if !ok {
		return Simulation{}, false
	}
	return c.Simulations[i], true
}

func (c *Catalog) All() []Simulation {
	out := make([]Simulation, len(c.Simulations))
	copy(out, c.Simulations)
	return out
}

func (c *Catalog) Kinds() []string {
	out := make([]string, len(c.Simulations))
	for i, s := range c.Simulations {
		out[i] = s.Kind
	}
	return out
}
