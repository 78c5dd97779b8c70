// Package scenario loads routing scenarios from YAML: interface definitions,
// network topology, the ordered commitment stream, and engine tunables.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/admissibility-sim/admissibility-sim/engine"
)

// Spec is the top-level scenario configuration.
// Loaded from YAML via Load(path).
type Spec struct {
	Name        string           `yaml:"name,omitempty"`
	Interfaces  []InterfaceSpec  `yaml:"interfaces"`
	Nodes       []string         `yaml:"nodes"`
	Edges       []EdgeSpec       `yaml:"edges"`
	Commitments []CommitmentSpec `yaml:"commitments"`
	Tuning      *TuningSpec      `yaml:"tuning,omitempty"`
}

// InterfaceSpec defines a capacity-bounded interface.
type InterfaceSpec struct {
	Name           string  `yaml:"name"`
	Capacity       float64 `yaml:"capacity"`
	LinearCoeff    float64 `yaml:"linear_coeff"`
	QuadraticCoeff float64 `yaml:"quadratic_coeff"`
}

// EdgeSpec binds two nodes via a named interface.
type EdgeSpec struct {
	A         string `yaml:"a"`
	B         string `yaml:"b"`
	Interface string `yaml:"interface"`
}

// CommitmentSpec describes one entry of the commitment stream.
// Repeat expands the entry into that many consecutive commitments
// (0 and 1 both mean a single commitment).
type CommitmentSpec struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Demand int    `yaml:"demand"`
	Repeat int    `yaml:"repeat,omitempty"`
}

// TuningSpec overrides engine defaults. Nil pointer fields mean "not set in
// YAML" and do not override engine.DefaultConfig.
type TuningSpec struct {
	SlackMargin          *float64 `yaml:"slack_margin"`
	CostTolerance        *float64 `yaml:"cost_tolerance"`
	MaxPathLength        *int     `yaml:"max_path_length"`
	MaxPathCount         *int     `yaml:"max_path_count"`
	MaxFeasibleLoadBound *int     `yaml:"max_feasible_load_bound"`
	RelaxEvery           *int     `yaml:"relax_every"`
	IterationCap         *int     `yaml:"iteration_cap"`
}

// Load reads and parses a YAML scenario file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &spec, nil
}

// Validate checks structural consistency of the spec. Value-range validation
// (capacities, coefficients, tunables) happens when the engine constructs
// interfaces and configs in Build.
func (s *Spec) Validate() error {
	if len(s.Interfaces) == 0 {
		return fmt.Errorf("scenario must declare at least one interface")
	}
	if len(s.Nodes) == 0 {
		return fmt.Errorf("scenario must declare at least one node")
	}
	names := make(map[string]bool, len(s.Interfaces))
	for _, itf := range s.Interfaces {
		if names[itf.Name] {
			return fmt.Errorf("duplicate interface %q", itf.Name)
		}
		names[itf.Name] = true
	}
	for _, e := range s.Edges {
		if !names[e.Interface] {
			return fmt.Errorf("edge %s-%s references undeclared interface %q", e.A, e.B, e.Interface)
		}
	}
	for i, c := range s.Commitments {
		if c.Repeat < 0 {
			return fmt.Errorf("commitment %d: repeat must be >= 0, got %d", i, c.Repeat)
		}
	}
	return nil
}

// Config resolves the engine configuration: defaults overlaid with any
// tuning overrides from the spec.
func (s *Spec) Config() engine.Config {
	cfg := engine.DefaultConfig()
	t := s.Tuning
	if t == nil {
		return cfg
	}
	if t.SlackMargin != nil {
		cfg.SlackMargin = *t.SlackMargin
	}
	if t.CostTolerance != nil {
		cfg.CostTolerance = *t.CostTolerance
	}
	if t.MaxPathLength != nil {
		cfg.MaxPathLength = *t.MaxPathLength
	}
	if t.MaxPathCount != nil {
		cfg.MaxPathCount = *t.MaxPathCount
	}
	if t.MaxFeasibleLoadBound != nil {
		cfg.MaxFeasibleLoadBound = *t.MaxFeasibleLoadBound
	}
	if t.RelaxEvery != nil {
		cfg.RelaxEvery = *t.RelaxEvery
	}
	if t.IterationCap != nil {
		cfg.IterationCap = *t.IterationCap
	}
	return cfg
}

// Build constructs the network and the expanded commitment stream.
// Commitment IDs are assigned sequentially in stream order, with repeat
// entries expanded into consecutive commitments.
func (s *Spec) Build() (*engine.Network, []engine.Commitment, engine.Config, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, engine.Config{}, err
	}
	cfg := s.Config()
	if err := cfg.Validate(); err != nil {
		return nil, nil, engine.Config{}, fmt.Errorf("scenario tuning: %w", err)
	}

	interfaces := make(map[string]engine.Interface, len(s.Interfaces))
	for _, is := range s.Interfaces {
		itf, err := engine.NewInterface(is.Name, is.Capacity, is.LinearCoeff, is.QuadraticCoeff)
		if err != nil {
			return nil, nil, engine.Config{}, err
		}
		interfaces[is.Name] = itf
	}

	edges := make([]engine.Edge, 0, len(s.Edges))
	for _, es := range s.Edges {
		edges = append(edges, engine.Edge{A: es.A, B: es.B, Interface: interfaces[es.Interface]})
	}

	net, err := engine.NewNetwork(s.Nodes, edges)
	if err != nil {
		return nil, nil, engine.Config{}, err
	}

	var stream []engine.Commitment
	id := 0
	for _, cs := range s.Commitments {
		repeat := cs.Repeat
		if repeat == 0 {
			repeat = 1
		}
		demand := cs.Demand
		if demand == 0 {
			demand = 1
		}
		for r := 0; r < repeat; r++ {
			c := engine.Commitment{ID: id, Source: cs.Source, Target: cs.Target, Demand: demand}
			if err := c.Validate(net); err != nil {
				return nil, nil, engine.Config{}, err
			}
			stream = append(stream, c)
			id++
		}
	}

	return net, stream, cfg, nil
}
