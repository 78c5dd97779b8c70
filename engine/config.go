package engine

import "fmt"

// Config groups the tunable constants of the engine. Every component takes
// its Config at construction; there are no process-wide defaults, so multiple
// networks can run with independent tolerances.
type Config struct {
	// SlackMargin is the strict interior margin for admissibility: every
	// interface must keep headroom strictly above it. Boundary loads with
	// exactly zero headroom are not admissible. Must be > 0.
	SlackMargin float64

	// CostTolerance is the minimum improvement for the relaxer to accept a
	// cheaper route. Guards against oscillation on float-equal costs. Must be > 0.
	CostTolerance float64

	// MaxPathLength bounds candidate paths by edge count during enumeration.
	MaxPathLength int

	// MaxPathCount caps how many candidate paths are collected per query.
	MaxPathCount int

	// MaxFeasibleLoadBound clamps Interface.MaxFeasibleLoad to keep the
	// linear-only case finite. Must be > 0.
	MaxFeasibleLoadBound int

	// RelaxEvery is the relaxation interval of the floor estimator: a full
	// coordinate-descent pass runs after every RelaxEvery admissions (and on
	// the final commitment). Must be > 0.
	RelaxEvery int

	// IterationCap bounds the number of full coordinate-descent passes per
	// relaxation call. Termination is guaranteed by this cap even without
	// convergence. Must be > 0.
	IterationCap int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		SlackMargin:          1e-6,
		CostTolerance:        1e-9,
		MaxPathLength:        6,
		MaxPathCount:         20,
		MaxFeasibleLoadBound: 1_000_000,
		RelaxEvery:           3,
		IterationCap:         3,
	}
}

// Validate checks all parameter ranges. Configuration errors are rejected
// here, before any routing occurs.
func (c Config) Validate() error {
	if c.SlackMargin <= 0 {
		return fmt.Errorf("slack margin must be > 0, got %g", c.SlackMargin)
	}
	if c.CostTolerance <= 0 {
		return fmt.Errorf("cost tolerance must be > 0, got %g", c.CostTolerance)
	}
	if c.MaxPathLength <= 0 {
		return fmt.Errorf("max path length must be > 0, got %d", c.MaxPathLength)
	}
	if c.MaxPathCount <= 0 {
		return fmt.Errorf("max path count must be > 0, got %d", c.MaxPathCount)
	}
	if c.MaxFeasibleLoadBound <= 0 {
		return fmt.Errorf("max feasible load bound must be > 0, got %d", c.MaxFeasibleLoadBound)
	}
	if c.RelaxEvery <= 0 {
		return fmt.Errorf("relax interval must be > 0, got %d", c.RelaxEvery)
	}
	if c.IterationCap <= 0 {
		return fmt.Errorf("iteration cap must be > 0, got %d", c.IterationCap)
	}
	return nil
}
