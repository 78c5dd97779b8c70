package engine

import (
	"fmt"
	"math"
)

// AdmissionOutcome describes a single admission decision. Rejection is an
// expected, non-fatal outcome: it signals the network has reached its
// admissible boundary for that demand, and the caller decides what to do.
type AdmissionOutcome struct {
	Admitted   bool
	Reason     string
	Candidates int // paths enumerated within the configured bounds

	// Populated on admission: properties of the resulting load.
	TotalCost   float64
	MinHeadroom float64
	Bottleneck  string
}

// AdmissionController routes commitments over a network, selecting the
// minimum-cost admissible candidate path for each.
type AdmissionController struct {
	net *Network
	cfg Config
}

// NewAdmissionController validates the configuration and binds it to a network.
func NewAdmissionController(net *Network, cfg Config) (*AdmissionController, error) {
	if net == nil {
		return nil, fmt.Errorf("network must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("admission config: %w", err)
	}
	return &AdmissionController{net: net, cfg: cfg}, nil
}

// Network returns the substrate this controller routes over.
func (ac *AdmissionController) Network() *Network {
	return ac.net
}

// Config returns the controller's tunables.
func (ac *AdmissionController) Config() Config {
	return ac.cfg
}

// Admit finds the minimum-cost admissible routing for a commitment against
// the current load. Candidates are the bounded simple paths from FindPaths;
// each is admissible when every interface keeps headroom strictly above the
// slack margin under currentLoad + demand*contribution. Ties keep the path
// enumeration order: the first one found wins.
//
// A nil RoutedCommitment with Admitted=false means no admissible path exists.
// That is a value outcome, not an error; errors are reserved for malformed
// inputs.
func (ac *AdmissionController) Admit(c Commitment, currentLoad LoadVector) (*RoutedCommitment, AdmissionOutcome, error) {
	if err := c.Validate(ac.net); err != nil {
		return nil, AdmissionOutcome{}, err
	}

	paths, err := ac.net.FindPaths(c.Source, c.Target, ac.cfg.MaxPathLength, ac.cfg.MaxPathCount)
	if err != nil {
		return nil, AdmissionOutcome{}, err
	}

	bestCost := math.Inf(1)
	var bestPath *Path
	var bestLoad LoadVector

	for idx := range paths {
		hypothetical := currentLoad.AddScaled(paths[idx].LoadContribution(), c.Demand)
		if !ac.net.Admissible(hypothetical, ac.cfg.SlackMargin) {
			continue
		}
		if cost := ac.net.TotalCost(hypothetical); cost < bestCost {
			bestCost = cost
			bestPath = &paths[idx]
			bestLoad = hypothetical
		}
	}

	if bestPath == nil {
		reason := "no admissible route"
		if len(paths) == 0 {
			reason = "no route within path bounds"
		}
		return nil, AdmissionOutcome{Reason: reason, Candidates: len(paths)}, nil
	}

	minH, bottleneck := ac.net.MinHeadroom(bestLoad)
	outcome := AdmissionOutcome{
		Admitted:    true,
		Candidates:  len(paths),
		TotalCost:   bestCost,
		MinHeadroom: minH,
		Bottleneck:  bottleneck,
	}
	return &RoutedCommitment{Commitment: c, Path: *bestPath}, outcome, nil
}
