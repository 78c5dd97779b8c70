package engine

import "fmt"

// Commitment is a demand for connectivity between two nodes. Once admitted it
// stays active: it may be rerouted but never deleted.
type Commitment struct {
	ID     int
	Source string
	Target string
	Demand int
}

func (c Commitment) String() string {
	return fmt.Sprintf("commitment %d: %s<->%s demand=%d", c.ID, c.Source, c.Target, c.Demand)
}

// Validate rejects malformed commitments before routing.
func (c Commitment) Validate(net *Network) error {
	if c.Demand <= 0 {
		return fmt.Errorf("commitment %d: demand must be > 0, got %d", c.ID, c.Demand)
	}
	if !net.HasNode(c.Source) {
		return fmt.Errorf("commitment %d: unknown source node %q", c.ID, c.Source)
	}
	if !net.HasNode(c.Target) {
		return fmt.Errorf("commitment %d: unknown target node %q", c.ID, c.Target)
	}
	return nil
}

// RoutedCommitment is a commitment with its current routing assignment.
type RoutedCommitment struct {
	Commitment Commitment
	Path       Path
}

// LoadContribution returns the load this routing places on the network:
// the path's per-edge contribution scaled by the commitment's demand.
func (rc RoutedCommitment) LoadContribution() LoadVector {
	return NewLoadVector().AddScaled(rc.Path.LoadContribution(), rc.Commitment.Demand)
}

// CombinedLoad accumulates the load of a set of routed commitments.
func CombinedLoad(routed []RoutedCommitment) LoadVector {
	load := NewLoadVector()
	for _, rc := range routed {
		load = load.AddScaled(rc.Path.LoadContribution(), rc.Commitment.Demand)
	}
	return load
}
