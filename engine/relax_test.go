package engine

import (
	"math"
	"testing"
)

// triangleNetwork builds A-B, B-C, A-C with independent same-cost interfaces.
func triangleNetwork(t *testing.T) *Network {
	t.Helper()
	net, err := NewNetwork(
		[]string{"A", "B", "C"},
		[]Edge{
			{A: "A", B: "B", Interface: mustInterface(t, "I-AB", 10, 1, 0.5)},
			{A: "B", B: "C", Interface: mustInterface(t, "I-BC", 10, 1, 0.5)},
			{A: "A", B: "C", Interface: mustInterface(t, "I-AC", 10, 1, 0.5)},
		},
	)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}
	return net
}

// TestRelax_ReroutesToCheaperPath verifies a deliberately bad route is
// replaced: a commitment routed over the two-hop detour moves to the free
// direct edge.
func TestRelax_ReroutesToCheaperPath(t *testing.T) {
	net := triangleNetwork(t)
	ac := newAdmitter(t, net)
	relaxer := NewRelaxer(ac)

	detour := Path{
		Nodes: []string{"A", "B", "C"},
		Edges: []Edge{net.Edges()[0], net.Edges()[1]},
	}
	routed := []RoutedCommitment{{
		Commitment: Commitment{ID: 0, Source: "A", Target: "C", Demand: 1},
		Path:       detour,
	}}

	before := net.TotalCost(CombinedLoad(routed)) // 2.0 over the detour
	result := relaxer.Relax(routed, 3)

	if result.Rerouted != 1 {
		t.Fatalf("expected 1 reroute, got %d", result.Rerouted)
	}
	if got := result.Routed[0].Path.Length(); got != 1 {
		t.Errorf("expected the direct edge after relaxation, got %s", result.Routed[0].Path)
	}
	after := net.TotalCost(result.Load)
	if math.Abs(after-1.0) > 1e-9 {
		t.Errorf("expected cost 1.0 after relaxation, got %g", after)
	}
	if math.Abs(result.CostSaved-(before-after)) > 1e-9 {
		t.Errorf("CostSaved = %g, want %g", result.CostSaved, before-after)
	}
	if !result.Converged {
		t.Errorf("expected convergence before the iteration cap")
	}
}

// TestRelax_CostNeverIncreases is the core invariant: total cost after any
// relaxation call is at most the cost before it.
func TestRelax_CostNeverIncreases(t *testing.T) {
	net, err := NewNetwork(
		[]string{"A", "B", "C", "D"},
		[]Edge{
			{A: "A", B: "B", Interface: mustInterface(t, "I1", 12, 1.0, 0.4)},
			{A: "B", B: "C", Interface: mustInterface(t, "I2", 10, 1.2, 0.5)},
			{A: "C", B: "D", Interface: mustInterface(t, "I3", 15, 0.8, 0.3)},
			{A: "A", B: "C", Interface: mustInterface(t, "I2", 10, 1.2, 0.5)},
			{A: "B", B: "D", Interface: mustInterface(t, "I3", 15, 0.8, 0.3)},
			{A: "A", B: "D", Interface: mustInterface(t, "I1", 12, 1.0, 0.4)},
		},
	)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}
	ac := newAdmitter(t, net)
	relaxer := NewRelaxer(ac)

	// Admit a stream greedily, relaxing after each admission.
	var active []RoutedCommitment
	load := NewLoadVector()
	tolerance := ac.Config().CostTolerance

	for i := 0; i < 8; i++ {
		routed, outcome, err := ac.Admit(Commitment{ID: i, Source: "A", Target: "D", Demand: 1}, load)
		if err != nil {
			t.Fatalf("Admit %d: %v", i, err)
		}
		if !outcome.Admitted {
			break
		}
		active = append(active, *routed)
		load = load.Add(routed.LoadContribution())

		before := net.TotalCost(load)
		result := relaxer.Relax(active, 3)
		after := net.TotalCost(result.Load)
		if after > before+tolerance {
			t.Fatalf("step %d: relaxation increased cost from %g to %g", i, before, after)
		}
		active = result.Routed
		load = result.Load
	}
}

// TestRelax_RespectsIterationCap verifies the cap bounds the pass count and
// that a capped run still returns a usable result.
func TestRelax_RespectsIterationCap(t *testing.T) {
	net := triangleNetwork(t)
	ac := newAdmitter(t, net)
	relaxer := NewRelaxer(ac)

	detour := Path{
		Nodes: []string{"A", "B", "C"},
		Edges: []Edge{net.Edges()[0], net.Edges()[1]},
	}
	routed := []RoutedCommitment{{
		Commitment: Commitment{ID: 0, Source: "A", Target: "C", Demand: 1},
		Path:       detour,
	}}

	result := relaxer.Relax(routed, 1)
	if result.Passes != 1 {
		t.Errorf("expected exactly 1 pass, got %d", result.Passes)
	}
	if result.Converged {
		t.Errorf("a capped single pass that improved must not report convergence")
	}
	if len(result.Routed) != 1 {
		t.Errorf("relaxation must preserve the commitment set")
	}
}

// TestRelax_EmptySet is a no-op that converges immediately.
func TestRelax_EmptySet(t *testing.T) {
	net := triangleNetwork(t)
	relaxer := NewRelaxer(newAdmitter(t, net))

	result := relaxer.Relax(nil, 3)
	if result.CostSaved != 0 || result.Rerouted != 0 {
		t.Errorf("empty relaxation must save nothing, got %+v", result)
	}
	if !result.Converged {
		t.Errorf("empty relaxation converges on the first pass")
	}
	if result.Load.Total() != 0 {
		t.Errorf("empty relaxation must produce an empty load")
	}
}
