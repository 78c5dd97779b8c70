package engine

import (
	"strings"
	"testing"
)

// diamondNetwork builds A-B, B-D, A-C, C-D, A-D with one interface per edge.
func diamondNetwork(t *testing.T) *Network {
	t.Helper()
	net, err := NewNetwork(
		[]string{"A", "B", "C", "D"},
		[]Edge{
			{A: "A", B: "B", Interface: mustInterface(t, "I-AB", 10, 1, 0.5)},
			{A: "B", B: "D", Interface: mustInterface(t, "I-BD", 10, 1, 0.5)},
			{A: "A", B: "C", Interface: mustInterface(t, "I-AC", 10, 1, 0.5)},
			{A: "C", B: "D", Interface: mustInterface(t, "I-CD", 10, 1, 0.5)},
			{A: "A", B: "D", Interface: mustInterface(t, "I-AD", 10, 1, 0.5)},
		},
	)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}
	return net
}

func pathStrings(paths []Path) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.String()
	}
	return out
}

// TestFindPaths_OrderedByLength verifies simple-path enumeration ordered by
// edge count, ties in DFS discovery order.
func TestFindPaths_OrderedByLength(t *testing.T) {
	net := diamondNetwork(t)

	paths, err := net.FindPaths("A", "D", 6, 20)
	if err != nil {
		t.Fatalf("FindPaths: %v", err)
	}

	expected := []string{"A->D", "A->B->D", "A->C->D"}
	got := pathStrings(paths)
	if strings.Join(got, " ") != strings.Join(expected, " ") {
		t.Errorf("expected paths %v, got %v", expected, got)
	}

	for i := 1; i < len(paths); i++ {
		if paths[i].Length() < paths[i-1].Length() {
			t.Errorf("paths not ordered by length: %v", got)
		}
	}
}

// TestFindPaths_SimplePathsOnly verifies no node repeats within a path.
func TestFindPaths_SimplePathsOnly(t *testing.T) {
	net := diamondNetwork(t)
	paths, err := net.FindPaths("A", "D", 6, 100)
	if err != nil {
		t.Fatalf("FindPaths: %v", err)
	}
	for _, p := range paths {
		seen := make(map[string]bool)
		for _, n := range p.Nodes {
			if seen[n] {
				t.Errorf("path %s revisits node %q", p, n)
			}
			seen[n] = true
		}
	}
}

// TestFindPaths_Bounds verifies maxLength branch cuts and the global maxCount stop.
func TestFindPaths_Bounds(t *testing.T) {
	net := diamondNetwork(t)

	t.Run("maxLength", func(t *testing.T) {
		paths, err := net.FindPaths("A", "D", 1, 20)
		if err != nil {
			t.Fatalf("FindPaths: %v", err)
		}
		if len(paths) != 1 || paths[0].String() != "A->D" {
			t.Errorf("expected only the direct path, got %v", pathStrings(paths))
		}
	})

	t.Run("maxCount", func(t *testing.T) {
		paths, err := net.FindPaths("A", "D", 6, 2)
		if err != nil {
			t.Fatalf("FindPaths: %v", err)
		}
		if len(paths) != 2 {
			t.Errorf("expected 2 paths, got %d", len(paths))
		}
	})

	t.Run("invalid bounds", func(t *testing.T) {
		if _, err := net.FindPaths("A", "D", 0, 20); err == nil {
			t.Errorf("expected error for maxLength=0")
		}
	})
}

// TestFindPaths_SameSourceTarget yields a single zero-edge path.
func TestFindPaths_SameSourceTarget(t *testing.T) {
	net := diamondNetwork(t)
	paths, err := net.FindPaths("A", "A", 6, 20)
	if err != nil {
		t.Fatalf("FindPaths: %v", err)
	}
	if len(paths) != 1 || paths[0].Length() != 0 || paths[0].Source() != "A" || paths[0].Target() != "A" {
		t.Errorf("expected single zero-edge path at A, got %v", pathStrings(paths))
	}
	if paths[0].LoadContribution().Total() != 0 {
		t.Errorf("zero-edge path must contribute no load")
	}
}

// TestFindPaths_UnknownNode returns an error, not a panic.
func TestFindPaths_UnknownNode(t *testing.T) {
	net := diamondNetwork(t)
	if _, err := net.FindPaths("A", "X", 6, 20); err == nil {
		t.Errorf("expected error for unknown target")
	}
	if _, err := net.FindPaths("X", "A", 6, 20); err == nil {
		t.Errorf("expected error for unknown source")
	}
}

// TestPath_LoadContribution counts one unit per traversed edge per interface.
func TestPath_LoadContribution(t *testing.T) {
	shared := Interface{Name: "S", Capacity: 10, LinearCoeff: 1, QuadraticCoeff: 0}
	p := Path{
		Nodes: []string{"A", "B", "C"},
		Edges: []Edge{
			{A: "A", B: "B", Interface: shared},
			{A: "B", B: "C", Interface: shared},
		},
	}
	lv := p.LoadContribution()
	if lv.Load("S") != 2 {
		t.Errorf("expected 2 units on shared interface, got %d", lv.Load("S"))
	}
}
