package engine

import (
	"fmt"
	"math"
)

// Distance returns the minimum admissible enforcement cost of routing one
// unit of demand between u and v on top of the existing load, and whether any
// admissible route exists. d(u,u) is 0. With an empty existing load this is
// the engine's notion of distance between nodes.
func (ac *AdmissionController) Distance(u, v string, existing LoadVector) (float64, bool, error) {
	if !ac.net.HasNode(u) {
		return 0, false, fmt.Errorf("unknown node %q", u)
	}
	if !ac.net.HasNode(v) {
		return 0, false, fmt.Errorf("unknown node %q", v)
	}
	if u == v {
		return 0, true, nil
	}

	probe := Commitment{ID: -1, Source: u, Target: v, Demand: 1}
	routed, outcome, err := ac.Admit(probe, existing)
	if err != nil {
		return 0, false, err
	}
	if routed == nil {
		return math.Inf(1), false, nil
	}
	return outcome.TotalCost - ac.net.TotalCost(existing), true, nil
}

// DistanceMatrix computes pairwise distances for all nodes on an unloaded
// network. Unreachable pairs are +Inf.
func (ac *AdmissionController) DistanceMatrix() (map[string]map[string]float64, error) {
	empty := NewLoadVector()
	out := make(map[string]map[string]float64, len(ac.net.Nodes()))
	for _, u := range ac.net.Nodes() {
		row := make(map[string]float64, len(ac.net.Nodes()))
		for _, v := range ac.net.Nodes() {
			d, ok, err := ac.Distance(u, v, empty)
			if err != nil {
				return nil, err
			}
			if !ok && u != v {
				d = math.Inf(1)
			}
			row[v] = d
		}
		out[u] = row
	}
	return out, nil
}

// VerifyGeometry checks the metric axioms of the distance function on an
// unloaded network: identity d(u,u)=0, symmetry d(u,v)=d(v,u), and the
// triangle inequality d(u,w) <= d(u,v) + d(v,w). It returns a description of
// every violation found; an empty slice means the axioms hold.
func (ac *AdmissionController) VerifyGeometry() ([]string, error) {
	dist, err := ac.DistanceMatrix()
	if err != nil {
		return nil, err
	}
	tolerance := ac.cfg.CostTolerance
	nodes := ac.net.Nodes()
	var violations []string

	for _, u := range nodes {
		if dist[u][u] != 0 {
			violations = append(violations, fmt.Sprintf("identity: d(%s,%s)=%g", u, u, dist[u][u]))
		}
	}
	for _, u := range nodes {
		for _, v := range nodes {
			if math.Abs(dist[u][v]-dist[v][u]) > tolerance {
				violations = append(violations,
					fmt.Sprintf("symmetry: d(%s,%s)=%.4f vs d(%s,%s)=%.4f", u, v, dist[u][v], v, u, dist[v][u]))
			}
		}
	}
	for _, u := range nodes {
		for _, v := range nodes {
			for _, w := range nodes {
				if dist[u][w] > dist[u][v]+dist[v][w]+tolerance {
					violations = append(violations,
						fmt.Sprintf("triangle: d(%s,%s)=%.4f > d(%s,%s)+d(%s,%s)=%.4f",
							u, w, dist[u][w], u, v, v, w, dist[u][v]+dist[v][w]))
				}
			}
		}
	}
	return violations, nil
}
