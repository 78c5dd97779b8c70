package engine

import (
	"fmt"
	"math"
)

// Edge is an undirected connection between two nodes, bound to the Interface
// that carries its load. Immutable after network construction.
type Edge struct {
	A         string
	B         string
	Interface Interface
}

// Other returns the endpoint opposite to node.
func (e Edge) Other(node string) string {
	if node == e.A {
		return e.B
	}
	return e.A
}

// Neighbor pairs an adjacent node with the edge reaching it.
type Neighbor struct {
	Node string
	Edge Edge
}

// Network is a read-only routing substrate: a node set and an edge list with
// derived adjacency and interface registry, built once at construction.
type Network struct {
	nodes   []string
	nodeSet map[string]bool
	edges   []Edge

	adjacency  map[string][]Neighbor
	interfaces map[string]Interface
	ifaceOrder []string // deterministic iteration order (first binding wins)
}

// NewNetwork validates the topology and builds the adjacency map and
// interface registry. Edge insertion order is preserved, which makes
// Neighbors, and therefore path discovery order, deterministic.
func NewNetwork(nodes []string, edges []Edge) (*Network, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("network must have at least one node")
	}
	nodeSet := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if n == "" {
			return nil, fmt.Errorf("node name must not be empty")
		}
		if nodeSet[n] {
			return nil, fmt.Errorf("duplicate node %q", n)
		}
		nodeSet[n] = true
	}

	net := &Network{
		nodes:      append([]string(nil), nodes...),
		nodeSet:    nodeSet,
		edges:      append([]Edge(nil), edges...),
		adjacency:  make(map[string][]Neighbor),
		interfaces: make(map[string]Interface),
	}

	for _, e := range net.edges {
		if !nodeSet[e.A] || !nodeSet[e.B] {
			return nil, fmt.Errorf("edge %s-%s references unknown node", e.A, e.B)
		}
		if e.A == e.B {
			return nil, fmt.Errorf("self-loop edge on node %q", e.A)
		}
		if _, err := NewInterface(e.Interface.Name, e.Interface.Capacity, e.Interface.LinearCoeff, e.Interface.QuadraticCoeff); err != nil {
			return nil, err
		}
		if existing, ok := net.interfaces[e.Interface.Name]; ok {
			if existing != e.Interface {
				return nil, fmt.Errorf("interface %q bound with conflicting parameters", e.Interface.Name)
			}
		} else {
			net.interfaces[e.Interface.Name] = e.Interface
			net.ifaceOrder = append(net.ifaceOrder, e.Interface.Name)
		}
		net.adjacency[e.A] = append(net.adjacency[e.A], Neighbor{Node: e.B, Edge: e})
		net.adjacency[e.B] = append(net.adjacency[e.B], Neighbor{Node: e.A, Edge: e})
	}

	return net, nil
}

// Nodes returns the node names in construction order.
// The returned slice is internal storage; callers must not modify it.
func (net *Network) Nodes() []string {
	return net.nodes
}

// Edges returns the edge list in construction order.
func (net *Network) Edges() []Edge {
	return net.edges
}

// HasNode reports whether name is a node of the network.
func (net *Network) HasNode(name string) bool {
	return net.nodeSet[name]
}

// Neighbors returns the adjacent (node, edge) pairs of node in edge
// insertion order.
func (net *Network) Neighbors(node string) []Neighbor {
	return net.adjacency[node]
}

// Interfaces returns all distinct interfaces in first-binding order.
func (net *Network) Interfaces() []Interface {
	out := make([]Interface, 0, len(net.ifaceOrder))
	for _, name := range net.ifaceOrder {
		out = append(out, net.interfaces[name])
	}
	return out
}

// Interface looks up an interface by name.
func (net *Network) Interface(name string) (Interface, bool) {
	itf, ok := net.interfaces[name]
	return itf, ok
}

// TotalCost returns the total enforcement cost of a load configuration,
// summed over all interfaces.
func (net *Network) TotalCost(load LoadVector) float64 {
	total := 0.0
	for _, name := range net.ifaceOrder {
		total += net.interfaces[name].Cost(load.Load(name))
	}
	return total
}

// MinHeadroom returns the smallest headroom across interfaces and the name
// of the interface holding it (the bottleneck).
func (net *Network) MinHeadroom(load LoadVector) (float64, string) {
	minH := math.Inf(1)
	bottleneck := ""
	for _, name := range net.ifaceOrder {
		if h := net.interfaces[name].Headroom(load.Load(name)); h < minH {
			minH = h
			bottleneck = name
		}
	}
	return minH, bottleneck
}

// Admissible reports whether every interface keeps headroom strictly above
// margin under the given load.
func (net *Network) Admissible(load LoadVector, margin float64) bool {
	minH, _ := net.MinHeadroom(load)
	return minH > margin
}

// SaturationFraction returns max_i cost_i/capacity_i under the given load and
// the interface achieving it. It measures how full the most constrained
// interface is.
func (net *Network) SaturationFraction(load LoadVector) (float64, string) {
	worst := 0.0
	bottleneck := ""
	for _, name := range net.ifaceOrder {
		itf := net.interfaces[name]
		frac := itf.Cost(load.Load(name)) / itf.Capacity
		if frac > worst {
			worst = frac
			bottleneck = name
		}
	}
	return worst, bottleneck
}

// TransitionCost returns the total-variation cost of moving between two load
// states: sum over interfaces of |cost(next) - cost(prev)|. It is symmetric,
// non-negative, and zero exactly when the loads are equal.
func (net *Network) TransitionCost(prev, next LoadVector) float64 {
	total := 0.0
	for _, name := range net.ifaceOrder {
		itf := net.interfaces[name]
		total += math.Abs(itf.Cost(next.Load(name)) - itf.Cost(prev.Load(name)))
	}
	return total
}

// TransitionCostSigned splits the transition cost into its increasing and
// decreasing parts. Their sum equals TransitionCost; their difference is the
// net cost change.
func (net *Network) TransitionCostSigned(prev, next LoadVector) (increase, decrease float64) {
	for _, name := range net.ifaceOrder {
		itf := net.interfaces[name]
		delta := itf.Cost(next.Load(name)) - itf.Cost(prev.Load(name))
		if delta > 0 {
			increase += delta
		} else {
			decrease -= delta
		}
	}
	return increase, decrease
}
