package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Path is an ordered node sequence joined by an edge sequence. A zero-edge
// path (source == target) has one node and no edges.
type Path struct {
	Nodes []string
	Edges []Edge
}

// Source returns the first node of the path.
func (p Path) Source() string {
	return p.Nodes[0]
}

// Target returns the last node of the path.
func (p Path) Target() string {
	return p.Nodes[len(p.Nodes)-1]
}

// Length returns the number of edges traversed.
func (p Path) Length() int {
	return len(p.Edges)
}

// LoadContribution returns one unit of load per traversed edge, accumulated
// per interface.
func (p Path) LoadContribution() LoadVector {
	lv := NewLoadVector()
	for _, e := range p.Edges {
		lv[e.Interface.Name]++
	}
	return lv
}

func (p Path) String() string {
	return strings.Join(p.Nodes, "->")
}

// pathWalker holds the mutable traversal buffers so the recursion reuses a
// single current-path prefix instead of copying per branch.
type pathWalker struct {
	net       *Network
	target    string
	maxLength int
	maxCount  int

	visited   map[string]bool
	pathNodes []string
	pathEdges []Edge
	found     []Path
}

// FindPaths enumerates up to maxCount simple paths from source to target by
// depth-first search, cutting branches beyond maxLength edges. Results are
// ordered by increasing edge count; ties keep DFS discovery order, which is
// the deterministic Neighbors enumeration order. source == target yields a
// single zero-edge path.
func (net *Network) FindPaths(source, target string, maxLength, maxCount int) ([]Path, error) {
	if !net.HasNode(source) {
		return nil, fmt.Errorf("unknown source node %q", source)
	}
	if !net.HasNode(target) {
		return nil, fmt.Errorf("unknown target node %q", target)
	}
	if maxLength <= 0 || maxCount <= 0 {
		return nil, fmt.Errorf("path bounds must be > 0, got maxLength=%d maxCount=%d", maxLength, maxCount)
	}

	if source == target {
		return []Path{{Nodes: []string{source}}}, nil
	}

	w := &pathWalker{
		net:       net,
		target:    target,
		maxLength: maxLength,
		maxCount:  maxCount,
		visited:   map[string]bool{source: true},
		pathNodes: []string{source},
	}
	w.walk(source)

	sort.SliceStable(w.found, func(i, j int) bool {
		return w.found[i].Length() < w.found[j].Length()
	})
	return w.found, nil
}

func (w *pathWalker) walk(current string) {
	if len(w.found) >= w.maxCount {
		return
	}
	if current == w.target {
		w.found = append(w.found, Path{
			Nodes: append([]string(nil), w.pathNodes...),
			Edges: append([]Edge(nil), w.pathEdges...),
		})
		return
	}
	if len(w.pathEdges) >= w.maxLength {
		return
	}

	for _, nb := range w.net.Neighbors(current) {
		if w.visited[nb.Node] {
			continue
		}
		w.visited[nb.Node] = true
		w.pathNodes = append(w.pathNodes, nb.Node)
		w.pathEdges = append(w.pathEdges, nb.Edge)

		w.walk(nb.Node)

		w.pathEdges = w.pathEdges[:len(w.pathEdges)-1]
		w.pathNodes = w.pathNodes[:len(w.pathNodes)-1]
		delete(w.visited, nb.Node)
	}
}
