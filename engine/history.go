package engine

import "fmt"

// HistoryStep is one recorded load state with its transition accounting.
type HistoryStep struct {
	Load           LoadVector
	CumulativeCost float64
	StepCost       float64 // total variation from the previous step, 0 for the initial state
	Admissible     bool
	MinHeadroom    float64
	Bottleneck     string
}

// History is an append-only ledger of load snapshots. CumulativeCost is
// non-decreasing by construction: step costs are total variations and thus
// never negative. This monotonic accumulation is the engine's notion of
// irreversible progress ("action"/"time").
type History struct {
	net   *Network
	cfg   Config
	steps []HistoryStep
}

// NewHistory creates an empty history bound to a network's cost model.
func NewHistory(net *Network, cfg Config) (*History, error) {
	if net == nil {
		return nil, fmt.Errorf("network must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("history config: %w", err)
	}
	return &History{net: net, cfg: cfg}, nil
}

// Append records a new load state. The first append records the initial
// state with zero step cost; later appends accumulate the total-variation
// transition cost from the previous state. Past entries are never edited.
func (h *History) Append(load LoadVector) HistoryStep {
	snapshot := load.Clone()
	stepCost := 0.0
	cumulative := 0.0
	if len(h.steps) > 0 {
		prev := h.steps[len(h.steps)-1]
		stepCost = h.net.TransitionCost(prev.Load, snapshot)
		cumulative = prev.CumulativeCost + stepCost
	}

	minH, bottleneck := h.net.MinHeadroom(snapshot)
	step := HistoryStep{
		Load:           snapshot,
		CumulativeCost: cumulative,
		StepCost:       stepCost,
		Admissible:     minH > h.cfg.SlackMargin,
		MinHeadroom:    minH,
		Bottleneck:     bottleneck,
	}
	h.steps = append(h.steps, step)
	return step
}

// Len returns the number of recorded states.
func (h *History) Len() int {
	return len(h.steps)
}

// Steps returns the recorded steps in order.
// The returned slice is internal storage; callers must not modify it.
func (h *History) Steps() []HistoryStep {
	return h.steps
}

// Action returns the total accumulated transition cost.
func (h *History) Action() float64 {
	if len(h.steps) == 0 {
		return 0
	}
	return h.steps[len(h.steps)-1].CumulativeCost
}

// Irreversibility quantifies how much of a history's action is dissipation:
// action spent on back-and-forth load changes rather than net cost change.
type Irreversibility struct {
	Action             float64
	NetChange          float64 // final total cost minus initial total cost
	Dissipation        float64 // action - |net change|
	ReversibilityRatio float64 // |net change| / action; 1 = no waste
}

// AnalyzeIrreversibility computes irreversibility metrics for a history.
func (h *History) AnalyzeIrreversibility() Irreversibility {
	out := Irreversibility{}
	if len(h.steps) == 0 {
		return out
	}

	out.Action = h.Action()
	initial := h.net.TotalCost(h.steps[0].Load)
	final := h.net.TotalCost(h.steps[len(h.steps)-1].Load)
	out.NetChange = final - initial

	abs := out.NetChange
	if abs < 0 {
		abs = -abs
	}
	out.Dissipation = out.Action - abs
	switch {
	case out.Action > h.cfg.CostTolerance:
		out.ReversibilityRatio = abs / out.Action
	case abs < h.cfg.CostTolerance:
		out.ReversibilityRatio = 1
	}
	return out
}

// MinimumActionQuantum returns the smallest nonzero action any transition can
// accumulate: the cheapest single-unit load change across the network's
// interfaces, min_i linearCoeff_i.
func MinimumActionQuantum(net *Network) float64 {
	quantum := 0.0
	for i, itf := range net.Interfaces() {
		if i == 0 || itf.LinearCoeff < quantum {
			quantum = itf.LinearCoeff
		}
	}
	return quantum
}

// TimeFromAction converts accumulated action into discrete ticks of the
// minimum action quantum. A non-positive quantum is a programming error:
// every valid network has strictly positive linear coefficients.
func TimeFromAction(action, quantum float64) float64 {
	if quantum <= 0 {
		panic(fmt.Sprintf("TimeFromAction: quantum must be > 0, got %g", quantum))
	}
	return action / quantum
}
