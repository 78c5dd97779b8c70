package engine

// RelaxationResult carries the outcome of one coordinate-descent call.
type RelaxationResult struct {
	Routed    []RoutedCommitment
	Load      LoadVector
	CostSaved float64
	Passes    int
	Rerouted  int
	Converged bool // a full pass made no improvement before the cap
}

// Relaxer re-optimizes the routes of all active commitments by coordinate
// descent, using the AdmissionController as its subroutine. It is an explicit
// heuristic: it guarantees a non-increasing total cost and finite
// termination, never global optimality.
type Relaxer struct {
	admitter *AdmissionController
}

// NewRelaxer wraps an admission controller for rerouting.
func NewRelaxer(admitter *AdmissionController) *Relaxer {
	if admitter == nil {
		panic("NewRelaxer: admitter must not be nil")
	}
	return &Relaxer{admitter: admitter}
}

// Relax runs up to iterationCap full passes over the active commitments.
// Each pass subtracts one commitment's contribution, re-admits it against the
// residual load, and swaps its route only when the replacement is strictly
// cheaper than the current total by more than the cost tolerance. A pass with
// zero improvements terminates early.
//
// Total cost after the call never exceeds the cost before it.
func (r *Relaxer) Relax(routed []RoutedCommitment, iterationCap int) RelaxationResult {
	if iterationCap <= 0 {
		panic("Relax: iterationCap must be > 0")
	}

	net := r.admitter.Network()
	tolerance := r.admitter.Config().CostTolerance

	current := append([]RoutedCommitment(nil), routed...)
	currentLoad := CombinedLoad(current)
	startCost := net.TotalCost(currentLoad)
	currentCost := startCost

	result := RelaxationResult{}
	for pass := 0; pass < iterationCap; pass++ {
		result.Passes = pass + 1
		improved := false

		for i := range current {
			residual := currentLoad.AddScaled(current[i].Path.LoadContribution(), -current[i].Commitment.Demand)

			replacement, outcome, err := r.admitter.Admit(current[i].Commitment, residual)
			if err != nil {
				// Commitments were validated at admission; re-admission
				// cannot fail on inputs.
				panic(err)
			}
			if !outcome.Admitted {
				continue // keep the existing route
			}
			if outcome.TotalCost+tolerance >= currentCost {
				continue // not a strict improvement
			}

			current[i] = *replacement
			currentLoad = residual.AddScaled(replacement.Path.LoadContribution(), replacement.Commitment.Demand)
			currentCost = outcome.TotalCost
			result.Rerouted++
			improved = true
		}

		if !improved {
			result.Converged = true
			break
		}
	}

	result.Routed = current
	result.Load = currentLoad
	result.CostSaved = startCost - currentCost
	return result
}
