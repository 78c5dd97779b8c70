// Package trace provides decision-trace recording for floor-estimation runs.
// This package has no dependencies on engine/; it stores pure data types.
package trace

// AdmissionRecord captures a single admission decision.
type AdmissionRecord struct {
	CommitmentID int
	Step         int
	Admitted     bool
	Reason       string
	Candidates   int
	PathNodes    []string // nil for rejections
	TotalCost    float64
	MinHeadroom  float64
	Bottleneck   string
}

// RelaxationRecord captures one coordinate-descent round over the active set.
type RelaxationRecord struct {
	Step       int
	Passes     int
	Converged  bool
	Rerouted   int
	CostBefore float64
	CostAfter  float64
	CostSaved  float64
}
