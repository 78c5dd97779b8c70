// Tracks run-wide aggregates for final reporting.

package engine

import "fmt"

// Metrics aggregates statistics about a floor-estimation run
// for final reporting.
type Metrics struct {
	AdmittedCommitments int     // commitments routed successfully
	RejectedCommitments int     // commitments refused (saturation)
	RelaxationRuns      int     // coordinate-descent rounds executed
	TotalCostSaved      float64 // cost eliminated by relaxation across the run
	PeakSaturation      float64 // max saturation fraction seen in any report
	FinalResidualCost   float64 // total cost after the last relaxation
	FinalAction         float64 // accumulated action at end of run
}

// Print displays aggregated metrics at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Floor Estimation Metrics ===")
	fmt.Printf("Admitted Commitments : %d\n", m.AdmittedCommitments)
	fmt.Printf("Rejected Commitments : %d\n", m.RejectedCommitments)
	fmt.Printf("Relaxation Runs      : %d\n", m.RelaxationRuns)
	fmt.Printf("Total Cost Saved     : %.3f\n", m.TotalCostSaved)
	fmt.Printf("Peak Saturation      : %.1f%%\n", m.PeakSaturation*100)
	fmt.Printf("Final Residual Cost  : %.3f\n", m.FinalResidualCost)
	fmt.Printf("Final Action         : %.3f\n", m.FinalAction)
}
