package trace

import "gonum.org/v1/gonum/stat"

// Summary aggregates statistics from a RunTrace.
type Summary struct {
	TotalDecisions int
	AdmittedCount  int
	RejectedCount  int

	MeanRouteCost   float64 // mean post-admission total cost across admitted steps
	MeanMinHeadroom float64 // mean remaining headroom across admitted steps

	RelaxationRounds    int
	ConvergedRounds     int
	TotalRerouted       int
	TotalCostSaved      float64
	MeanCostSaved       float64
	StdDevCostSaved     float64
	BottleneckHistogram map[string]int // bottleneck interface -> admitted-step count
	UniqueBottlenecks   int
}

// Summarize computes aggregate statistics from a RunTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RunTrace) *Summary {
	summary := &Summary{
		BottleneckHistogram: make(map[string]int),
	}
	if rt == nil {
		return summary
	}

	summary.TotalDecisions = len(rt.Admissions)
	var routeCosts, headrooms []float64
	for _, a := range rt.Admissions {
		if a.Admitted {
			summary.AdmittedCount++
			routeCosts = append(routeCosts, a.TotalCost)
			headrooms = append(headrooms, a.MinHeadroom)
			summary.BottleneckHistogram[a.Bottleneck]++
		} else {
			summary.RejectedCount++
		}
	}
	if len(routeCosts) > 0 {
		summary.MeanRouteCost = stat.Mean(routeCosts, nil)
		summary.MeanMinHeadroom = stat.Mean(headrooms, nil)
	}
	summary.UniqueBottlenecks = len(summary.BottleneckHistogram)

	summary.RelaxationRounds = len(rt.Relaxations)
	var savings []float64
	for _, r := range rt.Relaxations {
		if r.Converged {
			summary.ConvergedRounds++
		}
		summary.TotalRerouted += r.Rerouted
		summary.TotalCostSaved += r.CostSaved
		savings = append(savings, r.CostSaved)
	}
	if len(savings) > 0 {
		summary.MeanCostSaved = stat.Mean(savings, nil)
		summary.StdDevCostSaved = stat.StdDev(savings, nil)
	}

	return summary
}
