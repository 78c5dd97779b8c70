package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_NilAndEmpty(t *testing.T) {
	s := Summarize(nil)
	require.NotNil(t, s)
	assert.Zero(t, s.TotalDecisions)
	assert.NotNil(t, s.BottleneckHistogram)

	s = Summarize(NewRunTrace(LevelDecisions))
	assert.Zero(t, s.TotalDecisions)
	assert.Zero(t, s.RelaxationRounds)
}

func TestSummarize_Admissions(t *testing.T) {
	rt := NewRunTrace(LevelDecisions)
	rt.RecordAdmission(AdmissionRecord{Admitted: true, TotalCost: 2, MinHeadroom: 6, Bottleneck: "I1"})
	rt.RecordAdmission(AdmissionRecord{Admitted: true, TotalCost: 4, MinHeadroom: 4, Bottleneck: "I1"})
	rt.RecordAdmission(AdmissionRecord{Admitted: true, TotalCost: 6, MinHeadroom: 2, Bottleneck: "I2"})
	rt.RecordAdmission(AdmissionRecord{Admitted: false, Reason: "no admissible route"})

	s := Summarize(rt)
	assert.Equal(t, 4, s.TotalDecisions)
	assert.Equal(t, 3, s.AdmittedCount)
	assert.Equal(t, 1, s.RejectedCount)
	assert.InDelta(t, 4.0, s.MeanRouteCost, 1e-12)
	assert.InDelta(t, 4.0, s.MeanMinHeadroom, 1e-12)
	assert.Equal(t, map[string]int{"I1": 2, "I2": 1}, s.BottleneckHistogram)
	assert.Equal(t, 2, s.UniqueBottlenecks)
}

func TestSummarize_Relaxations(t *testing.T) {
	rt := NewRunTrace(LevelDecisions)
	rt.RecordRelaxation(RelaxationRecord{Passes: 2, Converged: true, Rerouted: 1, CostSaved: 1.0})
	rt.RecordRelaxation(RelaxationRecord{Passes: 1, Converged: true, Rerouted: 0, CostSaved: 0})
	rt.RecordRelaxation(RelaxationRecord{Passes: 3, Converged: false, Rerouted: 2, CostSaved: 2.0})

	s := Summarize(rt)
	assert.Equal(t, 3, s.RelaxationRounds)
	assert.Equal(t, 2, s.ConvergedRounds)
	assert.Equal(t, 3, s.TotalRerouted)
	assert.InDelta(t, 3.0, s.TotalCostSaved, 1e-12)
	assert.InDelta(t, 1.0, s.MeanCostSaved, 1e-12)
	// sample standard deviation of {1, 0, 2}
	assert.InDelta(t, 1.0, s.StdDevCostSaved, 1e-12)
}
