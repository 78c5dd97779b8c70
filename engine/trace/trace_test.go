package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLevel(t *testing.T) {
	assert.True(t, IsValidLevel("none"))
	assert.True(t, IsValidLevel("decisions"))
	assert.True(t, IsValidLevel(""), "empty string defaults to none")
	assert.False(t, IsValidLevel("verbose"))
	assert.False(t, IsValidLevel("Decisions"), "levels are case sensitive")
}

func TestRunTrace_Records(t *testing.T) {
	rt := NewRunTrace(LevelDecisions)
	assert.Equal(t, LevelDecisions, rt.Level)
	assert.Empty(t, rt.Admissions)
	assert.Empty(t, rt.Relaxations)

	rt.RecordAdmission(AdmissionRecord{CommitmentID: 0, Step: 0, Admitted: true, TotalCost: 1.5})
	rt.RecordAdmission(AdmissionRecord{CommitmentID: 1, Step: 1, Admitted: false, Reason: "no admissible route"})
	rt.RecordRelaxation(RelaxationRecord{Step: 1, Passes: 2, Converged: true})

	assert.Len(t, rt.Admissions, 2)
	assert.Len(t, rt.Relaxations, 1)
	assert.Equal(t, 1, rt.Admissions[1].CommitmentID)
	assert.False(t, rt.Admissions[1].Admitted)
	assert.True(t, rt.Relaxations[0].Converged)
}
