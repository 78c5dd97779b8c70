package trace

// Level controls the verbosity of decision tracing.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelDecisions captures all admission and relaxation decisions.
	LevelDecisions Level = "decisions"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:      true,
	LevelDecisions: true,
	"":             true, // empty defaults to none
}

// IsValidLevel returns true if the given level string is a recognized trace level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// RunTrace collects decision records during a floor-estimation run.
type RunTrace struct {
	Level       Level
	Admissions  []AdmissionRecord
	Relaxations []RelaxationRecord
}

// NewRunTrace creates a RunTrace ready for recording.
func NewRunTrace(level Level) *RunTrace {
	return &RunTrace{
		Level:       level,
		Admissions:  make([]AdmissionRecord, 0),
		Relaxations: make([]RelaxationRecord, 0),
	}
}

// RecordAdmission appends an admission decision record.
func (rt *RunTrace) RecordAdmission(record AdmissionRecord) {
	rt.Admissions = append(rt.Admissions, record)
}

// RecordRelaxation appends a relaxation round record.
func (rt *RunTrace) RecordRelaxation(record RelaxationRecord) {
	rt.Relaxations = append(rt.Relaxations, record)
}
