package practice

import (
	"time"

	"gitdojo/internal/scenario"
)

// Session tracks one learner's pass through one scenario instance. It is
// owned by the Runner for the lifetime of the run and mutated only
// through Advance; only its summary outlives the run.
type Session struct {
	ScenarioName        string
	SandboxPath         string
	Scenario            *scenario.Definition
	CurrentObjective    int
	CompletedObjectives []string
	StartTime           time.Time
	Completed           bool
}

func NewSession(name, sandboxPath string, def *scenario.Definition, start time.Time) *Session {
	return &Session{
		ScenarioName: name,
		SandboxPath:  sandboxPath,
		Scenario:     def,
		StartTime:    start,
	}
}

// Objective returns the active objective, or false when every objective
// is already done.
func (s *Session) Objective() (scenario.Objective, bool) {
	if s.CurrentObjective >= len(s.Scenario.Objectives) {
		return scenario.Objective{}, false
	}
	return s.Scenario.Objectives[s.CurrentObjective], true
}

// Advance marks the active objective complete and moves to the next one.
// It keeps the session invariants: the completed list is append-only and
// always as long as the index, the index only moves forward by one, and
// the completion flag is set exactly when the index reaches the
// objective count.
func (s *Session) Advance() {
	obj, ok := s.Objective()
	if !ok {
		return
	}
	s.CompletedObjectives = append(s.CompletedObjectives, obj.ID)
	s.CurrentObjective++
	if s.CurrentObjective >= len(s.Scenario.Objectives) {
		s.Completed = true
	}
}

func (s *Session) TotalObjectives() int {
	return len(s.Scenario.Objectives)
}
