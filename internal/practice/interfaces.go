package practice

import (
	"context"
	"time"

	"gitdojo/internal/scenario"
)

// ScenarioSource provides scenario definitions. A missing or malformed
// scenario is a nil definition, never an error.
type ScenarioSource interface {
	LoadScenario(name string) *scenario.Definition
	ListScenarioNames() []string
}

// ObjectiveJudge evaluates the active objective of a session without
// mutating it.
type ObjectiveJudge interface {
	Evaluate(session *Session) Result
}

// AttemptRecorder receives attempt summaries for cumulative progress
// tracking. Implementations are best-effort; the runner ignores their
// persistence outcome.
type AttemptRecorder interface {
	StartAttempt(scenarioName string)
	CompleteAttempt(scenarioName string, objectivesCompleted, totalObjectives int, completed bool, hintsUsed []string)
}

// RunJournal is an optional detailed log of practice runs and the git
// commands issued during them.
type RunJournal interface {
	StartRun(ctx context.Context, sessionID, scenarioName, mode string, start time.Time) (int64, error)
	RecordCommand(ctx context.Context, runID int64, command string) error
	FinishRun(ctx context.Context, runID int64, objectivesCompleted, totalObjectives int, completed bool) error
}

// Presenter renders session data for the learner. The runner produces
// data and plain strings only; all formatting lives behind this
// interface.
type Presenter interface {
	ShowIntro(def *scenario.Definition)
	ShowSandbox(path string)
	ShowObjective(session *Session)
	ShowResult(res Result)
	ShowObjectiveList(session *Session)
	ShowSummary(session *Session)
	ShowInfo(msg string)
	ShowError(msg string)
}
