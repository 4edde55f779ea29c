package state

import (
	"context"
	"time"
)

// Store journals practice runs and command usage. It is an append-only
// complement to the progress document, useful for later inspection with
// any sqlite client.
type Store interface {
	EnsureSchema(ctx context.Context) error
	StartRun(ctx context.Context, sessionID, scenarioName, mode string, start time.Time) (int64, error)
	FinishRun(ctx context.Context, runID int64, objectivesCompleted, totalObjectives int, completed bool) error
	RecordCommand(ctx context.Context, runID int64, command string) error
	GetSummary(ctx context.Context) (Summary, error)
	GetLastRun(ctx context.Context) (*LastRun, error)
	Close() error
}

type Summary struct {
	Runs       int
	Completed  int
	Objectives int
}

type LastRun struct {
	ScenarioName        string
	Mode                string
	StartTS             time.Time
	ObjectivesCompleted int
	TotalObjectives     int
	Completed           bool
}
