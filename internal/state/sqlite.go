package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const timeLayout = time.RFC3339

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS practice_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			scenario TEXT NOT NULL,
			mode TEXT NOT NULL DEFAULT 'interactive',
			start_ts TEXT NOT NULL,
			objectives_done INTEGER NOT NULL DEFAULT 0,
			total_objectives INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS command_usage (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL,
			command TEXT NOT NULL,
			used_ts TEXT NOT NULL DEFAULT (datetime('now')),
			FOREIGN KEY(run_id) REFERENCES practice_runs(id)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) StartRun(ctx context.Context, sessionID, scenarioName, mode string, start time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO practice_runs(session_id, scenario, mode, start_ts) VALUES(?,?,?,?)`,
		sessionID,
		scenarioName,
		strings.TrimSpace(mode),
		start.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *SQLiteStore) FinishRun(ctx context.Context, runID int64, objectivesCompleted, totalObjectives int, completed bool) error {
	completedInt := 0
	if completed {
		completedInt = 1
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE practice_runs SET objectives_done = ?, total_objectives = ?, completed = ? WHERE id = ?`,
		objectivesCompleted,
		totalObjectives,
		completedInt,
		runID,
	)
	return err
}

func (s *SQLiteStore) RecordCommand(ctx context.Context, runID int64, command string) error {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO command_usage(run_id, command) VALUES(?, ?)`,
		runID,
		command,
	)
	return err
}

func (s *SQLiteStore) GetSummary(ctx context.Context) (Summary, error) {
	var out Summary
	row := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) as runs,
			COALESCE(SUM(completed),0) as completed,
			COALESCE(SUM(objectives_done),0) as objectives
		FROM practice_runs
	`)
	if err := row.Scan(&out.Runs, &out.Completed, &out.Objectives); err != nil {
		return Summary{}, err
	}
	return out, nil
}

func (s *SQLiteStore) GetLastRun(ctx context.Context) (*LastRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT scenario, mode, start_ts, objectives_done, total_objectives, completed
		FROM practice_runs
		ORDER BY id DESC
		LIMIT 1
	`)
	var (
		scenarioName string
		mode         string
		startTSRaw   string
		done         int
		total        int
		completed    int
	)
	if err := row.Scan(&scenarioName, &mode, &startTSRaw, &done, &total, &completed); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	out := &LastRun{
		ScenarioName:        scenarioName,
		Mode:                mode,
		ObjectivesCompleted: done,
		TotalObjectives:     total,
		Completed:           completed == 1,
	}
	if t, err := time.Parse(timeLayout, startTSRaw); err == nil {
		out.StartTS = t
	}
	return out, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
