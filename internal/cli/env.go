package cli

import (
	"context"
	"fmt"
	"os"

	"gitdojo/internal/app"
	"gitdojo/internal/progress"
	"gitdojo/internal/state"
	"gitdojo/internal/telemetry"
	"gitdojo/internal/ui"
)

// env bundles the shared services every command needs. The journal is
// optional: a broken sqlite file degrades to no journaling, never to a
// failed command.
type env struct {
	cfg     app.Config
	log     *telemetry.Logger
	console *ui.Console
	store   *progress.Store
	journal *state.SQLiteStore
}

func newEnv() (*env, func(), error) {
	cfg := app.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	log, err := telemetry.NewLogger(cfg.LogPath)
	if err != nil {
		log = telemetry.Nop()
	}

	e := &env{
		cfg:     cfg,
		log:     log,
		console: ui.NewConsole(os.Stdout),
		store:   progress.NewStore(cfg.ProgressPath(), log),
	}

	if journal, err := state.NewSQLite(cfg.JournalPath()); err != nil {
		log.Error("journal unavailable", map[string]any{"error": err.Error()})
	} else if err := journal.EnsureSchema(context.Background()); err != nil {
		log.Error("journal schema failed", map[string]any{"error": err.Error()})
		_ = journal.Close()
	} else {
		e.journal = journal
	}

	cleanup := func() {
		if e.journal != nil {
			_ = e.journal.Close()
		}
		_ = log.Close()
	}
	return e, cleanup, nil
}
