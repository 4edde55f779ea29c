package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config controls runtime behavior for the CLI.
type Config struct {
	DataDir       string
	AssetsDir     string
	LogPath       string
	PollInterval time.Duration

	// KeepSandboxes leaves completed practice sandboxes on disk.
	KeepSandboxes bool
	SandboxRoot   string
}

func DefaultConfig() Config {
	return Config{
		PollInterval:  2 * time.Second,
		KeepSandboxes: true,
	}
}

// Validate fills derived paths and rejects inconsistent values. All
// state files hang off DataDir; all read-only content off AssetsDir.
func (c *Config) Validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("invalid poll interval %v", c.PollInterval)
	}

	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.New("cannot resolve user home directory")
		}
		c.DataDir = filepath.Join(home, ".local", "share", "gitdojo")
	}
	if c.AssetsDir == "" {
		c.AssetsDir = defaultAssetsDir()
	}
	if c.LogPath == "" {
		c.LogPath = filepath.Join(c.DataDir, "gitdojo.log")
	}
	if c.SandboxRoot == "" {
		c.SandboxRoot = filepath.Join(os.TempDir(), "gitdojo", "practice")
	}

	return nil
}

func (c Config) ProgressPath() string {
	return filepath.Join(c.DataDir, "progress.json")
}

func (c Config) JournalPath() string {
	return filepath.Join(c.DataDir, "journal.db")
}

func (c Config) ScenariosDir() string {
	return filepath.Join(c.AssetsDir, "practice")
}

func (c Config) CheatSheetPath() string {
	return filepath.Join(c.AssetsDir, "cheatsheet.yml")
}

func (c Config) LessonsDir() string {
	return filepath.Join(c.AssetsDir, "lessons")
}

// defaultAssetsDir prefers assets next to the executable, then the
// working directory, so both installed and source-tree runs work.
func defaultAssetsDir() string {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "assets")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return filepath.Join(".", "assets")
}
