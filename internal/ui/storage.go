package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/javiermolinar/gantt/internal/dateutil"
	"github.com/javiermolinar/gantt/internal/db"
	"github.com/javiermolinar/gantt/internal/debuglog"
	"github.com/javiermolinar/gantt/internal/seed"
	"github.com/javiermolinar/gantt/internal/task"
)

// openStorage opens the snapshot database when one is configured. It
// returns a nil repository otherwise.
func (a *App) openStorage() (task.Repository, error) {
	if !a.config.HasStorage() {
		return nil, nil
	}
	repo, err := openRepo(a.config.Storage.DBPath)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func openRepo(dbPath string) (*db.SQLite, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}

// loadBoard picks the starting board: a stored snapshot first, then the
// seed file, then the embedded fixture moved onto today.
func (a *App) loadBoard(ctx context.Context, repo task.Repository) (task.Board, error) {
	if repo != nil {
		b, ok, err := repo.LoadBoard(ctx)
		if err != nil {
			return task.Board{}, fmt.Errorf("loading snapshot: %w", err)
		}
		if ok {
			debuglog.Log("BOARD_LOADED", map[string]any{"source": "snapshot", "tasks": len(b.Tasks)})
			return b, nil
		}
	}
	return a.seedBoard()
}

// seedBoard reads the configured seed file or falls back to the embedded
// fixture.
func (a *App) seedBoard() (task.Board, error) {
	if path := a.config.Storage.SeedPath; path != "" {
		b, err := seed.Load(path)
		if err != nil {
			return task.Board{}, err
		}
		debuglog.Log("BOARD_LOADED", map[string]any{"source": path, "tasks": len(b.Tasks)})
		return b, nil
	}
	return seed.DefaultFor(dateutil.Today(a.now)), nil
}

// board loads the board for a read-only command.
func (a *App) board(ctx context.Context) (task.Board, error) {
	repo, err := a.openStorage()
	if err != nil {
		return task.Board{}, err
	}
	if repo != nil {
		defer func() { _ = repo.Close() }()
	}
	return a.loadBoard(ctx, repo)
}

// findTask returns the task with the given id.
func findTask(b task.Board, id string) (task.Task, error) {
	for _, t := range b.Tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return task.Task{}, fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
