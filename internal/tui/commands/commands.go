// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gantt/internal/drag"
	"github.com/javiermolinar/gantt/internal/task"
)

// Notice lifetimes.
const (
	ErrorNoticeDuration = 5 * time.Second
	InfoNoticeDuration  = 3 * time.Second
)

// ErrNoStorage is returned when a snapshot command runs without a database.
var ErrNoStorage = errors.New("no snapshot database configured (use --db or storage.db_path)")

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// ScrollTickMsg is one auto-scroll step fired by the timer.
type ScrollTickMsg struct {
	Tick drag.Tick
}

// SnapshotSavedMsg is sent when the board was written to the database.
type SnapshotSavedMsg struct {
	Info task.SnapshotInfo
}

// SnapshotLoadedMsg is sent when a stored board was read back.
// Found is false when the database holds no snapshot yet.
type SnapshotLoadedMsg struct {
	Board task.Board
	Found bool
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Status returns a command that shows an info notice.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// Error returns a command that shows an error notice.
func Error(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrMsg{Err: err}
	}
}

// ClearStatusAfter schedules a ClearStatusMsg.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// ScheduleScroll fires t after interval. The receiver drops ticks that no
// longer belong to the live scroller.
func ScheduleScroll(interval time.Duration, t drag.Tick) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return ScrollTickMsg{Tick: t}
	})
}

// SaveSnapshot writes the board to repo.
func SaveSnapshot(repo task.Repository, b task.Board) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ErrMsg{Err: ErrNoStorage}
		}
		ctx := context.Background()
		if err := repo.SaveBoard(ctx, b); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving snapshot: %w", err)}
		}
		info, _, err := repo.Info(ctx)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("reading snapshot info: %w", err)}
		}
		return SnapshotSavedMsg{Info: info}
	}
}

// LoadSnapshot reads the stored board from repo.
func LoadSnapshot(repo task.Repository) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ErrMsg{Err: ErrNoStorage}
		}
		b, ok, err := repo.LoadBoard(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading snapshot: %w", err)}
		}
		return SnapshotLoadedMsg{Board: b, Found: ok}
	}
}

// CopyPeriod copies p to the system clipboard as indented JSON.
func CopyPeriod(p task.Period) tea.Cmd {
	return func() tea.Msg {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("encoding period: %w", err)}
		}
		if err := writeClipboard(string(data)); err != nil {
			return ErrMsg{Err: fmt.Errorf("copy failed: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied period " + p.ID}
	}
}
