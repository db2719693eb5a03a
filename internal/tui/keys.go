package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gantt/internal/drag"
	"github.com/javiermolinar/gantt/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg, m.mode)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeRename:
		return m.handleRenameKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		if m.cancelDrag() {
			return m, m.setInfo("Drag cancelled")
		}
		return m, nil

	// Navigation
	case "h", "left":
		m.moveCursor(0, -1, "left")
	case "l", "right":
		m.moveCursor(0, 1, "right")
	case "k", "up":
		m.moveCursor(-1, 0, "up")
	case "j", "down":
		m.moveCursor(1, 0, "down")
	case "H", "shift+left":
		m.moveCursor(0, -7, "week back")
	case "L", "shift+right":
		m.moveCursor(0, 7, "week forward")
	case "g", "home":
		m.cursor.Row = 0
		m.clampCursor()
	case "G", "end":
		m.cursor.Row = len(m.tasks()) - 1
		m.clampCursor()
	case "t":
		m.jumpToToday()
		LogCursorMove(m.cursor, "today")

	// Periods
	case "enter", " ":
		return m.selectCursorDay()
	case "e":
		return m.editCursorPeriod()

	// Tasks
	case "n", "ctrl+n":
		return m.startNewTask()
	case "r":
		return m.startRename()

	// Snapshots
	case "ctrl+s":
		if m.repo == nil {
			return m, m.setError(commands.ErrNoStorage)
		}
		return m, commands.SaveSnapshot(m.repo, m.store.Board())
	case "ctrl+o":
		if m.repo == nil {
			return m, m.setError(commands.ErrNoStorage)
		}
		return m, commands.LoadSnapshot(m.repo)
	}

	return m, nil
}

// moveCursor moves the cell cursor by whole rows and days.
func (m *Model) moveCursor(rows, days int, reason string) {
	if m.machine.Dragging() {
		return
	}
	m.cursor.Row += rows
	m.cursor.Day += days
	m.clampCursor()
	LogCursorMove(m.cursor, reason)
}

// selectCursorDay proposes the day under the cursor as a new period.
func (m Model) selectCursorDay() (tea.Model, tea.Cmd) {
	t, ok := m.cursorTask()
	if !ok {
		return m, nil
	}
	if p, found := m.periodAt(t, m.cursor.Day); found {
		m.openEditForm(t.ID, p, nil)
		return m, nil
	}

	res := m.machine.SelectDay(t.ID, m.cursor.Day, t.Periods)
	switch res.Outcome {
	case drag.OutcomeRejected:
		return m, m.setError(res.Err)
	case drag.OutcomeProposed:
		m.openAddForm(res.Selection)
	}
	return m, nil
}

// editCursorPeriod opens the form for the period under the cursor.
func (m Model) editCursorPeriod() (tea.Model, tea.Cmd) {
	t, ok := m.cursorTask()
	if !ok {
		return m, nil
	}
	p, found := m.periodAt(t, m.cursor.Day)
	if !found {
		return m, m.setError(errors.New("no period under the cursor"))
	}
	m.openEditForm(t.ID, p, nil)
	return m, nil
}

// handleModalKeys routes keys to the open dialog.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalPeriodForm:
		return m.handlePeriodFormKey(msg)
	case ModalConfirmDelete:
		return m.handleConfirmDeleteKey(msg)
	default:
		m.closeModal("unknown modal")
		return m, nil
	}
}
