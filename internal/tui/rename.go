package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gantt/internal/task"
)

// startNewTask appends an empty task and opens its name editor.
func (m Model) startNewTask() (tea.Model, tea.Cmd) {
	if m.machine.Dragging() {
		return m, nil
	}
	id := m.store.AddTask("")
	m.cursor.Row = len(m.tasks()) - 1
	m.clampCursor()
	return m.beginRename(id, "", true)
}

// startRename opens the name editor on the cursor row.
func (m Model) startRename() (tea.Model, tea.Cmd) {
	t, ok := m.cursorTask()
	if !ok || m.machine.Dragging() {
		return m, nil
	}
	return m.beginRename(t.ID, t.Name, false)
}

func (m Model) beginRename(id, name string, created bool) (tea.Model, tea.Cmd) {
	m.cancelDrag()
	m.renameTaskID = id
	m.renameWasEmpty = created || task.NormalizeName(name) == ""
	m.nameInput.SetValue(name)
	m.nameInput.CursorEnd()
	m.nameInput.Width = max(m.layout.NameW-2, 1)
	cmd := m.nameInput.Focus()
	m.store.SetEditingTaskID(id)
	m.setMode(ModeRename, "rename task")
	return m, cmd
}

// handleRenameKeys handles keys in the inline name editor.
func (m Model) handleRenameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.commitRename()
	case "esc":
		return m.cancelRename()
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// commitRename stores the typed name. An empty name removes the task.
func (m Model) commitRename() (tea.Model, tea.Cmd) {
	id := m.renameTaskID
	removed := task.NormalizeName(m.nameInput.Value()) == ""
	err := m.store.RenameTask(id, m.nameInput.Value())
	m.endRename("rename committed")

	if err != nil {
		return m, m.setError(err)
	}
	if removed {
		return m, m.setInfo("Task removed")
	}
	return m, nil
}

// cancelRename discards the typed name. A task created for this edit, or
// one that had no name to fall back to, is removed.
func (m Model) cancelRename() (tea.Model, tea.Cmd) {
	var err error
	if m.renameWasEmpty {
		err = m.store.DeleteTask(m.renameTaskID)
	}
	m.endRename("rename cancelled")

	if err != nil {
		return m, m.setError(err)
	}
	return m, nil
}

func (m *Model) endRename(reason string) {
	m.nameInput.Blur()
	m.nameInput.SetValue("")
	m.renameTaskID = ""
	m.renameWasEmpty = false
	m.store.SetEditingTaskID("")
	m.setMode(ModeNormal, reason)
	m.clampCursor()
}
