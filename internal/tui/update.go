package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gantt/internal/dateutil"
	"github.com/javiermolinar/gantt/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.applyLayout(msg.Width, msg.Height)
		return m, nil

	case commands.ScrollTickMsg:
		return m.handleScrollTick(msg)

	case commands.SnapshotSavedMsg:
		m.changes.unsaved = 0
		return m, m.setInfo(fmt.Sprintf("Saved %d tasks at %s", msg.Info.Tasks, msg.Info.SavedAt.Local().Format("15:04:05")))

	case commands.SnapshotLoadedMsg:
		if !msg.Found {
			return m, m.setInfo("No snapshot saved yet")
		}
		m.cancelDrag()
		if m.mode != ModeNormal {
			m.modalType = ModalNone
			m.setMode(ModeNormal, "snapshot loaded")
		}
		m.store.Replace(msg.Board)
		m.clampCursor()
		return m, m.setInfo(fmt.Sprintf("Loaded %d tasks", len(msg.Board.Tasks)))

	case commands.ErrMsg:
		LogError("command", msg.Err)
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusError = true
		m.statusTime = time.Now().Add(commands.ErrorNoticeDuration)
		return m, commands.ClearStatusAfter(commands.ErrorNoticeDuration)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusError = false
		m.statusTime = time.Now().Add(commands.InfoNoticeDuration)
		return m, commands.ClearStatusAfter(commands.InfoNoticeDuration)

	case commands.ClearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusError = false
		}
		return m, nil
	}

	return m, nil
}

// setError shows err in the status line and schedules its removal.
func (m *Model) setError(err error) tea.Cmd {
	m.statusMsg = fmt.Sprintf("Error: %v", err)
	m.statusError = true
	m.statusTime = time.Now().Add(commands.ErrorNoticeDuration)
	return commands.ClearStatusAfter(commands.ErrorNoticeDuration)
}

// setInfo shows msg in the status line and schedules its removal.
func (m *Model) setInfo(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusError = false
	m.statusTime = time.Now().Add(commands.InfoNoticeDuration)
	return commands.ClearStatusAfter(commands.InfoNoticeDuration)
}

// handleScrollTick applies one auto-scroll step while a drag is live.
func (m Model) handleScrollTick(msg commands.ScrollTickMsg) (tea.Model, tea.Cmd) {
	accepted := m.scroller.Accept(msg.Tick)
	LogScrollTick(msg.Tick, accepted, m.viewport.Offset)
	if !accepted {
		return m, nil
	}
	if !m.machine.Dragging() {
		m.scroller.Stop()
		return m, nil
	}

	m.viewport.ScrollBy(msg.Tick.Dir.Delta(m.scrollCfg.Step))
	m.machine.Move(m.viewport.ToContent(m.lastX))
	return m, commands.ScheduleScroll(m.scrollCfg.Interval, msg.Tick)
}

// cancelDrag drops any live drag and its scroll loop.
func (m *Model) cancelDrag() bool {
	m.scroller.Stop()
	return m.machine.Cancel()
}

// jumpToToday moves the cursor to today's column.
func (m *Model) jumpToToday() {
	i := dateutil.DaysBetween(m.grid.First, m.today)
	m.cursor.Day = m.grid.Clamp(i)
	m.ensureCursorVisible()
}
