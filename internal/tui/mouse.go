package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gantt/internal/drag"
	"github.com/javiermolinar/gantt/internal/task"
	"github.com/javiermolinar/gantt/internal/tui/commands"
)

// Columns scrolled per horizontal wheel notch.
const wheelStep = 4

// handleMouseMsg handles pointer input.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	LogMouse(msg, m.machine.Dragging())

	if m.mode != ModeNormal {
		return m, nil
	}

	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if msg.Shift {
				m.viewport.ScrollBy(-wheelStep)
			} else {
				m.scrollRows(-1)
			}
			return m, nil
		case tea.MouseButtonWheelDown:
			if msg.Shift {
				m.viewport.ScrollBy(wheelStep)
			} else {
				m.scrollRows(1)
			}
			return m, nil
		case tea.MouseButtonWheelLeft:
			m.viewport.ScrollBy(-wheelStep)
			return m, nil
		case tea.MouseButtonWheelRight:
			m.viewport.ScrollBy(wheelStep)
			return m, nil
		}
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return m.pointerDown(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		return m.pointerMove(msg.X)
	case tea.MouseActionRelease:
		return m.pointerUp(msg.X)
	}
	return m, nil
}

// scrollRows scrolls the task list without moving the cursor off screen.
func (m *Model) scrollRows(delta int) {
	maxOffset := max(len(m.tasks())-m.layout.RowsH, 0)
	m.rowOffset = min(max(m.rowOffset+delta, 0), maxOffset)
	if m.cursor.Row < m.rowOffset {
		m.cursor.Row = m.rowOffset
	}
	if m.layout.RowsH > 0 && m.cursor.Row >= m.rowOffset+m.layout.RowsH {
		m.cursor.Row = m.rowOffset + m.layout.RowsH - 1
	}
}

// pointerDown starts a gesture on the timeline. A press on a bar handle
// begins a resize, a press on a bar body opens it for editing and a
// press on an empty cell begins a new selection.
func (m Model) pointerDown(x, y int) (tea.Model, tea.Cmd) {
	// A press always starts from a clean slate.
	m.cancelDrag()

	row, ok := m.rowAt(y)
	if !ok {
		return m, nil
	}
	tasks := m.tasks()
	t := tasks[row]

	if !m.inTimeline(x) {
		m.cursor.Row = row
		m.clampCursor()
		if x < m.layout.NameW {
			return m.beginRename(t.ID, t.Name, false)
		}
		return m, nil
	}

	vx := m.viewportX(x)
	cx := m.viewport.ToContent(vx)
	m.lastX = vx
	m.cursor = Cursor{Row: row, Day: m.grid.IndexAt(cx)}
	LogCursorMove(m.cursor, "click")

	p, zone := m.hitTest(t, cx)
	switch zone {
	case drag.ZoneBody:
		m.openEditForm(t.ID, p, nil)
		return m, nil
	case drag.ZoneStartHandle, drag.ZoneEndHandle:
		if _, err := m.machine.BeginResize(t.ID, p, zone, cx); err != nil {
			return m, m.setError(err)
		}
		return m, nil
	}

	if _, err := m.machine.BeginSelection(t.ID, cx); err != nil {
		return m, m.setError(err)
	}
	return m, nil
}

// hitTest finds the period of t under content column cx.
func (m Model) hitTest(t task.Task, cx int) (task.Period, drag.Zone) {
	for _, p := range t.Periods {
		start, end, ok := m.grid.Span(p)
		if !ok || !m.grid.Visible(start, end) {
			continue
		}
		if zone := m.grid.HitTest(cx, start, end); zone != drag.ZoneNone {
			return p, zone
		}
	}
	return task.Period{}, drag.ZoneNone
}

// pointerMove extends the live drag and drives edge auto-scroll.
func (m Model) pointerMove(x int) (tea.Model, tea.Cmd) {
	if !m.machine.Dragging() {
		return m, nil
	}
	m.lastX = m.viewportX(x)
	m.machine.Move(m.viewport.ToContent(m.lastX))

	left := m.layout.TimelineLeft
	dir := m.scrollCfg.Zone(x, left, left+m.layout.TimelineW)
	if tick, start := m.scroller.Update(dir); start {
		return m, commands.ScheduleScroll(m.scrollCfg.Interval, tick)
	}
	return m, nil
}

// pointerUp ends the drag and hands the interval to the period form.
func (m Model) pointerUp(x int) (tea.Model, tea.Cmd) {
	m.scroller.Stop()
	c, ok := m.machine.Candidate()
	if !ok {
		return m, nil
	}
	m.lastX = m.viewportX(x)
	m.machine.Move(m.viewport.ToContent(m.lastX))

	t, found := m.store.Task(c.TaskID)
	if !found {
		m.machine.Cancel()
		return m, m.setError(task.ErrTaskNotFound)
	}

	res := m.machine.Release(t.Periods)
	switch res.Outcome {
	case drag.OutcomeRejected:
		return m, m.setError(res.Err)
	case drag.OutcomeProposed:
		if res.Kind == drag.KindNewSelection {
			m.openAddForm(res.Selection)
			return m, nil
		}
		p, ok := t.Period(res.Selection.PeriodID)
		if !ok {
			return m, m.setError(task.ErrPeriodNotFound)
		}
		sel := res.Selection
		m.openEditForm(t.ID, p, &sel)
		if res.Overlaps {
			m.form.err = formErrorText(task.ErrPeriodOverlap)
		}
	}
	return m, nil
}
