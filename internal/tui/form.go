package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gantt/internal/dateutil"
	"github.com/javiermolinar/gantt/internal/occupancy"
	"github.com/javiermolinar/gantt/internal/task"
	"github.com/javiermolinar/gantt/internal/tui/commands"
	"github.com/javiermolinar/gantt/internal/tui/view"
)

// formField identifies the focused field of the period form.
type formField int

const (
	fieldStart formField = iota
	fieldEnd
	fieldTag
	fieldNote
	fieldCount
)

// periodForm is the add/edit period dialog state.
type periodForm struct {
	taskID   string
	periodID string // empty when adding

	start textinput.Model
	end   textinput.Model
	note  textinput.Model
	tag   int
	focus formField
	err   string
}

func newDateInput(styles *Styles) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 12
	ti.Prompt = ""
	applyModalInputStyles(&ti, styles)
	return ti
}

func newPeriodForm(styles *Styles) periodForm {
	note := textinput.New()
	note.Placeholder = "What happens in this period?"
	note.CharLimit = 200
	note.Width = 44
	note.Prompt = ""
	applyModalInputStyles(&note, styles)

	return periodForm{
		start: newDateInput(styles),
		end:   newDateInput(styles),
		note:  note,
	}
}

func applyModalInputStyles(ti *textinput.Model, styles *Styles) {
	ti.TextStyle = styles.ModalInputTextStyle
	ti.PlaceholderStyle = styles.ModalPlaceholderStyle
	ti.Cursor.Style = styles.ModalInputCursorStyle
	ti.Cursor.TextStyle = styles.ModalInputTextStyle
}

func (f periodForm) editing() bool {
	return f.periodID != ""
}

// input collects the form into a period payload. tags supplies the tag ID
// for the selected chip.
func (f periodForm) input(tags []task.Tag) task.PeriodInput {
	in := task.PeriodInput{
		StartDate: f.start.Value(),
		EndDate:   f.end.Value(),
		Note:      f.note.Value(),
	}
	if f.tag >= 0 && f.tag < len(tags) {
		in.TagID = tags[f.tag].ID
	}
	return in.Normalized()
}

func (f *periodForm) setFocus(field formField) {
	f.focus = (field + fieldCount) % fieldCount
	f.start.Blur()
	f.end.Blur()
	f.note.Blur()
	switch f.focus {
	case fieldStart:
		f.start.Focus()
	case fieldEnd:
		f.end.Focus()
	case fieldNote:
		f.note.Focus()
	}
}

// openAddForm opens the period form for a fresh selection.
func (m *Model) openAddForm(sel task.Selection) {
	m.store.SetSelection(&sel)

	f := newPeriodForm(m.styles)
	f.taskID = sel.TaskID
	f.start.SetValue(sel.StartDate)
	f.end.SetValue(sel.EndDate)
	f.setFocus(fieldNote)
	m.form = f

	m.modalType = ModalPeriodForm
	m.setMode(ModeModal, "open add form")
}

// openEditForm opens the period form for an existing period. When sel is
// not nil its dates replace the stored ones, as after a resize.
func (m *Model) openEditForm(taskID string, p task.Period, sel *task.Selection) {
	start, end := p.StartDate, p.EndDate
	if sel != nil {
		start, end = sel.StartDate, sel.EndDate
	}
	m.store.SetSelection(&task.Selection{TaskID: taskID, StartDate: start, EndDate: end, PeriodID: p.ID})

	f := newPeriodForm(m.styles)
	f.taskID = taskID
	f.periodID = p.ID
	f.start.SetValue(start)
	f.end.SetValue(end)
	f.note.SetValue(p.Note)
	f.tag = m.tagIndex(p.TagID)
	f.setFocus(fieldNote)
	m.form = f

	m.modalType = ModalPeriodForm
	m.setMode(ModeModal, "open edit form")
}

// closeModal dismisses any dialog and drops the selection.
func (m *Model) closeModal(reason string) {
	m.store.ClearSelection()
	m.modalType = ModalNone
	m.form = newPeriodForm(m.styles)
	m.setMode(ModeNormal, reason)
}

// tagIndex returns the chip index of tag id, or -1 when no tag matches.
func (m Model) tagIndex(id string) int {
	for i, t := range m.store.Tags() {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// handlePeriodFormKey handles keys in the add/edit period dialog.
func (m Model) handlePeriodFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal("cancel form")
		return m, nil
	case "enter":
		return m.submitPeriodForm()
	case "tab", "down":
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.form.setFocus(m.form.focus - 1)
		return m, nil
	case "ctrl+d":
		if m.form.editing() {
			m.modalType = ModalConfirmDelete
		}
		return m, nil
	case "ctrl+y":
		if !m.form.editing() {
			return m, nil
		}
		p, _, ok := m.store.PeriodByID(m.form.periodID)
		if !ok {
			return m, nil
		}
		return m, commands.CopyPeriod(p)
	}

	if m.form.focus == fieldTag {
		n := len(m.store.Tags())
		if n == 0 {
			return m, nil
		}
		switch msg.String() {
		case "left", "h":
			if m.form.tag < 0 {
				m.form.tag = n
			}
			m.form.tag = (m.form.tag - 1 + n) % n
		case "right", "l", " ":
			m.form.tag = (m.form.tag + 1) % n
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case fieldStart:
		m.form.start, cmd = m.form.start.Update(msg)
		m.syncSelection()
	case fieldEnd:
		m.form.end, cmd = m.form.end.Update(msg)
		m.syncSelection()
	case fieldNote:
		m.form.note, cmd = m.form.note.Update(msg)
	}
	return m, cmd
}

// syncSelection mirrors valid typed dates onto the board highlight.
func (m *Model) syncSelection() {
	start := strings.TrimSpace(m.form.start.Value())
	end := strings.TrimSpace(m.form.end.Value())
	if _, err := dateutil.NewDateRange(start, end); err != nil {
		return
	}
	m.store.UpdateSelection(start, end, "")
}

// submitPeriodForm validates and commits the form.
func (m Model) submitPeriodForm() (tea.Model, tea.Cmd) {
	in := m.form.input(m.store.Tags())
	if err := in.Validate(); err != nil {
		m.form.err = formErrorText(err)
		return m, m.setError(err)
	}

	t, ok := m.store.Task(m.form.taskID)
	if !ok {
		m.closeModal("task vanished")
		return m, m.setError(task.ErrTaskNotFound)
	}
	if occupancy.HasOverlap(in.Range(), t.Periods, m.form.periodID) {
		m.form.err = formErrorText(task.ErrPeriodOverlap)
		return m, m.setError(task.ErrPeriodOverlap)
	}

	var notice string
	if m.form.editing() {
		if err := m.store.UpdatePeriod(m.form.periodID, in); err != nil {
			m.form.err = formErrorText(err)
			return m, m.setError(err)
		}
		notice = "Period updated"
	} else {
		if _, err := m.store.AddPeriod(m.form.taskID, in); err != nil {
			m.form.err = formErrorText(err)
			return m, m.setError(err)
		}
		notice = "Period added"
	}

	m.closeModal("form saved")
	return m, m.setInfo(fmt.Sprintf("%s: %s", notice, view.FormatRange(in.StartDate, in.EndDate)))
}

// handleConfirmDeleteKey handles keys in the delete confirmation dialog.
func (m Model) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		if err := m.store.DeletePeriod(m.form.periodID); err != nil {
			m.closeModal("delete failed")
			return m, m.setError(err)
		}
		m.closeModal("period deleted")
		return m, m.setInfo("Period deleted")
	case "n", "N", "esc":
		m.modalType = ModalPeriodForm
		return m, nil
	}
	return m, nil
}

func formErrorText(err error) string {
	switch {
	case errors.Is(err, task.ErrPeriodOverlap):
		return "These dates overlap another period of this task"
	default:
		return err.Error()
	}
}
