package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/gantt/internal/occupancy"
	"github.com/javiermolinar/gantt/internal/tui/view"
)

// Occupied days listed in the form hint before it is cut short.
const maxOccupiedHint = 6

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalPeriodForm:
		return m.renderPeriodFormModal()
	case ModalConfirmDelete:
		return m.renderConfirmDeleteModal()
	default:
		return ""
	}
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       m.styles.ModalHeaderStyle,
		ModalTitleStyle:        m.styles.ModalTitleStyle,
		ModalFooterStyle:       m.styles.ModalFooterStyle,
		ModalStyle:             m.styles.ModalStyle,
		ModalButtonStyle:       m.styles.ModalButtonStyle,
		ModalButtonActiveStyle: m.styles.ModalButtonActiveStyle,
		ModalBodyStyle:         m.styles.ModalBodyStyle,
	}
}

func (m Model) periodFormStyles() view.PeriodFormStyles {
	return view.PeriodFormStyles{
		TagStyle:          m.styles.ModalTagStyle,
		BodyStyle:         m.styles.ModalBodyStyle,
		SectionTitleStyle: m.styles.ModalSectionTitleStyle,
		LabelStyle:        m.styles.ModalLabelStyle,
		TagInactive:       m.styles.TagInactiveStyle,
		HintStyle:         m.styles.ModalHintStyle,
		ErrorStyle:        m.styles.ModalErrorStyle,
	}
}

func (m Model) inputStyle(focused bool) lipgloss.Style {
	if focused {
		return m.styles.ModalInputFocusedStyle
	}
	return m.styles.ModalInputStyle
}

// renderPeriodFormModal renders the add/edit period form.
func (m Model) renderPeriodFormModal() string {
	f := m.form
	t, _ := m.store.Task(f.taskID)

	tags := m.store.Tags()
	chips := make([]view.TagChip, 0, len(tags))
	for _, tag := range tags {
		chips = append(chips, view.TagChip{Label: tag.Name, Style: m.styles.TagChipStyle(tag.Color)})
	}

	dateStyle := func(focused bool) lipgloss.Style {
		return m.inputStyle(focused).Width(14)
	}

	model := view.PeriodFormModel{
		TaskName:   nameOrUntitled(t.Name),
		RangeLabel: view.FormatRange(f.start.Value(), f.end.Value()),
		StartValue: f.start.View(),
		EndValue:   f.end.View(),
		NoteValue:  f.note.View(),
		StartStyle: dateStyle(f.focus == fieldStart),
		EndStyle:   dateStyle(f.focus == fieldEnd),
		NoteStyle:  m.inputStyle(f.focus == fieldNote),
		Tags:       chips,
		ActiveTag:  f.tag,
		TagFocused: f.focus == fieldTag,
		Occupied:   occupiedHint(occupancy.OccupiedDates(t.Periods, f.periodID)),
		Error:      f.err,
	}

	title := "New Period"
	if f.editing() {
		title = "Edit Period"
	}
	body := view.RenderPeriodFormBody(model, m.periodFormStyles())
	footer := view.PeriodFormFooter(f.editing(), m.modalStyles())
	return view.RenderModalFrame(title, body, footer, m.modalStyles())
}

// occupiedHint lists taken days compactly.
func occupiedHint(dates []string) string {
	if len(dates) == 0 {
		return ""
	}
	shown := dates
	if len(shown) > maxOccupiedHint {
		shown = shown[:maxOccupiedHint]
	}
	hint := strings.Join(shown, ", ")
	if extra := len(dates) - len(shown); extra > 0 {
		hint += ", +" + view.FormatDays(extra)
	}
	return hint
}

// renderConfirmDeleteModal renders the delete confirmation modal.
func (m Model) renderConfirmDeleteModal() string {
	var target view.DeleteTarget
	if p, taskID, ok := m.store.PeriodByID(m.form.periodID); ok {
		t, _ := m.store.Task(taskID)
		target = view.DeleteTarget{
			Task:  nameOrUntitled(t.Name),
			Note:  p.Note,
			Range: view.FormatRange(p.StartDate, p.EndDate),
		}
	}
	body := view.RenderDeleteBody(target, m.styles.ModalBodyStyle)
	footer := view.ConfirmDeleteFooter(m.modalStyles())
	return view.RenderModalFrame("Delete Period", body, footer, m.modalStyles())
}
