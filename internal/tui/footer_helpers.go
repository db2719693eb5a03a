package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/gantt/internal/drag"
	"github.com/javiermolinar/gantt/internal/tui/view"
)

// statusMsgOrDefault returns the status message, the live drag range or a
// space to preserve layout.
func (m Model) statusMsgOrDefault() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	if c, ok := m.machine.Candidate(); ok {
		verb := "Selecting"
		if c.Kind != drag.KindNewSelection {
			verb = "Resizing"
		}
		label := verb + " " + view.FormatRange(c.StartDate, c.EndDate)
		if m.scroller.Running() {
			label += fmt.Sprintf("  (scrolling %s)", m.scroller.Direction())
		}
		return label
	}
	return " "
}

// statusStyle picks the footer style for the current notice.
func (m Model) statusStyle() lipgloss.Style {
	if m.statusError {
		return m.styles.StatusStyle
	}
	return m.styles.InfoStyle
}

// legendText renders one colored chip per tag.
func (m Model) legendText() string {
	tags := m.store.Tags()
	sep := m.styles.LegendStyle.Render("  ")
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		chip := m.styles.Bar(t.Color).Bar.Render("  ")
		parts = append(parts, chip+m.styles.LegendStyle.Render(" "+t.Name))
	}
	return m.styles.LegendStyle.Render(" ") + strings.Join(parts, sep)
}

// helpText returns the key hints for the current mode.
func (m Model) helpText() string {
	switch m.mode {
	case ModeRename:
		return "Enter save name · Esc cancel · empty name removes the task"
	case ModeModal:
		if m.modalType == ModalConfirmDelete {
			return "y/Enter delete · n/Esc keep"
		}
		return "Tab next field · ←/→ change tag · Enter save · Esc cancel"
	}
	if m.machine.Dragging() {
		return "Release to confirm · Esc cancel · drag to an edge to scroll"
	}
	help := "hjkl move · H/L week · t today · Enter select day · e edit · n new task · r rename · q quit"
	if m.repo != nil {
		help += " · ^S save · ^O reload"
	}
	return help
}

func (m Model) renderFooter(width int) string {
	return view.RenderFooter(width, m.styles.colorBg,
		view.FooterLine{Text: m.legendText(), Style: m.styles.LegendStyle},
		view.FooterLine{Text: m.statusMsgOrDefault(), Style: m.statusStyle()},
		view.FooterLine{Text: m.helpText(), Style: m.styles.HelpStyle},
	)
}
