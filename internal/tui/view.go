package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/gantt/internal/tui/view"
)

// Smallest terminal the board renders in.
const (
	minWidth  = 40
	minHeight = rowsTop + view.FooterHeight + 1
)

// View renders the TUI.
func (m Model) View() string {
	modal := ""
	if m.mode == ModeModal && m.modalType != ModalNone {
		modal = m.renderModal()
	}

	return view.Render(view.Frame{
		Width:     m.width,
		Height:    m.height,
		MinWidth:  minWidth,
		MinHeight: minHeight,
		Board:     m.renderAppContent,
		Modal:     modal,
		Overlay:   modalOverlay{bg: m.styles.ModalBgColor},
	})
}

func (m Model) renderAppContent() string {
	layout := m.layout

	lines := make([]string, 0, layout.InnerH)
	lines = append(lines, m.renderTitle())
	lines = append(lines, m.renderHeader()...)
	lines = append(lines, m.renderRows()...)

	grid := view.Fill(strings.Join(lines, "\n"), layout.InnerW, layout.InnerH-layout.FooterH, m.styles.colorBg)
	footer := m.renderFooter(layout.InnerW)

	content := lipgloss.JoinVertical(lipgloss.Left, grid, footer)
	app := m.styles.AppStyle.Render(content)
	return view.Fill(app, m.width, m.height, m.styles.colorBg)
}
