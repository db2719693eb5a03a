package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterHeight is the number of rows below the board: legend, status, help.
const FooterHeight = 3

// FooterLine is one footer row.
type FooterLine struct {
	Text  string
	Style lipgloss.Style
}

// RenderFooter stacks lines at the bottom of a width x FooterHeight block.
// Each line is cut to fit inside its style's frame.
func RenderFooter(width int, bg lipgloss.Color, lines ...FooterLine) string {
	rows := make([]string, len(lines))
	for i, l := range lines {
		frame, _ := l.Style.GetFrameSize()
		inner := max(width-frame, 0)
		text := l.Text
		if inner > 0 {
			text = ansi.Truncate(text, inner, "")
		}
		rows[i] = l.Style.Width(inner).Render(text)
	}
	return Pin(lipgloss.JoinVertical(lipgloss.Left, rows...), width, FooterHeight, lipgloss.Bottom, bg)
}
