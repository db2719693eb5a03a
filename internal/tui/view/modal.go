package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles needed to render modal frames and buttons.
type ModalStyles struct {
	ModalHeaderStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalStyle             lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalBodyStyle         lipgloss.Style
}

// Button is a key hint shown in a modal footer as "[Key] Label".
type Button struct {
	Key   string
	Label string
}

func (b Button) String() string {
	return "[" + b.Key + "] " + b.Label
}

// RenderModalFrame stacks title, body and footer inside the modal box.
// Empty sections are left out.
func RenderModalFrame(title, body, footer string, styles ModalStyles) string {
	sections := []string{styles.ModalHeaderStyle.Render(styles.ModalTitleStyle.Render(title))}
	if body != "" {
		sections = append(sections, body)
	}
	if footer != "" {
		sections = append(sections, styles.ModalFooterStyle.Render(footer))
	}
	return styles.ModalStyle.Render(strings.Join(sections, "\n\n"))
}

// RenderModalButtons renders a row of buttons; the first is the default
// action. Compact rows trim the button padding to one cell so four
// buttons fit the form width.
func RenderModalButtons(styles ModalStyles, compact bool, buttons ...Button) string {
	normal, active := styles.ModalButtonStyle, styles.ModalButtonActiveStyle
	if compact {
		normal, active = normal.Padding(0, 1), active.Padding(0, 1)
	}

	parts := make([]string, len(buttons))
	for i, b := range buttons {
		style := normal
		if i == 0 {
			style = active
		}
		parts[i] = style.Render(b.String())
	}
	return strings.Join(parts, styles.ModalBodyStyle.Render(" "))
}
