package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/gantt/internal/tui/view"
)

// modalOverlay centers modal content over the board.
type modalOverlay struct {
	bg lipgloss.Color
}

// Render implements view.Overlay.
func (o modalOverlay) Render(base string, width, height int, content string) string {
	if width <= 0 || height <= 0 || content == "" {
		return base
	}
	return view.Splice(base, content, width, height, o.bg)
}
