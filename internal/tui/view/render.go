// Package view holds the pure rendering pieces of the board screen.
package view

import "fmt"

// Overlay draws modal content over a finished screen.
type Overlay interface {
	Render(base string, width, height int, content string) string
}

// Frame describes one screen: the terminal size, the smallest size the
// board fits in, the board renderer and an optional modal.
type Frame struct {
	Width     int
	Height    int
	MinWidth  int
	MinHeight int

	Board   func() string
	Modal   string // empty when no modal is open
	Overlay Overlay
}

// Render composes the frame. Before the first resize it shows a startup
// line; below the minimum size it shows what is missing instead of a
// clipped board.
func Render(f Frame) string {
	if f.Width == 0 || f.Height == 0 {
		return "Starting gantt..."
	}
	if f.Width < f.MinWidth || f.Height < f.MinHeight {
		return TooSmall(f.Width, f.Height, f.MinWidth, f.MinHeight)
	}

	base := ""
	if f.Board != nil {
		base = f.Board()
	}
	if f.Modal != "" && f.Overlay != nil {
		return f.Overlay.Render(base, f.Width, f.Height, f.Modal)
	}
	return base
}

// TooSmall is the notice shown when the terminal cannot fit the board.
func TooSmall(width, height, minWidth, minHeight int) string {
	return fmt.Sprintf("Terminal too small: %dx%d, need at least %dx%d", width, height, minWidth, minHeight)
}
