package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Fill pads every line of block to width and the block to height rows,
// painting the added cells with bg. Lines wider than width are left as is.
func Fill(block string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return block
	}
	pad := lipgloss.NewStyle().Background(bg)
	rows := strings.Split(block, "\n")
	out := make([]string, height)
	for i := range out {
		var row string
		if i < len(rows) {
			row = rows[i]
		}
		if gap := width - lipgloss.Width(row); gap > 0 {
			row += pad.Render(strings.Repeat(" ", gap))
		}
		out[i] = row
	}
	return strings.Join(out, "\n")
}

// Pin places block inside a width x height area aligned vertically by
// pos, filling the rest with bg.
func Pin(block string, width, height int, pos lipgloss.Position, bg lipgloss.Color) string {
	placed := lipgloss.Place(width, height, lipgloss.Left, pos, block,
		lipgloss.WithWhitespaceBackground(bg))
	return Fill(placed, width, height, bg)
}

// Splice draws box centred over base, a width x height screen. Box rows
// are clipped or padded to a common width and keep bg after any style
// reset inside them, so the box never shows holes.
func Splice(base, box string, width, height int, bg lipgloss.Color) string {
	boxRows := strings.Split(box, "\n")
	boxW := 0
	for _, r := range boxRows {
		boxW = max(boxW, lipgloss.Width(r))
	}
	if boxW == 0 {
		return base
	}
	boxW = min(boxW, width)

	top := max((height-len(boxRows))/2, 0)
	left := max((width-boxW)/2, 0)

	screen := strings.Split(Fill(base, width, height, ""), "\n")
	for i, r := range boxRows {
		row := top + i
		if row >= len(screen) {
			break
		}
		line := screen[row]
		screen[row] = ansi.Cut(line, 0, left) + boxRow(r, boxW, bg) + ansi.Cut(line, left+boxW, width)
	}
	return strings.Join(screen, "\n")
}

func boxRow(r string, w int, bg lipgloss.Color) string {
	switch rw := lipgloss.Width(r); {
	case rw > w:
		r = ansi.Cut(r, 0, w)
	case rw < w:
		r += lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", w-rw))
	}
	return keepBackground(r, bg) + ansi.ResetStyle
}

// keepBackground re-applies bg after every reset sequence in s.
func keepBackground(s string, bg lipgloss.Color) string {
	if bg == "" {
		return s
	}
	seq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
	for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
		s = strings.ReplaceAll(s, reset, reset+seq)
	}
	return s
}
