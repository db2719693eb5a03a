package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Output colors. fatih/color turns them off when stdout is not a terminal.
var (
	colorHeader   = color.New(color.Bold)
	colorOK       = color.New(color.FgGreen)
	colorConflict = color.New(color.FgRed, color.Bold)
	colorMuted    = color.New(color.FgWhite, color.Faint)
)

const fallbackWidth = 80

// termWidth is the width of stdout, or fallbackWidth when it is not a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}

// DisableColor turns colored output off, as --no-color does.
func DisableColor() { color.NoColor = true }

// EnableColor turns colored output back on.
func EnableColor() { color.NoColor = false }

// tagColor returns a 24-bit color for a "#RRGGBB" tag color. Other values
// print unstyled.
func tagColor(hex string) *color.Color {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return color.New(color.Reset)
	}
	return color.RGB(r, g, b)
}

func parseHex(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

// formatTag renders a tag chip in the tag's own color.
func formatTag(name, hex string) string {
	return tagColor(hex).Sprint("● " + name)
}

func formatHeader(s string) string   { return colorHeader.Sprint(s) }
func formatOK(s string) string       { return colorOK.Sprint(s) }
func formatConflict(s string) string { return colorConflict.Sprint(s) }
func formatMuted(s string) string    { return colorMuted.Sprint(s) }
