package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gantt/internal/debuglog"
	"github.com/javiermolinar/gantt/internal/drag"
)

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg, mode Mode) {
	if !debuglog.Enabled() {
		return
	}
	debuglog.Log("KEY_PRESS", map[string]any{
		"key":  msg.String(),
		"mode": modeString(mode),
	})
}

// LogMouse logs a mouse event. Motion without a drag is skipped to keep
// the log readable.
func LogMouse(msg tea.MouseMsg, dragging bool) {
	if !debuglog.Enabled() {
		return
	}
	if msg.Action == tea.MouseActionMotion && !dragging {
		return
	}
	debuglog.Log("MOUSE", map[string]any{
		"x":        msg.X,
		"y":        msg.Y,
		"desc":     msg.String(),
		"button":   int(msg.Button),
		"action":   int(msg.Action),
		"dragging": dragging,
	})
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if !debuglog.Enabled() || from == to {
		return
	}
	debuglog.Log("MODE_CHANGE", map[string]any{
		"from":   modeString(from),
		"to":     modeString(to),
		"reason": reason,
	})
}

// LogCursorMove logs cursor movement.
func LogCursorMove(c Cursor, reason string) {
	if !debuglog.Enabled() {
		return
	}
	debuglog.Log("CURSOR_MOVE", map[string]any{
		"row":    c.Row,
		"day":    c.Day,
		"reason": reason,
	})
}

// LogScrollTick logs an auto-scroll tick and whether it was applied.
func LogScrollTick(t drag.Tick, accepted bool, offset int) {
	if !debuglog.Enabled() {
		return
	}
	debuglog.Log("SCROLL_TICK", map[string]any{
		"dir":      t.Dir.String(),
		"seq":      t.Seq,
		"accepted": accepted,
		"offset":   offset,
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	debuglog.Error(context, err)
}

// modeString returns a string representation of a Mode.
func modeString(m Mode) string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeRename:
		return "Rename"
	case ModeModal:
		return "Modal"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}
