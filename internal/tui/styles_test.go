package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/gantt/internal/tui/theme"
)

func testTheme() *theme.Theme {
	return &theme.Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Today:       "#ffff00",
		Weekend:     "#080808",
		Preview:     "#00ffff",
		Conflict:    "#ff00ff",
		Warning:     "#ff8800",
		Success:     "#00ff00",
	}
}

func assertBg(t *testing.T, name string, style lipgloss.Style, want string) {
	t.Helper()
	bg, ok := style.GetBackground().(lipgloss.Color)
	if !ok {
		t.Fatalf("%s background type = %T, want lipgloss.Color", name, style.GetBackground())
	}
	if bg != lipgloss.Color(want) {
		t.Fatalf("%s background = %q, want %q", name, bg, want)
	}
}

func TestStylesBackgroundCoverage(t *testing.T) {
	palette := testTheme()
	styles := NewStyles(palette)

	assertBg(t, "EmptyCellStyle", styles.EmptyCellStyle, palette.Bg)
	assertBg(t, "NameStyle", styles.NameStyle, palette.Bg)
	assertBg(t, "NameSeparator", styles.NameSeparator, palette.Bg)
	assertBg(t, "DayStyle", styles.DayStyle, palette.Bg)
	assertBg(t, "StatusStyle", styles.StatusStyle, palette.Bg)
	assertBg(t, "HelpStyle", styles.HelpStyle, palette.Bg)
	assertBg(t, "AppStyle", styles.AppStyle, palette.Bg)
	assertBg(t, "WeekendCellStyle", styles.WeekendCellStyle, palette.Weekend)
	assertBg(t, "DayTodayStyle", styles.DayTodayStyle, palette.Today)
}

func TestCursorStyleContrast(t *testing.T) {
	palette := testTheme()
	styles := NewStyles(palette)

	assertBg(t, "CursorCellStyle", styles.CursorCellStyle, palette.BgSelection)

	fg, ok := styles.CursorCellStyle.GetForeground().(lipgloss.Color)
	if !ok {
		t.Fatalf("CursorCellStyle foreground type = %T, want lipgloss.Color", styles.CursorCellStyle.GetForeground())
	}
	if fg != lipgloss.Color(palette.Accent) {
		t.Fatalf("CursorCellStyle foreground = %q, want %q", fg, palette.Accent)
	}
}

func TestPreviewAndConflictDiffer(t *testing.T) {
	styles := NewStyles(testTheme())

	preview := styles.PreviewStyle.GetBackground()
	conflict := styles.ConflictStyle.GetBackground()
	if preview == conflict {
		t.Fatalf("preview and conflict share background %v", preview)
	}
}

func TestBarStylesFollowTagColor(t *testing.T) {
	palette := testTheme()
	styles := NewStyles(palette)
	derived := theme.NewPalette(palette)

	bar := styles.Bar("#3B82F6")
	shades := derived.Bar("#3B82F6")
	assertBg(t, "Bar", bar.Bar, string(shades.Bg))
	assertBg(t, "Focused", bar.Focused, string(shades.BgAlt))
	assertBg(t, "Past", bar.Past, string(shades.BgPast))

	other := styles.Bar("#EF4444")
	if other.Bar.GetBackground() == bar.Bar.GetBackground() {
		t.Fatal("different tags should not share a bar color")
	}
}
