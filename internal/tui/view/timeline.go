package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Span is a run of text rendered with a single style.
type Span struct {
	Text  string
	Style lipgloss.Style
}

// RenderSpans renders spans left to right.
func RenderSpans(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Style.Render(s.Text))
	}
	return b.String()
}

// TimelineDay describes one column of the timeline header.
type TimelineDay struct {
	Date    time.Time
	Today   bool
	Weekend bool
}

// TimelineHeaderStyles groups the header styles.
type TimelineHeaderStyles struct {
	Month   lipgloss.Style
	Day     lipgloss.Style
	Weekend lipgloss.Style
	Today   lipgloss.Style
}

// RenderTimelineHeader renders the month line and the day line for days.
// Each day is dayWidth columns wide; both lines span the full content width.
func RenderTimelineHeader(days []TimelineDay, dayWidth int, styles TimelineHeaderStyles) (month, day string) {
	return styles.Month.Render(MonthLine(days, dayWidth)), RenderSpans(daySpans(days, dayWidth, styles))
}

// MonthLine lays out month labels at the first visible day and at every
// first of the month. A label is cut where the next one starts.
func MonthLine(days []TimelineDay, dayWidth int) string {
	width := len(days) * dayWidth
	line := []rune(strings.Repeat(" ", width))

	starts := make([]int, 0, 3)
	for i, d := range days {
		if i == 0 || d.Date.Day() == 1 {
			starts = append(starts, i)
		}
	}
	for n, i := range starts {
		limit := width
		if n+1 < len(starts) {
			limit = starts[n+1]*dayWidth - 1
		}
		label := []rune(days[i].Date.Format("Jan 2006"))
		for k, r := range label {
			col := i*dayWidth + k
			if col >= limit {
				break
			}
			line[col] = r
		}
	}
	return string(line)
}

// DayLabel formats the day-number cell for a date.
func DayLabel(d time.Time, dayWidth int) string {
	if dayWidth >= 4 {
		initial := d.Weekday().String()[:1]
		return fmt.Sprintf("%s%-*d", initial, dayWidth-1, d.Day())
	}
	label := fmt.Sprintf("%-*d", dayWidth, d.Day())
	return ansi.Truncate(label, dayWidth, "")
}

func daySpans(days []TimelineDay, dayWidth int, styles TimelineHeaderStyles) []Span {
	spans := make([]Span, 0, len(days))
	for _, d := range days {
		style := styles.Day
		switch {
		case d.Today:
			style = styles.Today
		case d.Weekend:
			style = styles.Weekend
		}
		spans = append(spans, Span{Text: DayLabel(d.Date, dayWidth), Style: style})
	}
	return spans
}

// Crop returns the columns [from, from+width) of a rendered line, padding
// with bg when the line is shorter.
func Crop(line string, from, width int, bg lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	cut := ansi.Cut(line, from, from+width)
	if w := lipgloss.Width(cut); w < width {
		cut += lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", width-w))
	}
	return cut
}

// BarText lays text over a bar of width columns starting one cell in.
// The result is exactly width runes wide.
func BarText(text string, width int) []rune {
	out := []rune(strings.Repeat(" ", max(width, 0)))
	if width < 3 {
		return out
	}
	label := []rune(ansi.Truncate(text, width-2, "…"))
	copy(out[1:], label)
	return out
}

// NameCell fits a task name into the name column.
func NameCell(name string, width int) string {
	if width <= 0 {
		return ""
	}
	name = ansi.Truncate(name, width-1, "…")
	return " " + name + strings.Repeat(" ", max(width-1-lipgloss.Width(name), 0))
}
