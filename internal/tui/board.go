package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/gantt/internal/dateutil"
	"github.com/javiermolinar/gantt/internal/task"
	"github.com/javiermolinar/gantt/internal/tui/view"
)

// cell is one day column of a task row.
type cell struct {
	text  []rune
	style lipgloss.Style
}

// visibleDays returns the first and last day index intersecting the
// viewport.
func (m Model) visibleDays() (first, last int) {
	dw := m.grid.DayWidth
	first = m.grid.Clamp(m.viewport.Offset / dw)
	last = m.grid.Clamp((m.viewport.Offset + max(m.viewport.Width, 1) - 1) / dw)
	return first, last
}

func (m Model) timelineDays(first, last int) []view.TimelineDay {
	days := make([]view.TimelineDay, 0, last-first+1)
	for i := first; i <= last; i++ {
		d := m.grid.DateAt(i)
		days = append(days, view.TimelineDay{
			Date:    d,
			Today:   d.Equal(m.today),
			Weekend: dateutil.IsWeekend(d),
		})
	}
	return days
}

// cropVisible cuts a line rendered from day first onwards to the viewport.
func (m Model) cropVisible(line string, first int) string {
	from := m.viewport.Offset - first*m.grid.DayWidth
	return view.Crop(line, from, m.layout.TimelineW, m.styles.colorBg)
}

// renderTitle renders the top bar.
func (m Model) renderTitle() string {
	first := m.grid.DateAt(0)
	last := m.grid.DateAt(m.grid.Last())
	window := fmt.Sprintf("  %s – %s", first.Format("Jan 2"), last.Format("Jan 2 2006"))
	info := fmt.Sprintf("  %d tasks", len(m.tasks()))
	if n := m.changes.unsaved; n > 0 && m.repo != nil {
		info += fmt.Sprintf("  [%d unsaved]", n)
	}
	return m.styles.TitleStyle.Render(" gantt") + m.styles.SubtitleStyle.Render(window+info)
}

// renderHeader renders the month and day lines.
func (m Model) renderHeader() []string {
	first, last := m.visibleDays()
	month, day := view.RenderTimelineHeader(m.timelineDays(first, last), m.grid.DayWidth, view.TimelineHeaderStyles{
		Month:   m.styles.MonthStyle,
		Day:     m.styles.DayStyle,
		Weekend: m.styles.DayWeekendStyle,
		Today:   m.styles.DayTodayStyle,
	})

	sep := m.styles.NameSeparator.Render("│")
	nameHead := m.styles.NameHeaderStyle.Render(view.NameCell("TASKS", m.layout.NameW))
	blank := m.styles.NameStyle.Render(strings.Repeat(" ", m.layout.NameW))
	return []string{
		nameHead + sep + m.cropVisible(month, first),
		blank + sep + m.cropVisible(day, first),
	}
}

// renderRows renders the visible task rows.
func (m Model) renderRows() []string {
	tasks := m.tasks()
	lines := make([]string, 0, m.layout.RowsH)
	sep := m.styles.NameSeparator.Render("│")
	first, last := m.visibleDays()

	for y := 0; y < m.layout.RowsH; y++ {
		row := m.rowOffset + y
		if row >= len(tasks) {
			break
		}
		t := tasks[row]
		lines = append(lines, m.renderName(row, t)+sep+m.cropVisible(m.renderCells(row, t, first, last), first))
	}

	if len(tasks) == 0 && m.layout.RowsH > 0 {
		hint := m.styles.NameEmptyStyle.Render(view.NameCell("No tasks", m.layout.NameW))
		lines = append(lines, hint+sep+m.styles.HelpStyle.Render(" press n to add one"))
	}
	return lines
}

// renderName renders the name column of a row, or the inline editor.
func (m Model) renderName(row int, t task.Task) string {
	w := m.layout.NameW
	if m.mode == ModeRename && t.ID == m.renameTaskID {
		return m.styles.NameEditStyle.Width(w).MaxWidth(w).Render(" " + m.nameInput.View())
	}
	switch {
	case row == m.cursor.Row && m.mode == ModeNormal:
		return m.styles.NameCursorStyle.Render(view.NameCell(nameOrUntitled(t.Name), w))
	case t.Name == "":
		return m.styles.NameEmptyStyle.Render(view.NameCell("untitled", w))
	default:
		return m.styles.NameStyle.Render(view.NameCell(t.Name, w))
	}
}

func nameOrUntitled(name string) string {
	if name == "" {
		return "untitled"
	}
	return name
}

// renderCells renders the day cells [first, last] of a task row. Layers
// from bottom to top: background, period bars, selection, drag preview.
func (m Model) renderCells(row int, t task.Task, first, last int) string {
	dw := m.grid.DayWidth
	cells := make([]cell, last-first+1)
	for i := range cells {
		cells[i] = m.emptyCell(row, first+i)
	}

	sel, hasSel := m.store.Selection()
	if hasSel && sel.TaskID != t.ID {
		hasSel = false
	}
	cand, dragging := m.machine.Candidate()
	if dragging && cand.TaskID != t.ID {
		dragging = false
	}

	for _, p := range t.Periods {
		if dragging && p.ID == cand.PeriodID && cand.PeriodID != "" {
			continue
		}
		if hasSel && p.ID == sel.PeriodID && sel.PeriodID != "" {
			continue
		}
		m.paintBar(cells, first, last, row, p)
	}

	if hasSel {
		m.paintSelection(cells, first, last, sel, t)
	}

	if dragging {
		for _, d := range m.machine.Preview(t.Periods) {
			if d.Index < first || d.Index > last {
				continue
			}
			style := m.styles.PreviewStyle
			if d.Occupied {
				style = m.styles.ConflictStyle
			}
			c := &cells[d.Index-first]
			c.style = style
			c.text = []rune(strings.Repeat("░", dw))
		}
	}

	spans := make([]view.Span, len(cells))
	for i, c := range cells {
		spans[i] = view.Span{Text: string(c.text), Style: c.style}
	}
	return view.RenderSpans(spans)
}

func (m Model) emptyCell(row, i int) cell {
	dw := m.grid.DayWidth
	text := []rune(strings.Repeat(" ", dw))
	d := m.grid.DateAt(i)

	style := m.styles.EmptyCellStyle
	switch {
	case row == m.cursor.Row && i == m.cursor.Day && m.mode == ModeNormal && !m.machine.Dragging():
		style = m.styles.CursorCellStyle
		text[0] = '▸'
	case d.Equal(m.today):
		style = m.styles.TodayCellStyle
		text[0] = '│'
	case dateutil.IsWeekend(d):
		style = m.styles.WeekendCellStyle
	}
	return cell{text: text, style: style}
}

// paintBar draws a period bar over the cells it covers.
func (m Model) paintBar(cells []cell, first, last, row int, p task.Period) {
	start, end, ok := m.grid.Span(p)
	if !ok || !m.grid.Visible(start, end) {
		return
	}
	from, to := max(start, 0), min(end, m.grid.Last())
	if to < first || from > last {
		return
	}

	styles := m.styles.Bar(m.store.TagColor(p.TagID))
	style := styles.Bar
	switch {
	case row == m.cursor.Row && m.cursor.Day >= start && m.cursor.Day <= end && m.mode == ModeNormal:
		style = styles.Focused
	case p.EndDate < dateutil.FormatDate(m.today):
		style = styles.Past
	}

	m.paintRun(cells, first, last, from, to, style, p.Note)

	dw := m.grid.DayWidth
	if m.grid.HandleWidth > 0 && dw > 2 {
		if start >= first && start <= last && start >= 0 {
			cells[start-first].text[0] = '▐'
		}
		if end >= first && end <= last && end <= m.grid.Last() {
			cells[end-first].text[dw-1] = '▌'
		}
	}
}

// paintSelection draws the pending selection of the open form.
func (m Model) paintSelection(cells []cell, first, last int, sel task.Selection, t task.Task) {
	start, okStart := m.grid.IndexOf(sel.StartDate)
	end, okEnd := m.grid.IndexOf(sel.EndDate)
	if !okStart || !okEnd || !m.grid.Visible(start, end) {
		return
	}
	note := ""
	if p, ok := t.Period(sel.PeriodID); ok {
		note = p.Note
	}
	m.paintRun(cells, first, last, max(start, 0), min(end, m.grid.Last()), m.styles.SelectionStyle, note)
}

// paintRun styles days [from, to] and lays text across them. The text is
// laid out over the whole run so it does not shift while scrolling.
func (m Model) paintRun(cells []cell, first, last, from, to int, style lipgloss.Style, text string) {
	dw := m.grid.DayWidth
	runes := view.BarText(text, (to-from+1)*dw)
	for i := max(from, first); i <= min(to, last); i++ {
		off := (i - from) * dw
		cells[i-first] = cell{text: append([]rune(nil), runes[off:off+dw]...), style: style}
	}
}
