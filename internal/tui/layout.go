package tui

import "github.com/javiermolinar/gantt/internal/tui/view"

// Fixed screen rows above the task rows.
const (
	titleRows  = 1
	headerRows = 2
	rowsTop    = titleRows + headerRows
)

// LayoutCache stores layout dimensions derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	NameW        int // name column, excluding the separator
	TimelineLeft int // first screen column of the timeline
	TimelineW    int // visible timeline columns

	RowsH   int // task rows that fit between header and footer
	FooterH int
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	nameW := m.config.UI.NameWidth
	if nameW > width/2 {
		nameW = width / 2
	}
	if nameW < 0 {
		nameW = 0
	}
	timelineLeft := nameW + 1

	footerH := view.FooterHeight
	rowsH := height - rowsTop - footerH
	if rowsH < 0 {
		rowsH = 0
	}

	return LayoutCache{
		InnerW:       max(width, 0),
		InnerH:       max(height, 0),
		NameW:        nameW,
		TimelineLeft: timelineLeft,
		TimelineW:    max(width-timelineLeft, 0),
		RowsH:        rowsH,
		FooterH:      footerH,
	}
}

// applyLayout recomputes the layout and resizes the timeline viewport.
func (m *Model) applyLayout(width, height int) {
	m.width = width
	m.height = height
	m.layout = m.buildLayoutCache(width, height)
	m.viewport.SetSize(m.layout.TimelineW, m.grid.Width())
	m.ensureCursorVisible()
}

// rowAt maps a screen row to a task row index.
func (m Model) rowAt(y int) (int, bool) {
	if y < rowsTop || y >= rowsTop+m.layout.RowsH {
		return 0, false
	}
	row := m.rowOffset + y - rowsTop
	if row >= len(m.tasks()) {
		return 0, false
	}
	return row, true
}

// inTimeline reports whether screen column x is over the timeline.
func (m Model) inTimeline(x int) bool {
	return x >= m.layout.TimelineLeft && x < m.layout.TimelineLeft+m.layout.TimelineW
}

// viewportX converts a screen column to a column relative to the timeline.
func (m Model) viewportX(x int) int {
	return x - m.layout.TimelineLeft
}
