// Package drag turns pointer gestures over a day grid into date intervals.
//
// Coordinates are content-space columns: x = 0 is the left edge of the
// first visible day regardless of how far the viewport is scrolled. The
// caller converts screen positions with Viewport.ToContent.
package drag

import (
	"math"
	"time"

	"github.com/javiermolinar/gantt/internal/dateutil"
	"github.com/javiermolinar/gantt/internal/task"
)

// Zone classifies a position on a rendered period bar.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneBody
	ZoneStartHandle
	ZoneEndHandle
)

func (z Zone) String() string {
	switch z {
	case ZoneBody:
		return "body"
	case ZoneStartHandle:
		return "start_handle"
	case ZoneEndHandle:
		return "end_handle"
	default:
		return "none"
	}
}

// Grid describes the visible date window and its column geometry.
type Grid struct {
	First       time.Time // first visible day
	Days        int       // number of visible days
	DayWidth    int       // columns per day
	HandleWidth int       // columns of each resize hot zone
}

// NewGrid returns a grid with sane minimums applied.
func NewGrid(first time.Time, days, dayWidth, handleWidth int) Grid {
	if days < 1 {
		days = 1
	}
	if dayWidth < 1 {
		dayWidth = 1
	}
	if handleWidth < 0 {
		handleWidth = 0
	}
	return Grid{
		First:       dateutil.Normalize(first),
		Days:        days,
		DayWidth:    dayWidth,
		HandleWidth: handleWidth,
	}
}

// Width returns the content width in columns.
func (g Grid) Width() int {
	return g.Days * g.DayWidth
}

// Last returns the index of the last visible day.
func (g Grid) Last() int {
	return g.Days - 1
}

// Clamp limits i to the visible window.
func (g Grid) Clamp(i int) int {
	return clamp(i, 0, g.Last())
}

// IndexAt returns the day index under content column x, clamped to the
// window.
func (g Grid) IndexAt(x int) int {
	return g.Clamp(floorDiv(x, g.DayWidth))
}

// DaysForDelta converts a horizontal delta in columns to whole days,
// rounding to the nearest day.
func (g Grid) DaysForDelta(dx int) int {
	return int(math.Round(float64(dx) / float64(g.DayWidth)))
}

// DateAt returns the calendar day at index i. Indices outside the window
// are valid and extrapolate.
func (g Grid) DateAt(i int) time.Time {
	return g.First.AddDate(0, 0, i)
}

// DateString returns DateAt(i) in boundary format.
func (g Grid) DateString(i int) string {
	return dateutil.FormatDate(g.DateAt(i))
}

// IndexOf returns the window index of date. The index may fall outside the
// window; ok is false when date is malformed.
func (g Grid) IndexOf(date string) (int, bool) {
	d, err := dateutil.ParseDate(date)
	if err != nil {
		return 0, false
	}
	return dateutil.DaysBetween(g.First, d), true
}

// Span returns the window indices of a period's ends.
func (g Grid) Span(p task.Period) (start, end int, ok bool) {
	start, ok = g.IndexOf(p.StartDate)
	if !ok {
		return 0, 0, false
	}
	end, ok = g.IndexOf(p.EndDate)
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

// Visible reports whether [start, end] intersects the window.
func (g Grid) Visible(start, end int) bool {
	return end >= 0 && start <= g.Last() && start <= end
}

// HitTest classifies content column x against a bar spanning day indices
// [start, end]. Handles exist only for edges inside the window; when both
// hot zones cover x the start handle wins.
func (g Grid) HitTest(x, start, end int) Zone {
	if !g.Visible(start, end) {
		return ZoneNone
	}
	left := max(start, 0) * g.DayWidth
	right := (min(end, g.Last()) + 1) * g.DayWidth
	if x < left || x >= right {
		return ZoneNone
	}
	if g.HandleWidth > 0 {
		if start >= 0 && x < start*g.DayWidth+g.HandleWidth {
			return ZoneStartHandle
		}
		if end <= g.Last() && x >= (end+1)*g.DayWidth-g.HandleWidth {
			return ZoneEndHandle
		}
	}
	return ZoneBody
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
