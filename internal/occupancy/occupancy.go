// Package occupancy answers which calendar days a task's periods cover.
//
// All comparisons are closed intervals at day granularity. A malformed date
// never fails a query: it is logged and the record simply does not take
// part, so one bad period cannot block edits on the rest of the task.
package occupancy

import (
	"sort"
	"time"

	"github.com/javiermolinar/gantt/internal/dateutil"
	"github.com/javiermolinar/gantt/internal/debuglog"
	"github.com/javiermolinar/gantt/internal/task"
)

// MaxEnumeratedDays caps how many days OccupiedDates lists per period.
// Longer periods need containment queries (IsDateOccupied) instead.
const MaxEnumeratedDays = 366

type span struct {
	start time.Time
	end   time.Time
}

func (s span) overlaps(o span) bool {
	return !s.start.After(o.end) && !s.end.Before(o.start)
}

func (s span) contains(d time.Time) bool {
	return !d.Before(s.start) && !d.After(s.end)
}

// parseRange parses both ends of r. ok is false when either end is
// malformed; the problem is logged with the given context.
func parseRange(r task.Range, context string) (span, bool) {
	start, err := dateutil.ParseDate(r.Start)
	if err != nil {
		warnMalformed(context, r.Start)
		return span{}, false
	}
	end, err := dateutil.ParseDate(r.End)
	if err != nil {
		warnMalformed(context, r.End)
		return span{}, false
	}
	return span{start: start, end: end}, true
}

func warnMalformed(context, value string) {
	debuglog.Warn("malformed date ignored", map[string]any{
		"context": context,
		"value":   value,
	})
}

// RangesOverlap reports whether a and b share at least one calendar day.
// Touching ranges (a.End == b.Start) overlap.
func RangesOverlap(a, b task.Range) bool {
	sa, ok := parseRange(a, "ranges_overlap")
	if !ok {
		return false
	}
	sb, ok := parseRange(b, "ranges_overlap")
	if !ok {
		return false
	}
	return sa.overlaps(sb)
}

// HasOverlap reports whether candidate overlaps any period in existing other
// than the one whose ID is excludeID. An empty excludeID excludes nothing.
func HasOverlap(candidate task.Range, existing []task.Period, excludeID string) bool {
	c, ok := parseRange(candidate, "has_overlap")
	if !ok {
		return false
	}
	for _, p := range existing {
		if excluded(p, excludeID) {
			continue
		}
		s, ok := parseRange(p.Range(), "has_overlap:"+p.ID)
		if !ok {
			continue
		}
		if c.overlaps(s) {
			return true
		}
	}
	return false
}

// Conflicts returns the non-excluded periods that candidate overlaps.
func Conflicts(candidate task.Range, existing []task.Period, excludeID string) []task.Period {
	c, ok := parseRange(candidate, "conflicts")
	if !ok {
		return nil
	}
	var out []task.Period
	for _, p := range existing {
		if excluded(p, excludeID) {
			continue
		}
		if s, ok := parseRange(p.Range(), "conflicts:"+p.ID); ok && c.overlaps(s) {
			out = append(out, p)
		}
	}
	return out
}

// IsDateOccupied reports whether date falls inside any non-excluded period.
func IsDateOccupied(date string, existing []task.Period, excludeID string) bool {
	d, err := dateutil.ParseDate(date)
	if err != nil {
		warnMalformed("is_date_occupied", date)
		return false
	}
	for _, p := range existing {
		if excluded(p, excludeID) {
			continue
		}
		s, ok := parseRange(p.Range(), "is_date_occupied:"+p.ID)
		if !ok {
			continue
		}
		if s.contains(d) {
			return true
		}
	}
	return false
}

// OccupiedDates lists every calendar day covered by a non-excluded period,
// sorted and without duplicates. Each period contributes at most
// MaxEnumeratedDays days.
func OccupiedDates(existing []task.Period, excludeID string) []string {
	set := OccupiedSet(existing, excludeID)
	if len(set) == 0 {
		return []string{}
	}
	dates := make([]string, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// OccupiedSet is OccupiedDates as a lookup set.
func OccupiedSet(existing []task.Period, excludeID string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, p := range existing {
		if excluded(p, excludeID) {
			continue
		}
		s, ok := parseRange(p.Range(), "occupied_dates:"+p.ID)
		if !ok {
			continue
		}
		d := s.start
		for i := 0; i < MaxEnumeratedDays && !d.After(s.end); i++ {
			set[dateutil.FormatDate(d)] = struct{}{}
			d = d.AddDate(0, 0, 1)
		}
	}
	return set
}

func excluded(p task.Period, excludeID string) bool {
	return excludeID != "" && p.ID == excludeID
}
