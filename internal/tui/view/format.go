// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"

	"github.com/javiermolinar/gantt/internal/dateutil"
)

// FormatDays formats a day count as "1 day" or "N days".
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// FormatRange formats a closed date range as "Mar 1 → Mar 3 (3 days)".
// Malformed ranges are shown as typed.
func FormatRange(start, end string) string {
	r, err := dateutil.NewDateRange(start, end)
	if err != nil {
		return start + " → " + end
	}
	if r.Start.Equal(r.End) {
		return r.Start.Format("Mon Jan 2") + " (1 day)"
	}
	layout := "Jan 2"
	if r.Start.Year() != r.End.Year() {
		layout = "Jan 2 2006"
	}
	return fmt.Sprintf("%s → %s (%s)", r.Start.Format(layout), r.End.Format(layout), FormatDays(r.Days()))
}
