package dateutil

import (
	"strconv"
	"strings"
	"time"
)

// Fixed offsets in days from today.
var keywordOffsets = map[string]int{
	"":          0,
	"today":     0,
	"tomorrow":  1,
	"yesterday": -1,
	"next-week": 7,
}

var weekdays = func() map[string]time.Weekday {
	m := make(map[string]time.Weekday, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		m[strings.ToLower(d.String())] = d
	}
	return m
}()

// ParseRelativeDate resolves s against the calendar day of ref. It accepts,
// ignoring case and surrounding space:
//
//	""  today  tomorrow  yesterday  next-week
//	+N  -N                 N days from today
//	monday  next-monday    the next such weekday, never today
//	2025-01-15
//
// Anything else is ErrInvalidDateFormat.
func ParseRelativeDate(s string, ref time.Time) (time.Time, error) {
	today := Normalize(ref)
	in := strings.ToLower(strings.TrimSpace(s))

	if n, ok := keywordOffsets[in]; ok {
		return today.AddDate(0, 0, n), nil
	}
	if in[0] == '+' || in[0] == '-' {
		n, err := strconv.Atoi(in)
		if err != nil {
			return time.Time{}, ErrInvalidDateFormat
		}
		return today.AddDate(0, 0, n), nil
	}
	if d, ok := weekdays[strings.TrimPrefix(in, "next-")]; ok {
		return nextWeekday(today, d), nil
	}
	return ParseDate(in)
}

// nextWeekday is the first day strictly after today that falls on wd.
func nextWeekday(today time.Time, wd time.Weekday) time.Time {
	ahead := (int(wd)-int(today.Weekday())+6)%7 + 1
	return today.AddDate(0, 0, ahead)
}
