package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2025-01-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		got, err := ParseDate(" 2025-01-15\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if FormatDate(got) != "2025-01-15" {
			t.Errorf("got %s, want 2025-01-15", FormatDate(got))
		}
	})

	tests := []string{"", "01-15-2025", "not-a-date", "2025-02-30", "2025-01-15T10:00:00Z"}
	for _, in := range tests {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := ParseDate(in)
			if !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("ParseDate(%q) error = %v, want %v", in, err, ErrInvalidDateFormat)
			}
		})
	}
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid date range", func(t *testing.T) {
		dr, err := NewDateRange("2025-01-15", "2025-01-20")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dr.Days() != 6 {
			t.Errorf("Days() = %d, want 6", dr.Days())
		}
		if !dr.Contains(time.Date(2025, 1, 20, 23, 0, 0, 0, time.UTC)) {
			t.Error("expected range to contain its last day")
		}
		if dr.Contains(time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC)) {
			t.Error("expected range to exclude the day after its end")
		}
	})

	t.Run("empty end defaults to start", func(t *testing.T) {
		dr, err := NewDateRange("2025-01-15", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !dr.Start.Equal(dr.End) {
			t.Errorf("expected start and end to be equal, got %v and %v", dr.Start, dr.End)
		}
		if dr.Days() != 1 {
			t.Errorf("Days() = %d, want 1", dr.Days())
		}
	})
}

func TestNewDateRange_Errors(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		wantErr   error
	}{
		{
			name:      "invalid start date format",
			startDate: "01-15-2025",
			wantErr:   ErrInvalidDateFormat,
		},
		{
			name:      "invalid end date format",
			startDate: "2025-01-15",
			endDate:   "01-20-2025",
			wantErr:   ErrInvalidDateFormat,
		},
		{
			name:      "end date before start date",
			startDate: "2025-01-20",
			endDate:   "2025-01-15",
			wantErr:   ErrEndDateBeforeStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDateRange(tt.startDate, tt.endDate)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "same day", a: "2024-03-01", b: "2024-03-01", want: 0},
		{name: "leap day", a: "2024-02-28", b: "2024-03-01", want: 2},
		{name: "backwards", a: "2024-03-05", b: "2024-03-01", want: -4},
		{name: "year boundary", a: "2023-12-31", b: "2024-01-01", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := ParseDate(tt.a)
			b, _ := ParseDate(tt.b)
			if got := DaysBetween(a, b); got != tt.want {
				t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	a := time.Date(2024, 3, 1, 23, 59, 0, 0, loc)
	b := time.Date(2024, 3, 2, 0, 1, 0, 0, loc)
	if got := DaysBetween(a, b); got != 1 {
		t.Errorf("DaysBetween = %d, want 1", got)
	}
}

func TestIsWeekend(t *testing.T) {
	sat := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
	mon := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	if !IsWeekend(sat) {
		t.Error("expected Saturday to be a weekend day")
	}
	if IsWeekend(mon) {
		t.Error("expected Monday to be a weekday")
	}
}
