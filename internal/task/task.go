// Package task defines the core domain types for gantt.
package task

import (
	"errors"
	"strings"

	"github.com/javiermolinar/gantt/internal/dateutil"
)

// DefaultTagColor is used for periods whose tag cannot be resolved.
const DefaultTagColor = "#6B7280"

// Validation errors.
var (
	ErrStartDateRequired = errors.New("start date is required")
	ErrEndDateRequired   = errors.New("end date is required")
	ErrNoteRequired      = errors.New("note is required")
	ErrTagRequired       = errors.New("tag is required")
	ErrEndBeforeStart    = errors.New("start date must be before or equal to end date")
)

// Domain errors.
var (
	ErrPeriodOverlap  = errors.New("the selected range overlaps an existing period")
	ErrDateOccupied   = errors.New("this date already has a period")
	ErrTaskNotFound   = errors.New("task not found")
	ErrPeriodNotFound = errors.New("period not found")
)

// Task is a named row owning zero or more periods.
type Task struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Periods []Period `json:"periods"`
}

// Period is a closed calendar-date interval inside a task.
type Period struct {
	ID        string `json:"id"`
	StartDate string `json:"startDate"` // YYYY-MM-DD, inclusive
	EndDate   string `json:"endDate"`   // YYYY-MM-DD, inclusive
	Note      string `json:"note"`
	TagID     string `json:"tagId"`
}

// Tag is reference data giving periods a label and a color.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Range is a closed date interval in boundary format.
type Range struct {
	Start string
	End   string
}

// Selection is a candidate interval that has not been committed yet.
// PeriodID is set when the selection revisits an existing period.
type Selection struct {
	TaskID    string
	StartDate string
	EndDate   string
	PeriodID  string
}

// Range returns the selection's interval.
func (s Selection) Range() Range {
	return Range{Start: s.StartDate, End: s.EndDate}
}

// Range returns the period's interval.
func (p Period) Range() Range {
	return Range{Start: p.StartDate, End: p.EndDate}
}

// Days returns the number of calendar days covered by the period.
// Returns 0 when either date is malformed or the period is inverted.
func (p Period) Days() int {
	r, err := dateutil.NewDateRange(p.StartDate, p.EndDate)
	if err != nil {
		return 0
	}
	return r.Days()
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	c := t
	c.Periods = append([]Period(nil), t.Periods...)
	return c
}

// Period returns the period with the given ID.
func (t Task) Period(id string) (Period, bool) {
	for _, p := range t.Periods {
		if p.ID == id {
			return p, true
		}
	}
	return Period{}, false
}

// PeriodInput is the payload of the add/edit period form.
type PeriodInput struct {
	StartDate string
	EndDate   string
	Note      string
	TagID     string
}

// InputFromPeriod returns the form payload for an existing period.
func InputFromPeriod(p Period) PeriodInput {
	return PeriodInput{
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Note:      p.Note,
		TagID:     p.TagID,
	}
}

// Range returns the input's interval.
func (in PeriodInput) Range() Range {
	return Range{Start: in.StartDate, End: in.EndDate}
}

// Normalized returns a copy with surrounding whitespace trimmed.
func (in PeriodInput) Normalized() PeriodInput {
	return PeriodInput{
		StartDate: strings.TrimSpace(in.StartDate),
		EndDate:   strings.TrimSpace(in.EndDate),
		Note:      strings.TrimSpace(in.Note),
		TagID:     strings.TrimSpace(in.TagID),
	}
}

// Validate checks required fields and date ordering.
// The first failing field wins.
func (in PeriodInput) Validate() error {
	in = in.Normalized()
	if in.StartDate == "" {
		return ErrStartDateRequired
	}
	if in.EndDate == "" {
		return ErrEndDateRequired
	}
	if _, err := dateutil.NewDateRange(in.StartDate, in.EndDate); err != nil {
		if errors.Is(err, dateutil.ErrEndDateBeforeStart) {
			return ErrEndBeforeStart
		}
		return err
	}
	if in.Note == "" {
		return ErrNoteRequired
	}
	if in.TagID == "" {
		return ErrTagRequired
	}
	return nil
}

// Apply returns p with the input's fields written over it.
func (in PeriodInput) Apply(p Period) Period {
	in = in.Normalized()
	p.StartDate = in.StartDate
	p.EndDate = in.EndDate
	p.Note = in.Note
	p.TagID = in.TagID
	return p
}

// Board is the whole editable data set: tasks plus tag reference data.
type Board struct {
	Tasks []Task `json:"tasks"`
	Tags  []Tag  `json:"tags"`
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := Board{
		Tasks: make([]Task, len(b.Tasks)),
		Tags:  append([]Tag(nil), b.Tags...),
	}
	for i, t := range b.Tasks {
		c.Tasks[i] = t.Clone()
	}
	return c
}

// NormalizeName trims a task name for storage.
// An empty result means the task should be deleted.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
