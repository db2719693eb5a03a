// Package seed reads and writes boards in the JSON seed format.
package seed

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/javiermolinar/gantt/internal/dateutil"
	"github.com/javiermolinar/gantt/internal/debuglog"
	"github.com/javiermolinar/gantt/internal/task"
)

//go:embed default.json
var defaultJSON []byte

// FixtureAnchor is the day the embedded fixture is laid out around.
// DefaultFor moves it onto the caller's today.
const FixtureAnchor = "2025-01-06"

// Seed errors.
var (
	ErrInvalidSeed = errors.New("invalid seed data")
	ErrMissingID   = errors.New("record is missing an id")
	ErrDuplicateID = errors.New("duplicate id")
)

// Parse decodes and checks a seed document.
func Parse(data []byte) (task.Board, error) {
	var b task.Board
	if err := json.Unmarshal(data, &b); err != nil {
		return task.Board{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	if err := check(b); err != nil {
		return task.Board{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	for i := range b.Tasks {
		if b.Tasks[i].Periods == nil {
			b.Tasks[i].Periods = []task.Period{}
		}
	}
	if b.Tasks == nil {
		b.Tasks = []task.Task{}
	}
	if b.Tags == nil {
		b.Tags = []task.Tag{}
	}
	return b, nil
}

// check enforces unique, non-empty IDs. Dates are not checked here: a
// malformed period is kept and simply ignored by occupancy queries.
func check(b task.Board) error {
	seen := make(map[string]bool)
	claim := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("%s: %w", kind, ErrMissingID)
		}
		key := kind + ":" + id
		if seen[key] {
			return fmt.Errorf("%s %q: %w", kind, id, ErrDuplicateID)
		}
		seen[key] = true
		return nil
	}

	for _, t := range b.Tasks {
		if err := claim("task", t.ID); err != nil {
			return err
		}
		for _, p := range t.Periods {
			if err := claim("period", p.ID); err != nil {
				return err
			}
		}
	}
	for _, tag := range b.Tags {
		if err := claim("tag", tag.ID); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a seed file.
func Load(path string) (task.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return task.Board{}, fmt.Errorf("reading seed: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return task.Board{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return b, nil
}

// Write stores b as an indented seed document.
func Write(path string, b task.Board) error {
	data, err := Marshal(b)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing seed: %w", err)
	}
	return nil
}

// Marshal encodes b in the seed format.
func Marshal(b task.Board) ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding seed: %w", err)
	}
	return append(data, '\n'), nil
}

// Default returns the embedded fixture with its original dates.
func Default() task.Board {
	b, err := Parse(defaultJSON)
	if err != nil {
		// the fixture is compiled in; a parse failure is a build defect
		panic(fmt.Sprintf("embedded seed: %v", err))
	}
	return b
}

// DefaultFor returns the embedded fixture moved so FixtureAnchor falls on
// today.
func DefaultFor(today time.Time) task.Board {
	anchor, _ := dateutil.ParseDate(FixtureAnchor)
	return Shift(Default(), dateutil.DaysBetween(anchor, today))
}

// Shift moves every period of b by days. Malformed dates are left as they
// are.
func Shift(b task.Board, days int) task.Board {
	out := b.Clone()
	if days == 0 {
		return out
	}
	for ti := range out.Tasks {
		for pi := range out.Tasks[ti].Periods {
			p := &out.Tasks[ti].Periods[pi]
			p.StartDate = shiftDate(p.ID, p.StartDate, days)
			p.EndDate = shiftDate(p.ID, p.EndDate, days)
		}
	}
	return out
}

func shiftDate(periodID, date string, days int) string {
	d, err := dateutil.ParseDate(date)
	if err != nil {
		debuglog.Warn("malformed date not shifted", map[string]any{
			"period": periodID,
			"value":  date,
		})
		return date
	}
	return dateutil.FormatDate(dateutil.AddDays(d, days))
}
