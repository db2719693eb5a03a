package integration

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/gantt/internal/db"
	"github.com/javiermolinar/gantt/internal/drag"
	"github.com/javiermolinar/gantt/internal/occupancy"
	"github.com/javiermolinar/gantt/internal/seed"
	"github.com/javiermolinar/gantt/internal/store"
	"github.com/javiermolinar/gantt/internal/task"
)

const (
	dayWidth    = 4
	handleWidth = 1
)

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T, path string) *db.SQLite {
	t.Helper()
	repo, err := db.New(path)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// mustParseDate parses a date string or fails the test.
func mustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("failed to parse date %q: %v", s, err)
	}
	return date
}

func board() task.Board {
	return task.Board{
		Tags: []task.Tag{{ID: "tag-dev", Name: "Development", Color: "#3B82F6"}},
		Tasks: []task.Task{
			{
				ID:   "task-1",
				Name: "Design",
				Periods: []task.Period{
					{ID: "period-1", StartDate: "2025-01-06", EndDate: "2025-01-08", Note: "Wireframes", TagID: "tag-dev"},
				},
			},
			{ID: "task-2", Name: "Build", Periods: []task.Period{}},
		},
	}
}

// x returns the content column in the middle of day i.
func x(i int) int {
	return i*dayWidth + dayWidth/2
}

func TestDragCreateResizeAndSnapshot(t *testing.T) {
	ctx := context.Background()
	s := store.New(board())
	grid := drag.NewGrid(mustParseDate(t, "2025-01-01"), 30, dayWidth, handleWidth)
	m := drag.NewMachine(grid)

	// Drag days 10..12 on the empty task.
	if _, err := m.BeginSelection("task-2", x(10)); err != nil {
		t.Fatalf("BeginSelection: %v", err)
	}
	m.Move(x(12))
	tk, _ := s.Task("task-2")
	res := m.Release(tk.Periods)
	if res.Outcome != drag.OutcomeProposed {
		t.Fatalf("outcome = %v, err = %v", res.Outcome, res.Err)
	}
	added, err := s.AddPeriod("task-2", task.PeriodInput{
		StartDate: res.Selection.StartDate,
		EndDate:   res.Selection.EndDate,
		Note:      "Backend",
		TagID:     "tag-dev",
	})
	if err != nil {
		t.Fatalf("AddPeriod: %v", err)
	}
	if added.StartDate != "2025-01-11" || added.EndDate != "2025-01-13" {
		t.Fatalf("added = %s..%s", added.StartDate, added.EndDate)
	}

	// Drag the end of period-1 three days right.
	p, _, _ := s.PeriodByID("period-1")
	start, end, ok := grid.Span(p)
	if !ok || start != 5 || end != 7 {
		t.Fatalf("span = %d..%d (%v)", start, end, ok)
	}
	endHandle := (end+1)*dayWidth - 1
	if zone := grid.HitTest(endHandle, start, end); zone != drag.ZoneEndHandle {
		t.Fatalf("zone = %v, want end handle", zone)
	}
	if _, err := m.BeginResize("task-1", p, drag.ZoneEndHandle, endHandle); err != nil {
		t.Fatalf("BeginResize: %v", err)
	}
	m.Move(endHandle + 3*dayWidth)
	tk, _ = s.Task("task-1")
	res = m.Release(tk.Periods)
	if res.Outcome != drag.OutcomeProposed || res.Overlaps {
		t.Fatalf("resize result = %+v", res)
	}
	in := task.InputFromPeriod(p)
	in.EndDate = res.Selection.EndDate
	if err := s.UpdatePeriod("period-1", in); err != nil {
		t.Fatalf("UpdatePeriod: %v", err)
	}

	// Snapshot and reopen.
	path := filepath.Join(t.TempDir(), "gantt.db")
	repo := openRepo(t, path)
	if err := repo.SaveBoard(ctx, s.Board()); err != nil {
		t.Fatalf("SaveBoard: %v", err)
	}
	_ = repo.Close()

	reopened := openRepo(t, path)
	loaded, found, err := reopened.LoadBoard(ctx)
	if err != nil || !found {
		t.Fatalf("LoadBoard: found=%v err=%v", found, err)
	}

	got, _, ok := store.New(loaded).PeriodByID("period-1")
	if !ok || got.EndDate != "2025-01-11" {
		t.Fatalf("period-1 after reload = %+v (%v)", got, ok)
	}
	if len(loaded.Tasks[1].Periods) != 1 || loaded.Tasks[1].Periods[0].Note != "Backend" {
		t.Fatalf("task-2 after reload = %+v", loaded.Tasks[1])
	}
}

func TestOverlappingDragIsRejected(t *testing.T) {
	s := store.New(board())
	grid := drag.NewGrid(mustParseDate(t, "2025-01-01"), 30, dayWidth, handleWidth)
	m := drag.NewMachine(grid)

	// Days 2..5 end on period-1's first day.
	if _, err := m.BeginSelection("task-1", x(2)); err != nil {
		t.Fatalf("BeginSelection: %v", err)
	}
	m.Move(x(5))
	tk, _ := s.Task("task-1")
	res := m.Release(tk.Periods)

	if res.Outcome != drag.OutcomeRejected || !errors.Is(res.Err, task.ErrPeriodOverlap) {
		t.Fatalf("result = %+v, want overlap rejection", res)
	}
	if m.Dragging() {
		t.Fatal("machine should be idle after release")
	}
	tk, _ = s.Task("task-1")
	if len(tk.Periods) != 1 {
		t.Fatalf("periods = %d, want 1", len(tk.Periods))
	}
}

func TestSeedSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	today := mustParseDate(t, "2025-03-03")
	b := seed.DefaultFor(today)

	repo := openRepo(t, filepath.Join(t.TempDir(), "gantt.db"))
	if err := repo.SaveBoard(ctx, b); err != nil {
		t.Fatalf("SaveBoard: %v", err)
	}
	loaded, _, err := repo.LoadBoard(ctx)
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}

	if len(loaded.Tasks) != len(b.Tasks) || len(loaded.Tags) != len(b.Tags) {
		t.Fatalf("loaded %d tasks %d tags, want %d %d", len(loaded.Tasks), len(loaded.Tags), len(b.Tasks), len(b.Tags))
	}
	for i, tk := range b.Tasks {
		want := occupancy.OccupiedDates(tk.Periods, "")
		got := occupancy.OccupiedDates(loaded.Tasks[i].Periods, "")
		if len(got) != len(want) {
			t.Fatalf("task %s occupies %d days after reload, want %d", tk.ID, len(got), len(want))
		}
	}

	data, err := seed.Marshal(loaded)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	reparsed, err := seed.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(reparsed.Tasks) != len(b.Tasks) {
		t.Fatalf("reparsed %d tasks, want %d", len(reparsed.Tasks), len(b.Tasks))
	}
}

func TestStoreEventsFollowEdits(t *testing.T) {
	s := store.New(board())

	var kinds []store.EventKind
	unsubscribe := s.Subscribe(func(ev store.Event) { kinds = append(kinds, ev.Kind) })
	defer unsubscribe()

	id := s.AddTask("QA")
	if err := s.RenameTask(id, "  "); err != nil {
		t.Fatalf("RenameTask: %v", err)
	}
	if _, ok := s.Task(id); ok {
		t.Fatal("renaming to an empty name should delete the task")
	}

	want := []store.EventKind{store.TaskAdded, store.TaskDeleted}
	if len(kinds) != len(want) {
		t.Fatalf("events = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("events = %v, want %v", kinds, want)
		}
	}
}
