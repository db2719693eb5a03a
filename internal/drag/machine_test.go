package drag

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/javiermolinar/gantt/internal/debuglog"
	"github.com/javiermolinar/gantt/internal/task"
)

func period(id, start, end string) task.Period {
	return task.Period{ID: id, StartDate: start, EndDate: end, Note: "n", TagID: "tag-1"}
}

func assertCandidate(t *testing.T, c Candidate, start, end string) {
	t.Helper()
	if c.StartDate != start || c.EndDate != end {
		t.Errorf("candidate = %s..%s, want %s..%s", c.StartDate, c.EndDate, start, end)
	}
}

func TestMachineNewSelection(t *testing.T) {
	m := NewMachine(testGrid())

	c, err := m.BeginSelection("task-1", 9)
	if err != nil {
		t.Fatalf("BeginSelection: %v", err)
	}
	assertCandidate(t, c, "2024-03-03", "2024-03-03")
	if !m.Dragging() {
		t.Fatal("expected dragging")
	}

	c, _ = m.Move(21)
	assertCandidate(t, c, "2024-03-03", "2024-03-06")

	// dragging left of the anchor flips the ends
	c, _ = m.Move(1)
	assertCandidate(t, c, "2024-03-01", "2024-03-03")

	c, _ = m.Move(-400)
	assertCandidate(t, c, "2024-03-01", "2024-03-03")

	res := m.Release(nil)
	if res.Outcome != OutcomeProposed {
		t.Fatalf("Outcome = %v, want proposed", res.Outcome)
	}
	want := task.Selection{TaskID: "task-1", StartDate: "2024-03-01", EndDate: "2024-03-03"}
	if res.Selection != want {
		t.Errorf("Selection = %+v, want %+v", res.Selection, want)
	}
	if m.Dragging() {
		t.Error("machine should be idle after release")
	}
}

func TestMachineNewSelectionRejectsOverlap(t *testing.T) {
	m := NewMachine(testGrid())
	existing := []task.Period{period("p1", "2024-03-05", "2024-03-06")}

	if _, err := m.BeginSelection("task-1", 0); err != nil {
		t.Fatal(err)
	}
	m.Move(16) // up to 2024-03-05, touching p1

	res := m.Release(existing)
	if res.Outcome != OutcomeRejected {
		t.Fatalf("Outcome = %v, want rejected", res.Outcome)
	}
	if !errors.Is(res.Err, task.ErrPeriodOverlap) {
		t.Errorf("Err = %v, want ErrPeriodOverlap", res.Err)
	}
}

func TestMachineResizeEnd(t *testing.T) {
	m := NewMachine(testGrid())
	p := period("p1", "2024-03-05", "2024-03-07")

	c, err := m.BeginResize("task-1", p, ZoneEndHandle, 27)
	if err != nil {
		t.Fatalf("BeginResize: %v", err)
	}
	assertCandidate(t, c, "2024-03-05", "2024-03-07")

	c, _ = m.Move(27 + 12)
	assertCandidate(t, c, "2024-03-05", "2024-03-10")

	// cannot pass the fixed start
	c, _ = m.Move(-200)
	assertCandidate(t, c, "2024-03-05", "2024-03-05")

	// cannot pass the last visible day
	c, _ = m.Move(2000)
	assertCandidate(t, c, "2024-03-05", "2024-03-30")

	m.Move(27 + 12)
	res := m.Release([]task.Period{p})
	if res.Outcome != OutcomeProposed || res.Overlaps {
		t.Fatalf("Release() = %+v", res)
	}
	if res.Selection.PeriodID != "p1" || res.Selection.EndDate != "2024-03-10" {
		t.Errorf("Selection = %+v", res.Selection)
	}
}

func TestMachineResizeStart(t *testing.T) {
	m := NewMachine(testGrid())
	p := period("p1", "2024-03-05", "2024-03-07")

	if _, err := m.BeginResize("task-1", p, ZoneStartHandle, 16); err != nil {
		t.Fatal(err)
	}

	c, _ := m.Move(8)
	assertCandidate(t, c, "2024-03-03", "2024-03-07")

	c, _ = m.Move(-200)
	assertCandidate(t, c, "2024-03-01", "2024-03-07")

	c, _ = m.Move(400)
	assertCandidate(t, c, "2024-03-07", "2024-03-07")
}

func TestMachineResizeFlagsOverlap(t *testing.T) {
	m := NewMachine(testGrid())
	p1 := period("p1", "2024-03-05", "2024-03-07")
	p2 := period("p2", "2024-03-09", "2024-03-10")

	if _, err := m.BeginResize("task-1", p1, ZoneEndHandle, 27); err != nil {
		t.Fatal(err)
	}
	m.Move(27 + 8)
	res := m.Release([]task.Period{p1, p2})
	if res.Outcome != OutcomeProposed {
		t.Fatalf("Outcome = %v, want proposed", res.Outcome)
	}
	if !res.Overlaps {
		t.Error("expected Overlaps to be set")
	}
}

func TestMachineBeginResizeErrors(t *testing.T) {
	tests := []struct {
		name string
		p    task.Period
		edge Zone
		want error
	}{
		{name: "malformed", p: period("p1", "2024-03-05", "bad"), edge: ZoneEndHandle, want: ErrMalformedPeriod},
		{name: "body", p: period("p1", "2024-03-05", "2024-03-07"), edge: ZoneBody, want: ErrNotAHandle},
		{name: "hidden start", p: period("p1", "2024-02-01", "2024-03-07"), edge: ZoneStartHandle, want: ErrHandleHidden},
		{name: "hidden end", p: period("p1", "2024-03-20", "2024-05-01"), edge: ZoneEndHandle, want: ErrHandleHidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(testGrid())
			_, err := m.BeginResize("task-1", tt.p, tt.edge, 0)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if m.Dragging() {
				t.Error("failed begin must leave the machine idle")
			}
		})
	}
}

func TestMachineSingleDrag(t *testing.T) {
	m := NewMachine(testGrid())
	if _, err := m.BeginSelection("task-1", 0); err != nil {
		t.Fatal(err)
	}
	if _, err := m.BeginSelection("task-2", 8); !errors.Is(err, ErrAlreadyDragging) {
		t.Errorf("err = %v, want ErrAlreadyDragging", err)
	}
	st, _ := m.State()
	if st.TaskID != "task-1" {
		t.Errorf("state replaced: %+v", st)
	}
}

func TestMachineIdleOperations(t *testing.T) {
	m := NewMachine(testGrid())
	if _, ok := m.Move(10); ok {
		t.Error("Move on idle machine should report false")
	}
	if res := m.Release(nil); res.Outcome != OutcomeNone {
		t.Errorf("Release on idle = %v", res.Outcome)
	}
	if m.Cancel() {
		t.Error("Cancel on idle should report false")
	}
	if m.Preview(nil) != nil {
		t.Error("Preview on idle should be nil")
	}
}

func TestMachineCancel(t *testing.T) {
	m := NewMachine(testGrid())
	m.BeginSelection("task-1", 0)
	m.Move(20)
	if !m.Cancel() {
		t.Fatal("Cancel should report an active drag")
	}
	if m.Dragging() {
		t.Error("still dragging after cancel")
	}
	if res := m.Release(nil); res.Outcome != OutcomeNone {
		t.Errorf("Release after cancel = %v", res.Outcome)
	}
}

func TestMachineSetGridCancels(t *testing.T) {
	m := NewMachine(testGrid())
	m.BeginSelection("task-1", 0)
	m.SetGrid(NewGrid(testGrid().First.AddDate(0, 0, 7), 30, 4, 1))
	if m.Dragging() {
		t.Error("SetGrid should cancel the active drag")
	}
	if got := m.Grid().DateString(0); got != "2024-03-08" {
		t.Errorf("grid not replaced: %s", got)
	}
}

func TestMachinePreview(t *testing.T) {
	m := NewMachine(testGrid())
	existing := []task.Period{period("p1", "2024-03-03", "2024-03-03")}

	m.BeginSelection("task-1", 4)
	m.Move(16)
	days := m.Preview(existing)
	if len(days) != 4 {
		t.Fatalf("len = %d, want 4", len(days))
	}
	for _, d := range days {
		want := d.Date == "2024-03-03"
		if d.Occupied != want {
			t.Errorf("%s occupied = %v, want %v", d.Date, d.Occupied, want)
		}
	}
}

func TestMachinePreviewExcludesResizedPeriod(t *testing.T) {
	m := NewMachine(testGrid())
	p := period("p1", "2024-03-05", "2024-03-07")
	m.BeginResize("task-1", p, ZoneEndHandle, 27)
	for _, d := range m.Preview([]task.Period{p}) {
		if d.Occupied {
			t.Errorf("%s marked occupied by the period being resized", d.Date)
		}
	}
}

func TestMachineSelectDay(t *testing.T) {
	m := NewMachine(testGrid())
	existing := []task.Period{period("p1", "2024-03-05", "2024-03-07")}

	res := m.SelectDay("task-1", 2, existing)
	if res.Outcome != OutcomeProposed || res.Selection.StartDate != "2024-03-03" || res.Selection.EndDate != "2024-03-03" {
		t.Errorf("SelectDay(free) = %+v", res)
	}

	res = m.SelectDay("task-1", 5, existing)
	if res.Outcome != OutcomeRejected || !errors.Is(res.Err, task.ErrDateOccupied) {
		t.Errorf("SelectDay(occupied) = %+v", res)
	}
}

func TestMachineLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	restore := debuglog.SetOutput(&buf)
	defer restore()

	m := NewMachine(testGrid())
	m.BeginSelection("task-1", 0)
	m.Release(nil)
	m.BeginSelection("task-1", 0)
	m.Cancel()

	out := buf.String()
	for _, ev := range []string{"DRAG_BEGIN", "DRAG_RELEASE", "DRAG_CANCEL"} {
		if !strings.Contains(out, ev) {
			t.Errorf("log missing %s: %s", ev, out)
		}
	}
}
