package drag

import (
	"errors"

	"github.com/javiermolinar/gantt/internal/debuglog"
	"github.com/javiermolinar/gantt/internal/occupancy"
	"github.com/javiermolinar/gantt/internal/task"
)

// Machine errors.
var (
	ErrAlreadyDragging = errors.New("a drag is already in progress")
	ErrMalformedPeriod = errors.New("period has malformed dates")
	ErrNotAHandle      = errors.New("zone is not a resize handle")
	ErrHandleHidden    = errors.New("period edge is outside the visible window")
)

// Kind identifies what a drag edits.
type Kind int

const (
	KindNewSelection Kind = iota
	KindResizeStart
	KindResizeEnd
)

func (k Kind) String() string {
	switch k {
	case KindNewSelection:
		return "new_selection"
	case KindResizeStart:
		return "resize_start"
	case KindResizeEnd:
		return "resize_end"
	default:
		return "unknown"
	}
}

// State is the transient state of an active drag.
type State struct {
	Kind     Kind
	TaskID   string
	PeriodID string // set for resize drags
	Anchor   int    // index where the drag started (the moving edge for resizes)
	Current  int    // index under the pointer after clamping
	AnchorX  int    // content column of the press
	Fixed    int    // the edge a resize does not move
}

// Candidate is the interval an active drag currently describes.
type Candidate struct {
	Kind       Kind
	TaskID     string
	PeriodID   string
	StartIndex int
	EndIndex   int
	StartDate  string
	EndDate    string
}

// Selection returns the candidate as a store selection.
func (c Candidate) Selection() task.Selection {
	return task.Selection{
		TaskID:    c.TaskID,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		PeriodID:  c.PeriodID,
	}
}

// Contains reports whether day index i is inside the candidate.
func (c Candidate) Contains(i int) bool {
	return i >= c.StartIndex && i <= c.EndIndex
}

// Outcome is how a gesture ended.
type Outcome int

const (
	OutcomeNone     Outcome = iota // nothing was being dragged
	OutcomeProposed                // hand the interval to the caller for confirmation
	OutcomeRejected                // overlap; nothing changes
)

// Result is returned when a gesture ends.
type Result struct {
	Outcome   Outcome
	Kind      Kind
	Selection task.Selection
	Err       error
	// Overlaps is set on resize proposals that collide with another period
	// of the same task. The confirmation form refuses to save them.
	Overlaps bool
}

// PreviewDay is one day of a live drag preview.
type PreviewDay struct {
	Index    int
	Date     string
	Occupied bool
}

// Machine is the drag state machine: Idle until a Begin call, Dragging until
// Release or Cancel.
type Machine struct {
	grid  Grid
	state *State
}

// NewMachine returns an idle machine over grid.
func NewMachine(grid Grid) *Machine {
	return &Machine{grid: grid}
}

// Grid returns the machine's grid.
func (m *Machine) Grid() Grid {
	return m.grid
}

// SetGrid replaces the grid. An active drag is cancelled because its
// indices belong to the old window.
func (m *Machine) SetGrid(g Grid) {
	if m.state != nil {
		m.Cancel()
	}
	m.grid = g
}

// Dragging reports whether a drag is active.
func (m *Machine) Dragging() bool {
	return m.state != nil
}

// State returns a copy of the active drag state.
func (m *Machine) State() (State, bool) {
	if m.state == nil {
		return State{}, false
	}
	return *m.state, true
}

// BeginSelection starts a new-selection drag from an empty cell.
func (m *Machine) BeginSelection(taskID string, x int) (Candidate, error) {
	if m.state != nil {
		return Candidate{}, ErrAlreadyDragging
	}
	i := m.grid.IndexAt(x)
	m.state = &State{
		Kind:    KindNewSelection,
		TaskID:  taskID,
		Anchor:  i,
		Current: i,
		AnchorX: x,
	}
	m.logTransition("DRAG_BEGIN")
	return m.candidate(), nil
}

// BeginResize starts dragging one edge of p. edge must be ZoneStartHandle
// or ZoneEndHandle and that edge must be inside the window.
func (m *Machine) BeginResize(taskID string, p task.Period, edge Zone, x int) (Candidate, error) {
	if m.state != nil {
		return Candidate{}, ErrAlreadyDragging
	}
	start, end, ok := m.grid.Span(p)
	if !ok {
		debuglog.Warn("resize refused: malformed period", map[string]any{
			"period": p.ID,
			"start":  p.StartDate,
			"end":    p.EndDate,
		})
		return Candidate{}, ErrMalformedPeriod
	}

	st := &State{TaskID: taskID, PeriodID: p.ID, AnchorX: x}
	switch edge {
	case ZoneStartHandle:
		if start < 0 || start > m.grid.Last() {
			return Candidate{}, ErrHandleHidden
		}
		st.Kind = KindResizeStart
		st.Anchor, st.Current, st.Fixed = start, start, end
	case ZoneEndHandle:
		if end < 0 || end > m.grid.Last() {
			return Candidate{}, ErrHandleHidden
		}
		st.Kind = KindResizeEnd
		st.Anchor, st.Current, st.Fixed = end, end, start
	default:
		return Candidate{}, ErrNotAHandle
	}

	m.state = st
	m.logTransition("DRAG_BEGIN")
	return m.candidate(), nil
}

// Move updates the drag for a pointer at content column x and returns the
// clamped candidate. ok is false when idle.
func (m *Machine) Move(x int) (Candidate, bool) {
	if m.state == nil {
		return Candidate{}, false
	}
	st := m.state
	next := st.Anchor + m.grid.DaysForDelta(x-st.AnchorX)

	switch st.Kind {
	case KindNewSelection:
		next = m.grid.Clamp(next)
	case KindResizeStart:
		// at least one day long, never before the first visible day
		next = clamp(next, 0, min(st.Fixed, m.grid.Last()))
	case KindResizeEnd:
		next = clamp(next, max(st.Fixed, 0), m.grid.Last())
	}
	st.Current = next
	return m.candidate(), true
}

// Candidate returns the live interval of the active drag.
func (m *Machine) Candidate() (Candidate, bool) {
	if m.state == nil {
		return Candidate{}, false
	}
	return m.candidate(), true
}

// Preview lists the candidate's days, marking those already covered by
// another period in existing.
func (m *Machine) Preview(existing []task.Period) []PreviewDay {
	c, ok := m.Candidate()
	if !ok {
		return nil
	}
	occupied := occupancy.OccupiedSet(existing, c.PeriodID)
	out := make([]PreviewDay, 0, c.EndIndex-c.StartIndex+1)
	for i := c.StartIndex; i <= c.EndIndex; i++ {
		d := m.grid.DateString(i)
		_, taken := occupied[d]
		out = append(out, PreviewDay{Index: i, Date: d, Occupied: taken})
	}
	return out
}

// Release ends the drag. New selections that overlap a period in existing
// are rejected; every other gesture is proposed to the caller.
func (m *Machine) Release(existing []task.Period) Result {
	if m.state == nil {
		return Result{Outcome: OutcomeNone}
	}
	c := m.candidate()
	m.state = nil

	res := Result{Kind: c.Kind, Selection: c.Selection()}
	switch c.Kind {
	case KindNewSelection:
		if occupancy.HasOverlap(res.Selection.Range(), existing, "") {
			res.Outcome = OutcomeRejected
			res.Err = task.ErrPeriodOverlap
		} else {
			res.Outcome = OutcomeProposed
		}
	default:
		res.Outcome = OutcomeProposed
		res.Overlaps = occupancy.HasOverlap(res.Selection.Range(), existing, c.PeriodID)
	}

	debuglog.Log("DRAG_RELEASE", map[string]any{
		"kind":    c.Kind.String(),
		"task":    c.TaskID,
		"period":  c.PeriodID,
		"start":   c.StartDate,
		"end":     c.EndDate,
		"outcome": int(res.Outcome),
	})
	return res
}

// Cancel drops the active drag without producing an interval.
// Reports whether a drag was active.
func (m *Machine) Cancel() bool {
	if m.state == nil {
		return false
	}
	m.logTransition("DRAG_CANCEL")
	m.state = nil
	return true
}

// SelectDay is the keyboard equivalent of a one-cell click: it proposes
// day i unless the day is already occupied.
func (m *Machine) SelectDay(taskID string, i int, existing []task.Period) Result {
	i = m.grid.Clamp(i)
	date := m.grid.DateString(i)
	sel := task.Selection{TaskID: taskID, StartDate: date, EndDate: date}
	if occupancy.IsDateOccupied(date, existing, "") {
		return Result{Outcome: OutcomeRejected, Kind: KindNewSelection, Selection: sel, Err: task.ErrDateOccupied}
	}
	return Result{Outcome: OutcomeProposed, Kind: KindNewSelection, Selection: sel}
}

func (m *Machine) candidate() Candidate {
	st := m.state
	c := Candidate{Kind: st.Kind, TaskID: st.TaskID, PeriodID: st.PeriodID}
	switch st.Kind {
	case KindNewSelection:
		c.StartIndex, c.EndIndex = min(st.Anchor, st.Current), max(st.Anchor, st.Current)
	case KindResizeStart:
		c.StartIndex, c.EndIndex = st.Current, st.Fixed
	case KindResizeEnd:
		c.StartIndex, c.EndIndex = st.Fixed, st.Current
	}
	c.StartDate = m.grid.DateString(c.StartIndex)
	c.EndDate = m.grid.DateString(c.EndIndex)
	return c
}

func (m *Machine) logTransition(event string) {
	if !debuglog.Enabled() || m.state == nil {
		return
	}
	debuglog.Log(event, map[string]any{
		"kind":    m.state.Kind.String(),
		"task":    m.state.TaskID,
		"period":  m.state.PeriodID,
		"anchor":  m.state.Anchor,
		"current": m.state.Current,
	})
}
