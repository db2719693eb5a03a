// Package store holds the editable board and notifies observers of every
// change.
//
// Commands apply synchronously and the last writer wins. Observers run after
// the mutation is visible and outside the store lock, so they may query the
// store freely.
package store

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/javiermolinar/gantt/internal/debuglog"
	"github.com/javiermolinar/gantt/internal/task"
)

// EventKind names a mutation.
type EventKind string

const (
	TaskAdded        EventKind = "task_added"
	TaskRenamed      EventKind = "task_renamed"
	TaskDeleted      EventKind = "task_deleted"
	PeriodAdded      EventKind = "period_added"
	PeriodUpdated    EventKind = "period_updated"
	PeriodDeleted    EventKind = "period_deleted"
	SelectionChanged EventKind = "selection_changed"
	EditingChanged   EventKind = "editing_changed"
	BoardReplaced    EventKind = "board_replaced"
)

// Event describes one applied mutation.
type Event struct {
	Kind     EventKind
	TaskID   string
	PeriodID string
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc replaces the ID generator. newID receives the prefix
// ("task" or "period").
func WithIDFunc(newID func(prefix string) string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// Store is the board state container.
type Store struct {
	mu        sync.RWMutex
	board     task.Board
	selection *task.Selection
	editingID string

	newID     func(prefix string) string
	observers map[int]func(Event)
	nextObs   int
}

// New returns a store holding a copy of board.
func New(board task.Board, opts ...Option) *Store {
	s := &Store{
		board:     board.Clone(),
		newID:     defaultID,
		observers: make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func defaultID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Subscribe registers fn for every subsequent event and returns a function
// that removes it.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *Store) emit(ev Event) {
	s.mu.RLock()
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(Event), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.observers[id])
	}
	s.mu.RUnlock()

	debuglog.Log("STORE_EVENT", map[string]any{
		"kind":   string(ev.Kind),
		"task":   ev.TaskID,
		"period": ev.PeriodID,
	})
	for _, fn := range fns {
		fn(ev)
	}
}

// Queries

// Board returns a deep copy of the whole board.
func (s *Store) Board() task.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Clone()
}

// Tasks returns copies of all tasks in display order.
func (s *Store) Tasks() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]task.Task, len(s.board.Tasks))
	for i, t := range s.board.Tasks {
		out[i] = t.Clone()
	}
	return out
}

// Task returns a copy of the task with id.
func (s *Store) Task(id string) (task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.taskIndex(id)
	if i < 0 {
		return task.Task{}, false
	}
	return s.board.Tasks[i].Clone(), true
}

// Tags returns the tag reference data.
func (s *Store) Tags() []task.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.board.Tags)
}

// Tag returns the tag with id.
func (s *Store) Tag(id string) (task.Tag, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.board.Tags {
		if t.ID == id {
			return t, true
		}
	}
	return task.Tag{}, false
}

// TagColor returns the color of tag id, or task.DefaultTagColor when the
// tag is unknown or has no color.
func (s *Store) TagColor(id string) string {
	if t, ok := s.Tag(id); ok && t.Color != "" {
		return t.Color
	}
	return task.DefaultTagColor
}

// PeriodByID returns the period with id and the ID of the task owning it.
func (s *Store) PeriodByID(id string) (task.Period, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ti, pi := s.periodIndex(id)
	if ti < 0 {
		return task.Period{}, "", false
	}
	return s.board.Tasks[ti].Periods[pi], s.board.Tasks[ti].ID, true
}

// Selection returns the current selection, if any.
func (s *Store) Selection() (task.Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selection == nil {
		return task.Selection{}, false
	}
	return *s.selection, true
}

// EditingTaskID returns the task whose name is being edited inline, or "".
func (s *Store) EditingTaskID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editingID
}

// Commands

// AddTask appends a task named name and returns its ID. Empty names are
// allowed; the inline editor fills them in.
func (s *Store) AddTask(name string) string {
	s.mu.Lock()
	id := s.newID("task")
	s.board.Tasks = append(s.board.Tasks, task.Task{
		ID:      id,
		Name:    task.NormalizeName(name),
		Periods: []task.Period{},
	})
	s.mu.Unlock()

	s.emit(Event{Kind: TaskAdded, TaskID: id})
	return id
}

// RenameTask sets the task's name. An empty name deletes the task.
func (s *Store) RenameTask(id, name string) error {
	name = task.NormalizeName(name)
	if name == "" {
		return s.DeleteTask(id)
	}

	s.mu.Lock()
	i := s.taskIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return task.ErrTaskNotFound
	}
	s.board.Tasks[i].Name = name
	s.mu.Unlock()

	s.emit(Event{Kind: TaskRenamed, TaskID: id})
	return nil
}

// DeleteTask removes the task and its periods. A selection or inline edit
// targeting the task is cleared.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	i := s.taskIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return task.ErrTaskNotFound
	}
	s.board.Tasks = slices.Delete(s.board.Tasks, i, i+1)
	if s.selection != nil && s.selection.TaskID == id {
		s.selection = nil
	}
	if s.editingID == id {
		s.editingID = ""
	}
	s.mu.Unlock()

	s.emit(Event{Kind: TaskDeleted, TaskID: id})
	return nil
}

// AddPeriod validates in and appends a new period to the task.
// Overlap with sibling periods is the caller's responsibility.
func (s *Store) AddPeriod(taskID string, in task.PeriodInput) (task.Period, error) {
	if err := in.Validate(); err != nil {
		return task.Period{}, err
	}

	s.mu.Lock()
	i := s.taskIndex(taskID)
	if i < 0 {
		s.mu.Unlock()
		return task.Period{}, task.ErrTaskNotFound
	}
	p := in.Apply(task.Period{ID: s.newID("period")})
	s.board.Tasks[i].Periods = append(s.board.Tasks[i].Periods, p)
	s.mu.Unlock()

	s.emit(Event{Kind: PeriodAdded, TaskID: taskID, PeriodID: p.ID})
	return p, nil
}

// UpdatePeriod validates in and writes it over the period's fields.
func (s *Store) UpdatePeriod(periodID string, in task.PeriodInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	ti, pi := s.periodIndex(periodID)
	if ti < 0 {
		s.mu.Unlock()
		return task.ErrPeriodNotFound
	}
	t := &s.board.Tasks[ti]
	t.Periods[pi] = in.Apply(t.Periods[pi])
	taskID := t.ID
	s.mu.Unlock()

	s.emit(Event{Kind: PeriodUpdated, TaskID: taskID, PeriodID: periodID})
	return nil
}

// DeletePeriod removes the period.
func (s *Store) DeletePeriod(periodID string) error {
	s.mu.Lock()
	ti, pi := s.periodIndex(periodID)
	if ti < 0 {
		s.mu.Unlock()
		return task.ErrPeriodNotFound
	}
	t := &s.board.Tasks[ti]
	t.Periods = slices.Delete(t.Periods, pi, pi+1)
	taskID := t.ID
	if s.selection != nil && s.selection.PeriodID == periodID {
		s.selection = nil
	}
	s.mu.Unlock()

	s.emit(Event{Kind: PeriodDeleted, TaskID: taskID, PeriodID: periodID})
	return nil
}

// SetSelection replaces the selection. nil clears it.
func (s *Store) SetSelection(sel *task.Selection) {
	s.mu.Lock()
	var taskID string
	if sel == nil {
		s.selection = nil
	} else {
		c := *sel
		s.selection = &c
		taskID = c.TaskID
	}
	s.mu.Unlock()

	s.emit(Event{Kind: SelectionChanged, TaskID: taskID})
}

// UpdateSelection moves the ends of the current selection and, when taskID
// is not empty, its task. It does nothing when there is no selection.
func (s *Store) UpdateSelection(start, end, taskID string) {
	s.mu.Lock()
	if s.selection == nil {
		s.mu.Unlock()
		return
	}
	s.selection.StartDate = start
	s.selection.EndDate = end
	if taskID != "" {
		s.selection.TaskID = taskID
	}
	id := s.selection.TaskID
	s.mu.Unlock()

	s.emit(Event{Kind: SelectionChanged, TaskID: id})
}

// ClearSelection drops the selection.
func (s *Store) ClearSelection() {
	s.SetSelection(nil)
}

// SetEditingTaskID marks the task whose name is being edited. "" clears it.
func (s *Store) SetEditingTaskID(id string) {
	s.mu.Lock()
	s.editingID = id
	s.mu.Unlock()

	s.emit(Event{Kind: EditingChanged, TaskID: id})
}

// Replace swaps in a new board and drops transient selection and editing
// state.
func (s *Store) Replace(board task.Board) {
	s.mu.Lock()
	s.board = board.Clone()
	s.selection = nil
	s.editingID = ""
	s.mu.Unlock()

	s.emit(Event{Kind: BoardReplaced})
}

func (s *Store) taskIndex(id string) int {
	return slices.IndexFunc(s.board.Tasks, func(t task.Task) bool {
		return t.ID == id
	})
}

func (s *Store) periodIndex(id string) (ti, pi int) {
	for ti, t := range s.board.Tasks {
		for pi, p := range t.Periods {
			if p.ID == id {
				return ti, pi
			}
		}
	}
	return -1, -1
}
