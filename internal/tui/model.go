// Package tui provides the terminal user interface for gantt.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gantt/internal/config"
	"github.com/javiermolinar/gantt/internal/dateutil"
	"github.com/javiermolinar/gantt/internal/drag"
	"github.com/javiermolinar/gantt/internal/store"
	"github.com/javiermolinar/gantt/internal/task"
	"github.com/javiermolinar/gantt/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeRename      // inline task name editor
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalPeriodForm
	ModalConfirmDelete
)

// Cursor is the keyboard cell cursor: a task row and a window day index.
type Cursor struct {
	Row int
	Day int
}

// changeTracker counts board mutations since the last snapshot. It is
// shared by every copy of the Model.
type changeTracker struct {
	unsaved int
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store  *store.Store
	repo   task.Repository
	config *config.Config
	now    func() time.Time

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Timeline geometry and drag state
	today     time.Time
	grid      drag.Grid
	machine   *drag.Machine
	scroller  drag.Scroller
	scrollCfg drag.ScrollConfig
	viewport  drag.Viewport
	lastX     int // pointer column relative to the timeline's left edge

	// State
	cursor    Cursor
	rowOffset int
	mode      Mode
	modalType ModalType

	// Period form
	form periodForm

	// Inline name editor
	nameInput      textinput.Model
	renameTaskID   string
	renameWasEmpty bool

	changes     *changeTracker
	unsubscribe func()

	// Terminal dimensions and layout
	width  int
	height int
	layout LayoutCache

	// Messages
	statusMsg   string
	statusError bool
	statusTime  time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithRepository enables snapshot save and load.
func WithRepository(repo task.Repository) ModelOption {
	return func(m *Model) {
		m.repo = repo
	}
}

// WithNow replaces the clock.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// New creates a new TUI model over s.
func New(s *store.Store, cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	interval, err := cfg.ScrollInterval()
	if err != nil {
		interval = drag.DefaultScrollInterval
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "Task name"
	nameInput.CharLimit = 120
	nameInput.Prompt = ""
	nameInput.TextStyle = styles.NameEditTextStyle
	nameInput.PlaceholderStyle = styles.NameEmptyStyle.Background(styles.colorBgHighlight)
	nameInput.Cursor.Style = styles.NameCursorStyle

	m := &Model{
		store:  s,
		config: cfg,
		now:    time.Now,
		theme:  t,
		styles: styles,
		scrollCfg: drag.ScrollConfig{
			Step:     cfg.Drag.ScrollStep,
			Interval: interval,
			EdgeZone: cfg.Drag.EdgeZone,
		},
		mode:      ModeNormal,
		nameInput: nameInput,
		changes:   &changeTracker{},
	}

	for _, opt := range opts {
		opt(m)
	}

	m.today = dateutil.Today(m.now)
	first := dateutil.AddDays(m.today, -cfg.Timeline.DaysBeforeToday)
	m.grid = drag.NewGrid(first, cfg.Timeline.TotalDays, cfg.Drag.DayWidth, cfg.Drag.HandleWidth)
	m.machine = drag.NewMachine(m.grid)
	m.cursor = Cursor{Row: 0, Day: m.grid.Clamp(cfg.Timeline.DaysBeforeToday)}
	m.form = newPeriodForm(styles)

	tracker := m.changes
	m.unsubscribe = s.Subscribe(func(ev store.Event) {
		switch ev.Kind {
		case store.SelectionChanged, store.EditingChanged:
		case store.BoardReplaced:
			tracker.unsaved = 0
		default:
			tracker.unsaved++
		}
	})

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close releases the store subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Run starts the TUI.
func Run(s *store.Store, cfg *config.Config, opts ...ModelOption) error {
	model := New(s, cfg, opts...)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// tasks returns the board rows in display order.
func (m Model) tasks() []task.Task {
	return m.store.Tasks()
}

// cursorTask returns the task under the cursor row.
func (m Model) cursorTask() (task.Task, bool) {
	tasks := m.tasks()
	if m.cursor.Row < 0 || m.cursor.Row >= len(tasks) {
		return task.Task{}, false
	}
	return tasks[m.cursor.Row], true
}

// periodAt returns the period of t covering window day i.
func (m Model) periodAt(t task.Task, i int) (task.Period, bool) {
	for _, p := range t.Periods {
		start, end, ok := m.grid.Span(p)
		if !ok {
			continue
		}
		if i >= start && i <= end {
			return p, true
		}
	}
	return task.Period{}, false
}

// clampCursor keeps the cursor on an existing row and inside the window.
func (m *Model) clampCursor() {
	n := len(m.tasks())
	if m.cursor.Row >= n {
		m.cursor.Row = n - 1
	}
	if m.cursor.Row < 0 {
		m.cursor.Row = 0
	}
	m.cursor.Day = m.grid.Clamp(m.cursor.Day)
	m.ensureCursorVisible()
}

// ensureCursorVisible scrolls rows and days so the cursor cell is shown.
func (m *Model) ensureCursorVisible() {
	rows := m.layout.RowsH
	if rows > 0 {
		if m.cursor.Row < m.rowOffset {
			m.rowOffset = m.cursor.Row
		}
		if m.cursor.Row >= m.rowOffset+rows {
			m.rowOffset = m.cursor.Row - rows + 1
		}
	}
	if m.rowOffset < 0 {
		m.rowOffset = 0
	}
	dw := m.grid.DayWidth
	m.viewport.Reveal(m.cursor.Day*dw, (m.cursor.Day+1)*dw)
}

func (m *Model) setMode(mode Mode, reason string) {
	LogModeChange(m.mode, mode, reason)
	m.mode = mode
}
