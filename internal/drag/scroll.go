package drag

import "time"

// Direction of an auto-scroll.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the signed column delta for one scroll step.
func (d Direction) Delta(step int) int {
	switch d {
	case DirLeft:
		return -step
	case DirRight:
		return step
	default:
		return 0
	}
}

// Default auto-scroll tuning.
const (
	DefaultScrollStep     = 2
	DefaultScrollInterval = 50 * time.Millisecond
	DefaultEdgeZone       = 4
)

// ScrollConfig tunes edge auto-scroll.
type ScrollConfig struct {
	Step     int           // columns per tick
	Interval time.Duration // time between ticks
	EdgeZone int           // columns from each viewport edge that trigger scrolling
}

// DefaultScrollConfig returns the default tuning.
func DefaultScrollConfig() ScrollConfig {
	return ScrollConfig{
		Step:     DefaultScrollStep,
		Interval: DefaultScrollInterval,
		EdgeZone: DefaultEdgeZone,
	}
}

// Zone returns the scroll direction for a pointer at screen column x over a
// viewport spanning [left, right). Outside both edge zones it is DirNone.
func (c ScrollConfig) Zone(x, left, right int) Direction {
	if c.EdgeZone <= 0 || right <= left {
		return DirNone
	}
	if x < left+c.EdgeZone {
		return DirLeft
	}
	if x >= right-c.EdgeZone {
		return DirRight
	}
	return DirNone
}

// Tick is one scheduled auto-scroll step. A tick whose Seq is no longer
// current belongs to a stopped loop and must be dropped.
type Tick struct {
	Dir Direction
	Seq uint64
}

// Scroller tracks the single repeating auto-scroll loop. At most one loop
// is live: starting a new direction or stopping invalidates every tick
// already in flight.
type Scroller struct {
	dir Direction
	seq uint64
}

// Start begins scrolling in dir. Starting the direction already running is
// a no-op and returns false, so the caller must not schedule another tick.
// DirNone is the same as Stop.
func (s *Scroller) Start(dir Direction) (Tick, bool) {
	if dir == DirNone {
		s.Stop()
		return Tick{}, false
	}
	if dir == s.dir {
		return Tick{}, false
	}
	s.seq++
	s.dir = dir
	return Tick{Dir: dir, Seq: s.seq}, true
}

// Stop ends the loop. Safe to call when idle.
func (s *Scroller) Stop() {
	if s.dir == DirNone {
		return
	}
	s.seq++
	s.dir = DirNone
}

// Running reports whether a loop is live.
func (s *Scroller) Running() bool {
	return s.dir != DirNone
}

// Direction returns the live direction.
func (s *Scroller) Direction() Direction {
	return s.dir
}

// Accept reports whether t belongs to the live loop. Only accepted ticks
// scroll and reschedule.
func (s *Scroller) Accept(t Tick) bool {
	return s.dir != DirNone && t.Seq == s.seq && t.Dir == s.dir
}

// Update switches the loop to match a pointer now in zone dir: it starts,
// restarts or stops as needed. ok is true when a fresh tick must be
// scheduled.
func (s *Scroller) Update(dir Direction) (Tick, bool) {
	if dir == DirNone {
		s.Stop()
		return Tick{}, false
	}
	return s.Start(dir)
}
