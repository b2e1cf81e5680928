// Package session implements the interactive state machine that owns the
// board, the mode, and the run statistics. It is pure: the front end feeds
// it commands and ticks, and reads its state back to render.
package session

import (
	"fmt"

	"golife/internal/core"
	"golife/internal/life"
	"golife/internal/pattern"
)

// Mode identifies the active session state.
type Mode int

const (
	ModeRunning Mode = iota
	ModePaused
	ModeEditing
	ModeBrowsing
	ModePlacing
)

// Lines reserved around the pattern list: the header block when one is
// rendered (one line otherwise), and the instruction footer.
const (
	browseHeaderHeight      = 3
	browseBareHeight        = 1
	browseInstructionHeight = 3
)

// Point is a board coordinate.
type Point struct {
	Row int
	Col int
}

// EditState is the sub-state of ModeEditing.
type EditState struct {
	Cursor Point
}

// BrowseState is the sub-state of ModeBrowsing. QueryCursor is a rune index
// into Query.
type BrowseState struct {
	Searching   bool
	Query       string
	QueryCursor int
	Selected    int
	Scroll      int
}

// PlaceState is the sub-state of ModePlacing.
type PlaceState struct {
	Cursor   Point
	Rotation int
	Flipped  bool
	Name     string
}

// Config holds the fixed parameters of a session.
type Config struct {
	Rows             int
	Cols             int
	Density          float64
	Torus            bool
	Endless          bool
	KeepAlive        bool
	HeaderShown      bool // whether the front end renders a header line
	StagnationWindow int  // 0 disables stagnation detection
}

// Stats reports the progress counters of the current run.
type Stats struct {
	Game          int
	Generation    int
	MaxGeneration int
	Alive         int
	AliveDelta    int
}

// Session is the single owner of the board, history, and mode. It is not
// safe for concurrent use; drive it from one loop.
type Session struct {
	cfg     Config
	rng     *core.RNG
	library *pattern.Library

	board   *core.Grid
	history *core.History
	torus   bool

	mode   Mode
	edit   EditState
	browse BrowseState
	place  PlaceState

	game          int
	generation    int
	maxGeneration int
	alive         int
	prevAlive     int

	finished   bool
	deadReason string
	folded     bool
	status     string
}

// New creates a session in the Running state with a freshly seeded board.
func New(cfg Config, lib *pattern.Library, rng *core.RNG) *Session {
	s := &Session{
		cfg:     cfg,
		rng:     rng,
		library: lib,
		history: core.NewHistory(cfg.StagnationWindow),
		torus:   cfg.Torus,
		game:    1,
	}
	s.board = life.NewBoard(cfg.Rows, cfg.Cols, cfg.Density, rng)
	s.alive = s.board.CountAlive()
	s.prevAlive = s.alive
	return s
}

// Board returns the live board. Callers must treat it as read-only.
func (s *Session) Board() *core.Grid { return s.board }

// Mode returns the active state.
func (s *Session) Mode() Mode { return s.mode }

// Edit returns the editing sub-state.
func (s *Session) Edit() EditState { return s.edit }

// Browse returns the browsing sub-state.
func (s *Session) Browse() BrowseState { return s.browse }

// Place returns the placement sub-state.
func (s *Session) Place() PlaceState { return s.place }

// Torus reports whether the board currently wraps.
func (s *Session) Torus() bool { return s.torus }

// Finished reports whether the session has ended.
func (s *Session) Finished() bool { return s.finished }

// DeadReason returns why the run ended, or "" if it has not.
func (s *Session) DeadReason() string { return s.deadReason }

// Status returns the transient status message, if any.
func (s *Session) Status() string { return s.status }

// Library returns the pattern library.
func (s *Session) Library() *pattern.Library { return s.library }

// Stats returns the current run counters. The running maximum includes the
// in-progress game.
func (s *Session) Stats() Stats {
	maxGen := s.maxGeneration
	if !s.folded && s.generation > maxGen {
		maxGen = s.generation
	}
	return Stats{
		Game:          s.game,
		Generation:    s.generation,
		MaxGeneration: maxGen,
		Alive:         s.alive,
		AliveDelta:    s.alive - s.prevAlive,
	}
}

// FilteredNames returns the library names matching the current search query.
func (s *Session) FilteredNames() []string {
	return s.library.Filter(s.browse.Query)
}

// PlacingPattern returns the selected pattern with the placement transforms
// applied: flip first, then rotation.
func (s *Session) PlacingPattern() pattern.Pattern {
	p, ok := s.library.Get(s.place.Name)
	if !ok {
		return nil
	}
	return pattern.Transform(p, s.place.Rotation, s.place.Flipped)
}

// Tick performs one running-mode iteration: evaluate the dead condition, and
// if the run survives, advance one generation and record its alive count.
// Outside Running it does nothing.
func (s *Session) Tick() {
	if s.mode != ModeRunning || s.finished {
		return
	}
	stagnated := s.history.Full() && core.IsCyclical(s.history.Values())
	if (s.alive == 0 && !s.cfg.KeepAlive) || stagnated {
		s.die(stagnated)
		return
	}
	s.advance()
}

// Apply dispatches one command against the active state. Every command is
// accepted in every state; unhandled pairs are ignored.
func (s *Session) Apply(in Input) {
	if s.finished {
		return
	}
	s.status = ""
	switch s.mode {
	case ModeRunning:
		s.applyRunning(in)
	case ModePaused:
		s.applyPaused(in)
	case ModeEditing:
		s.applyEditing(in)
	case ModeBrowsing:
		s.applyBrowsing(in)
	case ModePlacing:
		s.applyPlacing(in)
	}
}

// Finish folds the in-progress generation into the running maximum so final
// statistics are correct even on interrupt.
func (s *Session) Finish() {
	s.foldGeneration(s.generation)
	s.finished = true
}

func (s *Session) applyRunning(in Input) {
	switch in.Cmd {
	case CmdPause:
		s.history.Clear()
		s.mode = ModePaused
	case CmdRestart:
		s.restart()
	case CmdToggleTorus:
		s.toggleTorus()
	default:
		// Anything else is an advance while running.
		s.Tick()
	}
}

func (s *Session) applyPaused(in Input) {
	switch in.Cmd {
	case CmdPause:
		s.mode = ModeRunning
	case CmdEdit:
		s.history.Clear()
		s.edit = EditState{Cursor: Point{Row: s.board.Rows / 2, Col: s.board.Cols / 2}}
		s.mode = ModeEditing
	case CmdPatternMenu:
		s.history.Clear()
		s.browse = BrowseState{}
		s.mode = ModeBrowsing
	case CmdRestart:
		s.restart()
	case CmdToggleTorus:
		s.toggleTorus()
	}
}

func (s *Session) applyEditing(in Input) {
	switch in.Cmd {
	case CmdUp, CmdDown, CmdLeft, CmdRight:
		s.edit.Cursor = s.moveClamped(s.edit.Cursor, in.Cmd)
	case CmdSelect:
		cur := s.edit.Cursor
		s.board.Set(cur.Row, cur.Col, !s.board.Get(cur.Row, cur.Col))
		s.alive = s.board.CountAlive()
	case CmdEdit, CmdCancel:
		s.mode = ModePaused
	}
}

func (s *Session) applyBrowsing(in Input) {
	if s.browse.Searching {
		s.applySearching(in)
		return
	}
	switch in.Cmd {
	case CmdUp:
		s.moveSelection(-1)
	case CmdDown:
		s.moveSelection(1)
	case CmdSelect:
		names := s.FilteredNames()
		if len(names) == 0 {
			return
		}
		s.place = PlaceState{
			Cursor: Point{Row: s.board.Rows / 2, Col: s.board.Cols / 2},
			Name:   names[s.browse.Selected],
		}
		s.mode = ModePlacing
	case CmdSearch:
		s.browse.Searching = true
		s.setQuery("", 0)
	case CmdCancel, CmdPatternMenu:
		s.mode = ModePaused
	}
}

func (s *Session) applySearching(in Input) {
	b := &s.browse
	q := []rune(b.Query)
	cur := b.QueryCursor
	if cur > len(q) {
		cur = len(q)
	}
	switch in.Cmd {
	case CmdChar:
		q = append(q[:cur], append([]rune{in.Char}, q[cur:]...)...)
		s.setQuery(string(q), cur+1)
	case CmdBackspace:
		if cur > 0 {
			q = append(q[:cur-1], q[cur:]...)
			s.setQuery(string(q), cur-1)
		}
	case CmdDelete:
		if cur < len(q) {
			q = append(q[:cur], q[cur+1:]...)
			s.setQuery(string(q), cur)
		}
	case CmdLeft:
		if cur > 0 {
			b.QueryCursor = cur - 1
		}
	case CmdRight:
		if cur < len(q) {
			b.QueryCursor = cur + 1
		}
	case CmdEnter:
		b.Searching = false
	case CmdCancel:
		b.Searching = false
		s.setQuery("", 0)
	}
}

func (s *Session) applyPlacing(in Input) {
	switch in.Cmd {
	case CmdUp, CmdDown, CmdLeft, CmdRight:
		s.place.Cursor = s.moveClamped(s.place.Cursor, in.Cmd)
	case CmdRotate:
		s.place.Rotation = (s.place.Rotation + 90) % 360
	case CmdFlip:
		s.place.Flipped = !s.place.Flipped
	case CmdSelect:
		s.stamp()
		s.mode = ModePaused
	case CmdCancel, CmdPatternMenu:
		s.mode = ModePaused
	}
}

// SavePattern extracts the board's live cells and appends them to the
// library under the given name. Only meaningful while editing.
func (s *Session) SavePattern(name string) error {
	p := pattern.Extract(s.board)
	if err := s.library.Add(name, p); err != nil {
		s.status = err.Error()
		return err
	}
	s.status = fmt.Sprintf("saved pattern %q", name)
	return nil
}

// SetStatus replaces the transient status message.
func (s *Session) SetStatus(msg string) { s.status = msg }

func (s *Session) advance() {
	s.board = life.Next(s.board, s.torus)
	s.generation++
	s.prevAlive = s.alive
	s.alive = s.board.CountAlive()
	s.history.Push(s.alive)
}

func (s *Session) die(stagnated bool) {
	effective := s.generation
	if stagnated {
		// The cycle was already present a full window ago.
		effective -= s.cfg.StagnationWindow
		s.deadReason = "Stagnation detected."
	} else {
		s.deadReason = "All cells are dead."
	}
	s.foldGeneration(effective)
	if s.cfg.Endless {
		s.deadReason = ""
		s.restart()
		return
	}
	s.finished = true
}

func (s *Session) restart() {
	s.foldGeneration(s.generation)
	s.game++
	s.board = life.NewBoard(s.cfg.Rows, s.cfg.Cols, s.cfg.Density, s.rng)
	s.generation = 0
	s.alive = s.board.CountAlive()
	s.prevAlive = s.alive
	s.history.Clear()
	s.folded = false
	s.mode = ModeRunning
}

func (s *Session) toggleTorus() {
	s.torus = !s.torus
	// The rule changed, so the accumulated counts are no longer evidence.
	s.history.Clear()
}

func (s *Session) foldGeneration(gen int) {
	if s.folded {
		return
	}
	if gen > s.maxGeneration {
		s.maxGeneration = gen
	}
	s.folded = true
}

func (s *Session) moveClamped(p Point, cmd Command) Point {
	switch cmd {
	case CmdUp:
		p.Row--
	case CmdDown:
		p.Row++
	case CmdLeft:
		p.Col--
	case CmdRight:
		p.Col++
	}
	p.Row = clamp(p.Row, 0, s.board.Rows-1)
	p.Col = clamp(p.Col, 0, s.board.Cols-1)
	return p
}

func (s *Session) moveSelection(delta int) {
	names := s.FilteredNames()
	if len(names) == 0 {
		s.browse.Selected, s.browse.Scroll = 0, 0
		return
	}
	s.browse.Selected = clamp(s.browse.Selected+delta, 0, len(names)-1)
	s.scrollToSelection(len(names))
}

// BrowseViewport returns how many pattern rows fit between the header and
// the instruction footer.
func (s *Session) BrowseViewport() int {
	head := browseBareHeight
	if s.cfg.HeaderShown {
		head = browseHeaderHeight
	}
	visible := s.board.Rows - head - browseInstructionHeight
	if visible < 1 {
		visible = 1
	}
	return visible
}

// scrollToSelection keeps the selected row inside the list viewport.
func (s *Session) scrollToSelection(total int) {
	visible := s.BrowseViewport()
	b := &s.browse
	if b.Selected < b.Scroll {
		b.Scroll = b.Selected
	} else if b.Selected >= b.Scroll+visible {
		b.Scroll = b.Selected - visible + 1
	}
	if b.Scroll > total-visible {
		b.Scroll = total - visible
	}
	if b.Scroll < 0 {
		b.Scroll = 0
	}
}

func (s *Session) setQuery(q string, cursor int) {
	if q != s.browse.Query {
		s.browse.Selected, s.browse.Scroll = 0, 0
	}
	s.browse.Query = q
	s.browse.QueryCursor = cursor
}

func (s *Session) stamp() {
	p := s.PlacingPattern()
	if len(p) == 0 {
		return
	}
	cur := s.place.Cursor
	for _, cell := range p {
		r, c := cur.Row+cell.Row, cur.Col+cell.Col
		if s.board.InBounds(r, c) {
			s.board.Set(r, c, true)
		}
	}
	s.alive = s.board.CountAlive()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
