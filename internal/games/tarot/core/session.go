package core

import (
	"fmt"
	"math/rand"
	"slices"
)

// Options configures a Session.
type Options struct {
	Width      int
	Height     int
	Seed       int64
	Pool       []Type // piece types the randomizer draws from
	Preview    int    // length of the next-piece queue
	HoldSlots  int
	StartLevel int
	Rules      Rules
	Listener   Listener
}

// DefaultOptions returns a 10x20 board with the standard pieces.
func DefaultOptions() Options {
	return Options{
		Width:      10,
		Height:     20,
		Pool:       StandardTypes(),
		Preview:    3,
		HoldSlots:  3,
		StartLevel: 1,
		Rules:      DefaultRules(),
	}
}

func (o Options) validate() {
	if o.Width < 4 || o.Height < 4 {
		panic(fmt.Sprintf("tarot: board %dx%d is smaller than 4x4", o.Width, o.Height))
	}
	if len(o.Pool) == 0 {
		panic("tarot: empty piece pool")
	}
	for _, t := range o.Pool {
		mustValidType(t)
	}
	if o.Preview < 0 || o.HoldSlots < 0 {
		panic("tarot: negative preview or hold size")
	}
}

// Stats is the scoring state of a session.
type Stats struct {
	Score          int
	Level          int
	Lines          int
	LinesThisLevel int
	LinesToLevel   int
	Combo          int
	Gold           int
	TSpins         int
	Pieces         int
	DropMs         int
}

// View is a read-only snapshot for renderers.
type View struct {
	Width, Height int
	Board         [][]Cell
	Active        Piece
	Ghost         Ghost
	Queue         []Type
	Held          []Type
	HoldUsed      bool
	Stats         Stats
	GameOver      bool
}

// Session owns one game: the board, the active piece, the preview queue,
// the hold slots and the score. It is not safe for concurrent use.
type Session struct {
	opts  Options
	rng   *rand.Rand
	board *Board

	active   Piece
	queue    []Type
	held     []Type
	holdUsed bool

	lastMoveRotation bool
	pendingTSpin     TSpinResult

	stats    Stats
	gameOver bool
}

// NewSession creates a session and spawns the first piece.
// It panics on invalid options.
func NewSession(opts Options) *Session {
	if opts.Rules == (Rules{}) {
		opts.Rules = DefaultRules()
	}
	if opts.StartLevel < 1 {
		opts.StartLevel = 1
	}
	opts.Pool = slices.Clone(opts.Pool)
	opts.validate()

	s := &Session{
		opts:  opts,
		board: NewBoard(opts.Width, opts.Height),
	}
	s.Reset(opts.Seed)
	return s
}

// Reset starts a new game with the given seed.
func (s *Session) Reset(seed int64) {
	s.opts.Seed = seed
	s.rng = rand.New(rand.NewSource(seed))
	s.board.Reset()
	s.queue = s.queue[:0]
	s.held = s.held[:0]
	s.holdUsed = false
	s.lastMoveRotation = false
	s.pendingTSpin = TSpinResult{}
	s.gameOver = false

	level := s.opts.StartLevel
	s.stats = Stats{
		Level:        level,
		LinesToLevel: s.opts.Rules.LinesToLevelUp(level),
		DropMs:       s.opts.Rules.DropInterval(level),
	}
	s.fillQueue()
	s.spawn(s.next())
}

// SetListener replaces the event listener.
func (s *Session) SetListener(l Listener) {
	s.opts.Listener = l
}

func (s *Session) emit(e Event) {
	if s.opts.Listener != nil {
		s.opts.Listener(e)
	}
}

func (s *Session) draw() Type {
	return s.opts.Pool[s.rng.Intn(len(s.opts.Pool))]
}

func (s *Session) fillQueue() {
	for len(s.queue) < max(s.opts.Preview, 1) {
		s.queue = append(s.queue, s.draw())
	}
}

func (s *Session) next() Type {
	t := s.queue[0]
	s.queue = append(s.queue[:0], s.queue[1:]...)
	s.fillQueue()
	return t
}

// spawnPiece places t at the top, horizontally centered.
func (s *Session) spawnPiece(t Type) Piece {
	w := ShapeFor(t, 0).Width()
	return NewPiece(t, (s.opts.Width-w)/2, 0)
}

func (s *Session) spawn(t Type) {
	s.active = s.spawnPiece(t)
	s.lastMoveRotation = false
	s.pendingTSpin = TSpinResult{}
	s.holdUsed = false
	if s.board.Collides(s.active) {
		s.endGame()
		return
	}
	s.emit(Event{Kind: EventSpawn, Piece: t})
}

func (s *Session) endGame() {
	s.gameOver = true
	s.emit(Event{Kind: EventGameOver, Piece: s.active.Type, Level: s.stats.Level})
}

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// Stats returns the current scoring state.
func (s *Session) Stats() Stats { return s.stats }

// Active returns a copy of the falling piece.
func (s *Session) Active() Piece { return s.active }

// Queue returns the upcoming piece types, next first.
func (s *Session) Queue() []Type {
	return slices.Clone(s.queue[:min(len(s.queue), s.opts.Preview)])
}

// Held returns the pieces in the hold slots.
func (s *Session) Held() []Type { return slices.Clone(s.held) }

// Board returns a copy of the playfield.
func (s *Session) Board() *Board { return s.board.Clone() }

// Ghost projects the active piece under the given policy.
func (s *Session) Ghost(policy CollisionPolicy) Ghost {
	return ProjectWith(s.active, s.board, policy)
}

// View captures everything a renderer needs.
func (s *Session) View(policy CollisionPolicy) View {
	return View{
		Width:    s.opts.Width,
		Height:   s.opts.Height,
		Board:    s.board.Snapshot(),
		Active:   s.active,
		Ghost:    s.Ghost(policy),
		Queue:    s.Queue(),
		Held:     s.Held(),
		HoldUsed: s.holdUsed,
		Stats:    s.stats,
		GameOver: s.gameOver,
	}
}

func (s *Session) translate(dx, dy int) bool {
	if s.gameOver {
		return false
	}
	moved := s.active
	moved.X += dx
	moved.Y += dy
	if s.board.Collides(moved) {
		return false
	}
	s.active = moved
	s.lastMoveRotation = false
	return true
}

// MoveLeft shifts the active piece left if there is room.
func (s *Session) MoveLeft() bool { return s.translate(-1, 0) }

// MoveRight shifts the active piece right if there is room.
func (s *Session) MoveRight() bool { return s.translate(1, 0) }

// SoftDrop moves the active piece down one row if there is room.
// It never locks; gravity does.
func (s *Session) SoftDrop() bool { return s.translate(0, 1) }

// RotateCW rotates the active piece clockwise.
func (s *Session) RotateCW() bool { return s.rotate(1) }

// RotateCCW rotates the active piece counter-clockwise.
func (s *Session) RotateCCW() bool { return s.rotate(-1) }

func (s *Session) rotate(dir int) bool {
	if s.gameOver {
		return false
	}
	kick, ok := s.active.RotateKick(s.board, dir)
	if !ok {
		return false
	}
	s.lastMoveRotation = true
	s.pendingTSpin = DetectTSpin(s.active, s.board, true)
	s.emit(Event{Kind: EventRotate, Piece: s.active.Type, Kick: kick})
	return true
}

// Gravity advances the active piece one row, locking it when it cannot fall.
// It reports whether a lock happened.
func (s *Session) Gravity() bool {
	if s.gameOver {
		return false
	}
	if s.translate(0, 1) {
		return false
	}
	s.lock()
	return true
}

// HardDrop drops the active piece to its landing row and locks it.
// It returns the number of rows dropped.
func (s *Session) HardDrop() int {
	if s.gameOver {
		return 0
	}
	g := Project(s.active, s.board)
	if g.Distance > 0 {
		s.active = g.Piece
		s.lastMoveRotation = false
	}
	s.lock()
	return g.Distance
}

// Hold pushes the active piece into the next free hold slot and spawns the
// next piece. Only one hold or swap is allowed per spawned piece.
func (s *Session) Hold() bool {
	if s.gameOver || s.holdUsed || len(s.held) >= s.opts.HoldSlots {
		return false
	}
	t := s.active.Type
	s.held = append(s.held, t)
	s.emit(Event{Kind: EventHold, Piece: t})
	s.spawn(s.next())
	s.holdUsed = true
	return true
}

// SwapHeld exchanges the active piece with hold slot i. The held piece
// re-enters at the spawn position; if it does not fit nothing changes.
func (s *Session) SwapHeld(i int) bool {
	if s.gameOver || s.holdUsed || i < 0 || i >= len(s.held) {
		return false
	}
	incoming := s.spawnPiece(s.held[i])
	if s.board.Collides(incoming) {
		return false
	}
	s.held[i] = s.active.Type
	s.active = incoming
	s.holdUsed = true
	s.lastMoveRotation = false
	s.pendingTSpin = TSpinResult{}
	s.emit(Event{Kind: EventHold, Piece: incoming.Type})
	return true
}

func (s *Session) lock() {
	p := s.active
	tspin := TSpinResult{}
	if s.lastMoveRotation {
		tspin = s.pendingTSpin
	}

	s.board.Merge(p)
	s.stats.Pieces++
	s.emit(Event{Kind: EventLock, Piece: p.Type})

	clr := s.board.ClearLinesDetailed()
	rules := s.opts.Rules
	points := 0
	if clr.Count > 0 {
		s.stats.Combo++
		points = rules.LinePoints(clr.Values, s.stats.Level, s.stats.Combo)
		s.stats.Lines += clr.Count
		s.stats.LinesThisLevel += clr.Count
		s.emit(Event{
			Kind:   EventLinesCleared,
			Piece:  p.Type,
			Lines:  clr.Count,
			Points: points,
			Combo:  s.stats.Combo,
			Level:  s.stats.Level,
		})
	} else {
		s.stats.Combo = 0
	}

	if tspin.IsTSpin {
		bonus := TSpinBonus(tspin, clr.Count)
		points += bonus
		s.stats.TSpins++
		s.emit(Event{Kind: EventTSpin, Piece: p.Type, Lines: clr.Count, Points: bonus, TSpin: tspin})
	}
	s.stats.Score += points

	if s.stats.LinesThisLevel >= s.stats.LinesToLevel {
		s.stats.Level++
		s.stats.LinesThisLevel = 0
		s.stats.LinesToLevel = rules.LinesToLevelUp(s.stats.Level)
		s.stats.DropMs = rules.DropInterval(s.stats.Level)
		gold := rules.GoldForLevel(s.stats.Level)
		s.stats.Gold += gold
		s.emit(Event{Kind: EventLevelUp, Level: s.stats.Level, Gold: gold})
	}

	if s.board.TopOut() {
		s.endGame()
		return
	}
	s.spawn(s.next())
}
