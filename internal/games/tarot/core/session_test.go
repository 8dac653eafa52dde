package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, mutate func(*Options)) (*Session, *[]Event) {
	t.Helper()
	opts := DefaultOptions()
	opts.Seed = 7
	if mutate != nil {
		mutate(&opts)
	}
	s := NewSession(opts)
	var events []Event
	s.SetListener(func(e Event) { events = append(events, e) })
	return s, &events
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestSessionSpawnsCentered(t *testing.T) {
	s, _ := newTestSession(t, nil)

	p := s.Active()
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, 0, p.Rotation)
	assert.Equal(t, (10-p.Shape().Width())/2, p.X)
	assert.Len(t, s.Queue(), 3)
	assert.Empty(t, s.Held())
	assert.Equal(t, Stats{Level: 1, LinesToLevel: 10, DropMs: 500}, s.Stats())
}

func TestSessionDeterministicForSeed(t *testing.T) {
	run := func() View {
		s, _ := newTestSession(t, func(o *Options) { o.Seed = 42 })
		for i := 0; i < 12 && !s.GameOver(); i++ {
			if i%3 == 0 {
				s.RotateCW()
			}
			if i%2 == 0 {
				s.MoveLeft()
			}
			s.HardDrop()
		}
		return s.View(PolicySolid)
	}
	assert.Equal(t, run(), run())
}

// oPieceSession is a 4x6 board where only O pieces spawn at columns 1-2.
func oPieceSession(t *testing.T, mutate func(*Options)) (*Session, *[]Event) {
	return newTestSession(t, func(o *Options) {
		o.Width, o.Height = 4, 6
		o.Pool = []Type{TypeO}
		if mutate != nil {
			mutate(o)
		}
	})
}

func prepareWell(s *Session) {
	for _, y := range []int{4, 5} {
		s.board.Set(0, y, CellOf(TypeI))
		s.board.Set(3, y, CellOf(TypeI))
	}
}

func TestHardDropClearsAndScores(t *testing.T) {
	s, events := oPieceSession(t, nil)
	prepareWell(s)

	assert.Equal(t, 4, s.HardDrop())

	st := s.Stats()
	assert.Equal(t, 2, st.Lines)
	assert.Equal(t, 28, st.Score) // two rows of I+O+O+I at level 1
	assert.Equal(t, 1, st.Combo)
	assert.Equal(t, 1, st.Pieces)
	assert.Equal(t, []EventKind{EventLock, EventLinesCleared, EventSpawn}, kinds(*events))
	assert.Equal(t, 28, (*events)[1].Points)
	assert.Equal(t, 0, s.Board().Filled())
	assert.False(t, s.GameOver())
}

func TestComboBuildsAndResets(t *testing.T) {
	s, _ := oPieceSession(t, nil)

	prepareWell(s)
	s.HardDrop()
	prepareWell(s)
	s.HardDrop()
	assert.Equal(t, 2, s.Stats().Combo)
	assert.Equal(t, 28+30, s.Stats().Score)

	s.HardDrop()
	assert.Equal(t, 0, s.Stats().Combo)
	assert.Equal(t, 58, s.Stats().Score)
}

func TestLevelUpAwardsGoldAndSpeedsUp(t *testing.T) {
	s, events := oPieceSession(t, func(o *Options) {
		o.Rules.LinesToLevel = 2
	})
	prepareWell(s)
	s.HardDrop()

	st := s.Stats()
	assert.Equal(t, 2, st.Level)
	assert.Equal(t, 0, st.LinesThisLevel)
	assert.Equal(t, 3, st.LinesToLevel)
	assert.Equal(t, 20, st.Gold)
	assert.Equal(t, 450, st.DropMs)
	assert.Contains(t, kinds(*events), EventLevelUp)
}

func TestGravityLocksWhenBlocked(t *testing.T) {
	s, _ := oPieceSession(t, nil)

	for i := 0; i < 4; i++ {
		require.False(t, s.Gravity(), "step %d", i)
	}
	assert.True(t, s.Gravity())
	assert.Equal(t, 4, s.Board().Filled())
	assert.Equal(t, 0, s.Active().Y)
}

func TestTopOutEndsGame(t *testing.T) {
	s, events := oPieceSession(t, nil)

	s.HardDrop()
	s.HardDrop()
	require.False(t, s.GameOver())
	s.HardDrop()

	assert.True(t, s.GameOver())
	assert.Equal(t, EventGameOver, (*events)[len(*events)-1].Kind)
	assert.False(t, s.MoveLeft())
	assert.False(t, s.RotateCW())
	assert.Equal(t, 0, s.HardDrop())
	assert.False(t, s.Gravity())
	assert.False(t, s.Hold())

	s.Reset(3)
	assert.False(t, s.GameOver())
	assert.Equal(t, 0, s.Board().Filled())
	assert.Equal(t, 0, s.Stats().Score)
}

func TestHoldOncePerSpawn(t *testing.T) {
	s, _ := newTestSession(t, nil)

	first := s.Active().Type
	next := s.Queue()[0]
	require.True(t, s.Hold())
	assert.Equal(t, []Type{first}, s.Held())
	assert.Equal(t, next, s.Active().Type)

	assert.False(t, s.Hold())
	assert.False(t, s.SwapHeld(0))

	s.HardDrop()
	current := s.Active().Type
	require.True(t, s.SwapHeld(0))
	assert.Equal(t, first, s.Active().Type)
	assert.Equal(t, []Type{current}, s.Held())
	assert.Equal(t, 0, s.Active().Y)
	assert.False(t, s.SwapHeld(0))
	assert.False(t, s.SwapHeld(5))
}

func TestHoldRespectsSlotLimit(t *testing.T) {
	s, _ := newTestSession(t, func(o *Options) { o.HoldSlots = 1 })

	require.True(t, s.Hold())
	s.HardDrop()
	assert.False(t, s.Hold())
	assert.Len(t, s.Held(), 1)
}

func TestSwapHeldRefusesBlockedSpawn(t *testing.T) {
	s, _ := newTestSession(t, nil)
	require.True(t, s.Hold())
	s.HardDrop()

	// block the whole spawn area
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			if !containsCoord(s.active.Coordinates(), C(x, y)) {
				s.board.Set(x, y, CellOf(TypeJ))
			}
		}
	}
	held := s.Held()
	active := s.Active()

	if s.active.Type != held[0] {
		assert.False(t, s.SwapHeld(0))
		assert.Equal(t, active, s.Active())
		assert.Equal(t, held, s.Held())
	}
}

func containsCoord(cells []Coord, c Coord) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}

// tSlot builds a notch where a T turned from state 1 to state 2 fits with
// three corners filled, completing row 4.
func tSlot(t *testing.T) (*Session, *[]Event) {
	s, events := newTestSession(t, func(o *Options) {
		o.Height = 6
		o.Pool = []Type{TypeT}
	})
	for x := 0; x < 10; x++ {
		if x != 5 {
			s.board.Set(x, 4, CellOf(TypeI))
		}
	}
	s.board.Set(4, 2, CellOf(TypeI))
	return s, events
}

func TestTSpinScoredOnLock(t *testing.T) {
	s, events := tSlot(t)
	s.active = Piece{Type: TypeT, Rotation: 1, X: 4, Y: 3}

	require.True(t, s.RotateCW())
	require.Equal(t, Piece{Type: TypeT, Rotation: 2, X: 4, Y: 3}, s.Active())
	require.True(t, s.Gravity())

	st := s.Stats()
	assert.Equal(t, 1, st.Lines)
	assert.Equal(t, 1, st.TSpins)
	assert.Equal(t, 41+200, st.Score)

	var tspin *Event
	for i := range *events {
		if (*events)[i].Kind == EventTSpin {
			tspin = &(*events)[i]
		}
	}
	require.NotNil(t, tspin)
	assert.True(t, tspin.TSpin.IsMini)
	assert.Equal(t, 200, tspin.Points)
}

func TestNoTSpinWithoutRotation(t *testing.T) {
	s, _ := tSlot(t)
	s.active = Piece{Type: TypeT, Rotation: 2, X: 4, Y: 3}

	require.True(t, s.Gravity())
	assert.Equal(t, 0, s.Stats().TSpins)
	assert.Equal(t, 41, s.Stats().Score)
}

func TestNewSessionPanicsOnBadOptions(t *testing.T) {
	assert.Panics(t, func() {
		o := DefaultOptions()
		o.Width = 3
		NewSession(o)
	})
	assert.Panics(t, func() {
		o := DefaultOptions()
		o.Pool = nil
		NewSession(o)
	})
}
