package tarot

import "github.com/vovakirdan/tarot-arcade/internal/games/tarot/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Mode   string
	Score  int
	Level  int
	Lines  int
	Combo  int
	TSpins int
	Gold   int
	Piece  core.Piece
	Queue  []core.Type
	Held   []core.Type
	Filled int // Locked cells on the board
	DropMs int
	State  GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.GameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	st := g.session.Stats()
	return Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Score:  st.Score,
		Level:  st.Level,
		Lines:  st.Lines,
		Combo:  st.Combo,
		TSpins: st.TSpins,
		Gold:   st.Gold,
		Piece:  g.session.Active(),
		Queue:  g.session.Queue(),
		Held:   g.session.Held(),
		Filled: g.session.Board().Filled(),
		DropMs: st.DropMs,
		State:  state,
	}
}
