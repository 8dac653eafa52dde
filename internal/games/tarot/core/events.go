package core

// EventKind identifies a session notification.
type EventKind uint8

const (
	EventSpawn EventKind = iota
	EventRotate
	EventLock
	EventLinesCleared
	EventTSpin
	EventLevelUp
	EventHold
	EventGameOver
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventRotate:
		return "rotate"
	case EventLock:
		return "lock"
	case EventLinesCleared:
		return "lines_cleared"
	case EventTSpin:
		return "tspin"
	case EventLevelUp:
		return "level_up"
	case EventHold:
		return "hold"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is pushed to the session listener as things happen.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	Piece  Type
	Kick   Offset
	Lines  int
	Points int
	Combo  int
	Level  int
	Gold   int
	TSpin  TSpinResult
}

// Listener receives session events synchronously.
type Listener func(Event)
