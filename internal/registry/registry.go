// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/tarot-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "tarot").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Tarot Tetromino").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Rotate, HardDrop, Pause, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Wallet is persistent currency shared across runs.
type Wallet interface {
	Gold() (int, error)
	AddGold(amount int) (int, error)
}

// WalletUser is implemented by games that earn or spend gold.
// The platform attaches a wallet after creating the game.
type WalletUser interface {
	UseWallet(w Wallet)
}

// RunStats summarizes a finished run for the history table.
type RunStats struct {
	Score      int
	Level      int
	Lines      int
	TSpins     int
	Pieces     int
	GoldEarned int
	Duration   time.Duration
}

// RunReporter is implemented by games that report more than a score.
type RunReporter interface {
	RunStats() RunStats
}

// Resizer is implemented by games that can adapt to a new screen size
// without restarting the run.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	title string
	build Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register makes a game available under id. It is meant for init functions
// and panics on a duplicate id. The title is read from one throwaway instance.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), build: f}
}

// List returns the registered games ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new instance of the game registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.build(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
