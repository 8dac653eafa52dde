// Package tarot provides Tarot Tetromino for the arcade: a falling-block
// puzzle with wall kicks, T-spins, a three-slot hold rack and an optional
// set of esoteric pieces.
package tarot

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tarot-arcade/internal/config"
	platformcore "github.com/vovakirdan/tarot-arcade/internal/core"
	"github.com/vovakirdan/tarot-arcade/internal/games/tarot/core"
	"github.com/vovakirdan/tarot-arcade/internal/registry"
)

// Mode selects the piece set.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeEsoteric Mode = "esoteric"
)

const (
	hudHeight   = 2
	panelWidth  = 12
	cellWidth   = 2
	bannerTicks = 90 // ~1.5 seconds at 60 FPS
)

// Game implements Tarot Tetromino on top of the rules in the core package.
type Game struct {
	mode       Mode
	cfg        config.TarotConfig
	difficulty *config.DifficultyManager
	session    *core.Session
	wallet     registry.Wallet
	rng        *rand.Rand

	runtime platformcore.RuntimeConfig
	tick    uint64

	gravityTicker int
	ghostPolicy   core.CollisionPolicy

	paused   bool
	tooSmall bool

	banner      string
	bannerTicks int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = "" // Use config default
		return
	}
	difficultyPreset = p
}

func init() {
	registry.Register("tarot", func() registry.Game {
		return New()
	})
	registry.Register("tarot_esoteric", func() registry.Game {
		return NewEsoteric()
	})
}

// New creates a game with the classic seven pieces.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEsoteric creates a game with every piece unlocked.
func NewEsoteric() *Game {
	return &Game{mode: ModeEsoteric}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEsoteric {
		return "tarot_esoteric"
	}
	return "tarot"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEsoteric {
		return "Tarot Tetromino (Esoteric)"
	}
	return "Tarot Tetromino"
}

// UseWallet attaches persistent gold storage. Gold earned on level-up is
// banked immediately.
func (g *Game) UseWallet(w registry.Wallet) {
	g.wallet = w
}

// loadConfig resolves the config file, preset and mode overrides.
func (g *Game) loadConfig() config.TarotConfig {
	cfg, err := config.LoadTarot(configPath)
	if err != nil {
		log.Warn("tarot: using default config", "path", configPath, "err", err)
		cfg = config.DefaultTarotConfig()
	}

	if difficultyPreset != "" {
		config.ApplyTarotPreset(&cfg, difficultyPreset)
	}

	if g.mode == ModeEsoteric {
		var names []string
		for _, t := range core.AllTypes() {
			names = append(names, t.String())
		}
		cfg.Pieces.Unlocked = names
	}
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.gravityTicker = 0
	g.paused = false
	g.banner = ""
	g.bannerTicks = 0

	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.ghostPolicy = core.PolicySolid
	if g.cfg.Ghost.Phase {
		g.ghostPolicy = core.PolicyPhase
	}

	pool, err := g.cfg.PieceTypes()
	if err != nil {
		log.Warn("tarot: falling back to standard pieces", "err", err)
		pool = core.StandardTypes()
	}

	g.session = core.NewSession(core.Options{
		Width:      g.cfg.Board.Width,
		Height:     g.cfg.Board.Height,
		Seed:       g.rng.Int63(),
		Pool:       pool,
		Preview:    g.cfg.Pieces.Preview,
		HoldSlots:  g.cfg.Hold.Slots,
		StartLevel: g.cfg.Scoring.StartLevel,
		Rules:      g.cfg.Rules(),
		Listener:   g.onEvent,
	})

	g.checkSize()
}

// Resize adapts to a new terminal size and keeps the run going.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.checkSize()
}

func (g *Game) checkSize() {
	requiredW := g.cfg.Board.Width*cellWidth + 2 + 2*panelWidth
	requiredH := g.cfg.Board.Height + 2 + hudHeight
	g.tooSmall = g.runtime.ScreenW < requiredW || g.runtime.ScreenH < requiredH
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if in.Has(platformcore.ActionRestart) && g.session.GameOver() {
		next := g.runtime
		next.Seed = g.rng.Int63()
		g.Reset(next)
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.session.GameOver() {
		g.paused = !g.paused
	}

	if g.bannerTicks > 0 {
		g.bannerTicks--
		if g.bannerTicks == 0 {
			g.banner = ""
		}
	}

	if g.session.GameOver() || g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	for _, a := range in.Sequence() {
		g.apply(a)
		if g.session.GameOver() {
			return platformcore.StepResult{State: g.State()}
		}
	}

	g.gravityTicker++
	if g.gravityTicker >= g.dropTicks() {
		g.gravityTicker = 0
		g.session.Gravity()
	}

	return platformcore.StepResult{State: g.State()}
}

// apply maps one platform action onto the session.
func (g *Game) apply(a platformcore.Action) {
	s := g.session
	switch a {
	case platformcore.ActionLeft:
		s.MoveLeft()
	case platformcore.ActionRight:
		s.MoveRight()
	case platformcore.ActionDown:
		if s.SoftDrop() {
			g.gravityTicker = 0
		}
	case platformcore.ActionRotate:
		s.RotateCW()
	case platformcore.ActionRotateCCW:
		s.RotateCCW()
	case platformcore.ActionHardDrop:
		s.HardDrop()
		g.gravityTicker = 0
	case platformcore.ActionHold:
		if s.Hold() {
			g.gravityTicker = 0
		}
	default:
		if i, ok := a.SlotIndex(); ok && s.SwapHeld(i) {
			g.gravityTicker = 0
		}
	}
}

// dropTicks converts the level's gravity interval, sped up by difficulty, to ticks.
func (g *Game) dropTicks() int {
	st := g.session.Stats()
	ms := g.difficulty.DropInterval(st.DropMs, st.Score, int(g.tick))
	return g.runtime.TicksFor(ms)
}

// onEvent turns session events into HUD banners and banks gold.
func (g *Game) onEvent(e core.Event) {
	switch e.Kind {
	case core.EventLinesCleared:
		msg := fmt.Sprintf("%s +%d", lineName(e.Lines), e.Points)
		if e.Combo > 1 {
			msg += fmt.Sprintf(" x%d", e.Combo)
		}
		g.showBanner(msg)
	case core.EventTSpin:
		name := "T-SPIN"
		if e.TSpin.IsMini {
			name = "T-SPIN MINI"
		}
		g.showBanner(fmt.Sprintf("%s +%d", name, e.Points))
	case core.EventLevelUp:
		g.showBanner(fmt.Sprintf("LEVEL %d +%dg", e.Level, e.Gold))
		g.bankGold(e.Gold)
	case core.EventGameOver:
		log.Debug("tarot: game over", "score", g.session.Stats().Score, "level", e.Level)
	}
}

func (g *Game) showBanner(msg string) {
	g.banner = msg
	g.bannerTicks = bannerTicks
}

func (g *Game) bankGold(amount int) {
	if g.wallet == nil || amount == 0 {
		return
	}
	if _, err := g.wallet.AddGold(amount); err != nil {
		log.Warn("tarot: cannot bank gold", "amount", amount, "err", err)
	}
}

func lineName(n int) string {
	switch n {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	case 4:
		return "TETRIS"
	default:
		return fmt.Sprintf("%d LINES", n)
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{}
	}
	st := g.session.Stats()
	return platformcore.GameState{
		Score:    st.Score,
		Level:    st.Level,
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}

// RunStats reports the run for the history table.
func (g *Game) RunStats() registry.RunStats {
	st := g.session.Stats()
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return registry.RunStats{
		Score:      st.Score,
		Level:      st.Level,
		Lines:      st.Lines,
		TSpins:     st.TSpins,
		Pieces:     st.Pieces,
		GoldEarned: st.Gold,
		Duration:   time.Duration(g.tick) * time.Second / time.Duration(rate),
	}
}

var (
	_ registry.WalletUser  = (*Game)(nil)
	_ registry.RunReporter = (*Game)(nil)
	_ registry.Resizer     = (*Game)(nil)
)
