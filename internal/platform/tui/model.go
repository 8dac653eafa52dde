package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tarot-arcade/internal/core"
	"github.com/vovakirdan/tarot-arcade/internal/registry"
	"github.com/vovakirdan/tarot-arcade/internal/storage"
)

// GameModel is the Bubble Tea model that runs a single game.
// It is used directly by `arcade play` and embedded by the menu session.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitOnBack bool // Standalone play has no menu to return to
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current game over has been recorded
}

// NewGameModel creates a game model. A nil store disables persistence.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if store != nil {
		if wu, ok := game.(registry.WalletUser); ok {
			wu.UseWallet(store)
		}
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m.tick()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m.key(msg)
	}
	return m, nil
}

// key queues the pressed action for the next tick. Esc leaves for the menu
// only while the game is paused or over so it cannot end a live run.
func (m GameModel) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.game.Render(m.screen)
		if path, err := writeScreenshot(m.game.ID(), m.screen); err != nil {
			log.Warn("cannot save screenshot", "err", err)
		} else {
			log.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	stopped := m.gameState.GameOver || m.gameState.Paused
	if stopped && m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		if m.quitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// resize keeps the run going for games that implement registry.Resizer.
// Other games restart unless they are already over.
func (m *GameModel) resize(width, height int) {
	m.config.ScreenW, m.config.ScreenH = width, height
	m.screen.Resize(width, height)

	switch g := m.game.(type) {
	case registry.Resizer:
		g.Resize(width, height)
	default:
		if !m.gameState.GameOver {
			m.game.Reset(m.config)
		}
	}
}

// tick steps the game with every key collected since the previous tick.
func (m GameModel) tick() (tea.Model, tea.Cmd) {
	m.gameState = m.game.Step(m.inputFrame).State
	m.inputFrame.Clear()

	over := m.gameState.GameOver
	if over && !m.runSaved {
		m.recordRun()
	}
	// A restart clears the flag so the next run is saved too.
	m.runSaved = over

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run. Errors only get logged.
func (m GameModel) recordRun() {
	score := m.gameState.Score
	if m.store == nil || score <= 0 {
		return
	}
	id := m.game.ID()
	if _, err := m.store.SaveScore(id, score); err != nil {
		log.Warn("cannot save score", "game", id, "score", score, "err", err)
	}
	rr, ok := m.game.(registry.RunReporter)
	if !ok {
		return
	}
	if _, err := m.store.SaveRun(id, rr.RunStats()); err != nil {
		log.Warn("cannot save run", "game", id, "err", err)
	}
}

// writeScreenshot dumps screen as plain text under ~/.arcade/screenshots.
func writeScreenshot(gameID string, screen *core.Screen) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%s.txt", gameID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	return path, os.WriteFile(path, []byte(screen.String()), 0o600)
}

func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports that the player asked to leave the program.
func (m GameModel) IsQuitting() bool { return m.quitting }

// BackToMenu reports that the player asked to return to the picker.
func (m GameModel) BackToMenu() bool { return m.backToMenu }

// Run plays one game full screen. Leaving the game ends the program.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	m := NewGameModel(game, store, cfg)
	m.quitOnBack = true
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
