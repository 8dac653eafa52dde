package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tarot-arcade/internal/core"
	"github.com/vovakirdan/tarot-arcade/internal/registry"
	"github.com/vovakirdan/tarot-arcade/internal/storage"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuGoldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	menuHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const menuControls = "↑/↓ move · enter play · tab scores · q quit"

// MenuItem is one playable entry of the picker.
type MenuItem struct {
	GameID string
	Title  string
	Best   int
}

// menuChoice is what the player decided to do when the picker closed.
type menuChoice int

const (
	choiceNone menuChoice = iota
	choicePlay
	choiceScores
	choiceQuit
)

// MenuModel lists registered games with their best score and the wallet balance.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	gold      int
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    menuChoice
}

// NewMenuModel reads best scores and gold from store, which may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     loadMenuItems(store),
		gold:      loadGold(store),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func loadMenuItems(store *storage.Store) []MenuItem {
	var items []MenuItem
	for _, info := range registry.List() {
		item := MenuItem{GameID: info.ID, Title: info.Title}
		if store != nil {
			best, err := store.HighScore(info.ID)
			if err != nil {
				log.Warn("cannot load high score", "game", info.ID, "err", err)
			}
			item.Best = best
		}
		items = append(items, item)
	}
	return items
}

func loadGold(store *storage.Store) int {
	if store == nil {
		return 0
	}
	gold, err := store.Gold()
	if err != nil {
		log.Warn("cannot load wallet", "err", err)
	}
	return gold
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.press(m.keyMapper.MapKeyToMenuAction(msg))
	}
	return m, nil
}

// press applies a menu action. The cursor wraps at both ends.
func (m MenuModel) press(action MenuAction) (tea.Model, tea.Cmd) {
	n := len(m.items)
	switch action {
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
		return m, nil
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
		return m, nil
	case MenuActionSelect:
		if n == 0 {
			return m, nil
		}
		m.choice = choicePlay
	case MenuActionScoreboard:
		m.choice = choiceScores
	case MenuActionQuit:
		m.choice = choiceQuit
	default:
		return m, nil
	}
	return m, tea.Quit
}

func (m MenuModel) View() string {
	if m.choice == choiceQuit {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{
		"",
		menuTitleStyle.Render("T A R O T   A R C A D E"),
		"",
		"Select a game",
		"",
	}
	for i, item := range m.items {
		label := item.Title
		if item.Best > 0 {
			label = fmt.Sprintf("%s  (best %d)", label, item.Best)
		}
		if i == m.cursor {
			lines = append(lines, menuCursorStyle.Render("> "+label))
		} else {
			lines = append(lines, "  "+label)
		}
	}
	lines = append(lines,
		"",
		menuGoldStyle.Render(fmt.Sprintf("Gold: %d", m.gold)),
		"",
		menuHelpStyle.Render(menuControls),
	)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(centerText(line, w))
		b.WriteByte('\n')
	}
	return b.String()
}

// Selected is the chosen game, nil until the player presses enter.
func (m MenuModel) Selected() *MenuItem {
	if m.choice != choicePlay {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}

func (m MenuModel) IsQuitting() bool { return m.choice == choiceQuit }
func (m MenuModel) WantsScoreboard() bool { return m.choice == choiceScores }

// Config is the runtime config including the latest terminal size.
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText pads text on the left so it sits in the middle of width cells.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// MenuResult is what RunMenu hands back to the CLI loop.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the picker full screen until the player chooses something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.config}
	switch m.choice {
	case choicePlay:
		res.GameID = m.items[m.cursor].GameID
	case choiceScores:
		res.WantsScoreboard = true
	default:
		res.Quit = true
	}
	return res, nil
}
