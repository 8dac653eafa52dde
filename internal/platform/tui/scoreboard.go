package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tarot-arcade/internal/registry"
	"github.com/vovakirdan/tarot-arcade/internal/storage"
)

const (
	minWidthForSidebar = 96 // Minimum width to show game list sidebar
	sidebarWidth       = 24
	maxRuns            = 100
)

// ScoreboardKeyMap holds the run history bindings. It implements help.KeyMap.
type ScoreboardKeyMap struct {
	Up, Down   key.Binding
	Next, Prev key.Binding
	Back, Quit key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns arrow, vim and tab bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev game")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the best runs of each game.
type ScoreboardModel struct {
	games     []registry.GameInfo
	current   int
	store     *storage.Store
	runs      []storage.RunRecord
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens on the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games: registry.List(),
		store: store,
		keys:  DefaultScoreboardKeyMap(),
		help:  help.New(),
	}
	m.resize(width, height)
	m.selectGame(0)
	return m
}

var runColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Score", Width: 9},
	{Title: "Lvl", Width: 4},
	{Title: "Lines", Width: 6},
	{Title: "T-Spin", Width: 6},
	{Title: "Time", Width: 6},
	{Title: "Date", Width: 12},
}

func (m *ScoreboardModel) wide() bool { return m.width >= minWidthForSidebar }

// resize rebuilds the table for a new window. The date column grows into spare width.
func (m *ScoreboardModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	cols := slices.Clone(runColumns)
	avail := width - 4
	if m.wide() {
		avail -= sidebarWidth + 3
	}
	for _, c := range cols {
		avail -= c.Width + 2
	}
	last := &cols[len(cols)-1]
	if spare := avail + last.Width + 2; spare > last.Width {
		last.Width = min(spare, 18)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	m.table = table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
		table.WithStyles(styles),
	)
	m.fillTable()
}

// selectGame moves to game i, wrapping at both ends, and loads its history.
func (m *ScoreboardModel) selectGame(i int) {
	n := len(m.games)
	if n == 0 {
		return
	}
	m.current = (i%n + n) % n
	id := m.games[m.current].ID

	m.runs, m.stats = nil, nil
	if m.store != nil {
		var err error
		if m.runs, err = m.store.TopRuns(id, maxRuns); err != nil {
			log.Warn("cannot load runs", "game", id, "err", err)
		}
		if m.stats, err = m.store.GetGameStats(id); err != nil {
			log.Warn("cannot load stats", "game", id, "err", err)
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Level),
			strconv.Itoa(r.Lines),
			strconv.Itoa(r.TSpins),
			formatDuration(r.Duration),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders seconds as m:ss.
func formatDuration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selectGame(m.current + 1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.selectGame(m.current - 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	activeGameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	emptyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "BEST RUNS"
	if len(m.games) > 0 {
		title += " - " + m.games[m.current].Title
	}
	summary := ""
	if st := m.stats; st != nil && st.GamesCount > 0 {
		summary = fmt.Sprintf("%d games  |  best %d  |  level %d  |  %d lines",
			st.GamesCount, st.HighScore, st.BestLevel, st.BestLines)
	}

	body := m.narrowBody()
	if m.wide() {
		body = m.wideBody()
	}

	return strings.Join([]string{
		centerText(scoreTitleStyle.Render(title), m.width),
		centerText(summary, m.width),
		"",
		body,
		menuHelpStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

// wideBody puts the game list in a sidebar left of the table.
func (m ScoreboardModel) wideBody() string {
	lines := []string{"Games", strings.Repeat("-", sidebarWidth-4)}
	for i, g := range m.games {
		name := truncate(g.Title, sidebarWidth-6)
		if i == m.current {
			lines = append(lines, activeGameStyle.Render("> "+name))
		} else {
			lines = append(lines, "  "+name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Width(sidebarWidth).Render(strings.Join(lines, "\n")),
		"  ",
		panelStyle.Render(m.runsPanel()),
	)
}

// narrowBody shows the selected game's name above the table.
func (m ScoreboardModel) narrowBody() string {
	panel := panelStyle.Render(m.runsPanel())
	if len(m.games) == 0 {
		return panel
	}
	header := centerText("< "+activeGameStyle.Render(m.games[m.current].Title)+" >", m.width)
	return header + "\n\n" + panel
}

func (m ScoreboardModel) runsPanel() string {
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nFinish a game to see it here.")
	}
	return m.table.View()
}

// truncate shortens s to n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard shows the history full screen. It reports whether the player
// went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.goingBack, nil
}
