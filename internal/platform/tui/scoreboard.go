package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilegrid/internal/registry"
	"github.com/vovakirdan/tilegrid/internal/storage"
)

// maxSessions is the number of best sessions loaded per game.
const maxSessions = 50

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
	statsStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		NextGame: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev game")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best sessions of one game at a time, ranked by
// successful moves, with a summary of all its sessions.
type ScoreboardModel struct {
	games     []registry.GameInfo
	current   int
	store     *storage.Store
	sessions  []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	keys      ScoreboardKeyMap
	help      help.Model
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

// newTable builds the sessions table for the current window size.
func (m ScoreboardModel) newTable() table.Model {
	dateWidth := min(max(m.width-30, 12), 20)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Moves", Width: 10},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the sessions and summary of the current game.
func (m *ScoreboardModel) load() {
	m.sessions = nil
	m.stats = nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.current].ID
		if sessions, err := m.store.TopScores(id, maxSessions); err == nil {
			m.sessions = sessions
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{fmt.Sprintf("#%d", i+1), fmt.Sprint(s.Score), s.CreatedAt.Format("Jan 02 15:04")}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycle moves to the next (delta 1) or previous (delta -1) game.
func (m *ScoreboardModel) cycle(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.games)) % len(m.games)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.NextGame):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// statsLine summarizes all sessions of the current game.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d sessions  best %d  avg %.1f moves  last played %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.LastPlayed.Format("Jan 02 15:04"))
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText("BEST SESSIONS", m.width)))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	body := boardEmptyStyle.Render("No sessions recorded yet.\nPlay a game to fill the board!")
	if len(m.sessions) > 0 {
		body = m.table.View()
	}
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(statsStyle.Render(line), m.width))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
