package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilegrid/internal/core"
	"github.com/vovakirdan/tilegrid/internal/registry"
	"github.com/vovakirdan/tilegrid/internal/storage"
)

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// FramePublisher receives the render boundary of a game after each frame
// that had input. Implementations must not block.
type FramePublisher interface {
	Publish(gameID string, tick uint64, f core.Frame)
}

// GameOption configures a GameModel.
type GameOption func(*GameModel)

// WithPublisher streams frames to p.
func WithPublisher(p FramePublisher) GameOption {
	return func(m *GameModel) {
		m.publisher = p
	}
}

// WithBackToMenu lets the player leave a paused game with the back key.
func WithBackToMenu() GameOption {
	return func(m *GameModel) {
		m.allowBack = true
	}
}

// WithScreenshotDir overrides where ctrl+s writes screenshots.
func WithScreenshotDir(dir string) GameOption {
	return func(m *GameModel) {
		m.screenshotDir = dir
	}
}

// GameModel is the Bubble Tea model for running one game.
type GameModel struct {
	game          registry.Game
	screen        *core.Screen
	store         *storage.Store
	publisher     FramePublisher
	config        core.RuntimeConfig
	inputFrame    core.InputFrame
	gameState     core.GameState
	keyMapper     *KeyMapper
	help          help.Model
	tick          uint64
	screenshotDir string
	allowBack     bool
	quitting      bool
	backToMenu    bool
	scoreSaved    bool // Whether the session score has been written
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
	}
	if home, err := os.UserHomeDir(); err == nil {
		m.screenshotDir = filepath.Join(home, ".tilegrid", "screenshots")
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.publisher != nil {
		m.publisher.Publish(m.game.ID(), 0, m.game.Frame())
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Games lay out against the screen on every render, so no reset is needed
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick or handles host keys.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys.Screenshot) {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.saveScore()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		// Leaving is only offered from the pause screen
		if m.allowBack && m.gameState.Paused {
			m.saveScore()
			m.backToMenu = true
		}

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick applies the pending input as one game frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.tick++

	if m.publisher != nil && !m.inputFrame.Empty() {
		m.publisher.Publish(m.game.ID(), m.tick, m.game.Frame())
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the session score once, when the session ends.
func (m *GameModel) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	score := m.game.State().Score
	if score > 0 && m.store != nil {
		//nolint:errcheck // Best-effort save, the session is ending regardless
		m.store.SaveScore(m.game.ID(), score)
	}
}

// saveScreenshot saves the current screen as plain text.
func (m *GameModel) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", fmt.Errorf("no screenshot directory")
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) error {
	model := NewGameModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
