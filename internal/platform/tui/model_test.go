package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilegrid/internal/config"
	"github.com/vovakirdan/tilegrid/internal/core"
	"github.com/vovakirdan/tilegrid/internal/games/arena"
	"github.com/vovakirdan/tilegrid/internal/storage"
)

type recordingPublisher struct {
	ticks []uint64
}

func (p *recordingPublisher) Publish(_ string, tick uint64, _ core.Frame) {
	p.ticks = append(p.ticks, tick)
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newArenaModel(t *testing.T, store *storage.Store, opts ...GameOption) GameModel {
	t.Helper()
	game := arena.NewWithConfig(config.DefaultArenaConfig())
	opts = append(opts, WithScreenshotDir(t.TempDir()))
	m := NewGameModel(game, store, testRuntime(), opts...)
	m.Init()
	return m
}

func send(m GameModel, msgs ...tea.Msg) GameModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(GameModel)
	}
	return m
}

func TestGameModelTickAppliesInput(t *testing.T) {
	pub := &recordingPublisher{}
	m := newArenaModel(t, nil, WithPublisher(pub))

	m = send(m, tea.KeyMsg{Type: tea.KeyRight}, TickMsg{}, TickMsg{})

	if m.State().Score != 1 {
		t.Errorf("score = %d, expected 1", m.State().Score)
	}
	// Init publishes tick 0, then only the tick with input is published
	if len(pub.ticks) != 2 || pub.ticks[0] != 0 || pub.ticks[1] != 1 {
		t.Errorf("published ticks = %v, expected [0 1]", pub.ticks)
	}
}

func TestGameModelQuitSavesScore(t *testing.T) {
	store := openStore(t)
	m := newArenaModel(t, store)

	m = send(m,
		tea.KeyMsg{Type: tea.KeyRight}, TickMsg{},
		tea.KeyMsg{Type: tea.KeyDown}, TickMsg{},
		runeKey('q'),
	)

	if !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	high, err := store.HighScore("arena")
	if err != nil {
		t.Fatal(err)
	}
	if high != 2 {
		t.Errorf("saved score = %d, expected 2", high)
	}

	// Quitting twice does not record a second session
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	all, _ := store.AllScores("arena")
	if len(all) != 1 {
		t.Errorf("expected 1 saved session, got %d", len(all))
	}
}

func TestGameModelZeroScoreNotSaved(t *testing.T) {
	store := openStore(t)
	m := newArenaModel(t, store)
	send(m, TickMsg{}, runeKey('q'))

	all, _ := store.AllScores("arena")
	if len(all) != 0 {
		t.Errorf("expected no saved sessions, got %d", len(all))
	}
}

func TestGameModelBackOnlyWhenPaused(t *testing.T) {
	m := newArenaModel(t, nil, WithBackToMenu())

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m = send(m, runeKey('p'), TickMsg{}, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should leave a paused game")
	}
}

func TestGameModelView(t *testing.T) {
	m := newArenaModel(t, nil)
	m = send(m, tea.WindowSizeMsg{Width: 60, Height: 20})

	view := m.View()
	if !strings.Contains(view, "Tile Arena") {
		t.Error("view should contain the HUD")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help bar")
	}
}

func TestRenderScreen(t *testing.T) {
	scr := core.NewScreen(4, 2)
	scr.SetCell(0, 0, '#', core.ColorGray)
	scr.SetCell(1, 0, '#', core.ColorGray)
	scr.SetCell(2, 1, '@', core.ColorBrightWhite)

	out := RenderScreen(scr)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "##") || !strings.Contains(lines[1], "@") {
		t.Errorf("rendered = %q", out)
	}
}

func sendSession(m SessionModel, msgs ...tea.Msg) SessionModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, testRuntime())

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("enter should start the first game, screen = %d", m.screen)
	}
	if m.game.game.ID() != "arena" {
		t.Errorf("started %q, expected arena", m.game.game.ID())
	}

	m = sendSession(m, runeKey('p'), TickMsg{}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("back from a paused game should return to the menu, screen = %d", m.screen)
	}

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("tab should open the scoreboard, screen = %d", m.screen)
	}
	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("back from the scoreboard should return to the menu, screen = %d", m.screen)
	}

	m = sendSession(m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q in the menu should end the session")
	}
}
