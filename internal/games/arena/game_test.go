package arena

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tilegrid/internal/config"
	"github.com/vovakirdan/tilegrid/internal/core"
)

func newTestGame(w, h int) *Game {
	cfg := config.DefaultArenaConfig()
	cfg.Grid.Width = w
	cfg.Grid.Height = h
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(20, 15)
	g2 := newTestGame(20, 15)

	script := []core.Action{
		core.ActionRight, core.ActionRight, core.ActionDown, core.ActionConfirm,
		core.ActionRight, core.ActionDown, core.ActionCancel, core.ActionLeft,
		core.ActionRestart, core.ActionDown, core.ActionDown, core.ActionConfirm,
	}
	for i := 0; i < 100; i++ {
		in := press(script[i%len(script)])
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestSelectThenWalk(t *testing.T) {
	g := newTestGame(20, 15)

	for i := 0; i < 5; i++ {
		res := g.Step(press(core.ActionRight))
		if !res.Moved {
			t.Fatalf("move %d right should succeed", i)
		}
	}
	g.Step(press(core.ActionConfirm))

	var moved []bool
	for i := 0; i < 3; i++ {
		moved = append(moved, g.Step(press(core.ActionRight)).Moved)
	}

	snap := g.Snapshot()
	if !moved[0] || moved[1] || moved[2] {
		t.Errorf("moves after selecting = %v, expected [true false false]", moved)
	}
	if snap.CursorX != 7 || snap.CursorY != 1 {
		t.Errorf("cursor at (%d,%d), expected (7,1)", snap.CursorX, snap.CursorY)
	}
	if !snap.Selected || snap.SelectedX != 6 || snap.SelectedY != 1 {
		t.Errorf("selection = %+v, expected active at (6,1)", snap)
	}
	if g.State().Score != 6 {
		t.Errorf("score = %d, expected 6 successful moves", g.State().Score)
	}
	if g.State().GameOver {
		t.Error("arena never ends")
	}
}

func TestStepOrderMovesBeforeConfirm(t *testing.T) {
	g := newTestGame(20, 15)

	// Moves are applied before confirm, so the new cursor cell gets selected.
	g.Step(press(core.ActionRight, core.ActionConfirm))
	snap := g.Snapshot()
	if !snap.Selected || snap.SelectedX != 2 || snap.SelectedY != 1 {
		t.Errorf("expected selection at (2,1), got %+v", snap)
	}

	// Confirm then cancel in the same frame leaves nothing selected.
	g.Step(press(core.ActionConfirm, core.ActionCancel))
	if g.Snapshot().Selected {
		t.Error("cancel after confirm should leave no selection")
	}
}

func TestOppositeMovesInOneFrame(t *testing.T) {
	g := newTestGame(20, 15)

	// Left is rejected at x=1, right then succeeds.
	res := g.Step(press(core.ActionLeft, core.ActionRight))
	if !res.Moved || g.Snapshot().CursorX != 2 {
		t.Errorf("expected cursor at x=2, got %+v", g.Snapshot())
	}
	if g.State().Score != 1 {
		t.Errorf("score = %d, expected 1", g.State().Score)
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(20, 15)

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause should toggle on")
	}
	res := g.Step(press(core.ActionRight, core.ActionConfirm))
	if res.Moved || g.Snapshot().Selected {
		t.Error("paused game should ignore moves and confirm")
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Fatal("pause should toggle off")
	}
	if !g.Step(press(core.ActionRight)).Moved {
		t.Error("unpaused game should move")
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(20, 15)
	g.Step(press(core.ActionDown))
	g.Step(press(core.ActionConfirm))

	g.Step(press(core.ActionRestart))
	snap := g.Snapshot()
	if snap.Moves != 0 || snap.Selected || snap.CursorX != 1 || snap.CursorY != 1 {
		t.Errorf("restart should reset moves, selection and cursor, got %+v", snap)
	}
}

func TestRestartRegeneratesFloor(t *testing.T) {
	g := newTestGame(40, 20)
	before := g.Snapshot().FloorSum

	changed := false
	for i := 0; i < 5 && !changed; i++ {
		g.Step(press(core.ActionRestart))
		changed = g.Snapshot().FloorSum != before
	}
	if !changed {
		t.Error("restart should regenerate the floor colors from a new seed")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(9, 9)
	g.Step(press(core.ActionConfirm))
	g.Step(press(core.ActionRight))

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	if !strings.Contains(scr.Row(0), "Tile Arena") || !strings.Contains(scr.Row(0), "Selected: (1,1)") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	for _, r := range []string{"#", "X", "*"} {
		if !strings.Contains(out, r) {
			t.Errorf("rendered screen missing %q", r)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(40, 20)

	scr := core.NewScreen(40, 12)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected too-small overlay")
	}
}

func TestFrame(t *testing.T) {
	g := newTestGame(9, 9)
	f := g.Frame()

	if f.Width != 9 || f.Height != 9 || len(f.Tiles) != 81 {
		t.Fatalf("frame size %dx%d with %d tiles", f.Width, f.Height, len(f.Tiles))
	}
	if f.Cursor == nil || f.Cursor.X != 1 || f.Cursor.Y != 1 || f.Cursor.Glyph != 'X' {
		t.Errorf("cursor = %+v", f.Cursor)
	}
	if f.Selection == nil || f.Selection.Active {
		t.Errorf("selection = %+v, expected inactive", f.Selection)
	}
	if len(f.Entities) != 0 {
		t.Error("arena has no entities")
	}
}

func TestResetFallsBackOnBadConfig(t *testing.T) {
	defer SetConfigPath("")
	defer SetSizePreset("")
	def := config.DefaultArenaConfig().Grid

	tests := []struct {
		name   string
		path   string
		preset string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml"), ""},
		{"unknown preset", "", "huge"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetConfigPath(tt.path)
			SetSizePreset(tt.preset)
			g := New()
			g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60})
			if g.ConfigError() == nil {
				t.Fatal("expected ConfigError after fallback")
			}
			if g.grid.W != def.Width || g.grid.H != def.Height {
				t.Errorf("grid = %dx%d, want defaults %dx%d", g.grid.W, g.grid.H, def.Width, def.Height)
			}
		})
	}
}
