package gfx

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tilegrid/internal/config"
	"github.com/vovakirdan/tilegrid/internal/core"
	"github.com/vovakirdan/tilegrid/internal/games/arena"
	"github.com/vovakirdan/tilegrid/internal/games/crawl"
	"github.com/vovakirdan/tilegrid/internal/registry"
)

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, p := range keys {
			if p == k {
				return true
			}
		}
		return false
	}
}

func TestCollectInput(t *testing.T) {
	tests := []struct {
		name    string
		keys    []ebiten.Key
		actions []core.Action
		quit    bool
	}{
		{"nothing", nil, nil, false},
		{"arrow", []ebiten.Key{ebiten.KeyArrowLeft}, []core.Action{core.ActionLeft}, false},
		{"vi keys", []ebiten.Key{ebiten.KeyK, ebiten.KeyL}, []core.Action{core.ActionUp, core.ActionRight}, false},
		{"arrow and vi collapse", []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyJ}, []core.Action{core.ActionDown}, false},
		{"select", []ebiten.Key{ebiten.KeyEnter}, []core.Action{core.ActionConfirm}, false},
		{"deselect", []ebiten.Key{ebiten.KeySpace}, []core.Action{core.ActionCancel}, false},
		{"pause and restart", []ebiten.Key{ebiten.KeyP, ebiten.KeyR}, []core.Action{core.ActionPause, core.ActionRestart}, false},
		{"quit", []ebiten.Key{ebiten.KeyQ}, nil, true},
		{"escape quits", []ebiten.Key{ebiten.KeyEscape}, nil, true},
	}

	for _, tc := range tests {
		in, quit := collectInput(pressed(tc.keys...))
		if quit != tc.quit {
			t.Errorf("%s: quit = %v, expected %v", tc.name, quit, tc.quit)
		}
		if in.Has(core.ActionQuit) {
			t.Errorf("%s: quit must not reach the game", tc.name)
		}
		for _, a := range tc.actions {
			if !in.Has(a) {
				t.Errorf("%s: missing %v", tc.name, a)
			}
		}
		if len(tc.actions) == 0 && !in.Empty() {
			t.Errorf("%s: expected empty input frame", tc.name)
		}
	}
}

func TestPixelSizeOf(t *testing.T) {
	a := arena.NewWithConfig(config.DefaultArenaConfig())
	a.Reset(core.DefaultConfig())
	if got := pixelSizeOf(a); got != 50 {
		t.Errorf("arena pixel size = %d, expected 50", got)
	}

	c := crawl.NewWithConfig(config.DefaultCrawlConfig())
	c.Reset(core.DefaultConfig())
	if got := pixelSizeOf(c); got != 32 {
		t.Errorf("crawl pixel size = %d, expected 32", got)
	}

	var g registry.Game = noPixelGame{a}
	if got := pixelSizeOf(g); got != defaultPixelSize {
		t.Errorf("fallback pixel size = %d, expected %d", got, defaultPixelSize)
	}
}

// noPixelGame hides the PixelSize method of the wrapped game.
type noPixelGame struct {
	registry.Game
}

func TestGridLayout(t *testing.T) {
	f := core.Frame{Width: 9, Height: 9}

	w, h := windowSize(f, 50)
	if w != 450 || h != 450+hudPixels {
		t.Fatalf("window size = %dx%d", w, h)
	}

	v, fits := gridViewport(f, w, h, 50)
	if !fits {
		t.Fatal("grid should fit its own window")
	}
	if x, y := v.ToArea(0, 0); x != 0 || y != hudPixels {
		t.Errorf("tile (0,0) at (%d,%d), expected (0,%d)", x, y, hudPixels)
	}
	if x, y := v.ToArea(8, 8); x != 400 || y != hudPixels+400 {
		t.Errorf("tile (8,8) at (%d,%d)", x, y)
	}

	// A larger window centers the grid
	v, _ = gridViewport(f, 650, 450+hudPixels, 50)
	if x, _ := v.ToArea(0, 0); x != 100 {
		t.Errorf("centered origin x = %d, expected 100", x)
	}

	if _, fits := gridViewport(f, 300, 300, 50); fits {
		t.Error("grid should not fit a smaller window")
	}
}
