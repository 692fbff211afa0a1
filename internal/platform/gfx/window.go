// Package gfx hosts a game in an Ebiten window. Tiles are filled squares of
// tile.pixel_size pixels; glyphs of entities, the cursor and the selection
// are drawn on top with Go Mono.
package gfx

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/tilegrid/internal/core"
	"github.com/vovakirdan/tilegrid/internal/registry"
	"github.com/vovakirdan/tilegrid/internal/storage"
)

const (
	defaultPixelSize = 32
	hudPixels        = 28
	tileGap          = 1
)

var (
	backgroundColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	hudColor        = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	gridBackdrop    = color.RGBA{R: 32, G: 32, B: 38, A: 255}
	floorDimming    = 0.45
)

// Publisher receives the render boundary after each frame that had input.
type Publisher interface {
	Publish(gameID string, tick uint64, f core.Frame)
}

// Options configures a window.
type Options struct {
	Config    core.RuntimeConfig
	Store     *storage.Store // optional; the session score is saved on quit
	Publisher Publisher      // optional
	Logger    *log.Logger    // optional
}

// Window implements ebiten.Game for one registry game.
type Window struct {
	game      registry.Game
	opts      Options
	pixelSize int

	face   *text.GoTextFace
	hud    *text.GoTextFace
	tick   uint64
	state  core.GameState
	saved  bool
	width  int
	height int
}

// NewWindow resets game and prepares a window sized to its grid.
func NewWindow(game registry.Game, opts Options) (*Window, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("gfx: load font: %w", err)
	}

	game.Reset(opts.Config)

	w := &Window{
		game:      game,
		opts:      opts,
		pixelSize: pixelSizeOf(game),
	}
	w.face = &text.GoTextFace{Source: src, Size: float64(w.pixelSize) * 0.7}
	w.hud = &text.GoTextFace{Source: src, Size: 16}

	f := game.Frame()
	w.width, w.height = windowSize(f, w.pixelSize)
	return w, nil
}

// pixelSizeOf asks the game for its configured tile size in pixels.
func pixelSizeOf(game registry.Game) int {
	if ps, ok := game.(interface{ PixelSize() int }); ok && ps.PixelSize() > 0 {
		return ps.PixelSize()
	}
	return defaultPixelSize
}

// windowSize returns the initial window size for a frame: the grid plus the HUD strip.
func windowSize(f core.Frame, pixelSize int) (int, int) {
	return f.Width * pixelSize, f.Height*pixelSize + hudPixels
}

// gridViewport centers the grid below the HUD strip of a w x h window.
func gridViewport(f core.Frame, w, h, pixelSize int) (core.Viewport, bool) {
	area := core.NewRect(0, hudPixels, w, h-hudPixels)
	return core.CenterViewport(f.Width, f.Height, pixelSize, pixelSize, area)
}

// Update polls the keyboard and steps the game once.
func (w *Window) Update() error {
	in, quit := collectInput(inpututil.IsKeyJustPressed)
	if quit {
		w.saveScore()
		return ebiten.Termination
	}

	res := w.game.Step(in)
	w.state = res.State
	w.tick++

	if w.opts.Publisher != nil && !in.Empty() {
		w.opts.Publisher.Publish(w.game.ID(), w.tick, w.game.Frame())
	}
	return nil
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	bounds := screen.Bounds()
	f := w.game.Frame()
	v, _ := gridViewport(f, bounds.Dx(), bounds.Dy(), w.pixelSize)

	// Backdrop shows through the gaps between tiles
	back := v.Bounds(f.Width, f.Height)
	vector.DrawFilledRect(screen, float32(back.X), float32(back.Y), float32(back.W), float32(back.H), gridBackdrop, false)

	for _, t := range f.Tiles {
		c := t.Color.RGBA()
		if !t.Wall {
			c = dim(c, floorDimming)
		}
		w.fillTile(screen, v, t.X, t.Y, c)
	}

	if sel := f.Selection; sel != nil && sel.Active {
		x, y := v.ToArea(sel.X, sel.Y)
		vector.StrokeRect(screen, float32(x)+1, float32(y)+1,
			float32(w.pixelSize)-2, float32(w.pixelSize)-2, 2, sel.Color.RGBA(), false)
		w.drawGlyph(screen, v, sel.X, sel.Y, sel.Glyph, sel.Color)
	}

	for _, e := range f.Entities {
		w.drawGlyph(screen, v, e.X, e.Y, e.Glyph, e.Color)
	}

	if c := f.Cursor; c != nil {
		w.drawGlyph(screen, v, c.X, c.Y, c.Glyph, c.Color)
	}

	w.drawHUD(screen)
}

func (w *Window) fillTile(dst *ebiten.Image, v core.Viewport, gx, gy int, c color.Color) {
	x, y := v.ToArea(gx, gy)
	size := float32(w.pixelSize - tileGap)
	vector.DrawFilledRect(dst, float32(x), float32(y), size, size, c, false)
}

func (w *Window) drawGlyph(dst *ebiten.Image, v core.Viewport, gx, gy int, r rune, c core.Color) {
	x, y := v.ToArea(gx, gy)
	half := float64(w.pixelSize) / 2

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+half, float64(y)+half)
	op.ColorScale.ScaleWithColor(c.RGBA())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, string(r), w.face, op)
}

func (w *Window) drawHUD(dst *ebiten.Image) {
	line := fmt.Sprintf("%s  Moves: %d", w.game.Title(), w.state.Score)
	if w.state.Paused {
		line += "  [Paused]"
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 6)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(dst, line, w.hud, op)
}

// Layout keeps a 1:1 pixel mapping so the grid is re-centered on resize.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// saveScore stores the session score once.
func (w *Window) saveScore() {
	if w.saved {
		return
	}
	w.saved = true

	score := w.game.State().Score
	if score <= 0 || w.opts.Store == nil {
		return
	}
	if _, err := w.opts.Store.SaveScore(w.game.ID(), score); err != nil {
		w.opts.Logger.Warn("could not save score", "game", w.game.ID(), "error", err)
	}
}

// dim scales the color channels of c by f.
func dim(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// Run opens a window for game and blocks until it is closed.
func Run(game registry.Game, opts Options) error {
	w, err := NewWindow(game, opts)
	if err != nil {
		return err
	}

	tps := opts.Config.TickRate
	if tps <= 0 {
		tps = 60
	}

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	err = ebiten.RunGame(w)
	// Closing the window skips Update, so save here as well
	w.saveScore()
	return err
}
