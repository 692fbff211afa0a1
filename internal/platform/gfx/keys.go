package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tilegrid/internal/core"
)

// keyBinding maps one window key to a game action.
type keyBinding struct {
	Key    ebiten.Key
	Action core.Action
}

// defaultBindings mirrors the terminal keys: arrows or vi keys to move,
// enter to select, space to deselect.
var defaultBindings = []keyBinding{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyH, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyL, core.ActionRight},
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyK, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyJ, core.ActionDown},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyNumpadEnter, core.ActionConfirm},
	{ebiten.KeySpace, core.ActionCancel},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// collectInput builds the input frame for one tick from the keys reported
// by justPressed. The second result is true when a quit key was pressed.
func collectInput(justPressed func(ebiten.Key) bool) (core.InputFrame, bool) {
	in := core.NewInputFrame()
	quit := false
	for _, b := range defaultBindings {
		if !justPressed(b.Key) {
			continue
		}
		if b.Action == core.ActionQuit {
			quit = true
			continue
		}
		in.Set(b.Action)
	}
	return in, quit
}
