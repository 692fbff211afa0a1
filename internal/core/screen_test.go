package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", cell)
	}

	s.Set(4, 4, 'Y')
	if s.GetCell(4, 4).Color != ColorDefault {
		t.Error("Set should store the default color")
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorBlue)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawColorText(2, 1, "Hello", ColorGreen)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorGreen {
			t.Errorf("DrawColorText: expected green %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "─a")
	if s.Get(0, 0) != '─' || s.Get(1, 0) != 'a' {
		t.Errorf("multibyte runes should take one cell each, row = %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '+' || s.Get(5, 4) != '+' {
		t.Errorf("corners should be '+', got %q and %q", s.Get(1, 1), s.Get(5, 4))
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '-' || s.Get(x, 4) != '-' {
			t.Errorf("horizontal edge should be '-' at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '|' || s.Get(5, y) != '|' {
			t.Errorf("vertical edge should be '|' at y=%d", y)
		}
	}
}

func TestScreenOverlay(t *testing.T) {
	s := NewScreen(30, 11)
	s.DrawOverlay("Paused", "Press P to continue")

	if !strings.Contains(s.String(), "Paused") {
		t.Error("overlay should contain its first line")
	}
	if !strings.Contains(s.String(), "Press P to continue") {
		t.Error("overlay should contain its second line")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if len(s.Row(3)) != 8 {
		t.Errorf("Row length should be 8, got %d", len(s.Row(3)))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestFrameDrawLayers(t *testing.T) {
	f := Frame{
		Width:  3,
		Height: 3,
		Tiles: []FrameTile{
			{X: 0, Y: 0, Glyph: '#', Color: ColorGray, Wall: true},
			{X: 1, Y: 1, Glyph: '.', Color: ColorGreen},
			{X: 2, Y: 1, Glyph: '.', Color: ColorGreen},
		},
		Selection: &FrameSelection{X: 1, Y: 1, Glyph: '*', Color: ColorBrightYellow, Active: true},
		Entities:  []FrameEntity{{Name: "rat", X: 2, Y: 1, Glyph: 'r', Color: ColorRed}},
		Cursor:    &FrameCursor{X: 1, Y: 1, Glyph: 'X', Color: ColorBrightCyan},
	}

	s := NewScreen(6, 3)
	f.Draw(s, Viewport{TileW: 2, TileH: 1})

	if c := s.GetCell(0, 0); c.Rune != '#' || c.Color != ColorGray {
		t.Errorf("wall tile = %+v", c)
	}
	if c := s.GetCell(4, 1); c.Rune != 'r' {
		t.Errorf("entity should be drawn over its tile, got %+v", c)
	}
	// Cursor sits on the active selection and takes its color.
	if c := s.GetCell(2, 1); c.Rune != 'X' || c.Color != ColorBrightYellow {
		t.Errorf("cursor over selection = %+v, expected yellow X", c)
	}
	if s.Get(1, 0) != ' ' {
		t.Error("second cell of a tile should stay blank")
	}
}

func TestFrameDrawInactiveSelection(t *testing.T) {
	f := Frame{
		Tiles:     []FrameTile{{X: 0, Y: 0, Glyph: '.', Color: ColorGreen}},
		Selection: &FrameSelection{X: 0, Y: 0, Glyph: '*', Active: false},
	}
	s := NewScreen(1, 1)
	f.Draw(s, Viewport{TileW: 1, TileH: 1})
	if s.Get(0, 0) != '.' {
		t.Errorf("inactive selection must not be drawn, got %q", s.Get(0, 0))
	}
}

func TestColorNames(t *testing.T) {
	for _, name := range []string{"red", "Bright_Yellow", " gray "} {
		c, err := ParseColor(name)
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", name, err)
			continue
		}
		text, _ := c.MarshalText()
		var back Color
		if err := back.UnmarshalText(text); err != nil || back != c {
			t.Errorf("color %q did not survive text encoding", name)
		}
	}
	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("unknown color should fail to parse")
	}
	if ColorDefault.ANSI() != "" {
		t.Error("default color should have no ANSI code")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}
	f.Set(ActionLeft)
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("frame should hold exactly the set action")
	}
	f.Clear()
	if f.Has(ActionLeft) || !f.Empty() {
		t.Error("Clear should drop all actions")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}
