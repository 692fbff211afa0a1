package core

import (
	"fmt"
	"image/color"
	"strings"
)

// Color represents a foreground color for a tile, glyph or screen cell.
// Hosts map it to ANSI 256-color codes (terminal) or RGBA (window).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright_red",
	ColorBrightGreen:   "bright_green",
	ColorBrightYellow:  "bright_yellow",
	ColorBrightBlue:    "bright_blue",
	ColorBrightMagenta: "bright_magenta",
	ColorBrightCyan:    "bright_cyan",
	ColorBrightWhite:   "bright_white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
}

// ansiCodes holds the ANSI 256-color code for each color.
// ColorDefault has no code and renders with the terminal foreground.
var ansiCodes = map[Color]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
}

var rgba = map[Color]color.RGBA{
	ColorDefault:       {R: 220, G: 220, B: 220, A: 255},
	ColorRed:           {R: 170, G: 40, B: 40, A: 255},
	ColorGreen:         {R: 40, G: 150, B: 60, A: 255},
	ColorYellow:        {R: 190, G: 170, B: 40, A: 255},
	ColorBlue:          {R: 50, G: 70, B: 180, A: 255},
	ColorMagenta:       {R: 160, G: 50, B: 160, A: 255},
	ColorCyan:          {R: 40, G: 160, B: 170, A: 255},
	ColorWhite:         {R: 200, G: 200, B: 200, A: 255},
	ColorBrightRed:     {R: 240, G: 80, B: 80, A: 255},
	ColorBrightGreen:   {R: 90, G: 230, B: 110, A: 255},
	ColorBrightYellow:  {R: 250, G: 230, B: 90, A: 255},
	ColorBrightBlue:    {R: 100, G: 130, B: 250, A: 255},
	ColorBrightMagenta: {R: 240, G: 100, B: 240, A: 255},
	ColorBrightCyan:    {R: 100, G: 240, B: 250, A: 255},
	ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	ColorOrange:        {R: 240, G: 140, B: 30, A: 255},
	ColorGray:          {R: 110, G: 110, B: 110, A: 255},
}

// String returns the config name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ANSI returns the ANSI 256-color code, or "" for ColorDefault.
func (c Color) ANSI() string {
	return ansiCodes[c]
}

// RGBA returns the color used by pixel renderers.
func (c Color) RGBA() color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[ColorDefault]
}

// ParseColor looks up a color by its config name (case-insensitive).
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}

// MarshalText implements encoding.TextMarshaler so colors appear by name
// in YAML and JSON.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
