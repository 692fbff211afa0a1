package config

import (
	"fmt"
	"strings"
)

// SizePreset represents a named grid size.
type SizePreset string

const (
	SizeTiny   SizePreset = "tiny"
	SizeNormal SizePreset = "normal"
	SizeLarge  SizePreset = "large"
)

// Presets lists the size presets from smallest to largest.
var Presets = []SizePreset{SizeTiny, SizeNormal, SizeLarge}

// Dimensions returns the grid width and height for a preset.
func (p SizePreset) Dimensions() (w, h int, err error) {
	switch p {
	case SizeTiny:
		return 9, 9, nil
	case SizeNormal:
		return 20, 15, nil
	case SizeLarge:
		return 40, 20, nil
	}
	return 0, 0, fmt.Errorf("config: unknown size preset %q (want %s)", string(p), PresetNames())
}

// PresetNames returns the preset names joined for help and error text.
func PresetNames() string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// ApplySizePreset overrides the grid dimensions with a preset. Only the size
// changes; positions outside the new interior are clamped by the games.
func ApplySizePreset(g *GridConfig, preset SizePreset) error {
	w, h, err := preset.Dimensions()
	if err != nil {
		return err
	}
	g.Width = w
	g.Height = h
	return nil
}
