// Package config provides YAML-based configuration loading for the puzzle:
// input timing, the win flash, terminal glyphs and the palette bands.
package config

import (
	"errors"
	"fmt"
)

// PaletteBands is the number of palette bands the attribute layer can select.
const PaletteBands = 8

// Config contains all user-tunable settings.
type Config struct {
	Gameplay Gameplay `yaml:"gameplay"`
	Input    Input    `yaml:"input"`
	Display  Display  `yaml:"display"`
	Palette  []Band   `yaml:"palette"`
}

// Gameplay defines timing of the play loop, in ticks.
type Gameplay struct {
	InputDelay  int `yaml:"input_delay"`  // Ticks ignored after an accepted input
	FlashBeats  int `yaml:"flash_beats"`  // Alternations of the win flash
	FlashFrames int `yaml:"flash_frames"` // Ticks per flash beat
}

// Input defines how terminal key presses become held buttons.
type Input struct {
	// HoldFrames is how many ticks a single key press counts as held.
	// Terminals report presses but not releases.
	HoldFrames int `yaml:"hold_frames"`
}

// Display defines how tiles are drawn in the terminal.
type Display struct {
	Glyphs string `yaml:"glyphs"` // "unicode" or "ascii"
}

// Band is one palette entry: glyph foreground and tile background.
type Band struct {
	Name string `yaml:"name"`
	FG   string `yaml:"fg"`
	BG   string `yaml:"bg"`
}

// Glyph set names.
const (
	GlyphsUnicode = "unicode"
	GlyphsASCII   = "ascii"
)

// Validate checks the config for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Gameplay.InputDelay < 0 {
		errs = append(errs, fmt.Errorf("gameplay.input_delay must be >= 0, got %d", c.Gameplay.InputDelay))
	}
	if c.Gameplay.FlashBeats < 1 {
		errs = append(errs, fmt.Errorf("gameplay.flash_beats must be >= 1, got %d", c.Gameplay.FlashBeats))
	}
	if c.Gameplay.FlashFrames < 1 {
		errs = append(errs, fmt.Errorf("gameplay.flash_frames must be >= 1, got %d", c.Gameplay.FlashFrames))
	}
	if c.Input.HoldFrames < 1 {
		errs = append(errs, fmt.Errorf("input.hold_frames must be >= 1, got %d", c.Input.HoldFrames))
	}
	// A press held longer than the cooldown would be processed twice.
	if c.Input.HoldFrames > c.Gameplay.InputDelay+1 {
		errs = append(errs, fmt.Errorf("input.hold_frames (%d) must not exceed gameplay.input_delay+1 (%d)",
			c.Input.HoldFrames, c.Gameplay.InputDelay+1))
	}
	switch c.Display.Glyphs {
	case GlyphsUnicode, GlyphsASCII:
	default:
		errs = append(errs, fmt.Errorf("display.glyphs must be %q or %q, got %q", GlyphsUnicode, GlyphsASCII, c.Display.Glyphs))
	}
	if len(c.Palette) != PaletteBands {
		errs = append(errs, fmt.Errorf("palette must have %d bands, got %d", PaletteBands, len(c.Palette)))
	}
	for i, b := range c.Palette {
		if b.FG == "" || b.BG == "" {
			errs = append(errs, fmt.Errorf("palette[%d] (%s) needs both fg and bg", i, b.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
