package config

import (
	_ "embed"
)

//go:embed defaults/slide15.yaml
var defaultYAML []byte

// Default returns the built-in configuration. The palette follows classic
// handheld color tables.
func Default() Config {
	return Config{
		Gameplay: Gameplay{
			InputDelay:  6,
			FlashBeats:  6,
			FlashFrames: 20,
		},
		Input: Input{
			HoldFrames: 4,
		},
		Display: Display{
			Glyphs: GlyphsUnicode,
		},
		Palette: []Band{
			{Name: "ui", FG: "#84A5E6", BG: "#000000"},
			{Name: "blue", FG: "#2142C5", BG: "#A5C5FF"},
			{Name: "green", FG: "#21A521", BG: "#A5FFA5"},
			{Name: "orange", FG: "#C54221", BG: "#FFC5A5"},
			{Name: "purple", FG: "#8421C5", BG: "#E6A5FF"},
			{Name: "empty", FG: "#212142", BG: "#424263"},
			{Name: "win", FG: "#C5A500", BG: "#FFFF84"},
			{Name: "text", FG: "#FFFFFF", BG: "#000000"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
