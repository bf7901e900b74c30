package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/slide15/internal/config"
	"github.com/vovakirdan/slide15/internal/core"
)

// Palette maps attribute-layer bands to lipgloss styles.
type Palette []lipgloss.Style

// NewPalette builds one style per configured band.
func NewPalette(bands []config.Band) Palette {
	p := make(Palette, len(bands))
	for i, b := range bands {
		p[i] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(b.FG)).
			Background(lipgloss.Color(b.BG))
	}
	return p
}

// Style returns the style for band, or an unstyled one if it is out of range.
func (p Palette) Style(band uint8) lipgloss.Style {
	if int(band) >= len(p) {
		return lipgloss.NewStyle()
	}
	return p[band]
}

// RenderTileMap converts a tile map to a styled string for display.
// Groups adjacent tiles with the same band to minimize ANSI escape sequences.
// A switched-off or hidden display renders as blank lines of the same size.
func RenderTileMap(m *core.TileMap, glyphs *GlyphSet, palette Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(m.Width()*m.Height()*GlyphWidth*2 + m.Height())

	blank := strings.Repeat(" ", m.Width()*GlyphWidth)

	for y := range m.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		if !m.Shown() {
			sb.WriteString(blank)
			continue
		}

		// Group consecutive tiles with the same band for efficiency
		x := 0
		for x < m.Width() {
			band := m.Attribute(x, y)

			var run strings.Builder
			for x < m.Width() && m.Attribute(x, y) == band {
				run.WriteString(glyphs.Glyph(m.Content(x, y)))
				x++
			}

			sb.WriteString(palette.Style(band).Render(run.String()))
		}
	}
	return sb.String()
}

// PlainTileMap renders glyphs without styling, for screenshots and headless output.
func PlainTileMap(m *core.TileMap, glyphs *GlyphSet) string {
	return m.Dump(glyphs.Glyph)
}
