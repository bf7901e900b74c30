package core

import (
	"strings"
)

// TileMap is an in-memory Display. It decouples game rendering from the terminal:
// games write tiles and palette bands, the platform turns them into glyphs and colors.
type TileMap struct {
	width   int
	height  int
	content []uint8
	attrs   []uint8
	visible bool
	powered bool
	writes  int
}

// NewTileMap creates a tile map with both layers zeroed. The display starts
// powered and visible.
func NewTileMap(width, height int) *TileMap {
	return &TileMap{
		width:   width,
		height:  height,
		content: make([]uint8, width*height),
		attrs:   make([]uint8, width*height),
		visible: true,
		powered: true,
	}
}

// Width returns the map width in tiles.
func (m *TileMap) Width() int {
	return m.width
}

// Height returns the map height in tiles.
func (m *TileMap) Height() int {
	return m.height
}

func (m *TileMap) index(x, y int) (int, bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0, false
	}
	return y*m.width + x, true
}

// WriteContent places a tile index at the given position.
// Out-of-bounds coordinates are silently ignored.
func (m *TileMap) WriteContent(x, y int, tile uint8) {
	if i, ok := m.index(x, y); ok {
		m.content[i] = tile
		m.writes++
	}
}

// WriteAttribute places a palette band at the given position.
// Out-of-bounds coordinates are silently ignored.
func (m *TileMap) WriteAttribute(x, y int, band uint8) {
	if i, ok := m.index(x, y); ok {
		m.attrs[i] = band
		m.writes++
	}
}

// Content returns the tile index at (x, y), or 0 out of bounds.
func (m *TileMap) Content(x, y int) uint8 {
	if i, ok := m.index(x, y); ok {
		return m.content[i]
	}
	return 0
}

// Attribute returns the palette band at (x, y), or 0 out of bounds.
func (m *TileMap) Attribute(x, y int) uint8 {
	if i, ok := m.index(x, y); ok {
		return m.attrs[i]
	}
	return 0
}

// SetVisible shows or hides the background layer.
func (m *TileMap) SetVisible(visible bool) {
	m.visible = visible
}

// SetPower turns the display on or off.
func (m *TileMap) SetPower(on bool) {
	m.powered = on
}

// Shown reports whether anything should reach the screen.
func (m *TileMap) Shown() bool {
	return m.visible && m.powered
}

// Writes returns the number of tile writes (both layers) since creation.
// Used to check that incremental redraws stay incremental.
func (m *TileMap) Writes() int {
	return m.writes
}

// Dump renders the content layer as text, one row per line, mapping each tile
// through glyph.
func (m *TileMap) Dump(glyph func(tile uint8) string) string {
	var sb strings.Builder
	for y := range m.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range m.width {
			sb.WriteString(glyph(m.content[y*m.width+x]))
		}
	}
	return sb.String()
}
