package tui

import (
	"fmt"

	"github.com/vovakirdan/slide15/internal/config"
	"github.com/vovakirdan/slide15/internal/games/puzzle15"
)

// GlyphWidth is the number of terminal columns one tile takes.
// Two columns keep tiles roughly square.
const GlyphWidth = 2

// GlyphSet maps every tile index to the text drawn for it.
type GlyphSet [puzzle15.TileCount]string

// Glyph returns the text for tile, or blanks for unknown indices.
func (g *GlyphSet) Glyph(tile uint8) string {
	if int(tile) >= len(g) || g[tile] == "" {
		return "  "
	}
	return g[tile]
}

type frameGlyphs struct {
	tl, t, tr, l, r, bl, b, br string
}

func buildGlyphs(outer, tile frameGlyphs, empty, bar string) GlyphSet {
	var g GlyphSet

	g[puzzle15.TileBlank] = "  "
	g[puzzle15.FrameTL] = outer.tl
	g[puzzle15.FrameT] = outer.t
	g[puzzle15.FrameTR] = outer.tr
	g[puzzle15.FrameL] = outer.l
	g[puzzle15.FrameR] = outer.r
	g[puzzle15.FrameBL] = outer.bl
	g[puzzle15.FrameB] = outer.b
	g[puzzle15.FrameBR] = outer.br
	g[puzzle15.TileCellBG] = "  "

	for d := 1; d <= 9; d++ {
		g[puzzle15.DigitTile(d)] = fmt.Sprintf(" %d", d)
	}
	g[puzzle15.TileZero] = " 0"

	// The ones half of a two-digit value sits where the right edge would be.
	for v := uint8(10); v <= 15; v++ {
		tens, ones := puzzle15.PairTiles(v)
		g[tens] = " 1"
		g[ones] = fmt.Sprintf("%d%s", v-10, bar)
	}

	g[puzzle15.TileEmptyCell] = empty
	g[puzzle15.TileTL] = tile.tl
	g[puzzle15.TileT] = tile.t
	g[puzzle15.TileTR] = tile.tr
	g[puzzle15.TileL] = tile.l
	g[puzzle15.TileR] = tile.r
	g[puzzle15.TileBL] = tile.bl
	g[puzzle15.TileB] = tile.b
	g[puzzle15.TileBR] = tile.br

	return g
}

// UnicodeGlyphs draws tiles with box-drawing characters.
func UnicodeGlyphs() GlyphSet {
	return buildGlyphs(
		frameGlyphs{"╔═", "══", "═╗", "║ ", " ║", "╚═", "══", "═╝"},
		frameGlyphs{"┌─", "──", "─┐", "│ ", " │", "└─", "──", "─┘"},
		"░░", "│",
	)
}

// ASCIIGlyphs draws tiles with plain ASCII for limited terminals.
func ASCIIGlyphs() GlyphSet {
	return buildGlyphs(
		frameGlyphs{"#=", "==", "=#", "# ", " #", "#=", "==", "=#"},
		frameGlyphs{"+-", "--", "-+", "| ", " |", "+-", "--", "-+"},
		"::", "|",
	)
}

// GlyphsFor returns the glyph set named in the display config.
func GlyphsFor(name string) (GlyphSet, error) {
	switch name {
	case config.GlyphsUnicode, "":
		return UnicodeGlyphs(), nil
	case config.GlyphsASCII:
		return ASCIIGlyphs(), nil
	default:
		return GlyphSet{}, fmt.Errorf("tui: unknown glyph set %q", name)
	}
}
