package puzzle15

// Display geometry, in tiles.
const (
	DisplayWidth  = 20
	DisplayHeight = 18

	GridX = 4 // Board origin
	GridY = 3
	CellW = 3 // Each board cell is a 3x3 block of tiles
	CellH = 3

	HUDX     = GridX
	HUDY     = GridY + GridSize*CellH + 2
	HUDWidth = 8
)

// Tile indices on the content layer.
const (
	TileBlank uint8 = 0

	// Outer frame around the board.
	FrameTL uint8 = 1
	FrameT  uint8 = 2
	FrameTR uint8 = 3
	FrameL  uint8 = 4
	FrameR  uint8 = 5
	FrameBL uint8 = 6
	FrameB  uint8 = 7
	FrameBR uint8 = 8

	TileCellBG uint8 = 9

	TileDigitStart uint8 = 10 // Digits 1..9 at 10..18
	TilePairStart  uint8 = 19 // Two-digit values: tens/ones halves, two tiles per value

	TileEmptyCell uint8 = 31

	// Frame pieces of a numbered tile.
	TileTL uint8 = 32
	TileT  uint8 = 33
	TileTR uint8 = 34
	TileL  uint8 = 35
	TileR  uint8 = 36
	TileBL uint8 = 37
	TileB  uint8 = 38
	TileBR uint8 = 39

	TileZero uint8 = 40 // Standalone 0 digit for the HUD

	TileCount = 41
)

// Palette bands on the attribute layer.
const (
	BandUI uint8 = iota
	BandBlue
	BandGreen
	BandOrange
	BandPurple
	BandEmpty
	BandWin
	BandText

	BandCount = 8
)

// BandFor returns the palette band for a tile identifier.
func BandFor(tile uint8) uint8 {
	switch {
	case tile == EmptyTile:
		return BandEmpty
	case tile <= 4:
		return BandBlue
	case tile <= 8:
		return BandGreen
	case tile <= 12:
		return BandOrange
	default:
		return BandPurple
	}
}

// DigitTile returns the glyph tile for a single decimal digit.
func DigitTile(d int) uint8 {
	if d == 0 {
		return TileZero
	}
	return TileDigitStart + uint8(d) - 1
}

// PairTiles returns the tens and ones glyph tiles for a value in 10..15.
func PairTiles(v uint8) (tens, ones uint8) {
	base := TilePairStart + (v-10)*2
	return base, base + 1
}
