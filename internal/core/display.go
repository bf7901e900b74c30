package core

// Display is a two-layer tile display. The content layer holds tile indices
// (glyphs, frame pieces) and the attribute layer holds a palette band per tile.
// Both layers share the same coordinate space.
type Display interface {
	// WriteContent sets the tile index at (x, y) on the content layer.
	WriteContent(x, y int, tile uint8)

	// WriteAttribute sets the palette band at (x, y) on the attribute layer.
	WriteAttribute(x, y int, band uint8)

	// SetVisible shows or hides the background layer.
	SetVisible(visible bool)

	// SetPower turns the whole display on or off.
	SetPower(on bool)
}
