package bitfield

// CellBits describes one 16-bit VGA text cell as the hardware sees it:
// character code in the low byte, then the attribute nibbles.
type CellBits struct {
	// Char is the code page 437 character code
	Char uint8 `bitfield:",8"`

	// Foreground is the palette index of the glyph (attribute bits 0-3)
	Foreground uint8 `bitfield:",4"`

	// Background is the palette index behind the glyph (attribute bits 4-7)
	Background uint8 `bitfield:",4"`
}

// PackCell packs c into the 16-bit word stored in video memory.
func PackCell(c CellBits) (uint16, error) {
	packed, err := Pack(c, &Config{NumBits: 16})
	if err != nil {
		return 0, err
	}
	return uint16(packed), nil
}

// UnpackCell splits a video memory word into its fields.
func UnpackCell(w uint16) CellBits {
	var c CellBits
	// The layout is fixed above, so Unpack cannot fail here.
	_ = Unpack(uint64(w), &c)
	return c
}
