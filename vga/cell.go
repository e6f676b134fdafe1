package vga

// Cell is one character position of the text buffer. The field order and
// size match the hardware layout: character byte, then attribute byte.
type Cell struct {
	Char byte
	Attr ColorCode
}

// Blank is a space drawn in the given attribute.
func Blank(attr ColorCode) Cell {
	return Cell{Char: ' ', Attr: attr}
}

// Word returns the cell as the little-endian 16-bit value the hardware
// stores at its address.
func (c Cell) Word() uint16 {
	return uint16(c.Attr)<<8 | uint16(c.Char)
}

// CellFromWord is the inverse of Cell.Word.
func CellFromWord(w uint16) Cell {
	return Cell{Char: byte(w), Attr: ColorCode(w >> 8)}
}
