package screen

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/encoding/charmap"
)

// The VGA character generator draws pictures for the control range, where
// code page 437 tables decode to control characters.
var controlGlyphs = []rune(" ☺☻♥♦♣♠•◘○◙♂♀♪♫☼►◄↕‼¶§▬↨↑↓→←∟↔▲▼")

const deleteGlyph = '⌂'

var glyphs [256]rune

func init() {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false

	for b := 0; b < 256; b++ {
		var r rune
		switch {
		case b < 0x20:
			r = controlGlyphs[b]
		case b == 0x7F:
			r = deleteGlyph
		default:
			r = charmap.CodePage437.DecodeByte(byte(b))
		}
		// Each cell is one terminal column wide.
		if cond.RuneWidth(r) != 1 {
			r = '?'
		}
		glyphs[b] = r
	}
}

// Glyph returns the rune the VGA character generator draws for b.
func Glyph(b byte) rune {
	return glyphs[b]
}
