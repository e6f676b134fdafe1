package vga

import "strings"

// Color is one of the sixteen indices of the VGA text mode palette.
type Color uint8

// Palette indices as the hardware defines them.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

var colorNames = [16]string{
	"Black", "Blue", "Green", "Cyan",
	"Red", "Magenta", "Brown", "LightGray",
	"DarkGray", "LightBlue", "LightGreen", "LightCyan",
	"LightRed", "Pink", "Yellow", "White",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "Color(invalid)"
}

// ParseColor returns the palette index for a color name. Matching ignores
// case, so "lightgreen" and "LightGreen" are the same color.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if strings.EqualFold(n, name) {
			return Color(i), true
		}
	}
	return 0, false
}

// ColorCode is a packed attribute byte: foreground in bits 0-3,
// background in bits 4-7.
type ColorCode uint8

// Attribute values used by the writer and the fault indicator.
const (
	DefaultColor ColorCode = ColorCode(Black)<<4 | ColorCode(LightGreen)
	PanicColor   ColorCode = ColorCode(Red)<<4 | ColorCode(White)
)

// NewColorCode packs a foreground/background pair.
func NewColorCode(fg, bg Color) ColorCode {
	return ColorCode(bg&0xF)<<4 | ColorCode(fg&0xF)
}

// Foreground returns the low nibble.
func (c ColorCode) Foreground() Color {
	return Color(c & 0xF)
}

// Background returns the high nibble.
func (c ColorCode) Background() Color {
	return Color(c >> 4)
}
