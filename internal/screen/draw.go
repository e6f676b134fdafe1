package screen

import (
	"github.com/gdamore/tcell/v2"

	"vgacon/vga"
)

// Style returns the tcell style for a VGA attribute.
func Style(attr vga.ColorCode) tcell.Style {
	fg := RGB(attr.Foreground())
	bg := RGB(attr.Background())
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
}

// Draw paints s onto scr with its top-left cell at (x, y). Cells falling
// outside the screen are clipped.
func Draw(scr tcell.Screen, s Snapshot, x, y int) {
	width, height := scr.Size()
	for row := 0; row < s.Rows; row++ {
		sy := y + row
		if sy < 0 || sy >= height {
			continue
		}
		for col := 0; col < s.Cols; col++ {
			sx := x + col
			if sx < 0 || sx >= width {
				continue
			}
			c := s.At(row, col)
			scr.SetContent(sx, sy, Glyph(c.Char), nil, Style(c.Attr))
		}
	}
}
