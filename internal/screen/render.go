package screen

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"vgacon/vga"
)

// Character cell size in pixels at scale 1. The basicfont face is 7x13;
// the extra column and rows stand in for the VGA 9x16 cell spacing.
const (
	CellWidth  = 8
	CellHeight = 16

	glyphBaseline = 12
)

// Render rasterises s. scale multiplies the cell size; values below 1 are
// treated as 1.
func Render(s Snapshot, scale int) image.Image {
	if scale < 1 {
		scale = 1
	}
	dc := gg.NewContext(s.Cols*CellWidth, s.Rows*CellHeight)
	dc.SetFontFace(basicfont.Face7x13)

	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			drawCell(dc, s.At(row, col), float64(col*CellWidth), float64(row*CellHeight))
		}
	}

	if scale == 1 {
		return dc.Image()
	}
	out := gg.NewContext(s.Cols*CellWidth*scale, s.Rows*CellHeight*scale)
	out.Scale(float64(scale), float64(scale))
	out.DrawImage(dc.Image(), 0, 0)
	return out.Image()
}

// SavePNG renders s and writes it to path.
func SavePNG(s Snapshot, path string, scale int) error {
	return gg.SavePNG(path, Render(s, scale))
}

func drawCell(dc *gg.Context, c vga.Cell, x, y float64) {
	fg := RGB(c.Attr.Foreground())
	bg := RGB(c.Attr.Background())

	dc.SetColor(bg)
	dc.DrawRectangle(x, y, CellWidth, CellHeight)
	dc.Fill()

	dc.SetColor(fg)
	// The font has no block elements, so draw those as rectangles.
	switch c.Char {
	case 0xDB: // full block
		dc.DrawRectangle(x, y, CellWidth, CellHeight)
	case 0xDC: // lower half
		dc.DrawRectangle(x, y+CellHeight/2, CellWidth, CellHeight/2)
	case 0xDD: // left half
		dc.DrawRectangle(x, y, CellWidth/2, CellHeight)
	case 0xDE: // right half
		dc.DrawRectangle(x+CellWidth/2, y, CellWidth/2, CellHeight)
	case 0xDF: // upper half
		dc.DrawRectangle(x, y, CellWidth, CellHeight/2)
	default:
		r := Glyph(c.Char)
		if r != ' ' {
			dc.DrawString(string(r), x, y+glyphBaseline)
		}
		return
	}
	dc.Fill()
}
