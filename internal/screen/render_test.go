package screen

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"vgacon/vga"
)

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestRenderSizeAndBackground(t *testing.T) {
	buf := vga.NewTextBuffer(2, 3)
	attr := vga.NewColorCode(vga.Yellow, vga.Blue)
	w := vga.NewWriter(buf, attr)
	w.ClearScreen()

	img := Render(Capture(buf), 1)
	if b := img.Bounds(); b.Dx() != 3*CellWidth || b.Dy() != 2*CellHeight {
		t.Fatalf("bounds = %v", b)
	}
	if got := rgbaAt(img, CellWidth+3, CellHeight+3); got != RGB(vga.Blue) {
		t.Errorf("background pixel = %v, want %v", got, RGB(vga.Blue))
	}

	scaled := Render(Capture(buf), 2)
	if b := scaled.Bounds(); b.Dx() != 6*CellWidth || b.Dy() != 4*CellHeight {
		t.Errorf("scaled bounds = %v", b)
	}
}

func TestRenderBlockGlyph(t *testing.T) {
	buf := vga.NewTextBuffer(1, 2)
	buf.Write(0, 0, vga.Cell{Char: 0xDB, Attr: vga.NewColorCode(vga.Pink, vga.Black)})
	buf.Write(0, 1, vga.Cell{Char: 0xDC, Attr: vga.NewColorCode(vga.White, vga.Green)})

	img := Render(Capture(buf), 1)
	if got := rgbaAt(img, CellWidth/2, CellHeight/2); got != RGB(vga.Pink) {
		t.Errorf("full block pixel = %v", got)
	}
	if got := rgbaAt(img, CellWidth+CellWidth/2, 2); got != RGB(vga.Green) {
		t.Errorf("upper half of lower block = %v", got)
	}
	if got := rgbaAt(img, CellWidth+CellWidth/2, CellHeight-2); got != RGB(vga.White) {
		t.Errorf("lower half of lower block = %v", got)
	}
}

func TestSavePNG(t *testing.T) {
	buf := vga.NewTextBuffer(vga.Rows, vga.Cols)
	w := vga.NewWriter(buf, vga.DefaultColor)
	w.ClearScreen()
	vga.ShowPanicIndicator(buf)

	path := filepath.Join(t.TempDir(), "screen.png")
	if err := SavePNG(Capture(buf), path, 1); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != vga.Cols*CellWidth || b.Dy() != vga.Rows*CellHeight {
		t.Errorf("bounds = %v", b)
	}
	// Top-left pixel of the indicator's first cell is red background.
	x := (vga.Cols - 6) * CellWidth
	y := (vga.Rows - 1) * CellHeight
	if got := rgbaAt(img, x, y); got != RGB(vga.Red) {
		t.Errorf("indicator background = %v, want %v", got, RGB(vga.Red))
	}
}
