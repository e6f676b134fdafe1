package screen

import (
	"image/color"

	"vgacon/vga"
)

// The default VGA DAC palette for the sixteen text attributes.
var palette = [16]color.RGBA{
	vga.Black:      {0x00, 0x00, 0x00, 0xFF},
	vga.Blue:       {0x00, 0x00, 0xAA, 0xFF},
	vga.Green:      {0x00, 0xAA, 0x00, 0xFF},
	vga.Cyan:       {0x00, 0xAA, 0xAA, 0xFF},
	vga.Red:        {0xAA, 0x00, 0x00, 0xFF},
	vga.Magenta:    {0xAA, 0x00, 0xAA, 0xFF},
	vga.Brown:      {0xAA, 0x55, 0x00, 0xFF},
	vga.LightGray:  {0xAA, 0xAA, 0xAA, 0xFF},
	vga.DarkGray:   {0x55, 0x55, 0x55, 0xFF},
	vga.LightBlue:  {0x55, 0x55, 0xFF, 0xFF},
	vga.LightGreen: {0x55, 0xFF, 0x55, 0xFF},
	vga.LightCyan:  {0x55, 0xFF, 0xFF, 0xFF},
	vga.LightRed:   {0xFF, 0x55, 0x55, 0xFF},
	vga.Pink:       {0xFF, 0x55, 0xFF, 0xFF},
	vga.Yellow:     {0xFF, 0xFF, 0x55, 0xFF},
	vga.White:      {0xFF, 0xFF, 0xFF, 0xFF},
}

// RGB returns the display color of a palette index.
func RGB(c vga.Color) color.RGBA {
	return palette[c&0xF]
}
