//go:build !amd64

package vga

import "unsafe"

// Without an assembly shim the accessors stay out of line so the compiler
// has to perform each access where it is issued. Bytes are moved
// individually to keep the character-then-attribute order on any byte order.

//go:noinline
func loadCell(p unsafe.Pointer) Cell {
	b := (*[2]byte)(p)
	return Cell{Char: b[0], Attr: ColorCode(b[1])}
}

//go:noinline
func storeCell(p unsafe.Pointer, c Cell) {
	b := (*[2]byte)(p)
	b[0] = c.Char
	b[1] = byte(c.Attr)
}
