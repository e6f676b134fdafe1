//go:build amd64

package vga

import "unsafe"

// load16 and store16 are implemented in mmio_amd64.s. Being assembly, the
// compiler can neither reorder nor drop them.

//go:noescape
func load16(p *uint16) uint16

//go:noescape
func store16(p *uint16, v uint16)

//go:nosplit
func loadCell(p unsafe.Pointer) Cell {
	return CellFromWord(load16((*uint16)(p)))
}

//go:nosplit
func storeCell(p unsafe.Pointer, c Cell) {
	store16((*uint16)(p), c.Word())
}
