package vga

import "unsafe"

// Geometry and location of the colour text buffer on PC hardware.
const (
	Rows             = 25
	Cols             = 80
	PhysAddr uintptr = 0xB8000
)

// TextBuffer is a fixed rows x cols grid of cells laid out row-major, two
// bytes per cell. It does not own the memory it points at: the hardware
// buffer lives for as long as the machine is powered, and a hosted buffer
// lives for as long as the TextBuffer references it.
//
// All cell traffic goes through loadCell/storeCell so every access reaches
// memory in program order.
type TextBuffer struct {
	base unsafe.Pointer
	rows int
	cols int

	// mem keeps a hosted grid reachable; nil for the hardware buffer.
	mem []uint16
}

var hardware = TextBuffer{
	base: unsafe.Pointer(PhysAddr),
	rows: Rows,
	cols: Cols,
}

// Hardware returns the buffer bound at PhysAddr. Only a freestanding image
// running with the buffer identity-mapped may touch its cells.
func Hardware() *TextBuffer {
	return &hardware
}

// NewTextBuffer returns a heap-backed grid with the hardware's layout, used
// by hosted emulation and tests. Its contents start zeroed, which renders as
// black-on-black NUL cells, much like the arbitrary contents at boot.
func NewTextBuffer(rows, cols int) *TextBuffer {
	if rows <= 0 || cols <= 0 {
		panic("vga: text buffer dimensions must be positive")
	}
	mem := make([]uint16, rows*cols)
	return &TextBuffer{
		base: unsafe.Pointer(&mem[0]),
		rows: rows,
		cols: cols,
		mem:  mem,
	}
}

// Rows returns the number of rows.
func (b *TextBuffer) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *TextBuffer) Cols() int { return b.cols }

// Read loads the cell at (row, col). The caller guarantees both indices
// are in range.
//
//go:nosplit
func (b *TextBuffer) Read(row, col int) Cell {
	return loadCell(b.cell(row, col))
}

// Write stores c at (row, col). The caller guarantees both indices are in
// range.
//
//go:nosplit
func (b *TextBuffer) Write(row, col int, c Cell) {
	storeCell(b.cell(row, col), c)
}

//go:nosplit
func (b *TextBuffer) cell(row, col int) unsafe.Pointer {
	return unsafe.Add(b.base, (row*b.cols+col)*int(unsafe.Sizeof(Cell{})))
}
