// Package screen captures, fingerprints and renders the contents of a
// vga.TextBuffer for the hosted tools.
package screen

import (
	"encoding/binary"
	"strings"

	"github.com/cespare/xxhash"

	"vgacon/vga"
)

// Snapshot is a copy of a text buffer at one instant.
type Snapshot struct {
	Rows  int
	Cols  int
	Cells []vga.Cell
}

// Capture copies every cell of buf, row by row.
func Capture(buf *vga.TextBuffer) Snapshot {
	s := Snapshot{
		Rows:  buf.Rows(),
		Cols:  buf.Cols(),
		Cells: make([]vga.Cell, buf.Rows()*buf.Cols()),
	}
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			s.Cells[row*s.Cols+col] = buf.Read(row, col)
		}
	}
	return s
}

// At returns the cell at (row, col).
func (s Snapshot) At(row, col int) vga.Cell {
	return s.Cells[row*s.Cols+col]
}

// Line returns row as display text with trailing blanks removed.
func (s Snapshot) Line(row int) string {
	var sb strings.Builder
	for col := 0; col < s.Cols; col++ {
		sb.WriteRune(Glyph(s.At(row, col).Char))
	}
	return strings.TrimRight(sb.String(), " ")
}

// Text returns every row, newline terminated.
func (s Snapshot) Text() string {
	var sb strings.Builder
	for row := 0; row < s.Rows; row++ {
		sb.WriteString(s.Line(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Bytes returns the cells in video memory format.
func (s Snapshot) Bytes() []byte {
	out := make([]byte, 2*len(s.Cells))
	for i, c := range s.Cells {
		binary.LittleEndian.PutUint16(out[2*i:], c.Word())
	}
	return out
}

// Fingerprint hashes the geometry and every cell. Two snapshots with the
// same fingerprint show the same screen.
func (s Snapshot) Fingerprint() uint64 {
	h := xxhash.New()
	var dims [4]byte
	binary.LittleEndian.PutUint16(dims[0:], uint16(s.Rows))
	binary.LittleEndian.PutUint16(dims[2:], uint16(s.Cols))
	h.Write(dims[:])
	h.Write(s.Bytes())
	return h.Sum64()
}
