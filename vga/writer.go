package vga

// Writer turns a byte stream into screen content. New text always lands on
// the bottom row; older rows move up as lines complete, so there is no row
// cursor, only a column.
//
// A Writer is not safe for concurrent use. The process-wide writer behind
// Print and friends is serialized by the console lock.
type Writer struct {
	column int
	color  ColorCode
	buf    *TextBuffer
}

// NewWriter returns a writer at column 0 drawing in color.
func NewWriter(buf *TextBuffer, color ColorCode) *Writer {
	return &Writer{color: color, buf: buf}
}

// Column returns the next column to be written, in [0, cols]. A value of
// cols means the bottom row is full and the next printable byte scrolls.
func (w *Writer) Column() int { return w.column }

// Color returns the attribute used for new cells.
func (w *Writer) Color() ColorCode { return w.color }

// Buffer returns the grid the writer draws into.
func (w *Writer) Buffer() *TextBuffer { return w.buf }

// WriteByte places one byte. A newline scrolls; any other value is stored
// as-is and rendered by the hardware glyph table. It never fails.
func (w *Writer) WriteByte(b byte) error {
	if b == '\n' {
		w.NewLine()
		return nil
	}
	if w.column >= w.buf.cols {
		w.NewLine()
	}
	w.buf.Write(w.buf.rows-1, w.column, Cell{Char: b, Attr: w.color})
	w.column++
	return nil
}

// Write feeds p through WriteByte in order.
func (w *Writer) Write(p []byte) (int, error) {
	for _, b := range p {
		_ = w.WriteByte(b)
	}
	return len(p), nil
}

// WriteString is Write without the conversion.
func (w *Writer) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		_ = w.WriteByte(s[i])
	}
	return len(s), nil
}

// NewLine scrolls every row up by one, blanks the bottom row and returns
// the cursor to column 0. Rows are copied in increasing order so each
// source row is read before it is overwritten.
func (w *Writer) NewLine() {
	rows, cols := w.buf.rows, w.buf.cols
	for row := 1; row < rows; row++ {
		for col := 0; col < cols; col++ {
			w.buf.Write(row-1, col, w.buf.Read(row, col))
		}
	}
	w.clearRow(rows - 1)
	w.column = 0
}

// ClearScreen scrolls the whole grid out, one newline per row, leaving
// every cell blank in the writer's color.
func (w *Writer) ClearScreen() {
	for i := 0; i < w.buf.rows; i++ {
		w.NewLine()
	}
}

func (w *Writer) clearRow(row int) {
	blank := Blank(w.color)
	for col := 0; col < w.buf.cols; col++ {
		w.buf.Write(row, col, blank)
	}
}
