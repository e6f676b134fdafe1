package vga

import (
	"strings"
	"testing"
)

func rowText(buf *TextBuffer, row int) string {
	var sb strings.Builder
	for col := 0; col < buf.Cols(); col++ {
		sb.WriteByte(buf.Read(row, col).Char)
	}
	return sb.String()
}

func fillRows(buf *TextBuffer) {
	for row := 0; row < buf.Rows(); row++ {
		for col := 0; col < buf.Cols(); col++ {
			buf.Write(row, col, Cell{Char: byte('a' + row), Attr: NewColorCode(Color(row%16), Color(col%16))})
		}
	}
}

func TestWriteByteWrapsAtLastColumn(t *testing.T) {
	buf := NewTextBuffer(3, 5)
	w := NewWriter(buf, DefaultColor)
	w.ClearScreen()

	w.WriteString("abcde")
	if w.Column() != 5 {
		t.Fatalf("Column() after a full row = %d, want 5", w.Column())
	}
	if got := rowText(buf, 2); got != "abcde" {
		t.Fatalf("bottom row = %q, want %q", got, "abcde")
	}
	if got := rowText(buf, 1); got != "     " {
		t.Fatalf("row above scrolled early: %q", got)
	}

	_ = w.WriteByte('f')
	if got := rowText(buf, 1); got != "abcde" {
		t.Errorf("row 1 = %q, want %q", got, "abcde")
	}
	if got := rowText(buf, 2); got != "f    " {
		t.Errorf("bottom row = %q, want %q", got, "f    ")
	}
	if w.Column() != 1 {
		t.Errorf("Column() = %d, want 1", w.Column())
	}
}

func TestNewlineAlwaysScrolls(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"from column 0", ""},
		{"mid row", "ab"},
		{"full row", "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewTextBuffer(3, 4)
			w := NewWriter(buf, DefaultColor)
			w.ClearScreen()
			w.WriteString(tt.prefix)
			before := rowText(buf, 2)

			_ = w.WriteByte('\n')

			if w.Column() != 0 {
				t.Errorf("Column() = %d, want 0", w.Column())
			}
			if got := rowText(buf, 1); got != before {
				t.Errorf("row 1 = %q, want %q", got, before)
			}
			if got := rowText(buf, 2); got != "    " {
				t.Errorf("bottom row = %q, want blank", got)
			}
		})
	}
}

func TestNewLinePreservesContent(t *testing.T) {
	buf := NewTextBuffer(6, 7)
	fillRows(buf)

	before := make([][]Cell, buf.Rows())
	for row := range before {
		before[row] = make([]Cell, buf.Cols())
		for col := range before[row] {
			before[row][col] = buf.Read(row, col)
		}
	}

	attr := NewColorCode(Yellow, Blue)
	w := NewWriter(buf, attr)
	w.NewLine()

	for row := 0; row < buf.Rows()-1; row++ {
		for col := 0; col < buf.Cols(); col++ {
			if got := buf.Read(row, col); got != before[row+1][col] {
				t.Fatalf("cell (%d, %d) = %+v, want %+v", row, col, got, before[row+1][col])
			}
		}
	}
	for col := 0; col < buf.Cols(); col++ {
		if got := buf.Read(buf.Rows()-1, col); got != Blank(attr) {
			t.Fatalf("bottom cell %d = %+v, want blank in 0x%02x", col, got, uint8(attr))
		}
	}
}

func TestClearScreen(t *testing.T) {
	buf := NewTextBuffer(Rows, Cols)
	fillRows(buf)

	w := NewWriter(buf, DefaultColor)
	w.WriteString("leftover")
	w.ClearScreen()

	if w.Column() != 0 {
		t.Errorf("Column() = %d, want 0", w.Column())
	}
	for row := 0; row < buf.Rows(); row++ {
		for col := 0; col < buf.Cols(); col++ {
			if got := buf.Read(row, col); got != Blank(DefaultColor) {
				t.Fatalf("cell (%d, %d) = %+v after clear", row, col, got)
			}
		}
	}
}

func TestWriteByteStoresAnyValue(t *testing.T) {
	buf := NewTextBuffer(1, 4)
	w := NewWriter(buf, DefaultColor)

	w.Write([]byte{0x00, 0x07, 0xDB, 0xFF})

	want := []byte{0x00, 0x07, 0xDB, 0xFF}
	for col, b := range want {
		if got := buf.Read(0, col); got.Char != b || got.Attr != DefaultColor {
			t.Errorf("cell %d = %+v, want char 0x%02x", col, got, b)
		}
	}
}

func TestWelcomeMessage(t *testing.T) {
	buf := NewTextBuffer(Rows, Cols)
	w := NewWriter(buf, DefaultColor)
	w.ClearScreen()

	const msg = "Welcome to the real world"
	w.WriteString(msg)

	line := rowText(buf, Rows-1)
	if want := msg + strings.Repeat(" ", Cols-len(msg)); line != want {
		t.Fatalf("bottom row = %q", line)
	}
	for col := 0; col < Cols; col++ {
		if attr := buf.Read(Rows-1, col).Attr; attr != NewColorCode(LightGreen, Black) {
			t.Fatalf("cell %d attr = 0x%02x", col, uint8(attr))
		}
	}

	n, err := w.Write([]byte("\n"))
	if n != 1 || err != nil {
		t.Fatalf("Write(newline) = %d, %v", n, err)
	}
	n, err = w.Write(nil)
	if n != 0 || err != nil {
		t.Fatalf("Write(nil) = %d, %v", n, err)
	}
	if got := strings.TrimRight(rowText(buf, Rows-2), " "); got != msg {
		t.Errorf("scrolled row = %q, want %q", got, msg)
	}
	if w.Column() != 0 {
		t.Errorf("Column() = %d, want 0", w.Column())
	}
}
