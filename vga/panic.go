package vga

// PanicMessage is drawn in the bottom-right corner when the kernel faults.
const PanicMessage = "Oh no!"

// ShowPanicIndicator writes PanicMessage in PanicColor over the last cells
// of the bottom row of buf.
//
// It deliberately takes no lock and ignores every writer's state: the
// console lock may be held by the code that faulted, and waiting on it
// here could hang instead of reporting. In-flight output may be garbled.
//
//go:nosplit
func ShowPanicIndicator(buf *TextBuffer) {
	row := buf.rows - 1
	col := buf.cols - len(PanicMessage)
	for i := 0; i < len(PanicMessage); i++ {
		if col+i < 0 {
			continue
		}
		buf.Write(row, col+i, Cell{Char: PanicMessage[i], Attr: PanicColor})
	}
}
