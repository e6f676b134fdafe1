package vga

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrNotInitialized is the panic value raised when the process-wide console
// is used before Init.
var ErrNotInitialized = errors.New("vga: console used before Init")

// Console is a Writer behind a mutex. Every request holds the lock for its
// whole byte sequence, so two messages never interleave on screen.
type Console struct {
	mu sync.Mutex
	w  *Writer
}

// NewConsole returns a console drawing into buf in color.
func NewConsole(buf *TextBuffer, color ColorCode) *Console {
	return &Console{w: NewWriter(buf, color)}
}

// Do runs fn with exclusive access to the writer. The lock is released on
// every exit path, including a panic inside fn.
func (c *Console) Do(fn func(w *Writer)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.w)
}

// Write is the entry point for already-formatted output.
func (c *Console) Write(p []byte) (n int, err error) {
	c.Do(func(w *Writer) { n, err = w.Write(p) })
	return n, err
}

// WriteString writes s under the lock.
func (c *Console) WriteString(s string) (n int, err error) {
	c.Do(func(w *Writer) { n, err = w.WriteString(s) })
	return n, err
}

// Print formats with fmt.Fprint semantics.
func (c *Console) Print(a ...any) (n int, err error) {
	c.Do(func(w *Writer) { n, err = fmt.Fprint(w, a...) })
	return n, err
}

// Println formats with fmt.Fprintln semantics.
func (c *Console) Println(a ...any) (n int, err error) {
	c.Do(func(w *Writer) { n, err = fmt.Fprintln(w, a...) })
	return n, err
}

// Printf formats with fmt.Fprintf semantics.
func (c *Console) Printf(format string, a ...any) (n int, err error) {
	c.Do(func(w *Writer) { n, err = fmt.Fprintf(w, format, a...) })
	return n, err
}

// ClearScreen blanks the grid and resets the column.
func (c *Console) ClearScreen() {
	c.Do(func(w *Writer) { w.ClearScreen() })
}

var active atomic.Pointer[Console]

// Init creates the process-wide console over buf in DefaultColor. It is
// the one initialization point; calling it again replaces the console and
// is only meant for tests and hosted emulation.
func Init(buf *TextBuffer) *Console {
	return InitColor(buf, DefaultColor)
}

// InitColor is Init with a chosen attribute.
func InitColor(buf *TextBuffer, color ColorCode) *Console {
	c := NewConsole(buf, color)
	active.Store(c)
	return c
}

// Active returns the process-wide console.
func Active() *Console {
	c := active.Load()
	if c == nil {
		panic(ErrNotInitialized)
	}
	return c
}

// Write sends p to the process-wide console.
func Write(p []byte) (int, error) { return Active().Write(p) }

// Print formats to the process-wide console.
func Print(a ...any) (int, error) { return Active().Print(a...) }

// Println formats to the process-wide console and ends the line.
func Println(a ...any) (int, error) { return Active().Println(a...) }

// Printf formats to the process-wide console.
func Printf(format string, a ...any) (int, error) { return Active().Printf(format, a...) }

// ClearScreen blanks the process-wide console.
func ClearScreen() { Active().ClearScreen() }
