// Package kernel sequences start-up of the freestanding image and owns the
// unrecoverable-fault path.
package kernel

import (
	"fmt"
	"io"

	"vgacon/serial"
	"vgacon/vga"
)

// WelcomeMessage is the first line printed once the console is up.
const WelcomeMessage = "Welcome to the real world"

var (
	// haltFn is replaced by tests; the real one never returns.
	haltFn = halt

	// screen is the grid the fault path draws on. It is set once by Boot
	// and read without synchronization by Panic.
	screen *vga.TextBuffer

	trace io.Writer = io.Discard
)

// Main is the entry point called by the boot trampoline. It brings up the
// serial trace port and the hardware console, prints the welcome line and
// idles forever.
//
//go:noinline
func Main() {
	com1 := serial.New(serial.COM1)
	com1.Init()

	Guard(func() {
		Boot(vga.Hardware(), vga.DefaultColor, com1)
	})

	haltFn()
}

// Boot makes buf the process-wide console drawing in attr, blanks it and
// prints the welcome line. log receives start-up traces.
func Boot(buf *vga.TextBuffer, attr vga.ColorCode, log io.Writer) {
	if log != nil {
		trace = log
	}
	screen = buf

	tracef("boot: text buffer %dx%d", buf.Cols(), buf.Rows())
	vga.InitColor(buf, attr)

	// Video memory holds whatever the firmware left behind.
	vga.ClearScreen()
	tracef("boot: screen cleared")

	Println(WelcomeMessage)
	tracef("boot: console ready")
}

// Printf writes formatted output to the console. A formatting failure is
// not recoverable at this level and goes to Panic.
func Printf(format string, a ...any) {
	if _, err := vga.Printf(format, a...); err != nil {
		Panic(err)
	}
}

// Println writes its operands and a newline to the console.
func Println(a ...any) {
	if _, err := vga.Println(a...); err != nil {
		Panic(err)
	}
}

// SetHalt replaces the CPU halt used after a fault and returns the previous
// one. Hosted emulators use it to park the faulting goroutine instead of
// spinning.
func SetHalt(fn func()) (prev func()) {
	prev, haltFn = haltFn, fn
	return prev
}

// Guard runs fn and sends any panic it raises to Panic.
func Guard(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			Panic(r)
		}
	}()
	fn()
}

// Panic shows the fault indicator and halts. It never returns on hardware.
//
// The indicator is drawn straight into video memory without the console
// lock, since the faulting code may be the one holding it.
func Panic(v any) {
	if screen != nil {
		vga.ShowPanicIndicator(screen)
	}
	tracef("panic: %v", v)
	haltFn()
}

func tracef(format string, a ...any) {
	fmt.Fprintf(trace, format+"\n", a...)
}

//go:nosplit
func halt() {
	for {
	}
}
