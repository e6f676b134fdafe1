//go:build !amd64

package serial

// Other architectures have no I/O port space: writes are dropped and the
// line always reports an empty transmitter.

func outb(port uint16, v byte) {}

func inb(port uint16) byte { return lineStatusTHREmpty }
