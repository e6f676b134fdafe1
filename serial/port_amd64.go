//go:build amd64

package serial

// Implemented in port_amd64.s.

func outb(port uint16, v byte)

func inb(port uint16) byte
