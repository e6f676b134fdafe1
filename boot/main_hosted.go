//go:build !baremetal

package main

import (
	"fmt"
	"os"
)

// A hosted build of the boot trampoline would poke at 0xB8000 and COM1
// from user space. Refuse instead of faulting.
func main() {
	fmt.Fprintf(os.Stderr, "boot: this image only runs freestanding\n")
	fmt.Fprintf(os.Stderr, "Build with: go build -tags baremetal ./boot\n")
	fmt.Fprintf(os.Stderr, "For a hosted emulator run: go run ./tools/vgaview\n")
	os.Exit(1)
}
