//go:build baremetal

package main

import "vgacon/kernel"

// main is the only Go symbol the rt0 code calls. It exists so the linker
// keeps the kernel reachable; kernel.Main never returns.
func main() {
	kernel.Main()
}
