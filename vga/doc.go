// Package vga drives the VGA colour text buffer: an 80x25 grid of
// character/attribute cells mapped at physical address 0xB8000.
//
// TextBuffer is the typed view of the grid, Writer implements line wrap and
// scrolling on top of it, Console serializes writers behind a lock, and
// ShowPanicIndicator is the lock-free output path used when the kernel faults.
package vga
