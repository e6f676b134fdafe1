package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"vgacon/internal/screen"
	"vgacon/kernel"
	"vgacon/vga"
)

var errHalted = errors.New("kernel halted")

// emulator runs the kernel console on a heap-backed text buffer.
type emulator struct {
	cfg   screen.Config
	log   *logrus.Logger
	buf   *vga.TextBuffer
	trace *io.PipeWriter

	halted    atomic.Bool
	quit      chan struct{}
	closeOnce sync.Once
	prevHalt  func()
}

func newEmulator(cfg screen.Config, log *logrus.Logger) (*emulator, error) {
	attr, err := cfg.Attr()
	if err != nil {
		return nil, err
	}

	em := &emulator{
		cfg:   cfg,
		log:   log,
		buf:   vga.NewTextBuffer(cfg.Rows, cfg.Cols),
		trace: log.WriterLevel(logrus.DebugLevel),
		quit:  make(chan struct{}),
	}
	em.prevHalt = kernel.SetHalt(em.halt)

	kernel.Boot(em.buf, attr, em.trace)
	log.WithFields(logrus.Fields{
		"rows": cfg.Rows,
		"cols": cfg.Cols,
		"attr": fmt.Sprintf("0x%02x", uint8(attr)),
	}).Info("console booted")

	return em, nil
}

// halt parks the faulting goroutine until the emulator closes.
func (em *emulator) halt() {
	em.halted.Store(true)
	em.log.Warn("kernel halted")
	<-em.quit
}

func (em *emulator) Halted() bool {
	return em.halted.Load()
}

func (em *emulator) Close() error {
	em.closeOnce.Do(func() {
		close(em.quit)
		kernel.SetHalt(em.prevHalt)
	})
	return em.trace.Close()
}

// Write sends p to the console. Nothing reaches the screen once the
// kernel has halted.
func (em *emulator) Write(p []byte) (n int, err error) {
	if em.Halted() {
		return 0, errHalted
	}
	kernel.Guard(func() {
		n, err = vga.Write(p)
	})
	return n, err
}

// FeedScript writes the configured script and returns how many bytes it
// consumed.
func (em *emulator) FeedScript() (int64, error) {
	if em.cfg.Script == "" {
		return 0, nil
	}
	data, err := os.ReadFile(em.cfg.Script)
	if err != nil {
		return 0, fmt.Errorf("reading script: %w", err)
	}
	n, err := em.Write(data)
	em.log.WithField("bytes", n).Debug("script written")
	return int64(n), err
}

// Snapshot captures the buffer while holding the console lock, so it never
// sees half of a message.
func (em *emulator) Snapshot() screen.Snapshot {
	var s screen.Snapshot
	vga.Active().Do(func(*vga.Writer) {
		s = screen.Capture(em.buf)
	})
	return s
}

// Fault raises a kernel fault, as if the kernel had hit an unrecoverable
// error. The faulting goroutine stays halted until Close.
func (em *emulator) Fault(reason string) {
	em.log.WithField("reason", reason).Warn("raising kernel fault")
	go kernel.Panic(reason)
}
