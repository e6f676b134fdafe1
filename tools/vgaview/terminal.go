package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"vgacon/internal/screen"
	"vgacon/vga"
)

const refreshInterval = 33 * time.Millisecond

// RunTerminal shows the console full-screen until the user quits.
func (em *emulator) RunTerminal(follow bool) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}
	defer scr.Fini()
	scr.HideCursor()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-em.quit:
				return
			}
		}
	}()

	go em.feed(follow)

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	var last uint64
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
				em.handleKey(ev.Rune())
			case *tcell.EventResize:
				scr.Sync()
				last = 0
			}
		case <-ticker.C:
			s := em.Snapshot()
			if fp := s.Fingerprint(); fp != last {
				last = fp
				scr.Clear()
				screen.Draw(scr, s, 0, 0)
				scr.Show()
			}
		}
	}
}

func (em *emulator) handleKey(r rune) {
	switch r {
	case 'p':
		if !em.Halted() {
			em.Fault("fault requested from the emulator")
		}
	case 'c':
		if !em.Halted() {
			vga.ClearScreen()
		}
	}
}

func (em *emulator) feed(follow bool) {
	offset, err := em.FeedScript()
	if err != nil {
		em.log.WithError(err).Error("script")
		return
	}
	if follow && em.cfg.Script != "" {
		if err := em.follow(em.cfg.Script, offset); err != nil {
			em.log.WithError(err).Error("follow")
		}
	}
}
