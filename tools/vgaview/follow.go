package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
)

// follow streams bytes appended to path after offset into the console
// until the emulator closes.
func (em *emulator) follow(path string, offset int64) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	for {
		select {
		case <-em.quit:
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Write == 0 {
				continue
			}
			offset, err = em.tail(path, offset)
			if errors.Is(err, errHalted) {
				return nil
			}
			if err != nil {
				em.log.WithError(err).Warn("reading appended script bytes")
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			em.log.WithError(err).Warn("script watcher")
		}
	}
}

// tail writes everything in path past offset and returns the new offset.
// A file that shrank is read again from the start.
func (em *emulator) tail(path string, offset int64) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return offset, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return offset, err
	}
	if info.Size() < offset {
		em.log.WithField("path", path).Info("script truncated, starting over")
		offset = 0
	}
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return offset, err
	}

	n, err := io.Copy(em, f)
	return offset + n, err
}
