//go:build !linux

package watch

import (
	"os"
	"path/filepath"
)

import "github.com/fsnotify/fsnotify"

// Session watches a single directory through fsnotify, presenting its events
// as inotify records.
type Session struct {
	watcher *fsnotify.Watcher
	record  []byte
}

// New creates a watcher.
func New() (*Session, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Session{watcher: watcher}, nil
}

// Add starts watching dir.
func (s *Session) Add(dir string) error {
	return s.watcher.Add(dir)
}

// Read blocks until the next event and writes it to buf as a single record.
//
// fsnotify reports an entry renamed into the directory as a Create, so only
// creations are forwarded; other events produce a zero-length read.
func (s *Session) Read(buf []byte) (int, error) {
	select {
	case ev, ok := <-s.watcher.Events:
		if !ok {
			return 0, os.ErrClosed
		}
		if !ev.Has(fsnotify.Create) {
			return 0, nil
		}
		s.record = AppendEvent(s.record[:0], Event{Mask: InCreate, Name: filepath.Base(ev.Name)})
		return copy(buf, s.record), nil
	case err, ok := <-s.watcher.Errors:
		if !ok {
			return 0, os.ErrClosed
		}
		return 0, err
	}
}

// Close stops the watcher.
func (s *Session) Close() error {
	return s.watcher.Close()
}
