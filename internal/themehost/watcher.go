// Package themehost runs the Omarchy theme watch loop: it sends the current
// Chromium theme color to the browser at startup, and again each time the
// theme directory is swapped.
package themehost

import (
	"errors"
	"syscall"
)

import "github.com/sirupsen/logrus"

import (
	"github.com/p00ya/omarchy-theme-bridge/internal/chrome"
	"github.com/p00ya/omarchy-theme-bridge/internal/omarchy"
	"github.com/p00ya/omarchy-theme-bridge/internal/watch"
)

// ThemeEntry is the name whose arrival in the watched directory means the
// theme has been swapped.
const ThemeEntry = "theme"

// Phrases reported to the browser for each fatal step.
const (
	contextCurrentPath = "could not get path '~/.config/omarchy/current'"
	contextInit        = "could not init inotify"
	contextAddWatch    = "could not watch directory '~/.config/omarchy/current'"
	contextThemePath   = "could not get path '~/.config/omarchy/current/theme/chromium.theme'"
	contextReadColor   = "could not read chromium.theme to string"
	contextReadEvents  = "could not read inotify instance"
)

// Source is a watch session on one directory.
type Source interface {
	Add(dir string) error
	Read(buf []byte) (int, error)
	Close() error
}

// Watcher owns the watch session and event buffer for the lifetime of the
// host.
type Watcher struct {
	host *chrome.Host
	log  *logrus.Entry

	// newSource opens the watch session.  Replaced in tests.
	newSource func() (Source, error)

	source    Source
	themeFile string
	buf       [watch.BufferLen]byte
}

// New returns a Watcher that sends updates through host.
func New(host *chrome.Host, log *logrus.Entry) *Watcher {
	return &Watcher{
		host: host,
		log:  log,
		newSource: func() (Source, error) {
			s, err := watch.New()
			if err != nil {
				return nil, err
			}
			return s, nil
		},
	}
}

// Run resolves the theme paths, sends the current color, then sends a new
// color every time the theme is swapped.
//
// Run only returns on a fatal error, which is always a *FatalError.  Before
// returning it sends an error message to the browser and closes the watch
// session.
func (w *Watcher) Run() error {
	err := w.run()

	var fatal *FatalError
	if !errors.As(err, &fatal) {
		fatal = &FatalError{Context: "watch loop stopped", Err: err}
	}
	w.log.WithError(fatal.Err).Error(fatal.Context)
	w.host.Send(chrome.ErrorMessage(fatal.Context, fatal.Err))
	w.close()
	return fatal
}

func (w *Watcher) run() error {
	home, err := omarchy.HomeDir()
	if err != nil {
		return &FatalError{contextCurrentPath, err}
	}
	current, err := omarchy.CurrentDir(home)
	if err != nil {
		return &FatalError{contextCurrentPath, err}
	}

	if w.source, err = w.newSource(); err != nil {
		return &FatalError{contextInit, err}
	}
	if err := w.source.Add(current); err != nil {
		return &FatalError{contextAddWatch, err}
	}
	w.log.WithField("dir", current).Debug("watching")

	if w.themeFile, err = omarchy.ThemeFile(current); err != nil {
		return &FatalError{contextThemePath, err}
	}
	if err := w.sendColor(); err != nil {
		return err
	}

	for {
		n, err := w.source.Read(w.buf[:])
		switch {
		case errors.Is(err, syscall.EINTR):
			continue
		case err != nil:
			return &FatalError{contextReadEvents, err}
		case n == 0:
			continue
		}

		for ev := range watch.Events(w.buf[:n]) {
			if !isThemeSwap(ev) {
				continue
			}
			w.log.WithField("mask", ev.Mask).Debug("theme swapped")
			if err := w.sendColor(); err != nil {
				return err
			}
		}
	}
}

// isThemeSwap reports whether ev is the theme entry arriving in the watched
// directory.
func isThemeSwap(ev watch.Event) bool {
	return ev.Mask&(watch.InMovedTo|watch.InCreate) != 0 && ev.Name == ThemeEntry
}

// sendColor reads the color file and sends it.  Failing to read the file is
// fatal; failing to send is not.
func (w *Watcher) sendColor() error {
	color, err := omarchy.ReadColor(w.themeFile)
	if err != nil {
		return &FatalError{contextReadColor, err}
	}
	w.host.Send(chrome.ColorMessage(color))
	return nil
}

// close releases the watch session, if one was opened.
func (w *Watcher) close() {
	if w.source == nil {
		return
	}
	if err := w.source.Close(); err != nil {
		w.log.WithError(err).Warn("closing watch session")
	}
	w.source = nil
}
