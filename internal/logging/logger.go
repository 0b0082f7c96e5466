// Package logging provides component loggers for the host's diagnostic
// stream.
//
// Logs always go to stderr: stdout carries the native messaging frames and
// must not be written to by anything else.
package logging

import (
	"io"
	"os"
	"sync"
)

import "github.com/sirupsen/logrus"

// LevelEnv names the environment variable that sets the log level.
const LevelEnv = "OMARCHY_THEME_HOST_LOG_LEVEL"

var (
	base     *logrus.Logger
	baseOnce sync.Once

	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger returns the logger for a component, creating it on first use.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, ok := loggers[component]; ok {
		return logger
	}

	baseOnce.Do(func() {
		base = New(os.Stderr, os.Getenv(LevelEnv))
	})
	logger := base.WithField("component", component)
	loggers[component] = logger
	return logger
}

// New returns a logger writing to out at the named level.  An empty or
// unknown level means info.
func New(out io.Writer, levelName string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
