package logging

import (
	"bytes"
	"testing"
)

import (
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLevel(t *testing.T) {
	var tests = []struct {
		name string
		want logrus.Level
	}{
		{"", logrus.InfoLevel},
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{"loud", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(&bytes.Buffer{}, tt.name).GetLevel())
		})
	}
}

func TestNewOutput(t *testing.T) {
	var out bytes.Buffer
	logger := New(&out, "info")

	logger.WithField("component", "framer").Error("could not send message")
	logger.Debug("hidden")

	assert.Contains(t, out.String(), `msg="could not send message"`)
	assert.Contains(t, out.String(), "component=framer")
	assert.NotContains(t, out.String(), "hidden")
}

func TestNewLoggerCached(t *testing.T) {
	a := NewLogger("watcher")
	b := NewLogger("watcher")
	c := NewLogger("framer")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, "watcher", a.Data["component"])
}
