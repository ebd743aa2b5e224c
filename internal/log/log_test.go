package log_test

import (
	"bytes"
	"testing"

	"github.com/plus3/tetra/internal/log"
	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf, log.LevelInfo)

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Warnf("shown %d", 3)
	l.Errorf("shown %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO: shown 2")
	assert.Contains(t, out, "WARN: shown 3")
	assert.Contains(t, out, "ERROR: shown 4")
}

func TestWarnLevelHidesInfo(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf, log.LevelWarn)

	l.Infof("hidden")
	l.Warnf("careful")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN: careful")
	assert.False(t, l.Enabled(log.LevelInfo))
	assert.True(t, l.Enabled(log.LevelError))
	assert.False(t, l.Enabled(log.LevelNone))
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.LevelDebug},
		{"INFO", log.LevelInfo},
		{"warn", log.LevelWarn},
		{"warning", log.LevelWarn},
		{"Error", log.LevelError},
		{"none", log.LevelNone},
		{"bogus", log.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, log.LevelFromString(tt.in))
		})
	}
	assert.Equal(t, "UNKNOWN", log.Level(42).String())
}

func TestWithTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	root := log.New(&buf, log.LevelDebug)
	session := root.With("session")
	nested := session.With("spiral")

	session.Infof("state %s", "playing")
	nested.Debugf("step %d", 3)
	root.Infof("plain")

	out := buf.String()
	assert.Contains(t, out, "INFO: [session] state playing")
	assert.Contains(t, out, "DEBUG: [session.spiral] step 3")
	assert.Contains(t, out, "INFO: plain")
	assert.Equal(t, "session.spiral", nested.Component())
}

func TestChildrenShareLevel(t *testing.T) {
	var buf bytes.Buffer
	root := log.New(&buf, log.LevelDebug)
	child := root.With("asset")

	root.SetLevel(log.LevelError)
	child.Infof("hidden")
	assert.Equal(t, log.LevelError, child.Level())
	assert.Empty(t, buf.String())

	child.SetLevel(log.LevelDebug)
	root.Debugf("visible")
	assert.Contains(t, buf.String(), "DEBUG: visible")
}

func TestDiscard(t *testing.T) {
	l := log.Discard()
	assert.Equal(t, log.LevelNone, l.Level())
	l.Errorf("nothing happens")
	l.With("x").Errorf("nothing either")
}
