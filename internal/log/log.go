// Package log is a leveled logger over the standard logger. Child loggers
// created with With tag their lines with a component name and share the
// parent's output and level.
package log

import (
	"io"
	"log"
	"strings"
	"sync/atomic"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

var levelNames = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelNone:  "NONE",
}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// LevelFromString parses a level name; unknown names mean LevelInfo.
func LevelFromString(s string) Level {
	s = strings.ToUpper(s)
	if s == "WARNING" {
		return LevelWarn
	}
	for l, name := range levelNames {
		if name == s {
			return Level(l)
		}
	}
	return LevelInfo
}

type Logger struct {
	out       *log.Logger
	level     *atomic.Int32
	component string
}

func New(out io.Writer, level Level) *Logger {
	l := &Logger{
		out:   log.New(out, "", log.LstdFlags|log.Lmicroseconds),
		level: new(atomic.Int32),
	}
	l.level.Store(int32(level))
	return l
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, LevelNone)
}

// With returns a logger for a component. Nested components are joined
// with a dot.
func (l *Logger) With(component string) *Logger {
	if l.component != "" {
		component = l.component + "." + component
	}
	return &Logger{out: l.out, level: l.level, component: component}
}

func (l *Logger) Component() string { return l.component }

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level Level) bool {
	return level < LevelNone && Level(l.level.Load()) <= level
}

func (l *Logger) logf(level Level, format string, v []any) {
	if !l.Enabled(level) {
		return
	}
	prefix := levelNames[level] + ": "
	if l.component != "" {
		prefix += "[" + l.component + "] "
	}
	l.out.Printf(prefix+format, v...)
}

func (l *Logger) Debugf(format string, v ...any) { l.logf(LevelDebug, format, v) }
func (l *Logger) Infof(format string, v ...any)  { l.logf(LevelInfo, format, v) }
func (l *Logger) Warnf(format string, v ...any)  { l.logf(LevelWarn, format, v) }
func (l *Logger) Errorf(format string, v ...any) { l.logf(LevelError, format, v) }

// SetLevel changes the level of l and of every logger derived from the
// same root.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *Logger) Level() Level {
	return Level(l.level.Load())
}
