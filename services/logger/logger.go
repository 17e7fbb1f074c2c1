package logger

import (
	"io"
	"log"
	"strings"
)

// Level defines log severity
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	SilentLevel
)

// Logger is the logging surface services depend on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implements Logger on top of the log package
type DefaultLogger struct {
	level Level
	out   *log.Logger
}

// NewDefaultLogger writes through the standard logger
func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{
		level: level,
		out:   log.Default(),
	}
}

// NewWriterLogger writes to w with the usual date/time flags
func NewWriterLogger(level Level, w io.Writer) *DefaultLogger {
	return &DefaultLogger{
		level: level,
		out:   log.New(w, "", log.LstdFlags),
	}
}

// NewNopLogger discards everything
func NewNopLogger() *DefaultLogger {
	return NewWriterLogger(SilentLevel, io.Discard)
}

// ParseLevel maps LOG_LEVEL values; unknown values fall back to info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "silent", "off":
		return SilentLevel
	default:
		return InfoLevel
	}
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		l.out.Printf("[INFO] "+format, v...)
	}
}

func (l *DefaultLogger) Warn(format string, v ...interface{}) {
	if l.level <= WarnLevel {
		l.out.Printf("[WARN] "+format, v...)
	}
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		l.out.Printf("[ERROR] "+format, v...)
	}
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		l.out.Printf("[DEBUG] "+format, v...)
	}
}
