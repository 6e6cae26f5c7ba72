// Package logger provides the leveled printf-style logger used across
// the service. Every internal package declares its own narrow Logger
// interface; this implementation satisfies all of them.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Level defines logging verbosity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a config string into a Level. Unknown values
// default to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes leveled log lines to a file and to stderr.
type Logger struct {
	level Level
	out   *log.Logger
	file  *os.File
}

// New creates a Logger writing to the given file path. An empty path
// logs to stderr only.
func New(path string, level string) (*Logger, error) {
	l := &Logger{level: ParseLevel(level)}

	var w io.Writer = os.Stderr
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		l.file = f
		w = io.MultiWriter(os.Stderr, f)
	}

	l.out = log.New(w, "", log.LstdFlags|log.Lmicroseconds)
	return l, nil
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, "DEBUG", format, v...)
}

// Info logs at info level.
func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, "INFO", format, v...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, "WARN", format, v...)
}

// Error logs at error level.
func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, "ERROR", format, v...)
}

// Fatal logs at error level and exits with code 1.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, "FATAL", format, v...)
	l.Close()
	os.Exit(1)
}

// Close flushes and closes the underlying log file, if any.
func (l *Logger) Close() {
	if l.file != nil {
		_ = l.file.Close()
	}
}

func (l *Logger) write(level Level, tag, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf("[%s] %s", tag, fmt.Sprintf(format, v...))
}
