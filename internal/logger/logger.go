package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

// Logger is the leveled logger used across the pipeline. The context is
// accepted on every call so implementations can pull request-scoped data
// from it later without changing call sites.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

var levelRank = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger *log.Logger
	min    int
}

// New creates a Logger writing to stdout at the given minimum level.
// Unknown levels fall back to info.
func New(level string) Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter creates a Logger writing to w, mainly for tests.
func NewWithWriter(w io.Writer, level string) Logger {
	min, ok := levelRank[strings.ToLower(level)]
	if !ok {
		min = levelRank["info"]
	}
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		min:    min,
	}
}

func (l *implLogger) emit(level, msg string, args ...interface{}) {
	if levelRank[level] < l.min {
		return
	}
	l.logger.Printf("["+strings.ToUpper(level)+"] "+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.emit("debug", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.emit("info", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.emit("warn", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.emit("error", msg, args...)
}

// Nop returns a Logger that discards everything. Useful as a default in
// library code and in tests that don't care about output.
func Nop() Logger {
	return NewWithWriter(io.Discard, "error")
}
