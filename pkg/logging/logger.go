// Package logging provides the run logger. It wraps log/slog so that every
// record at or above the configured level lands in a per-run log file and
// errors are echoed to stderr as well.
//
// There is no package-level logger: New is called once at start-up and the
// returned *Logger is handed to each component that logs.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// Log levels accepted by New.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Logger is a structured logger. A nil *Logger discards everything.
type Logger struct {
	logger *slog.Logger
	file   *os.File
	mu     *sync.Mutex
}

// New creates (or truncates) the log file at path and returns a Logger
// writing records at level and above to it, plus ERROR records to stderr.
func New(path string, level string) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := NewWithWriters(file, os.Stderr, level)
	l.file = file

	l.Info("logging initialized", "path", path)
	l.Info("log file time zone", "zone", clockZone(time.Now()))
	return l, nil
}

// NewWithWriters builds a Logger over arbitrary writers. main uses New; this
// exists for tests and for callers that already own the destinations.
func NewWithWriters(logFile, stderr io.Writer, level string) *Logger {
	handler := fanout{
		slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: parseLevel(level)}),
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	return &Logger{
		logger: slog.New(handler),
		mu:     &sync.Mutex{},
	}
}

// Nop returns a Logger that discards all output.
func Nop() *Logger {
	return &Logger{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		mu:     &sync.Mutex{},
	}
}

func clockZone(now time.Time) string {
	if _, offset := now.In(time.Local).Zone(); offset == 0 {
		return "UTC"
	}
	return "Local Time"
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With returns a child Logger that adds the key-value pairs to every record.
func (l *Logger) With(args ...any) *Logger {
	if l == nil || len(args) == 0 {
		return l
	}
	return &Logger{
		logger: l.logger.With(args...),
		file:   l.file,
		mu:     l.mu,
	}
}

func (l *Logger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log(slog.LevelInfo, msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(slog.LevelWarn, msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args...) }

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Log(context.Background(), level, msg, args...)
}

// Close syncs and closes the log file. It is a no-op for loggers that do not
// own a file.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	l.file = nil
	return nil
}
