// Package applog is the process-wide structured logger. Messages are slog key/value
// pairs, written to stderr or to a size-rotated log file.
package applog

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level      string // debug, info, warn, error
	Format     string // text or json
	File       string // rotate into this file instead of writing to Output
	MaxSizeMB  int
	MaxBackups int
	Output     io.Writer
}

var (
	loggerLock sync.RWMutex
	logger     = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	rotator    *lumberjack.Logger
)

// Setup replaces the process logger. Call Close when done if a File was set.
func Setup(opts Options) {

	var out io.Writer = os.Stderr
	if opts.Output != nil {
		out = opts.Output
	}

	var newRotator *lumberjack.Logger
	if opts.File != `` {
		newRotator = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		}
		out = newRotator
	}

	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, `json`) {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	loggerLock.Lock()
	old := rotator
	logger = slog.New(handler)
	rotator = newRotator
	loggerLock.Unlock()

	if old != nil {
		old.Close()
	}
}

// Close flushes and closes the rotating log file, if any.
func Close() error {
	loggerLock.Lock()
	defer loggerLock.Unlock()

	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	return err
}

// ParseLevel maps a level name to a slog.Level. Unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case `debug`:
		return slog.LevelDebug
	case `warn`, `warning`:
		return slog.LevelWarn
	case `error`:
		return slog.LevelError
	}
	return slog.LevelInfo
}

func get() *slog.Logger {
	loggerLock.RLock()
	defer loggerLock.RUnlock()
	return logger
}

func Debug(msg string, args ...any) { get().Debug(msg, args...) }
func Info(msg string, args ...any)  { get().Info(msg, args...) }
func Warn(msg string, args ...any)  { get().Warn(msg, args...) }
func Error(msg string, args ...any) { get().Error(msg, args...) }

// ForComponent returns the current logger tagged with a component name.
func ForComponent(component string) *slog.Logger {
	return get().With("component", component)
}
