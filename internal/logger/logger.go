// Package logger holds the process logger. Output goes to stderr as
// key=value text lines without timestamps.
package logger

import (
	"io"
	"log/slog"
)

// L is the global logger instance. It discards everything until Init is called.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures the logger initialization.
type Options struct {
	Writer io.Writer  // Destination. Nil discards all output.
	Level  slog.Level // Minimum level. Zero value is LevelInfo.
}

// Init replaces L and returns it.
func Init(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = io.Discard
	}

	L = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       opts.Level,
		ReplaceAttr: dropTime,
	}))
	return L
}

func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
