package colors

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/joshuapare/treef/arena"
)

func newTestArena(t *testing.T) *arena.Arena {
	t.Helper()
	return arena.New(arena.Options{PageSize: 4096})
}

// newCaptureLogger returns a logger that writes text records to the returned buffer.
func newCaptureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}
