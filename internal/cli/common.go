package cli

import (
	"io"
	"log/slog"

	"github.com/danieljhkim/irops/internal/engine"
	"github.com/danieljhkim/irops/internal/fsops"
	"github.com/danieljhkim/irops/internal/sink"
)

// newClipboard returns the clipboard used for --clipboard. Tests replace it
// with an in-memory sink.
var newClipboard = func() sink.TextSink {
	return sink.NewClipboard()
}

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(stdout, stderr io.Writer, verbose bool) *engine.Engine {
	return engine.New(fsops.NewRealFS(), newClipboard(), stdout, newLogger(stderr, verbose))
}

// newLogger returns a debug-level text logger on w when verbose is set,
// and nil (discard) otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}
