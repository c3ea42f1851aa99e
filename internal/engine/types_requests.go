package engine

import "github.com/danieljhkim/irops/internal/aggregate"

// RunRequest represents a request to extract and report operator types.
type RunRequest struct {
	// XMLPath is the model description to read
	XMLPath string

	// Mode selects unique names or per-name counts
	Mode aggregate.Mode

	// Format selects how the result is rendered (default: text)
	Format Format

	// OutputDir, when set, writes the result to a file derived from XMLPath
	OutputDir string

	// Clipboard writes the result to the clipboard. Takes precedence over OutputDir.
	Clipboard bool
}

// destination returns where the result of r is delivered.
func (r *RunRequest) destination() Destination {
	switch {
	case r.Clipboard:
		return DestClipboard
	case r.OutputDir != "":
		return DestFile
	default:
		return DestStdout
	}
}
