// Package engine provides the core pipeline for irops.
//
// The engine package is the orchestration layer between the CLI and the
// lower-level packages. A run loads the model XML, extracts operator types,
// aggregates them, renders the result, and delivers it to one destination.
//
// Key components:
//   - Engine: holds the injected filesystem, clipboard, stdout and logger
//   - Run: the single linear pipeline, load → extract → aggregate → render → deliver
//   - Sentinel errors classifying every failure (input, parse, output, clipboard)
package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/danieljhkim/irops/internal/aggregate"
	"github.com/danieljhkim/irops/internal/extract"
	"github.com/danieljhkim/irops/internal/fsops"
	"github.com/danieljhkim/irops/internal/sink"
	"github.com/danieljhkim/irops/internal/xmltree"
)

// Engine runs the extraction pipeline.
// It is the main API surface called by the CLI.
type Engine struct {
	fs        fsops.FS
	clipboard sink.TextSink
	stdout    io.Writer
	logger    *slog.Logger
}

// New creates a new Engine with the given dependencies.
// A nil logger discards all log output.
func New(fs fsops.FS, clipboard sink.TextSink, stdout io.Writer, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		fs:        fs,
		clipboard: clipboard,
		stdout:    stdout,
		logger:    logger,
	}
}

// Run reads req.XMLPath and delivers the aggregated operator types.
//
// When the document has no typed layer elements, Run returns a result with
// Empty set and touches no destination.
func (e *Engine) Run(ctx context.Context, req *RunRequest) (*RunResult, error) {
	if req == nil || req.XMLPath == "" {
		return nil, fmt.Errorf("%w: input path is required", ErrValidation)
	}
	mode := req.Mode
	if mode == "" {
		mode = aggregate.ModeUnique
	}
	if mode != aggregate.ModeUnique && mode != aggregate.ModeCount {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrValidation, mode)
	}
	format, err := ParseFormat(string(req.Format))
	if err != nil {
		return nil, err
	}

	data, err := e.fs.ReadFile(req.XMLPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read input: %w", ErrInput, err)
	}

	root, err := xmltree.Parse(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, xmltree.ErrMalformed) {
			return nil, fmt.Errorf("%w: %s: %w", ErrParse, req.XMLPath, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInput, req.XMLPath, err)
	}
	e.logger.Debug("loaded document", "path", req.XMLPath, "root", root.Name)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ops := extract.OperatorTypes(root)
	e.logger.Debug("extracted operators", "count", len(ops))

	result := &RunResult{
		XMLPath:   req.XMLPath,
		Mode:      mode,
		Operators: len(ops),
	}
	if len(ops) == 0 {
		result.Empty = true
		return result, nil
	}

	if mode == aggregate.ModeCount {
		result.Entries = aggregate.Count(ops)
		result.Distinct = len(result.Entries)
	} else {
		result.Names = aggregate.Unique(ops)
		result.Distinct = len(result.Names)
	}

	result.Text, err = render(format, mode, result.Names, result.Entries)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := e.deliver(req, result); err != nil {
		return nil, err
	}
	e.logger.Debug("delivered result",
		"destination", result.Destination,
		"path", result.OutputPath,
		"distinct", result.Distinct)

	return result, nil
}

// deliver writes result.Text to the destination selected by req and
// records it on result.
func (e *Engine) deliver(req *RunRequest, result *RunResult) error {
	dest := req.destination()
	result.Destination = dest

	switch dest {
	case DestClipboard:
		if e.clipboard == nil {
			return fmt.Errorf("%w: %w", ErrClipboard, sink.ErrClipboardUnavailable)
		}
		if err := e.clipboard.WriteText(result.Text); err != nil {
			return fmt.Errorf("%w: %w", ErrClipboard, err)
		}

	case DestFile:
		name := sink.OutputFileName(req.XMLPath, result.Mode == aggregate.ModeCount)
		if err := fsops.ValidateFileName(name); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
		out := sink.NewFile(e.fs, sink.OutputPath(req.OutputDir, req.XMLPath, result.Mode == aggregate.ModeCount))
		if err := out.WriteText(result.Text); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
		result.OutputPath = out.Path()

	default:
		if err := sink.NewWriter(e.stdout).WriteText(result.Text); err != nil {
			return fmt.Errorf("%w: failed to write to stdout: %w", ErrOutput, err)
		}
	}

	return nil
}
