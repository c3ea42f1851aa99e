// Package sink delivers rendered results to their destination: the system
// clipboard, a file in an output directory, or a writer such as stdout.
package sink

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/danieljhkim/irops/internal/fsops"
)

// ErrClipboardUnavailable is returned when no clipboard provider exists,
// for example on a headless machine without xclip, xsel or wl-clipboard.
var ErrClipboardUnavailable = errors.New("no clipboard provider available")

// TextSink accepts the final result text.
type TextSink interface {
	WriteText(text string) error
}

// Join joins display lines with newline separators.
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}

// Clipboard writes text to the system clipboard.
type Clipboard struct{}

// NewClipboard creates a new Clipboard sink.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// WriteText replaces the clipboard contents with text.
func (c *Clipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}
	return nil
}

// Memory is an in-memory TextSink used in place of the system clipboard.
type Memory struct {
	Text   string
	Writes int
	Err    error
}

// WriteText records text, or returns m.Err if set.
func (m *Memory) WriteText(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	m.Writes++
	return nil
}

// File writes text to a single path, followed by a trailing newline.
type File struct {
	fs   fsops.FS
	path string
}

// NewFile creates a File sink targeting path.
func NewFile(fs fsops.FS, path string) *File {
	return &File{fs: fs, path: path}
}

// Path returns the target path.
func (f *File) Path() string {
	return f.path
}

// WriteText creates or truncates the target file and writes text to it.
func (f *File) WriteText(text string) error {
	return f.fs.WriteFile(f.path, []byte(text+"\n"), 0644)
}

// Writer prints text to an io.Writer, followed by a newline.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer sink. Use os.Stdout for console output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteText prints text.
func (s *Writer) WriteText(text string) error {
	_, err := fmt.Fprintln(s.w, text)
	return err
}

// OutputFileName derives the result file name from the input path: the base
// name with a trailing ".xml" removed, plus "_counts.txt" in count mode or
// ".txt" otherwise.
func OutputFileName(xmlPath string, count bool) string {
	base := strings.TrimSuffix(filepath.Base(xmlPath), ".xml")
	if count {
		return base + "_counts.txt"
	}
	return base + ".txt"
}

// OutputPath joins dir with the name derived by OutputFileName.
func OutputPath(dir, xmlPath string, count bool) string {
	return filepath.Join(dir, OutputFileName(xmlPath, count))
}
