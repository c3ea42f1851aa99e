// Package fsops provides the filesystem operations irops needs.
//
// The input model is read and output files are written through the FS
// interface so the pipeline can be tested against a real temporary directory
// or a substitute implementation. Unlike a general-purpose writer, WriteFile
// never creates missing parent directories: an absent output directory is a
// user error.
package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// WriteFile creates or truncates path and writes data to it.
	// The parent directory must already exist.
	WriteFile(path string, data []byte, perm os.FileMode) error

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// WriteFile creates or truncates path and writes data to it.
func (fs *RealFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory %s: not a directory", dir)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// ReadFile reads the entire contents of a file.
func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ValidateFileName validates a file name derived from user input.
// Returns an error if the name is empty, contains path separators, or would
// traverse out of its directory.
func ValidateFileName(name string) error {
	if name == "" {
		return fmt.Errorf("invalid file name: empty")
	}

	if strings.Contains(name, string(filepath.Separator)) || strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return fmt.Errorf("invalid file name %q: must not contain path separators", name)
	}

	if name == "." || name == ".." {
		return fmt.Errorf("invalid file name %q: path traversal not allowed", name)
	}

	return nil
}
