package engine

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/irops/internal/aggregate"
	"github.com/danieljhkim/irops/internal/sink"
)

// testFS is a filesystem implementation that tracks files in memory
type testFS struct {
	files    map[string][]byte
	readErr  error
	writeErr error
}

func newTestFS(files map[string]string) *testFS {
	fs := &testFS{files: make(map[string][]byte)}
	for path, content := range files {
		fs.files[path] = []byte(content)
	}
	return fs
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	if fs.readErr != nil {
		return nil, fs.readErr
	}
	data, ok := fs.files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return data, nil
}

func (fs *testFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	if fs.writeErr != nil {
		return fs.writeErr
	}
	fs.files[path] = append([]byte(nil), data...)
	return nil
}

func TestRun_ReadsAndWritesThroughFS(t *testing.T) {
	mem := newTestFS(map[string]string{"models/resnet.xml": sampleDoc})
	var stdout bytes.Buffer
	eng := New(mem, &sink.Memory{}, &stdout, nil)

	result, err := eng.Run(context.Background(), &RunRequest{
		XMLPath:   "models/resnet.xml",
		Mode:      aggregate.ModeCount,
		OutputDir: "reports",
	})
	require.NoError(t, err)

	want := filepath.Join("reports", "resnet_counts.txt")
	assert.Equal(t, want, result.OutputPath)
	assert.Equal(t, "Conv: 2\nReLU: 1\n", string(mem.files[want]))
}

func TestRun_ReadFailure(t *testing.T) {
	tests := []struct {
		name    string
		readErr error
		wantErr error
	}{
		{"missing", nil, os.ErrNotExist},
		{"permission denied", os.ErrPermission, os.ErrPermission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := newTestFS(nil)
			mem.readErr = tt.readErr
			eng := New(mem, &sink.Memory{}, &bytes.Buffer{}, nil)

			_, err := eng.Run(context.Background(), &RunRequest{XMLPath: "model.xml", OutputDir: "reports"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInput))
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Empty(t, mem.files, "nothing may be written when the input cannot be read")
		})
	}
}

func TestRun_DuplicateAttributeIsParseError(t *testing.T) {
	mem := newTestFS(map[string]string{"model.xml": `<net><layer type="A" type="B"/></net>`})
	eng := New(mem, &sink.Memory{}, &bytes.Buffer{}, nil)

	_, err := eng.Run(context.Background(), &RunRequest{XMLPath: "model.xml", OutputDir: "reports"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
	assert.Contains(t, err.Error(), "duplicate attribute")
	assert.Len(t, mem.files, 1, "no output file on parse failure")
}

func TestRun_WriteFailure(t *testing.T) {
	mem := newTestFS(map[string]string{"model.xml": sampleDoc})
	mem.writeErr = os.ErrPermission
	eng := New(mem, &sink.Memory{}, &bytes.Buffer{}, nil)

	_, err := eng.Run(context.Background(), &RunRequest{XMLPath: "model.xml", OutputDir: "reports"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutput))
	assert.True(t, errors.Is(err, os.ErrPermission))
}
