// Package scaffold generates Anchor workspaces from resolved templates.
package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	errs "github.com/solforge/cli/internal/errors"
	"github.com/solforge/cli/internal/templates"
)

// FileSystemError wraps a failed directory or file operation.
type FileSystemError struct {
	// Op is the operation that failed (mkdir, write, remove).
	Op string

	// Path is the path the operation targeted.
	Path string

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileSystemError) Unwrap() error {
	return e.Err
}

// Writer performs the filesystem side of workspace generation. It is a
// thin capability over an afero.Fs so tests can substitute an in-memory
// or fault-injecting filesystem.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a writer backed by the OS filesystem.
func NewWriter() *Writer {
	return &Writer{fs: afero.NewOsFs()}
}

// NewWriterFs creates a writer backed by the given filesystem.
func NewWriterFs(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// EnsureDir creates the directory and all missing ancestors. It succeeds
// silently if the directory already exists.
func (w *Writer) EnsureDir(path string) error {
	if err := w.fs.MkdirAll(path, 0o755); err != nil {
		return &FileSystemError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

// WriteFile creates parent directories as needed and writes content,
// overwriting any existing file at the path.
func (w *Writer) WriteFile(path, content string) error {
	if err := w.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &FileSystemError{Op: "mkdir", Path: filepath.Dir(path), Err: err}
	}
	if err := afero.WriteFile(w.fs, path, []byte(content), 0o644); err != nil {
		return &FileSystemError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// PathExists is a non-throwing existence probe.
func (w *Writer) PathExists(path string) bool {
	exists, err := afero.Exists(w.fs, path)
	return err == nil && exists
}

// RemoveAll recursively deletes a path. Used for rollback.
func (w *Writer) RemoveAll(path string) error {
	if err := w.fs.RemoveAll(path); err != nil {
		return &FileSystemError{Op: "remove", Path: path, Err: err}
	}
	return nil
}

// WriteGenerated writes every generated file under root. A file whose
// relative path is absolute or resolves outside the root is rejected
// before anything is written.
func (w *Writer) WriteGenerated(root string, files []templates.File) error {
	for _, f := range files {
		if err := checkContained(f.Path); err != nil {
			return err
		}
	}
	for _, f := range files {
		target := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := w.WriteFile(target, f.Content); err != nil {
			return err
		}
	}
	return nil
}

// checkContained rejects generated paths that would escape the
// destination root.
func checkContained(rel string) error {
	native := filepath.FromSlash(rel)
	if rel == "" || filepath.IsAbs(native) || !filepath.IsLocal(native) {
		return &FileSystemError{
			Op:   "write",
			Path: rel,
			Err:  errs.Wrap(errs.ErrValidation, "generated path escapes the destination root"),
		}
	}
	return nil
}
