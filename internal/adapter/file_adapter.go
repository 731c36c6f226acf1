// Package adapter contains the filesystem, codec and persistence adapters
// the search workflow is wired to.
package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

// FileAdapter abstracts the file operations the domain layer relies on so
// the workflow can be tested without touching the disk.
type FileAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFileAtomic writes content to a temporary file next to path and
	// renames it into place, so path never holds partial content.
	WriteFileAtomic(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error
}

// LocalFileAdapter implements FileAdapter on the local filesystem.
type LocalFileAdapter struct{}

// NewLocalFileAdapter constructs a LocalFileAdapter.
func NewLocalFileAdapter() *LocalFileAdapter {
	return &LocalFileAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalFileAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(path))
}

// WriteFileAtomic writes content through a temporary file and a rename.
func (a *LocalFileAdapter) WriteFileAtomic(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := string(path)

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		a.discard(tmp, tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Chmod(perm); err != nil {
		a.discard(tmp, tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		a.remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		a.remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (a *LocalFileAdapter) discard(f *os.File, name string) {
	_ = f.Close()
	a.remove(name)
}

func (a *LocalFileAdapter) remove(name string) {
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		slog.Error("Failed to remove temp file", "path", name, "error", err)
	}
}
