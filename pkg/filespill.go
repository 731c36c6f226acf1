// Package pkg provides utilities shared by hqxbrute packages.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// FileSpill appends items of type T to a temporary gob file so long runs
// can keep an unbounded record list out of memory.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	Range(f func(index uint64, item T) error) error
	Close() error
}

type fileSpill[T any] struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	encoder *gob.Encoder
	length  uint64
	closed  bool
}

// ErrSpillClosed is returned by operations on a closed spill.
var ErrSpillClosed = errors.New("filespill: closed")

// NewFileSpill creates a spill file in dir, or in the system temporary
// directory when dir is empty. Close removes the file.
func NewFileSpill[T any](dir string) (FileSpill[T], error) {
	if dir == "" {
		dir = os.TempDir()
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("failed to create spill directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "hqxbrute-spill-*.gob")
	if err != nil {
		slog.Error("failed to create spill file", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill file: %w", err)
	}

	slog.Debug("created filespill", "path", file.Name())

	return &fileSpill[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

// Append implements FileSpill.
func (f *fileSpill[T]) Append(item T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrSpillClosed
	}

	if err := f.encoder.Encode(item); err != nil {
		slog.Error("failed to encode item", "path", f.path, "index", f.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	f.length++

	return nil
}

// Len implements FileSpill.
func (f *fileSpill[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

// Path implements FileSpill.
func (f *fileSpill[T]) Path() string {
	return f.path
}

// Range implements FileSpill. Items are visited in append order; a
// callback error stops the walk and is returned.
func (f *fileSpill[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrSpillClosed
	}

	reader, err := os.Open(f.path)
	if err != nil {
		return fmt.Errorf("failed to open spill: %w", err)
	}

	defer func() {
		if err := reader.Close(); err != nil {
			slog.Error("failed to close spill reader", "path", f.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(reader)

	for i := range f.length {
		var item T
		if err := decoder.Decode(&item); err != nil {
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

// Close implements FileSpill. It closes and removes the spill file.
func (f *fileSpill[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}

	f.closed = true

	closeErr := f.file.Close()

	removeErr := os.Remove(f.path)
	if removeErr != nil && os.IsNotExist(removeErr) {
		removeErr = nil
	}

	if err := errors.Join(closeErr, removeErr); err != nil {
		slog.Error("failed to close filespill", "path", f.path, "error", err)
		return err
	}

	slog.Debug("closed filespill", "path", f.path, "length", f.length)

	return nil
}
