// Package io provides the file abstraction behind the storage adapters.
package io

import (
	"context"
	"io"
)

// FileIO is the interface for file operations.
//
// Reads and writes are scoped: a handle is opened, fully consumed, and
// closed before the caller moves on, on every exit path.
type FileIO interface {
	// Open opens a file for reading.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Create creates or replaces a file for writing.
	Create(ctx context.Context, path string) (io.WriteCloser, error)

	// Rename moves a file to a new path, replacing any existing file.
	Rename(ctx context.Context, from, to string) error

	// Delete deletes a file.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists.
	Exists(ctx context.Context, path string) (bool, error)
}
