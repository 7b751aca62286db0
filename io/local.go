package io

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalFileIO implements FileIO for the local filesystem.
type LocalFileIO struct{}

// NewLocalFileIO creates a new local file I/O handler.
func NewLocalFileIO() *LocalFileIO {
	return &LocalFileIO{}
}

// Open opens a file for reading.
func (l *LocalFileIO) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return os.Open(normalizePath(path))
}

// Create creates or replaces a file for writing, creating parent
// directories as needed.
func (l *LocalFileIO) Create(ctx context.Context, path string) (io.WriteCloser, error) {
	path = normalizePath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return os.Create(path)
}

// Rename moves a file to a new path, replacing any existing file.
func (l *LocalFileIO) Rename(ctx context.Context, from, to string) error {
	return os.Rename(normalizePath(from), normalizePath(to))
}

// Delete deletes a file.
func (l *LocalFileIO) Delete(ctx context.Context, path string) error {
	return os.Remove(normalizePath(path))
}

// Exists checks if a file exists.
func (l *LocalFileIO) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(normalizePath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// normalizePath removes the file:// prefix if present.
func normalizePath(path string) string {
	return strings.TrimPrefix(path, "file://")
}
