// Package format implements the storage adapters: CSV, Avro, Parquet,
// and plain-text reports.
//
// Every adapter reads and writes through a FileIO, so the same handler
// works against the local filesystem or S3. Loads accept one or more
// same-schema sources; saves optionally chunk the output across
// counter-suffixed files bounded by a maximum row count.
package format

import (
	"context"
	"errors"
	"fmt"
	stdio "io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/go-tabular/go-tabular/cell"
	"github.com/go-tabular/go-tabular/io"
)

// Common errors for storage adapters.
var (
	ErrNoPaths          = errors.New("no paths given")
	ErrNoRows           = errors.New("cannot save an empty table")
	ErrLoadNotSupported = errors.New("load not supported")
	ErrDifferentColumns = errors.New("tables have different columns")
)

// orLocal substitutes the local filesystem for a nil FileIO.
func orLocal(fio io.FileIO) io.FileIO {
	if fio == nil {
		return io.NewLocalFileIO()
	}
	return fio
}

// loadFunc loads the full row set of a single source.
type loadFunc func(ctx context.Context, path string) ([][]cell.Value, error)

// loadMerged reads one or more same-schema sources. The first source
// contributes its header and data; every later source must carry an
// identical header and contributes data rows only.
func loadMerged(ctx context.Context, loadOne loadFunc, paths []string) ([][]cell.Value, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	result, err := loadOne(ctx, paths[0])
	if err != nil {
		return nil, err
	}

	for _, p := range paths[1:] {
		rows, err := loadOne(ctx, p)
		if err != nil {
			return nil, err
		}
		if len(result) == 0 || len(rows) == 0 || !headerEqual(result[0], rows[0]) {
			return nil, fmt.Errorf("%w: %s", ErrDifferentColumns, p)
		}
		result = append(result, rows[1:]...)
	}
	return result, nil
}

// headerEqual compares two header rows by rendered name.
func headerEqual(a, b []cell.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].String() != b[i].String() {
			return false
		}
	}
	return true
}

// saveFunc writes a full row set to a single destination.
type saveFunc func(ctx context.Context, rows [][]cell.Value, path string) error

// saveChunked writes rows through saveOne. With maxRows set and
// exceeded, output is split across chunk files named by inserting an
// incrementing counter before the path's extension; the header is
// re-emitted at the top of every chunk after the first.
func saveChunked(ctx context.Context, rows [][]cell.Value, target string, maxRows int, saveOne saveFunc) error {
	if maxRows <= 0 || len(rows) <= maxRows {
		return saveOne(ctx, rows, target)
	}

	header := rows[0]
	remaining := rows
	for counter := 1; len(remaining) > 0; counter++ {
		n := min(maxRows, len(remaining))
		chunk := remaining[:n]
		if counter != 1 {
			chunk = append([][]cell.Value{header}, chunk...)
		}
		if err := saveOne(ctx, chunk, chunkPath(target, counter)); err != nil {
			return err
		}
		remaining = remaining[n:]
	}
	return nil
}

// chunkPath inserts a chunk counter before the path's extension:
// data.csv -> data_1.csv.
func chunkPath(target string, n int) string {
	ext := path.Ext(target)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(target, ext), n, ext)
}

// writeFile writes through a uuid-tagged temp sibling and renames into
// place, so a failed save never clobbers the target.
func writeFile(ctx context.Context, fio io.FileIO, target string, write func(w stdio.Writer) error) error {
	tmp := fmt.Sprintf("%s.%s.tmp", target, uuid.New().String()[:8])

	w, err := fio.Create(ctx, tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	if err := write(w); err != nil {
		w.Close()
		fio.Delete(ctx, tmp)
		return err
	}
	if err := w.Close(); err != nil {
		fio.Delete(ctx, tmp)
		return err
	}

	return fio.Rename(ctx, tmp, target)
}
