package format

import (
	"context"
	"fmt"
	stdio "io"
	"strings"

	"github.com/go-tabular/go-tabular/cell"
	"github.com/go-tabular/go-tabular/io"
)

// TextHandler writes plain-text reports: columns aligned to their
// maximum rendered width, fields left-justified and separated by " | ".
// Text reports are write-only.
type TextHandler struct {
	fio io.FileIO
}

// NewTextHandler creates a text report handler over the given FileIO. A
// nil FileIO means the local filesystem.
func NewTextHandler(fio io.FileIO) *TextHandler {
	return &TextHandler{fio: orLocal(fio)}
}

// Load always fails: text reports cannot be read back.
func (h *TextHandler) Load(ctx context.Context, paths ...string) ([][]cell.Value, error) {
	return nil, fmt.Errorf("%w: text reports are write-only", ErrLoadNotSupported)
}

// Save writes rows to path, chunked when maxRows is exceeded.
func (h *TextHandler) Save(ctx context.Context, rows [][]cell.Value, path string, maxRows int) error {
	return saveChunked(ctx, rows, path, maxRows, h.saveOne)
}

func (h *TextHandler) saveOne(ctx context.Context, rows [][]cell.Value, path string) error {
	if len(rows) == 0 {
		return ErrNoRows
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, v := range row {
			if n := len(v.String()); n > widths[i] {
				widths[i] = n
			}
		}
	}

	return writeFile(ctx, h.fio, path, func(w stdio.Writer) error {
		for _, row := range rows {
			fields := make([]string, len(row))
			for i, v := range row {
				fields[i] = fmt.Sprintf("%-*s", widths[i], v.String())
			}
			if _, err := fmt.Fprintln(w, strings.Join(fields, " | ")); err != nil {
				return err
			}
		}
		return nil
	})
}
