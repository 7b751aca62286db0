package format

import (
	"context"
	"encoding/csv"
	"fmt"
	stdio "io"

	"github.com/go-tabular/go-tabular/cell"
	"github.com/go-tabular/go-tabular/io"
)

// CSVHandler loads and saves tables as comma-separated values. Cells
// load as string values until the caller asks for type coercion.
type CSVHandler struct {
	fio io.FileIO
}

// NewCSVHandler creates a CSV handler over the given FileIO. A nil
// FileIO means the local filesystem.
func NewCSVHandler(fio io.FileIO) *CSVHandler {
	return &CSVHandler{fio: orLocal(fio)}
}

// Load reads one or more same-schema CSV sources.
func (h *CSVHandler) Load(ctx context.Context, paths ...string) ([][]cell.Value, error) {
	return loadMerged(ctx, h.loadOne, paths)
}

func (h *CSVHandler) loadOne(ctx context.Context, path string) ([][]cell.Value, error) {
	r, err := h.fio.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer r.Close()

	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rows := make([][]cell.Value, len(records))
	for i, record := range records {
		rows[i] = make([]cell.Value, len(record))
		for j, field := range record {
			rows[i][j] = cell.String(field)
		}
	}
	return rows, nil
}

// Save writes rows to path, chunked when maxRows is exceeded.
func (h *CSVHandler) Save(ctx context.Context, rows [][]cell.Value, path string, maxRows int) error {
	return saveChunked(ctx, rows, path, maxRows, h.saveOne)
}

func (h *CSVHandler) saveOne(ctx context.Context, rows [][]cell.Value, path string) error {
	return writeFile(ctx, h.fio, path, func(w stdio.Writer) error {
		cw := csv.NewWriter(w)
		for _, row := range rows {
			record := make([]string, len(row))
			for i, v := range row {
				record[i] = v.String()
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
		}
		cw.Flush()
		return cw.Error()
	})
}
