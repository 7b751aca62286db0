// Package table implements the in-memory tabular data model.
//
// A Table owns an ordered set of rows. Row 0 is the header, holding the
// column names; every following row is a data row of cell values. The
// table is rectangular: each row has the same length as the header.
package table

import (
	"context"
	"fmt"

	"github.com/go-tabular/go-tabular/cell"
)

// Handler loads and saves raw row sets for one storage format.
//
// Load returns rows with the header included as row 0. When multiple
// paths are given, every source after the first must carry the same
// header, and only its data rows are appended. Save writes rows to
// path; a non-zero maxRows splits the output into counter-suffixed
// chunk files with the header re-emitted at the top of every chunk
// after the first.
type Handler interface {
	Load(ctx context.Context, paths ...string) ([][]cell.Value, error)
	Save(ctx context.Context, rows [][]cell.Value, path string, maxRows int) error
}

// Table is a row-oriented in-memory table.
type Table struct {
	rows [][]cell.Value
}

// New creates an empty table.
func New() *Table {
	return &Table{}
}

// FromRows creates a table over the supplied rows. The rows are not
// copied; the table takes ownership.
func FromRows(rows [][]cell.Value) *Table {
	return &Table{rows: rows}
}

// Rows returns the table's rows, header included. The returned slice is
// a borrowed view into table state.
func (t *Table) Rows() [][]cell.Value {
	return t.rows
}

// Header returns the column names from the header row.
func (t *Table) Header() []string {
	if len(t.rows) == 0 {
		return nil
	}
	names := make([]string, len(t.rows[0]))
	for i, v := range t.rows[0] {
		names[i] = v.String()
	}
	return names
}

// Len returns the total row count, header included.
func (t *Table) Len() int {
	return len(t.rows)
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	if len(t.rows) == 0 {
		return 0
	}
	return len(t.rows) - 1
}

// IsEmpty reports whether the table has no rows at all.
func (t *Table) IsEmpty() bool {
	return len(t.rows) == 0
}

// Load replaces the table's rows with the rows read by the handler.
func (t *Table) Load(ctx context.Context, h Handler, paths ...string) error {
	rows, err := h.Load(ctx, paths...)
	if err != nil {
		return err
	}
	if err := validateRectangular(rows); err != nil {
		return err
	}
	t.rows = rows
	return nil
}

// Save writes the table's rows through the handler.
func (t *Table) Save(ctx context.Context, h Handler, path string, opts ...SaveOption) error {
	cfg := &saveConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return h.Save(ctx, t.rows, path, cfg.maxRows)
}

// saveConfig holds save options.
type saveConfig struct {
	maxRows int
}

// SaveOption configures a save operation.
type SaveOption func(*saveConfig)

// WithMaxRows caps the number of rows written per output file. Output
// exceeding the cap is chunked across counter-suffixed files.
func WithMaxRows(n int) SaveOption {
	return func(c *saveConfig) {
		c.maxRows = n
	}
}

// validateRectangular checks that every row matches the header length.
func validateRectangular(rows [][]cell.Value) error {
	if len(rows) == 0 {
		return nil
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d cells, header has %d",
				ErrRowLengthMismatch, i, len(row), width)
		}
	}
	return nil
}

// copyRows returns a deep, independent copy of the given rows.
func copyRows(rows [][]cell.Value) [][]cell.Value {
	out := make([][]cell.Value, len(rows))
	for i, row := range rows {
		out[i] = make([]cell.Value, len(row))
		copy(out[i], row)
	}
	return out
}
