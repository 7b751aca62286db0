package table

import (
	"fmt"

	"github.com/go-tabular/go-tabular/cell"
)

// Concat combines two non-empty tables column-wise into the receiver,
// which must be empty. The result's header is the concatenation of both
// source headers; a column name appearing more than once across the
// combined header is an error naming every duplicate.
func (t *Table) Concat(a, b *Table) error {
	if len(t.rows) != 0 {
		return ErrTableNotEmpty
	}
	if a.IsEmpty() {
		return fmt.Errorf("table #1: %w", ErrEmptyTable)
	}
	if b.IsEmpty() {
		return fmt.Errorf("table #2: %w", ErrEmptyTable)
	}

	combined := append(a.Header(), b.Header()...)
	if dups := duplicateNames(combined); len(dups) > 0 {
		return &DuplicateHeaderError{Names: dups}
	}

	columns := append(transpose(a.rows), transpose(b.rows)...)
	rows, err := retranspose(columns)
	if err != nil {
		return err
	}

	t.rows = rows
	return nil
}

// Split partitions a non-empty table into two independent tables at a
// 1-based row number that counts the header as row 1. The first result
// holds rows before the boundary, the second the boundary row onward;
// whatever row lands at position 0 of each half becomes that half's
// header.
func (t *Table) Split(rowNumber int) (*Table, *Table, error) {
	if len(t.rows) == 0 {
		return nil, nil, ErrEmptyTable
	}

	boundary := rowNumber - 1
	if boundary < 0 || boundary > len(t.rows) {
		return nil, nil, fmt.Errorf("%w: split at %d of %d", ErrRowOutOfRange, rowNumber, len(t.rows))
	}

	columns := transpose(t.rows)
	left := make([][]cell.Value, len(columns))
	right := make([][]cell.Value, len(columns))
	for i, col := range columns {
		left[i] = col[:boundary]
		right[i] = col[boundary:]
	}

	first, err := retranspose(left)
	if err != nil {
		return nil, nil, err
	}
	second, err := retranspose(right)
	if err != nil {
		return nil, nil, err
	}

	return FromRows(copyRows(first)), FromRows(copyRows(second)), nil
}

// duplicateNames returns the names appearing more than once, each
// listed once, in first-appearance order.
func duplicateNames(names []string) []string {
	counts := make(map[string]int, len(names))
	for _, name := range names {
		counts[name]++
	}

	var dups []string
	seen := make(map[string]bool)
	for _, name := range names {
		if counts[name] > 1 && !seen[name] {
			dups = append(dups, name)
			seen[name] = true
		}
	}
	return dups
}

// transpose converts rows to column sequences. Rows are assumed
// rectangular.
func transpose(rows [][]cell.Value) [][]cell.Value {
	if len(rows) == 0 {
		return nil
	}

	columns := make([][]cell.Value, len(rows[0]))
	for i := range columns {
		columns[i] = make([]cell.Value, len(rows))
		for j, row := range rows {
			columns[i][j] = row[i]
		}
	}
	return columns
}

// retranspose converts column sequences back to rows. Columns of unequal
// height cannot form rows.
func retranspose(columns [][]cell.Value) ([][]cell.Value, error) {
	if len(columns) == 0 {
		return nil, nil
	}

	height := len(columns[0])
	for i, col := range columns {
		if len(col) != height {
			return nil, fmt.Errorf("%w: column %d has %d rows, column 0 has %d",
				ErrRowLengthMismatch, i, len(col), height)
		}
	}

	rows := make([][]cell.Value, height)
	for j := range rows {
		rows[j] = make([]cell.Value, len(columns))
		for i, col := range columns {
			rows[j][i] = col[j]
		}
	}
	return rows, nil
}
