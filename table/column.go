package table

import (
	"fmt"

	"github.com/go-tabular/go-tabular/cell"
)

// columnIndex resolves a column key to an ordinal index. Integer keys
// are used as-is; string keys are looked up in the header row.
func (t *Table) columnIndex(key any) (int, error) {
	switch k := key.(type) {
	case int:
		if len(t.rows) == 0 || k < 0 || k >= len(t.rows[0]) {
			return 0, fmt.Errorf("%w: index %d", ErrColumnNotFound, k)
		}
		return k, nil
	case string:
		for i, name := range t.Header() {
			if name == k {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, k)
	default:
		return 0, fmt.Errorf("%w: %T", ErrInvalidColumnKey, key)
	}
}

// ColumnValues returns the ordered data-row values of a column, header
// excluded.
func (t *Table) ColumnValues(key any) ([]cell.Value, error) {
	idx, err := t.columnIndex(key)
	if err != nil {
		return nil, err
	}

	values := make([]cell.Value, 0, t.NumRows())
	for _, row := range t.rows[1:] {
		values = append(values, row[idx])
	}
	return values, nil
}

// Value returns the first data row's value in a column.
func (t *Table) Value(key any) (cell.Value, error) {
	if t.NumRows() < 1 {
		return cell.Value{}, ErrEmptyTable
	}

	idx, err := t.columnIndex(key)
	if err != nil {
		return cell.Value{}, err
	}
	return t.rows[1][idx], nil
}

// SetColumnValues replaces an entire column's data-row values. The
// supplied sequence must match the data row count exactly; on mismatch
// the table is left untouched.
func (t *Table) SetColumnValues(key any, values []cell.Value) error {
	idx, err := t.columnIndex(key)
	if err != nil {
		return err
	}

	if len(values) != t.NumRows() {
		return &CardinalityError{Want: t.NumRows(), Got: len(values)}
	}

	for i, v := range values {
		t.rows[i+1][idx] = v
	}
	return nil
}

// SetValue replaces only the first data row's value in a column.
func (t *Table) SetValue(key any, v cell.Value) error {
	if t.NumRows() < 1 {
		return ErrEmptyTable
	}

	idx, err := t.columnIndex(key)
	if err != nil {
		return err
	}
	t.rows[1][idx] = v
	return nil
}
