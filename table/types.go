package table

import (
	"fmt"

	"github.com/go-tabular/go-tabular/cell"
)

// ColumnTypes infers a single representative kind per column, keyed by
// header name. The map is recomputed from current data on every call.
func (t *Table) ColumnTypes() (map[string]cell.Kind, error) {
	if len(t.rows) == 0 {
		return nil, ErrEmptyTable
	}

	types := make(map[string]cell.Kind, len(t.rows[0]))
	for i, name := range t.Header() {
		values, err := t.ColumnValues(i)
		if err != nil {
			return nil, err
		}
		types[name] = cell.Infer(values)
	}
	return types, nil
}

// ColumnTypesByNumber infers a single representative kind per column,
// keyed by ordinal index.
func (t *Table) ColumnTypesByNumber() (map[int]cell.Kind, error) {
	if len(t.rows) == 0 {
		return nil, ErrEmptyTable
	}

	types := make(map[int]cell.Kind, len(t.rows[0]))
	for i := range t.rows[0] {
		values, err := t.ColumnValues(i)
		if err != nil {
			return nil, err
		}
		types[i] = cell.Infer(values)
	}
	return types, nil
}

// SetColumnTypes converts the values of the keyed columns to the given
// target kinds, in place. Conversion stops at the first failing value;
// rows converted before the failure stay converted.
func (t *Table) SetColumnTypes(targets map[any]cell.Kind) error {
	if t.NumRows() < 1 {
		return fmt.Errorf("%w: nothing to convert", ErrEmptyTable)
	}

	for key, kind := range targets {
		idx, err := t.columnIndex(key)
		if err != nil {
			return err
		}

		for _, row := range t.rows[1:] {
			converted, err := cell.Coerce(row[idx], kind)
			if err != nil {
				return err
			}
			row[idx] = converted
		}
	}
	return nil
}
