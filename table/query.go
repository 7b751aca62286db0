package table

import (
	"fmt"

	"github.com/go-tabular/go-tabular/cell"
)

// End is the stop sentinel meaning "through the last data row".
const End = -1

// RowsByNumber retrieves data rows by position. Data rows are numbered
// from 1; the header is excluded from numbering.
//
// A stop of 0 returns the single row at start. A stop of End returns
// every row from start through the last. Any other stop returns the
// slice [start-1, stop) over the data rows, so stop is inclusive in
// 1-based terms while start stays 1-based.
//
// With deep set, the result is an independent copy; otherwise the rows
// are borrowed views into table state.
func (t *Table) RowsByNumber(start, stop int, deep bool) ([][]cell.Value, error) {
	if len(t.rows) == 0 {
		return nil, ErrEmptyTable
	}
	data := t.rows[1:]

	var result [][]cell.Value
	switch stop {
	case 0:
		if start < 1 || start > len(data) {
			return nil, fmt.Errorf("%w: row %d of %d", ErrRowOutOfRange, start, len(data))
		}
		result = data[start-1 : start]
	case End:
		if start < 1 || start > len(data) {
			return nil, fmt.Errorf("%w: row %d of %d", ErrRowOutOfRange, start, len(data))
		}
		result = data[start-1:]
	default:
		if start < 1 || stop < start-1 || stop > len(data) {
			return nil, fmt.Errorf("%w: rows [%d, %d) of %d", ErrRowOutOfRange, start-1, stop, len(data))
		}
		result = data[start-1 : stop]
	}

	if deep {
		return copyRows(result), nil
	}
	return result, nil
}

// RowsByIndex returns every data row whose first cell equals any of the
// supplied key values. With deep set, the result is an independent
// copy.
func (t *Table) RowsByIndex(keys []cell.Value, deep bool) ([][]cell.Value, error) {
	if len(t.rows) == 0 {
		return nil, ErrEmptyTable
	}

	var result [][]cell.Value
	for _, row := range t.rows[1:] {
		for _, key := range keys {
			if row[0].Equal(key) {
				result = append(result, row)
				break
			}
		}
	}

	if deep {
		return copyRows(result), nil
	}
	return result, nil
}
