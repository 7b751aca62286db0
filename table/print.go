package table

import (
	"fmt"
	"io"
	"strings"
)

// columnWidths returns the maximum rendered width of each column over
// all rows, header included.
func (t *Table) columnWidths() []int {
	if len(t.rows) == 0 {
		return nil
	}

	widths := make([]int, len(t.rows[0]))
	for _, row := range t.rows {
		for i, v := range row {
			if n := len(v.String()); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// String renders the table with columns aligned to their maximum
// rendered width, fields left-justified and separated by " | ".
func (t *Table) String() string {
	if len(t.rows) == 0 {
		return "table is empty"
	}

	widths := t.columnWidths()
	var sb strings.Builder
	for _, row := range t.rows {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = fmt.Sprintf("%-*s", widths[i], v.String())
		}
		sb.WriteString(strings.Join(fields, " | "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Print writes the rendered table to w.
func (t *Table) Print(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}
