package table

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-tabular/go-tabular/cell"
)

// strRows builds rows of string cells from string literals.
func strRows(rows ...[]string) [][]cell.Value {
	out := make([][]cell.Value, len(rows))
	for i, row := range rows {
		out[i] = make([]cell.Value, len(row))
		for j, s := range row {
			out[i][j] = cell.String(s)
		}
	}
	return out
}

// stubHandler is an in-memory Handler for exercising Load and Save.
type stubHandler struct {
	rows        [][]cell.Value
	loadErr     error
	savedRows   [][]cell.Value
	savedPath   string
	savedMax    int
	loadedPaths []string
}

func (s *stubHandler) Load(ctx context.Context, paths ...string) ([][]cell.Value, error) {
	s.loadedPaths = paths
	return s.rows, s.loadErr
}

func (s *stubHandler) Save(ctx context.Context, rows [][]cell.Value, path string, maxRows int) error {
	s.savedRows = rows
	s.savedPath = path
	s.savedMax = maxRows
	return nil
}

func TestTableAccessors(t *testing.T) {
	tbl := FromRows(strRows(
		[]string{"id", "name"},
		[]string{"1", "alice"},
		[]string{"2", "bob"},
	))

	if got := tbl.Len(); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}
	if got := tbl.NumRows(); got != 2 {
		t.Errorf("NumRows = %d, want 2", got)
	}
	if tbl.IsEmpty() {
		t.Error("table should not be empty")
	}

	header := tbl.Header()
	if len(header) != 2 || header[0] != "id" || header[1] != "name" {
		t.Errorf("Header = %v, want [id name]", header)
	}
}

func TestEmptyTable(t *testing.T) {
	tbl := New()

	if !tbl.IsEmpty() {
		t.Error("new table should be empty")
	}
	if got := tbl.NumRows(); got != 0 {
		t.Errorf("NumRows = %d, want 0", got)
	}
	if got := tbl.Header(); got != nil {
		t.Errorf("Header = %v, want nil", got)
	}
}

func TestLoadReplacesRows(t *testing.T) {
	ctx := context.Background()
	tbl := FromRows(strRows([]string{"old"}, []string{"x"}))

	h := &stubHandler{rows: strRows([]string{"id"}, []string{"1"})}
	if err := tbl.Load(ctx, h, "a.csv", "b.csv"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := tbl.Header(); len(got) != 1 || got[0] != "id" {
		t.Errorf("Header = %v, want [id]", got)
	}
	if len(h.loadedPaths) != 2 {
		t.Errorf("handler received %d paths, want 2", len(h.loadedPaths))
	}
}

func TestLoadRejectsRaggedRows(t *testing.T) {
	ctx := context.Background()
	tbl := New()

	h := &stubHandler{rows: [][]cell.Value{
		{cell.String("id"), cell.String("name")},
		{cell.String("1")},
	}}

	err := tbl.Load(ctx, h)
	if !errors.Is(err, ErrRowLengthMismatch) {
		t.Errorf("Load error = %v, want ErrRowLengthMismatch", err)
	}
	if !tbl.IsEmpty() {
		t.Error("failed load should leave the table unchanged")
	}
}

func TestSavePassesOptions(t *testing.T) {
	ctx := context.Background()
	tbl := FromRows(strRows([]string{"id"}, []string{"1"}))

	h := &stubHandler{}
	if err := tbl.Save(ctx, h, "out.csv", WithMaxRows(10)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if h.savedPath != "out.csv" {
		t.Errorf("saved path = %s, want out.csv", h.savedPath)
	}
	if h.savedMax != 10 {
		t.Errorf("saved maxRows = %d, want 10", h.savedMax)
	}
	if len(h.savedRows) != 2 {
		t.Errorf("saved %d rows, want 2", len(h.savedRows))
	}
}

func TestString(t *testing.T) {
	tbl := FromRows(strRows(
		[]string{"id", "name"},
		[]string{"1", "alice"},
		[]string{"100", "bo"},
	))

	got := tbl.String()
	want := "id  | name \n" +
		"1   | alice\n" +
		"100 | bo   \n"
	if got != want {
		t.Errorf("String =\n%q\nwant\n%q", got, want)
	}
}

func TestStringEmpty(t *testing.T) {
	if got := New().String(); got != "table is empty" {
		t.Errorf("String = %q, want %q", got, "table is empty")
	}
}

func TestPrint(t *testing.T) {
	tbl := FromRows(strRows([]string{"id"}, []string{"1"}))

	var sb strings.Builder
	if err := tbl.Print(&sb); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if sb.String() != tbl.String() {
		t.Error("Print should write the same output as String")
	}
}
