package table

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-tabular/go-tabular/cell"
)

func TestConcat(t *testing.T) {
	a := FromRows(strRows(
		[]string{"id", "name"},
		[]string{"1", "alice"},
		[]string{"2", "bob"},
	))
	b := FromRows(strRows(
		[]string{"score", "active"},
		[]string{"3.5", "true"},
		[]string{"4.25", "false"},
	))

	combined := New()
	if err := combined.Concat(a, b); err != nil {
		t.Fatalf("Concat failed: %v", err)
	}

	header := combined.Header()
	want := []string{"id", "name", "score", "active"}
	if len(header) != len(want) {
		t.Fatalf("header = %v, want %v", header, want)
	}
	for i, w := range want {
		if header[i] != w {
			t.Errorf("header[%d] = %s, want %s", i, header[i], w)
		}
	}

	if combined.NumRows() != 2 {
		t.Fatalf("NumRows = %d, want 2", combined.NumRows())
	}
	v, err := combined.Value("score")
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v.Text() != "3.5" {
		t.Errorf("score = %s, want 3.5", v.Text())
	}
}

func TestConcatIntoNonEmpty(t *testing.T) {
	target := FromRows(strRows([]string{"x"}))
	a := FromRows(strRows([]string{"a"}, []string{"1"}))
	b := FromRows(strRows([]string{"b"}, []string{"2"}))

	err := target.Concat(a, b)
	if !errors.Is(err, ErrTableNotEmpty) {
		t.Errorf("error = %v, want ErrTableNotEmpty", err)
	}
}

func TestConcatEmptyOperands(t *testing.T) {
	full := FromRows(strRows([]string{"a"}, []string{"1"}))

	err := New().Concat(New(), full)
	if !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("error = %v, want ErrEmptyTable", err)
	}
	if !strings.Contains(err.Error(), "table #1") {
		t.Errorf("error %q should name table #1", err)
	}

	err = New().Concat(full, New())
	if !strings.Contains(err.Error(), "table #2") {
		t.Errorf("error %q should name table #2", err)
	}
}

func TestConcatDuplicateColumns(t *testing.T) {
	a := FromRows(strRows([]string{"id", "name"}, []string{"1", "alice"}))
	b := FromRows(strRows([]string{"id", "score"}, []string{"2", "3.5"}))

	err := New().Concat(a, b)
	if !errors.Is(err, ErrDuplicateHeader) {
		t.Fatalf("error = %v, want ErrDuplicateHeader", err)
	}

	var de *DuplicateHeaderError
	if !errors.As(err, &de) {
		t.Fatal("error should be a *DuplicateHeaderError")
	}
	if len(de.Names) != 1 || de.Names[0] != "id" {
		t.Errorf("duplicates = %v, want [id]", de.Names)
	}
}

func TestConcatRowCountMismatch(t *testing.T) {
	a := FromRows(strRows([]string{"a"}, []string{"1"}, []string{"2"}))
	b := FromRows(strRows([]string{"b"}, []string{"1"}))

	err := New().Concat(a, b)
	if !errors.Is(err, ErrRowLengthMismatch) {
		t.Errorf("error = %v, want ErrRowLengthMismatch", err)
	}
}

func TestSplit(t *testing.T) {
	tbl := numberedTable()

	first, second, err := tbl.Split(3)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	// Rows 1-2 (header plus first data row) land in the first half.
	if first.Len() != 2 {
		t.Errorf("first.Len = %d, want 2", first.Len())
	}
	if got := first.Header()[0]; got != "id" {
		t.Errorf("first header = %s, want id", got)
	}
	v, _ := first.Value("name")
	if v.Text() != "alice" {
		t.Errorf("first data row = %s, want alice", v.Text())
	}

	// The second half starts at row 3 and gets no header re-injected:
	// its first row is the "2, bob" data row.
	if second.Len() != 3 {
		t.Errorf("second.Len = %d, want 3", second.Len())
	}
	if got := second.Header()[1]; got != "bob" {
		t.Errorf("second header = %s, want bob", got)
	}
}

func TestSplitAtHeader(t *testing.T) {
	tbl := numberedTable()

	first, second, err := tbl.Split(1)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if first.Len() != 0 {
		t.Errorf("first.Len = %d, want 0", first.Len())
	}
	if second.Len() != tbl.Len() {
		t.Errorf("second.Len = %d, want %d", second.Len(), tbl.Len())
	}
}

func TestSplitPastEnd(t *testing.T) {
	tbl := numberedTable()

	first, second, err := tbl.Split(tbl.Len() + 1)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if first.Len() != tbl.Len() {
		t.Errorf("first.Len = %d, want %d", first.Len(), tbl.Len())
	}
	if second.Len() != 0 {
		t.Errorf("second.Len = %d, want 0", second.Len())
	}
}

func TestSplitOutOfRange(t *testing.T) {
	tbl := numberedTable()

	for _, n := range []int{0, -1, tbl.Len() + 2} {
		_, _, err := tbl.Split(n)
		if !errors.Is(err, ErrRowOutOfRange) {
			t.Errorf("Split(%d) error = %v, want ErrRowOutOfRange", n, err)
		}
	}
}

func TestSplitEmptyTable(t *testing.T) {
	_, _, err := New().Split(1)
	if !errors.Is(err, ErrEmptyTable) {
		t.Errorf("error = %v, want ErrEmptyTable", err)
	}
}

func TestSplitHalvesAreIndependent(t *testing.T) {
	tbl := numberedTable()

	first, _, err := tbl.Split(3)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	if err := first.SetValue("name", cell.String("mallory")); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}

	orig, _ := tbl.Value("name")
	if orig.Text() != "alice" {
		t.Errorf("split half leaked back into source: got %s", orig.Text())
	}
}
