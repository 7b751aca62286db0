package format

import (
	"context"
	"errors"
	"testing"

	"github.com/go-tabular/go-tabular/cell"
)

func TestChunkPath(t *testing.T) {
	cases := []struct {
		target string
		n      int
		want   string
	}{
		{"data.csv", 1, "data_1.csv"},
		{"data.csv", 12, "data_12.csv"},
		{"out/report.txt", 2, "out/report_2.txt"},
		{"noext", 3, "noext_3"},
		{"archive.tar.gz", 1, "archive.tar_1.gz"},
	}
	for _, tc := range cases {
		if got := chunkPath(tc.target, tc.n); got != tc.want {
			t.Errorf("chunkPath(%q, %d) = %q, want %q", tc.target, tc.n, got, tc.want)
		}
	}
}

func TestLoadMergedNoPaths(t *testing.T) {
	_, err := loadMerged(context.Background(), nil, nil)
	if !errors.Is(err, ErrNoPaths) {
		t.Errorf("error = %v, want ErrNoPaths", err)
	}
}

func TestSaveChunkedSingleFile(t *testing.T) {
	rows := [][]cell.Value{
		{cell.String("id")},
		{cell.String("1")},
		{cell.String("2")},
	}

	var paths []string
	save := func(ctx context.Context, rows [][]cell.Value, path string) error {
		paths = append(paths, path)
		return nil
	}

	// Row count within the cap: no counter suffix.
	if err := saveChunked(context.Background(), rows, "out.csv", 3, save); err != nil {
		t.Fatalf("saveChunked failed: %v", err)
	}
	if len(paths) != 1 || paths[0] != "out.csv" {
		t.Errorf("paths = %v, want [out.csv]", paths)
	}
}

func TestSaveChunkedHeaderRepeats(t *testing.T) {
	rows := [][]cell.Value{
		{cell.String("id")},
		{cell.String("1")},
		{cell.String("2")},
		{cell.String("3")},
	}

	var chunks [][][]cell.Value
	save := func(ctx context.Context, rows [][]cell.Value, path string) error {
		chunks = append(chunks, rows)
		return nil
	}

	if err := saveChunked(context.Background(), rows, "out.csv", 2, save); err != nil {
		t.Fatalf("saveChunked failed: %v", err)
	}

	// First chunk: header plus one data row. Later chunks get the header
	// prepended on top of their row quota.
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if len(chunks[0]) != 2 || chunks[0][0][0].Text() != "id" {
		t.Errorf("chunk 1 = %v, want header plus one row", chunks[0])
	}
	if len(chunks[1]) != 3 || chunks[1][0][0].Text() != "id" {
		t.Errorf("chunk 2 = %v, want header plus two rows", chunks[1])
	}
	if chunks[1][1][0].Text() != "2" {
		t.Errorf("chunk 2 first data row = %s, want 2", chunks[1][1][0].Text())
	}
}
