// Package gotabular provides an in-memory tabular data toolkit.
//
// Tables load rows from CSV, Avro, or Parquet sources, support
// column-oriented queries and mutations (type inference and coercion,
// indexed row and column access, concatenation, splitting), and persist
// results back out, optionally chunked across multiple files by row
// count.
//
// # Quick Start
//
// Create a client and load a table:
//
//	client, err := gotabular.NewClient(ctx)
//	tbl, err := client.LoadTable(ctx, gotabular.FormatCSV, "names.csv")
//
// Inspect and convert columns:
//
//	types, err := tbl.ColumnTypes()
//	err = tbl.SetColumnTypes(map[any]cell.Kind{"age": cell.KindInt})
//
// Save, chunked into files of at most 100 rows each:
//
//	err = client.SaveTable(ctx, tbl, gotabular.FormatCSV, "out.csv",
//	    table.WithMaxRows(100))
//
// # Storage
//
// All formats read and write through a FileIO. The default is the local
// filesystem; S3 (or any S3-compatible endpoint such as MinIO) is
// selected with WithS3:
//
//	client, err := gotabular.NewClient(ctx,
//	    gotabular.WithS3(&gotabular.S3Config{Region: "us-east-1"}),
//	)
//	tbl, err := client.LoadTable(ctx, gotabular.FormatCSV, "s3://bucket/names.csv")
//
// # Formats
//
//   - CSV: cells load as strings until coerced.
//   - Avro: binary container files preserving cell kinds.
//   - Parquet: columnar storage under each column's inferred kind.
//   - Text: write-only column-aligned reports.
package gotabular
