package format

import (
	"bytes"
	"context"
	"fmt"
	stdio "io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/go-tabular/go-tabular/cell"
	"github.com/go-tabular/go-tabular/io"
)

// ParquetHandler is the columnar variant: columns are stored under
// their inferred kinds, so tables loaded from Parquet come back typed.
type ParquetHandler struct {
	fio io.FileIO
}

// NewParquetHandler creates a Parquet handler over the given FileIO. A
// nil FileIO means the local filesystem.
func NewParquetHandler(fio io.FileIO) *ParquetHandler {
	return &ParquetHandler{fio: orLocal(fio)}
}

// Load reads one or more same-schema Parquet files.
func (h *ParquetHandler) Load(ctx context.Context, paths ...string) ([][]cell.Value, error) {
	return loadMerged(ctx, h.loadOne, paths)
}

func (h *ParquetHandler) loadOne(ctx context.Context, path string) ([][]cell.Value, error) {
	r, err := h.fio.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	data, err := stdio.ReadAll(r)
	r.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	pqReader, err := file.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet reader for %s: %w", path, err)
	}
	defer pqReader.Close()

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, memory.NewGoAllocator())
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow reader for %s: %w", path, err)
	}

	tbl, err := arrowReader.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read table from %s: %w", path, err)
	}
	defer tbl.Release()

	header := make([]cell.Value, tbl.NumCols())
	for i, field := range tbl.Schema().Fields() {
		header[i] = cell.String(field.Name)
	}

	rows := make([][]cell.Value, tbl.NumRows()+1)
	rows[0] = header
	for i := range rows[1:] {
		rows[i+1] = make([]cell.Value, tbl.NumCols())
	}

	for col := 0; col < int(tbl.NumCols()); col++ {
		rowIdx := 1
		for _, chunk := range tbl.Column(col).Data().Chunks() {
			for j := 0; j < chunk.Len(); j++ {
				rows[rowIdx][col] = decodeArrow(chunk, j)
				rowIdx++
			}
		}
	}

	return rows, nil
}

// decodeArrow converts one Arrow array element to a cell value.
func decodeArrow(arr arrow.Array, i int) cell.Value {
	switch a := arr.(type) {
	case *array.Int64:
		return cell.Int(a.Value(i))
	case *array.Float64:
		return cell.Float(a.Value(i))
	case *array.Boolean:
		return cell.Bool(a.Value(i))
	case *array.String:
		return cell.String(a.Value(i))
	default:
		return cell.String(arr.ValueStr(i))
	}
}

// arrowType maps a cell kind to its Arrow storage type.
func arrowType(k cell.Kind) arrow.DataType {
	switch k {
	case cell.KindInt:
		return arrow.PrimitiveTypes.Int64
	case cell.KindFloat:
		return arrow.PrimitiveTypes.Float64
	case cell.KindBool:
		return arrow.FixedWidthTypes.Boolean
	default:
		return arrow.BinaryTypes.String
	}
}

// Save writes rows to path, chunked when maxRows is exceeded.
func (h *ParquetHandler) Save(ctx context.Context, rows [][]cell.Value, path string, maxRows int) error {
	return saveChunked(ctx, rows, path, maxRows, h.saveOne)
}

func (h *ParquetHandler) saveOne(ctx context.Context, rows [][]cell.Value, path string) error {
	if len(rows) == 0 {
		return ErrNoRows
	}

	header := rows[0]
	data := rows[1:]

	// Infer a kind per column; columns store under that kind.
	kinds := make([]cell.Kind, len(header))
	fields := make([]arrow.Field, len(header))
	for i, name := range header {
		column := make([]cell.Value, len(data))
		for j, row := range data {
			column[j] = row[i]
		}
		kinds[i] = cell.Infer(column)
		fields[i] = arrow.Field{Name: name.String(), Type: arrowType(kinds[i])}
	}
	schema := arrow.NewSchema(fields, nil)

	mem := memory.NewGoAllocator()
	builder := array.NewRecordBuilder(mem, schema)
	defer builder.Release()

	for _, row := range data {
		for i, v := range row {
			converted, err := cell.Coerce(v, kinds[i])
			if err != nil {
				return err
			}
			switch b := builder.Field(i).(type) {
			case *array.Int64Builder:
				b.Append(converted.Int64())
			case *array.Float64Builder:
				b.Append(converted.Float64())
			case *array.BooleanBuilder:
				b.Append(converted.Boolean())
			case *array.StringBuilder:
				b.Append(converted.Text())
			}
		}
	}

	record := builder.NewRecord()
	defer record.Release()

	buf := new(bytes.Buffer)
	writerProps := parquet.NewWriterProperties(
		parquet.WithCompression(compress.Codecs.Snappy),
	)
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	pqWriter, err := pqarrow.NewFileWriter(schema, buf, writerProps, arrowProps)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	if err := pqWriter.WriteBuffered(record); err != nil {
		pqWriter.Close()
		return fmt.Errorf("failed to write record: %w", err)
	}
	if err := pqWriter.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}

	return writeFile(ctx, h.fio, path, func(w stdio.Writer) error {
		_, err := w.Write(buf.Bytes())
		return err
	})
}
