package format

import (
	"bytes"
	"context"
	"fmt"
	stdio "io"

	"github.com/linkedin/goavro/v2"

	"github.com/go-tabular/go-tabular/cell"
	"github.com/go-tabular/go-tabular/io"
)

// avroRowSchema is the Avro schema for one table row: an array of cells,
// each a union over the four cell kinds.
const avroRowSchema = `{
  "type": "record",
  "name": "row",
  "fields": [
    {"name": "cells", "type": {"type": "array", "items": ["string", "long", "double", "boolean"]}}
  ]
}`

// AvroHandler is the binary-serialized variant: tables round-trip
// through Avro object container files with cell kinds preserved.
type AvroHandler struct {
	fio io.FileIO
}

// NewAvroHandler creates an Avro handler over the given FileIO. A nil
// FileIO means the local filesystem.
func NewAvroHandler(fio io.FileIO) *AvroHandler {
	return &AvroHandler{fio: orLocal(fio)}
}

// Load reads one or more same-schema Avro container files.
func (h *AvroHandler) Load(ctx context.Context, paths ...string) ([][]cell.Value, error) {
	return loadMerged(ctx, h.loadOne, paths)
}

func (h *AvroHandler) loadOne(ctx context.Context, path string) ([][]cell.Value, error) {
	r, err := h.fio.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer r.Close()

	ocf, err := goavro.NewOCFReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create OCF reader for %s: %w", path, err)
	}

	var rows [][]cell.Value
	for ocf.Scan() {
		datum, err := ocf.Read()
		if err != nil {
			return nil, fmt.Errorf("failed to read row from %s: %w", path, err)
		}

		record, ok := datum.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected record type in %s: %T", path, datum)
		}
		cells, ok := record["cells"].([]any)
		if !ok {
			return nil, fmt.Errorf("unexpected cells type in %s: %T", path, record["cells"])
		}

		row := make([]cell.Value, len(cells))
		for i, c := range cells {
			v, err := decodeUnion(c)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := ocf.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	return rows, nil
}

// decodeUnion converts a goavro union datum back to a cell value.
func decodeUnion(datum any) (cell.Value, error) {
	m, ok := datum.(map[string]any)
	if !ok {
		return cell.Value{}, fmt.Errorf("unexpected cell type: %T", datum)
	}

	for name, v := range m {
		switch name {
		case "long":
			return cell.Int(v.(int64)), nil
		case "double":
			return cell.Float(v.(float64)), nil
		case "boolean":
			return cell.Bool(v.(bool)), nil
		case "string":
			return cell.String(v.(string)), nil
		}
	}
	return cell.Value{}, fmt.Errorf("unexpected cell union: %v", m)
}

// encodeUnion converts a cell value to a goavro union datum.
func encodeUnion(v cell.Value) any {
	switch v.Kind() {
	case cell.KindInt:
		return goavro.Union("long", v.Int64())
	case cell.KindFloat:
		return goavro.Union("double", v.Float64())
	case cell.KindBool:
		return goavro.Union("boolean", v.Boolean())
	default:
		return goavro.Union("string", v.Text())
	}
}

// Save writes rows to path, chunked when maxRows is exceeded.
func (h *AvroHandler) Save(ctx context.Context, rows [][]cell.Value, path string, maxRows int) error {
	return saveChunked(ctx, rows, path, maxRows, h.saveOne)
}

func (h *AvroHandler) saveOne(ctx context.Context, rows [][]cell.Value, path string) error {
	codec, err := goavro.NewCodec(avroRowSchema)
	if err != nil {
		return fmt.Errorf("failed to create avro codec: %w", err)
	}

	buf := new(bytes.Buffer)
	ocf, err := goavro.NewOCFWriter(goavro.OCFConfig{
		W:               buf,
		Codec:           codec,
		CompressionName: "deflate",
	})
	if err != nil {
		return fmt.Errorf("failed to create OCF writer: %w", err)
	}

	for _, row := range rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = encodeUnion(v)
		}
		if err := ocf.Append([]any{map[string]any{"cells": cells}}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return writeFile(ctx, h.fio, path, func(w stdio.Writer) error {
		_, err := w.Write(buf.Bytes())
		return err
	})
}
