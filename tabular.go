package gotabular

import (
	"context"
	"fmt"

	"github.com/go-tabular/go-tabular/format"
	"github.com/go-tabular/go-tabular/io"
	"github.com/go-tabular/go-tabular/table"
)

// Format identifies a storage adapter.
type Format string

const (
	// FormatCSV is comma-separated values.
	FormatCSV Format = "csv"
	// FormatAvro is the binary-serialized Avro container format.
	FormatAvro Format = "avro"
	// FormatParquet is columnar Parquet storage.
	FormatParquet Format = "parquet"
	// FormatText is the write-only column-aligned report format.
	FormatText Format = "text"
)

// Client is the main entry point for go-tabular operations.
type Client struct {
	config *Config
	io     io.FileIO
}

// NewClient creates a new go-tabular client with the given
// configuration.
func NewClient(ctx context.Context, opts ...Option) (*Client, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	fileIO, err := createFileIO(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create file IO: %w", err)
	}

	return &Client{
		config: config,
		io:     fileIO,
	}, nil
}

// createFileIO creates a file IO based on the configuration.
func createFileIO(ctx context.Context, config *Config) (io.FileIO, error) {
	switch config.StorageType {
	case StorageS3:
		if config.S3Config == nil {
			return nil, fmt.Errorf("%w: S3 storage requires an S3Config", ErrInvalidConfig)
		}
		return io.NewS3FileIO(ctx, &io.S3Config{
			Region:          config.S3Config.Region,
			Endpoint:        config.S3Config.Endpoint,
			AccessKeyID:     config.S3Config.AccessKeyID,
			SecretAccessKey: config.S3Config.SecretAccessKey,
			SessionToken:    config.S3Config.SessionToken,
			ForcePathStyle:  config.S3Config.ForcePathStyle,
		})
	case StorageLocal:
		return io.NewLocalFileIO(), nil
	default:
		// Default to local if not specified
		return io.NewLocalFileIO(), nil
	}
}

// Config returns the client configuration.
func (c *Client) Config() *Config {
	return c.config
}

// FileIO returns the file I/O handler.
func (c *Client) FileIO() io.FileIO {
	return c.io
}

// Handler returns the storage adapter for a format.
func (c *Client) Handler(f Format) (table.Handler, error) {
	switch f {
	case FormatCSV:
		return format.NewCSVHandler(c.io), nil
	case FormatAvro:
		return format.NewAvroHandler(c.io), nil
	case FormatParquet:
		return format.NewParquetHandler(c.io), nil
	case FormatText:
		return format.NewTextHandler(c.io), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// LoadTable reads one or more same-schema sources into a new table.
func (c *Client) LoadTable(ctx context.Context, f Format, paths ...string) (*table.Table, error) {
	h, err := c.Handler(f)
	if err != nil {
		return nil, err
	}

	tbl := table.New()
	if err := tbl.Load(ctx, h, paths...); err != nil {
		return nil, fmt.Errorf("failed to load table: %w", err)
	}
	return tbl, nil
}

// SaveTable writes a table to path in the given format.
func (c *Client) SaveTable(ctx context.Context, tbl *table.Table, f Format, path string, opts ...table.SaveOption) error {
	h, err := c.Handler(f)
	if err != nil {
		return err
	}

	if err := tbl.Save(ctx, h, path, opts...); err != nil {
		return fmt.Errorf("failed to save table: %w", err)
	}
	return nil
}
