package gotabular

// StorageType represents supported storage backends.
type StorageType string

const (
	// StorageLocal represents local filesystem storage.
	StorageLocal StorageType = "local"
	// StorageS3 represents Amazon S3 storage.
	StorageS3 StorageType = "s3"
)

// Config holds the client configuration.
type Config struct {
	StorageType StorageType
	S3Config    *S3Config
	LocalConfig *LocalConfig
}

// S3Config holds S3-specific configuration.
type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Endpoint        string // For MinIO, LocalStack, etc.
	ForcePathStyle  bool
}

// LocalConfig holds local filesystem configuration.
type LocalConfig struct {
	BasePath string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		StorageType: StorageLocal,
	}
}

// Option is a functional option for client configuration.
type Option func(*Config)

// WithS3 configures the S3 storage backend.
func WithS3(cfg *S3Config) Option {
	return func(c *Config) {
		c.StorageType = StorageS3
		c.S3Config = cfg
	}
}

// WithLocalStorage configures local filesystem storage.
func WithLocalStorage(basePath string) Option {
	return func(c *Config) {
		c.StorageType = StorageLocal
		c.LocalConfig = &LocalConfig{BasePath: basePath}
	}
}
