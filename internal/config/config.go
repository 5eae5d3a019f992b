package config

// Storage drivers understood by the CLI.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverBadger   = "badger"
	DriverS3       = "s3"
	DriverMemory   = "memory"
)

// Config holds runtime settings for the postboard CLI.
//
// Only the location fields of the selected StorageDriver are used.
type Config struct {
	StorageDriver string

	SQLitePath  string
	PostgresDSN string
	BadgerDir   string

	S3Bucket   string
	S3Region   string
	S3Endpoint string
	S3User     string
	S3Password string
	S3Prefix   string

	LogLevel        string
	CredentialsMode string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageDriver = DriverSQLite
	c.SQLitePath = "data/postboard.db"
	c.BadgerDir = "data/badger"
	c.S3Region = "us-east-1"
	c.S3Prefix = "postboard/"
	c.LogLevel = "info"
	c.CredentialsMode = "plain"
}

// SetLocation points the selected driver at loc: a file path for sqlite, a
// DSN for postgres, a directory for badger and a bucket for s3.
func (c *Config) SetLocation(loc string) {
	switch c.StorageDriver {
	case DriverSQLite:
		c.SQLitePath = loc
	case DriverPostgres:
		c.PostgresDSN = loc
	case DriverBadger:
		c.BadgerDir = loc
	case DriverS3:
		c.S3Bucket = loc
	}
}

// Location is the inverse of SetLocation.
func (c *Config) Location() string {
	switch c.StorageDriver {
	case DriverSQLite:
		return c.SQLitePath
	case DriverPostgres:
		return c.PostgresDSN
	case DriverBadger:
		return c.BadgerDir
	case DriverS3:
		return c.S3Bucket
	}
	return ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if given) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
