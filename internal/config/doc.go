// Package config loads runtime configuration for the postboard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. Files ending in
//     .yaml or .yml are YAML; anything else is JSON, with comments and
//     trailing commas allowed.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   storage driver: sqlite, postgres, badger, s3, memory
//	-d string   location for the driver: file, DSN, directory or bucket
//	-l string   log level: debug, info, warn, error
//	-p string   credentials mode: plain, bcrypt
//
// # File schema
//
//	{
//	  // storage
//	  "storage_driver": "sqlite",
//	  "sqlite_path": "data/postboard.db",
//	  "postgres_dsn": "postgres://localhost:5432/postboard?sslmode=disable",
//	  "badger_dir": "data/badger",
//	  "s3": {"bucket": "board", "region": "us-east-1", "endpoint": "http://localhost:9000",
//	         "user": "minio", "password": "minio123", "prefix": "postboard/"},
//	  "log_level": "info",
//	  "credentials": "plain",
//	}
//
// Keys missing from the file keep their previous value.
package config
