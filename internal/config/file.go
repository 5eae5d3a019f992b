package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/postboard/internal/flagx"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for decoding the config file.
// Pointer fields tell "absent" apart from "empty".
type FileConfig struct {
	StorageDriver   *string `json:"storage_driver" yaml:"storage_driver"`
	SQLitePath      *string `json:"sqlite_path" yaml:"sqlite_path"`
	PostgresDSN     *string `json:"postgres_dsn" yaml:"postgres_dsn"`
	BadgerDir       *string `json:"badger_dir" yaml:"badger_dir"`
	S3              *FileS3 `json:"s3" yaml:"s3"`
	LogLevel        *string `json:"log_level" yaml:"log_level"`
	CredentialsMode *string `json:"credentials" yaml:"credentials"`
}

type FileS3 struct {
	Bucket   *string `json:"bucket" yaml:"bucket"`
	Region   *string `json:"region" yaml:"region"`
	Endpoint *string `json:"endpoint" yaml:"endpoint"`
	User     *string `json:"user" yaml:"user"`
	Password *string `json:"password" yaml:"password"`
	Prefix   *string `json:"prefix" yaml:"prefix"`
}

// parseFile overlays cfg with the file named by -c/-config. It panics on
// read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc, err := decodeFile(path, data)
	if err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func decodeFile(path string, data []byte) (*FileConfig, error) {
	var fc FileConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &fc); err != nil {
			return nil, err
		}
	}
	return &fc, nil
}

func (fc *FileConfig) apply(cfg *Config) {
	set(&cfg.StorageDriver, fc.StorageDriver)
	set(&cfg.SQLitePath, fc.SQLitePath)
	set(&cfg.PostgresDSN, fc.PostgresDSN)
	set(&cfg.BadgerDir, fc.BadgerDir)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.CredentialsMode, fc.CredentialsMode)

	if s3 := fc.S3; s3 != nil {
		set(&cfg.S3Bucket, s3.Bucket)
		set(&cfg.S3Region, s3.Region)
		set(&cfg.S3Endpoint, s3.Endpoint)
		set(&cfg.S3User, s3.User)
		set(&cfg.S3Password, s3.Password)
		set(&cfg.S3Prefix, s3.Prefix)
	}
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
