package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrijs2005/postboard/internal/config"
	"github.com/dmitrijs2005/postboard/internal/store"
	"github.com/dmitrijs2005/postboard/internal/store/badger"
	"github.com/dmitrijs2005/postboard/internal/store/memory"
	"github.com/dmitrijs2005/postboard/internal/store/postgres"
	"github.com/dmitrijs2005/postboard/internal/store/s3"
	"github.com/dmitrijs2005/postboard/internal/store/sqlite"
)

// openStore opens the durable store selected by cfg.StorageDriver.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	s, err := openDriver(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StorageDriver, err)
	}
	return s, nil
}

// opened keeps a typed nil out of the store.Store interface.
func opened[S store.Store](s S, err error) (store.Store, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openDriver(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		return opened(sqlite.Open(ctx, cfg.SQLitePath))
	case config.DriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, errors.New("DSN is required")
		}
		return opened(postgres.Open(ctx, cfg.PostgresDSN))
	case config.DriverBadger:
		return opened(badger.Open(badger.Config{Path: cfg.BadgerDir, SyncWrites: true, Logger: logger}))
	case config.DriverS3:
		return opened(s3.Open(ctx, s3.Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3User,
			SecretKey: cfg.S3Password,
			Prefix:    cfg.S3Prefix,
		}))
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
