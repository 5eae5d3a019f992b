package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/postboard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"memory", config.Config{StorageDriver: config.DriverMemory}},
		{"sqlite", config.Config{StorageDriver: config.DriverSQLite, SQLitePath: filepath.Join(dir, "nested", "board.db")}},
		{"badger", config.Config{StorageDriver: config.DriverBadger, BadgerDir: filepath.Join(dir, "badger")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := openStore(ctx, &tt.cfg, nil)
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })

			require.NoError(t, s.Set(ctx, "users", []byte(`[]`)))
			got, err := s.Get(ctx, "users")
			require.NoError(t, err)
			assert.Equal(t, []byte(`[]`), got)
		})
	}
}

func TestOpenStore_Errors(t *testing.T) {
	ctx := context.Background()

	for _, cfg := range []config.Config{
		{StorageDriver: "floppy"},
		{StorageDriver: config.DriverPostgres},
		{StorageDriver: config.DriverS3},
		{StorageDriver: config.DriverBadger},
	} {
		t.Run(cfg.StorageDriver, func(t *testing.T) {
			s, err := openStore(ctx, &cfg, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "open "+cfg.StorageDriver+" store")
			assert.True(t, s == nil, "no typed nil store on error")
		})
	}
}
