// Package store is the durable key/value layer under postboard's domain
// state. Values are JSON documents addressed by a fixed key.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/postboard/internal/common"
)

// Store is an opaque durable key/value medium.
//
// Get returns (nil, nil) when the key has never been written. Set
// overwrites any prior value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Entry is one key/value pair of a batch write.
type Entry struct {
	Key   string
	Value []byte
}

// Batcher is implemented by stores that can write several entries in a
// single transaction.
type Batcher interface {
	SetAll(ctx context.Context, entries []Entry) error
}

// GetJSON decodes the value under key into a T, or returns fallback when
// the key is absent or empty.
func GetJSON[T any](ctx context.Context, s Store, key string, fallback T) (T, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return fallback, fmt.Errorf("get %s: %w", key, err)
	}
	if len(raw) == 0 {
		return fallback, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback, fmt.Errorf("decode %s: %w: %v", key, common.ErrCorruptedData, err)
	}
	return v, nil
}

// JSONEntry encodes v as a batch entry.
func JSONEntry(key string, v any) (Entry, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Entry{}, fmt.Errorf("encode %s: %w", key, err)
	}
	return Entry{Key: key, Value: raw}, nil
}

// Persist writes entries in order, in one transaction when s is a Batcher.
func Persist(ctx context.Context, s Store, entries ...Entry) error {
	if b, ok := s.(Batcher); ok {
		return b.SetAll(ctx, entries)
	}
	for _, e := range entries {
		if err := s.Set(ctx, e.Key, e.Value); err != nil {
			return fmt.Errorf("set %s: %w", e.Key, err)
		}
	}
	return nil
}
