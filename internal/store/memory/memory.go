// Package memory is a process-local Store. Nothing survives a restart; it
// backs tests and the "memory" storage driver.
package memory

import (
	"context"
	"sync"
)

type Store struct {
	mu     sync.RWMutex
	data   map[string][]byte
	writes []string
}

func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), value...)
	s.writes = append(s.writes, key)
	return nil
}

// Writes returns the keys written so far, in write order.
func (s *Store) Writes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.writes...)
}

func (s *Store) Close() error { return nil }
