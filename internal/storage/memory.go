package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStorage keeps records in two mutex-guarded maps, one per
// lookup direction.
type MemoryStorage struct {
	mu   sync.RWMutex
	ltos map[string]URLRecord // canonical URL -> record
	stol map[string]URLRecord // short key -> record
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		ltos: make(map[string]URLRecord),
		stol: make(map[string]URLRecord),
	}, nil
}

func (m *MemoryStorage) FindByOriginal(_ context.Context, original string) (URLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if r, exists := m.ltos[original]; exists {
		return r, nil
	}
	return URLRecord{}, fmt.Errorf("original %q: %w", original, ErrNotFound)
}

func (m *MemoryStorage) FindByShort(_ context.Context, short string) (URLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if r, exists := m.stol[short]; exists {
		return r, nil
	}
	return URLRecord{}, fmt.Errorf("short %q: %w", short, ErrNotFound)
}

func (m *MemoryStorage) KeysOfLength(_ context.Context, length int) (map[string]struct{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make(map[string]struct{})
	for short := range m.stol {
		if len(short) == length {
			keys[short] = struct{}{}
		}
	}
	return keys, nil
}

func (m *MemoryStorage) Insert(_ context.Context, record URLRecord) (URLRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.ltos[record.Original]; exists {
		return URLRecord{}, fmt.Errorf("original %q already stored: %w", record.Original, ErrConflict)
	}
	if _, exists := m.stol[record.Short]; exists {
		return URLRecord{}, fmt.Errorf("short %q already stored: %w", record.Short, ErrConflict)
	}

	m.ltos[record.Original] = record
	m.stol[record.Short] = record
	return record, nil
}

func (m *MemoryStorage) PingContext(_ context.Context) error {
	return nil
}
