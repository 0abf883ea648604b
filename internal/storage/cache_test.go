package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStorage counts FindByShort calls that reach the inner store.
type countingStorage struct {
	*MemoryStorage
	mu    sync.Mutex
	reads int
}

func (c *countingStorage) FindByShort(ctx context.Context, short string) (URLRecord, error) {
	c.mu.Lock()
	c.reads++
	c.mu.Unlock()
	return c.MemoryStorage.FindByShort(ctx, short)
}

func TestCachedStorage_CachesHits(t *testing.T) {
	mem, _ := CreateMemoryStorage()
	inner := &countingStorage{MemoryStorage: mem}
	cached := NewCachedStorage(inner)

	ctx := context.Background()
	rec := URLRecord{ID: "id-1", Original: "http://example.com", Short: "abc123"}
	_, err := cached.Insert(ctx, rec)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		found, err := cached.FindByShort(ctx, "abc123")
		require.NoError(t, err)
		assert.Equal(t, rec, found)
	}
	assert.Equal(t, 1, inner.reads, "only the first lookup should reach the store")
}

func TestCachedStorage_DoesNotCacheMisses(t *testing.T) {
	mem, _ := CreateMemoryStorage()
	inner := &countingStorage{MemoryStorage: mem}
	cached := NewCachedStorage(inner)

	ctx := context.Background()

	_, err := cached.FindByShort(ctx, "abc123")
	assert.ErrorIs(t, err, ErrNotFound)

	rec := URLRecord{ID: "id-1", Original: "http://example.com", Short: "abc123"}
	_, err = cached.Insert(ctx, rec)
	require.NoError(t, err)

	found, err := cached.FindByShort(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, rec, found, "a key inserted after a miss must be visible")
}
