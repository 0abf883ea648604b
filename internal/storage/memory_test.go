package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_InsertAndFind(t *testing.T) {
	m, err := CreateMemoryStorage()
	require.NoError(t, err)

	ctx := context.Background()
	rec := URLRecord{ID: "id-1", Original: "http://example.com", Short: "abc123"}

	stored, err := m.Insert(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, rec, stored)

	byOriginal, err := m.FindByOriginal(ctx, "http://example.com")
	require.NoError(t, err)
	assert.Equal(t, rec, byOriginal)

	byShort, err := m.FindByShort(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, rec, byShort)
}

func TestMemoryStorage_NotFound(t *testing.T) {
	m, _ := CreateMemoryStorage()
	ctx := context.Background()

	_, err := m.FindByOriginal(ctx, "http://missing.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.FindByShort(ctx, "nosuch")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStorage_ConflictOnEitherColumn(t *testing.T) {
	m, _ := CreateMemoryStorage()
	ctx := context.Background()

	_, err := m.Insert(ctx, URLRecord{ID: "id-1", Original: "http://example.com", Short: "abc123"})
	require.NoError(t, err)

	_, err = m.Insert(ctx, URLRecord{ID: "id-2", Original: "http://example.com", Short: "zzz999"})
	assert.ErrorIs(t, err, ErrConflict, "duplicate canonical URL")

	_, err = m.Insert(ctx, URLRecord{ID: "id-3", Original: "http://other.com", Short: "abc123"})
	assert.ErrorIs(t, err, ErrConflict, "duplicate short key")
}

func TestMemoryStorage_KeysOfLength(t *testing.T) {
	m, _ := CreateMemoryStorage()
	ctx := context.Background()

	records := []URLRecord{
		{ID: "1", Original: "http://a.com", Short: "aaaaaa"},
		{ID: "2", Original: "http://b.com", Short: "bbbbbb"},
		{ID: "3", Original: "http://c.com", Short: "cccccccc"},
	}
	for _, r := range records {
		_, err := m.Insert(ctx, r)
		require.NoError(t, err)
	}

	short, err := m.KeysOfLength(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"aaaaaa": {}, "bbbbbb": {}}, short)

	long, err := m.KeysOfLength(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"cccccccc": {}}, long)
}
