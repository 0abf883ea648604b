package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ykarpenko/urlkeys/internal/storage"
)

// Helper to set up a mock DB and repository
func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *URLRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := CreateURLRepository(db, zap.NewNop())
	return db, mock, repo
}

func TestInsert(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	record := storage.URLRecord{
		ID:       "4e1243bd-22c6-6b65-1a1e-6f8a68c3d6c1",
		Original: "http://example.com",
		Short:    "abc123",
	}

	mock.ExpectExec(`INSERT INTO url_records`).
		WithArgs(record.ID, record.Original, record.Short).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := repo.Insert(context.Background(), record)

	assert.NoError(t, err)
	assert.Equal(t, record, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertConflict(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	record := storage.URLRecord{
		ID:       "4e1243bd-22c6-6b65-1a1e-6f8a68c3d6c1",
		Original: "http://example.com",
		Short:    "abc123",
	}

	mock.ExpectExec(`INSERT INTO url_records`).
		WithArgs(record.ID, record.Original, record.Short).
		WillReturnError(&pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			ConstraintName: "url_records_original_url_key",
		})

	_, err := repo.Insert(context.Background(), record)

	assert.ErrorIs(t, err, storage.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByOriginal(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(`SELECT id, original_url, short_url FROM url_records WHERE original_url`).
		WithArgs("http://example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "original_url", "short_url"}).
			AddRow("id-1", "http://example.com", "abc123"))

	rec, err := repo.FindByOriginal(context.Background(), "http://example.com")

	require.NoError(t, err)
	assert.Equal(t, "abc123", rec.Short)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByShortNotFound(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(`SELECT id, original_url, short_url FROM url_records WHERE short_url`).
		WithArgs("nosuch").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByShort(context.Background(), "nosuch")

	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeysOfLength(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(`SELECT short_url FROM url_records WHERE char_length`).
		WithArgs(6).
		WillReturnRows(sqlmock.NewRows([]string{"short_url"}).
			AddRow("aaaaaa").
			AddRow("bbbbbb"))

	keys, err := repo.KeysOfLength(context.Background(), 6)

	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"aaaaaa": {}, "bbbbbb": {}}, keys)
	assert.NoError(t, mock.ExpectationsWereMet())
}
