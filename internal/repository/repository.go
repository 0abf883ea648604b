// Package repository implements the storage contract on PostgreSQL
// through the pgx stdlib driver. Uniqueness of both the canonical URL
// and the short key is enforced by the database, and unique violations
// are mapped to storage.ErrConflict for the service to resolve.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/ykarpenko/urlkeys/internal/storage"
)

const createTable = `
	CREATE TABLE IF NOT EXISTS url_records (
		id UUID PRIMARY KEY,
		original_url TEXT UNIQUE NOT NULL,
		short_url TEXT UNIQUE NOT NULL
	);`

// InitDB opens a pgx connection pool and makes sure the table exists.
func InitDB(dsn string, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	if _, err := db.Exec(createTable); err != nil {
		return nil, fmt.Errorf("failed to create url_records: %w", err)
	}

	logger.Info("database connected and table ready")
	return db, nil
}

type URLRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func CreateURLRepository(db *sql.DB, logger *zap.Logger) *URLRepository {
	return &URLRepository{
		db:     db,
		logger: logger,
	}
}

func (r *URLRepository) Insert(ctx context.Context, v storage.URLRecord) (storage.URLRecord, error) {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO url_records(id, original_url, short_url) VALUES ($1, $2, $3);",
		v.ID, v.Original, v.Short,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			r.logger.Info("insert lost a uniqueness race",
				zap.String("short", v.Short),
				zap.String("constraint", pgErr.ConstraintName),
			)
			return storage.URLRecord{}, fmt.Errorf("%s: %w", pgErr.ConstraintName, storage.ErrConflict)
		}
		return storage.URLRecord{}, fmt.Errorf("failed to insert record: %w", err)
	}

	return v, nil
}

func (r *URLRepository) FindByOriginal(ctx context.Context, original string) (storage.URLRecord, error) {
	return r.findBy(ctx, "SELECT id, original_url, short_url FROM url_records WHERE original_url = $1;", original)
}

func (r *URLRepository) FindByShort(ctx context.Context, short string) (storage.URLRecord, error) {
	return r.findBy(ctx, "SELECT id, original_url, short_url FROM url_records WHERE short_url = $1;", short)
}

func (r *URLRepository) findBy(ctx context.Context, query, arg string) (storage.URLRecord, error) {
	row := r.db.QueryRowContext(ctx, query, arg)

	var rec storage.URLRecord
	err := row.Scan(&rec.ID, &rec.Original, &rec.Short)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.URLRecord{}, fmt.Errorf("%q: %w", arg, storage.ErrNotFound)
	}
	if err != nil {
		return storage.URLRecord{}, fmt.Errorf("failed to scan record: %w", err)
	}
	return rec, nil
}

func (r *URLRepository) KeysOfLength(ctx context.Context, length int) (map[string]struct{}, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT short_url FROM url_records WHERE char_length(short_url) = $1;", length)
	if err != nil {
		return nil, fmt.Errorf("failed to select keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]struct{})
	for rows.Next() {
		var short string
		if err := rows.Scan(&short); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys[short] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *URLRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
