package storage

import "context"

// StorageI is the durable unique-key lookup capability the service
// builds on. Insert is the single source of truth for uniqueness:
// callers treat ErrConflict as authoritative evidence of a race.
type StorageI interface {
	// FindByOriginal looks up a record by canonical URL.
	FindByOriginal(ctx context.Context, original string) (URLRecord, error)

	// FindByShort looks up a record by short key.
	FindByShort(ctx context.Context, short string) (URLRecord, error)

	// KeysOfLength returns every stored key of the given length as a
	// single bulk snapshot for collision probing.
	KeysOfLength(ctx context.Context, length int) (map[string]struct{}, error)

	// Insert writes a new record. It fails with ErrConflict if either
	// the canonical URL or the short key is already present.
	Insert(ctx context.Context, record URLRecord) (URLRecord, error)

	// PingContext reports storage health.
	PingContext(ctx context.Context) error
}
