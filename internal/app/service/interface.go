package service

import (
	"context"

	"github.com/ykarpenko/urlkeys/internal/storage"
)

// URLServiceIface is what the HTTP layer sees. The created flag on
// CreateURLRecord distinguishes a fresh record from a pre-existing one
// for the same canonical URL.
type URLServiceIface interface {
	CreateURLRecord(ctx context.Context, rawURL string) (record *storage.URLRecord, created bool, err error)
	GetURLByShort(ctx context.Context, short string) (*storage.URLRecord, error)
	PingContext(ctx context.Context) error
}
