package storage

import "errors"

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when an insert loses to an existing record
	// holding the same canonical URL or the same short key.
	ErrConflict = errors.New("data conflict")
)

// URLRecord pairs one canonical URL with one short key. Records are
// created once and never updated.
type URLRecord struct {
	ID       string `json:"uuid"`
	Original string `json:"original_url"`
	Short    string `json:"short_url"`
}
