// Package service owns the shorten pipeline: normalize the raw URL,
// short-circuit on an existing record, pick a free key against a bulk
// snapshot of used keys, and persist. Storage uniqueness is the final
// authority; a lost insert race is resolved by re-reading, not by
// locking around the probe sequence.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ykarpenko/urlkeys/internal/keygen"
	"github.com/ykarpenko/urlkeys/internal/normalizer"
	"github.com/ykarpenko/urlkeys/internal/storage"
)

type URLService struct {
	repository storage.StorageI
	logger     *zap.Logger
}

func NewURL(repo storage.StorageI, logger *zap.Logger) *URLService {
	return &URLService{
		repository: repo,
		logger:     logger,
	}
}

// CreateURLRecord shortens a raw URL. Normalization errors abort the
// pipeline unpersisted; they are data problems and never retried.
// When the canonical URL is already stored the existing record is
// returned with created=false and no key generation runs.
func (s *URLService) CreateURLRecord(ctx context.Context, rawURL string) (*storage.URLRecord, bool, error) {
	canonical, err := normalizer.Normalize(rawURL)
	if err != nil {
		return nil, false, err
	}

	if existing, err := s.repository.FindByOriginal(ctx, canonical); err == nil {
		return &existing, false, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, false, err
	}

	isCollision, err := s.collisionOracle(ctx)
	if err != nil {
		return nil, false, err
	}

	short, err := keygen.Generate(canonical, isCollision)
	if err != nil {
		return nil, false, err
	}

	record := storage.URLRecord{
		ID:       uuid.NewString(),
		Original: canonical,
		Short:    short,
	}

	stored, err := s.repository.Insert(ctx, record)
	if errors.Is(err, storage.ErrConflict) {
		// A concurrent writer won the race. Re-read once: if the
		// canonical URL is there, return the winner; otherwise only
		// the key collided and the conflict is surfaced.
		s.logger.Info("insert conflict, re-reading", zap.String("canonical", canonical))

		winner, rerr := s.repository.FindByOriginal(ctx, canonical)
		if rerr == nil {
			return &winner, false, nil
		}
		return nil, false, fmt.Errorf("short key %q taken concurrently: %w", short, storage.ErrConflict)
	}
	if err != nil {
		return nil, false, err
	}

	return &stored, true, nil
}

// collisionOracle snapshots the used keys of both candidate lengths in
// bulk, so probing never costs a storage round trip per attempt.
func (s *URLService) collisionOracle(ctx context.Context) (keygen.CollisionFunc, error) {
	used := make(map[string]struct{})
	for _, length := range []int{keygen.ShortLen, keygen.LongLen} {
		keys, err := s.repository.KeysOfLength(ctx, length)
		if err != nil {
			return nil, fmt.Errorf("failed to snapshot keys of length %d: %w", length, err)
		}
		for k := range keys {
			used[k] = struct{}{}
		}
	}

	return func(key string) bool {
		_, taken := used[key]
		return taken
	}, nil
}

// GetURLByShort resolves a short key to its record.
func (s *URLService) GetURLByShort(ctx context.Context, short string) (*storage.URLRecord, error) {
	record, err := s.repository.FindByShort(ctx, short)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *URLService) PingContext(ctx context.Context) error {
	return s.repository.PingContext(ctx)
}
