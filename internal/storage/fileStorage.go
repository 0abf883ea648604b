package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileStorage is a MemoryStorage backed by a JSON-lines append log.
// The log is replayed on startup, so the in-memory maps always hold
// the full record set and reads never touch the file.
type FileStorage struct {
	*MemoryStorage
	file   *os.File
	logger *zap.Logger
}

func NewFileStorage(path string, logger *zap.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		return nil, fmt.Errorf("failed to create storage dir for %s: %w", path, err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0660)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	mem, err := CreateMemoryStorage()
	if err != nil {
		return nil, err
	}

	fs := &FileStorage{
		MemoryStorage: mem,
		file:          file,
		logger:        logger,
	}

	if err := fs.load(); err != nil {
		file.Close()
		return nil, err
	}
	return fs, nil
}

func (fs *FileStorage) load() error {
	scanner := bufio.NewScanner(fs.file)
	for scanner.Scan() {
		line := scanner.Bytes()

		var rec URLRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return fmt.Errorf("failed to parse %s: %w", string(line), err)
		}
		if _, err := fs.MemoryStorage.Insert(context.Background(), rec); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (fs *FileStorage) Insert(ctx context.Context, record URLRecord) (URLRecord, error) {
	stored, err := fs.MemoryStorage.Insert(ctx, record)
	if err != nil {
		return URLRecord{}, err
	}

	b, err := json.Marshal(stored)
	if err != nil {
		return URLRecord{}, err
	}
	if _, err := fs.file.Write(append(b, '\n')); err != nil {
		fs.logger.Error("failed to append record", zap.String("short", stored.Short), zap.Error(err))
		return URLRecord{}, err
	}
	return stored, nil
}

func (fs *FileStorage) Close() error {
	return fs.file.Close()
}
