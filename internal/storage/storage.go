package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/BerylCAtieno/resume-autofill-api/internal/config"
)

var ErrObjectNotFound = errors.New("object not found")

// Storage keeps uploaded resume files.
type Storage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// New returns the Storage selected by cfg.StorageBackend.
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		return NewMemoryStorage(), nil
	case config.StorageS3, "":
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
