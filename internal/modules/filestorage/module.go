package filestorage

import (
	"context"
	"fmt"

	"github.com/Nexora712/linkbio-backend/internal/modules/filestorage/application"
	"github.com/Nexora712/linkbio-backend/internal/modules/filestorage/domain"
	"github.com/Nexora712/linkbio-backend/internal/modules/filestorage/infrastructure/local"
	"github.com/Nexora712/linkbio-backend/internal/modules/filestorage/infrastructure/s3"
	"github.com/Nexora712/linkbio-backend/internal/shared/infrastructure/config"
)

// Module wires avatar storage to an S3 bucket or the local filesystem.
type Module struct {
	service *application.AvatarService
	store   domain.BlobStore
}

// NewModule selects the storage backend from configuration.
func NewModule(ctx context.Context, cfg config.FileStorageConfig) (*Module, error) {
	var store domain.BlobStore
	var err error

	if cfg.UseS3 {
		store, err = s3.NewS3Storage(ctx, s3.S3Config{
			BucketName:     cfg.S3BucketName,
			Region:         cfg.S3Region,
			Endpoint:       cfg.S3Endpoint,
			PublicEndpoint: cfg.S3PublicEndpoint,
			AccessKey:      cfg.S3AccessKey,
			SecretKey:      cfg.S3SecretKey,
			UseSSL:         cfg.S3UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
	} else {
		store, err = local.NewLocalStorage(cfg.LocalPath, cfg.LocalBaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
	}

	return &Module{
		service: application.NewAvatarService(store),
		store:   store,
	}, nil
}

// Service returns the avatar service for use by other modules.
func (m *Module) Service() *application.AvatarService {
	return m.service
}

// LocalPathConfigured reports whether the local backend is serving files,
// which tells the gateway to mount the /uploads/ static route.
func (m *Module) LocalPathConfigured() bool {
	_, ok := m.store.(*local.LocalStorage)
	return ok
}
