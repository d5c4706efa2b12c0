package service

import (
	"context"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/spec-kit/campaign-service/internal/domain"
	"github.com/spec-kit/campaign-service/internal/repository"
	apperrors "github.com/spec-kit/campaign-service/pkg/util"
)

// ImageStore persists file bytes under a key and returns a public URL.
type ImageStore interface {
	Save(ctx context.Context, key string, r io.Reader) (string, error)
}

// ImageService handles image uploads: bytes to the store, metadata to the
// database.
type ImageService struct {
	images   repository.ImageRepository
	store    ImageStore
	maxBytes int64
}

// NewImageService builds the service.
func NewImageService(images repository.ImageRepository, store ImageStore, maxSizeMB int) *ImageService {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	return &ImageService{images: images, store: store, maxBytes: int64(maxSizeMB) << 20}
}

// Upload stores the file and records its metadata.
func (s *ImageService) Upload(ctx context.Context, ownerID int64, filename, contentType string, size int64, r io.Reader) (*domain.Image, error) {
	if size <= 0 || size > s.maxBytes {
		return nil, apperrors.NewValidationError("file size out of range", map[string]any{"max_bytes": s.maxBytes})
	}

	key := uuid.NewString() + filepath.Ext(filename)
	url, err := s.store.Save(ctx, key, io.LimitReader(r, s.maxBytes))
	if err != nil {
		return nil, err
	}

	image := &domain.Image{
		OwnerID:     ownerID,
		Key:         key,
		URL:         url,
		ContentType: contentType,
		SizeBytes:   size,
	}
	if err := s.images.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}
