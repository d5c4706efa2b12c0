package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/campaign-service/internal/domain"
)

// ImageRepository defines persistence access for uploaded image metadata.
type ImageRepository interface {
	Create(ctx context.Context, image *domain.Image) error
	GetByID(ctx context.Context, id int64) (*domain.Image, error)
}

type imageRepository struct {
	pool *pgxpool.Pool
}

// NewImageRepository returns a Postgres-backed implementation.
func NewImageRepository(pool *pgxpool.Pool) ImageRepository {
	return &imageRepository{pool: pool}
}

func (r *imageRepository) Create(ctx context.Context, image *domain.Image) error {
	const query = `
        INSERT INTO images (owner_id, key, url, content_type, size_bytes)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		image.OwnerID,
		image.Key,
		image.URL,
		image.ContentType,
		image.SizeBytes,
	).Scan(&image.ID, &image.CreatedAt)
}

func (r *imageRepository) GetByID(ctx context.Context, id int64) (*domain.Image, error) {
	const query = `
        SELECT id, owner_id, key, url, content_type, size_bytes, created_at
        FROM images WHERE id=$1`

	var image domain.Image
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&image.ID,
		&image.OwnerID,
		&image.Key,
		&image.URL,
		&image.ContentType,
		&image.SizeBytes,
		&image.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &image, nil
}
