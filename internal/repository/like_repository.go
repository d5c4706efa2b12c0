package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LikeRepository defines persistence access for campaign likes.
type LikeRepository interface {
	Add(ctx context.Context, campaignID, userID int64) error
	Remove(ctx context.Context, campaignID, userID int64) error
	Exists(ctx context.Context, campaignID, userID int64) (bool, error)
	Count(ctx context.Context, campaignID int64) (int64, error)
}

type likeRepository struct {
	pool *pgxpool.Pool
}

// NewLikeRepository returns a Postgres-backed implementation.
func NewLikeRepository(pool *pgxpool.Pool) LikeRepository {
	return &likeRepository{pool: pool}
}

func (r *likeRepository) Add(ctx context.Context, campaignID, userID int64) error {
	const query = `
        INSERT INTO campaign_likes (campaign_id, user_id)
        VALUES ($1, $2)
        ON CONFLICT (campaign_id, user_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, campaignID, userID)
	return err
}

func (r *likeRepository) Remove(ctx context.Context, campaignID, userID int64) error {
	const query = `DELETE FROM campaign_likes WHERE campaign_id=$1 AND user_id=$2`

	_, err := r.pool.Exec(ctx, query, campaignID, userID)
	return err
}

func (r *likeRepository) Exists(ctx context.Context, campaignID, userID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM campaign_likes WHERE campaign_id=$1 AND user_id=$2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, campaignID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *likeRepository) Count(ctx context.Context, campaignID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM campaign_likes WHERE campaign_id=$1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, campaignID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
