package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/campaign-service/internal/domain"
)

// CampaignFilter narrows campaign listings.
type CampaignFilter struct {
	Category string
	Status   domain.CampaignStatus
	Limit    int
	Offset   int
}

// CampaignRepository defines persistence access for campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	Update(ctx context.Context, campaign *domain.Campaign) error
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
	List(ctx context.Context, filter CampaignFilter) ([]*domain.Campaign, error)
	Progress(ctx context.Context, id int64) (*domain.CampaignProgress, error)
}

type campaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a Postgres-backed implementation.
func NewCampaignRepository(pool *pgxpool.Pool) CampaignRepository {
	return &campaignRepository{pool: pool}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	const query = `
        INSERT INTO campaigns (client_id, title, description, category, recruit_count, apply_start, apply_end, status, image_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		campaign.ClientID,
		campaign.Title,
		campaign.Description,
		campaign.Category,
		campaign.RecruitCount,
		campaign.ApplyStart,
		campaign.ApplyEnd,
		campaign.Status,
		campaign.ImageURL,
	).Scan(&campaign.ID, &campaign.CreatedAt, &campaign.UpdatedAt)
}

func (r *campaignRepository) Update(ctx context.Context, campaign *domain.Campaign) error {
	const query = `
        UPDATE campaigns
        SET title=$1, description=$2, category=$3, recruit_count=$4, apply_start=$5, apply_end=$6, status=$7, image_url=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		campaign.Title,
		campaign.Description,
		campaign.Category,
		campaign.RecruitCount,
		campaign.ApplyStart,
		campaign.ApplyEnd,
		campaign.Status,
		campaign.ImageURL,
		campaign.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	const query = `
        SELECT id, client_id, title, description, category, recruit_count, apply_start, apply_end, status, image_url, created_at, updated_at
        FROM campaigns WHERE id=$1`

	var campaign domain.Campaign
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&campaign.ID,
		&campaign.ClientID,
		&campaign.Title,
		&campaign.Description,
		&campaign.Category,
		&campaign.RecruitCount,
		&campaign.ApplyStart,
		&campaign.ApplyEnd,
		&campaign.Status,
		&campaign.ImageURL,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepository) List(ctx context.Context, filter CampaignFilter) ([]*domain.Campaign, error) {
	const query = `
        SELECT id, client_id, title, description, category, recruit_count, apply_start, apply_end, status, image_url, created_at, updated_at
        FROM campaigns
        WHERE ($1 = '' OR category = $1)
          AND ($2 = '' OR status = $2)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4`

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := r.pool.Query(ctx, query, filter.Category, string(filter.Status), limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0, limit)
	for rows.Next() {
		var campaign domain.Campaign
		if err := rows.Scan(
			&campaign.ID,
			&campaign.ClientID,
			&campaign.Title,
			&campaign.Description,
			&campaign.Category,
			&campaign.RecruitCount,
			&campaign.ApplyStart,
			&campaign.ApplyEnd,
			&campaign.Status,
			&campaign.ImageURL,
			&campaign.CreatedAt,
			&campaign.UpdatedAt,
		); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, &campaign)
	}
	return campaigns, rows.Err()
}

func (r *campaignRepository) Progress(ctx context.Context, id int64) (*domain.CampaignProgress, error) {
	const query = `
        SELECT c.id, c.recruit_count,
               COUNT(a.id) FILTER (WHERE a.status <> 'CANCELLED'),
               COUNT(a.id) FILTER (WHERE a.status = 'SELECTED')
        FROM campaigns c
        LEFT JOIN applications a ON a.campaign_id = c.id
        WHERE c.id=$1
        GROUP BY c.id, c.recruit_count`

	var progress domain.CampaignProgress
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&progress.CampaignID,
		&progress.RecruitCount,
		&progress.Applied,
		&progress.Selected,
	); err != nil {
		return nil, err
	}
	return &progress, nil
}
