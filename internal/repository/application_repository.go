package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/campaign-service/internal/domain"
)

// ApplicationRepository defines persistence access for applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) error
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	GetByCampaignAndUser(ctx context.Context, campaignID, userID int64) (*domain.Application, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository returns a Postgres-backed implementation.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

func (r *applicationRepository) Create(ctx context.Context, application *domain.Application) error {
	const query = `
        INSERT INTO applications (campaign_id, user_id, message, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		application.CampaignID,
		application.UserID,
		application.Message,
		application.Status,
	).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)
}

func (r *applicationRepository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	const query = `
        SELECT id, campaign_id, user_id, message, status, created_at, updated_at
        FROM applications WHERE id=$1`

	return r.scanApplication(r.pool.QueryRow(ctx, query, id))
}

func (r *applicationRepository) GetByCampaignAndUser(ctx context.Context, campaignID, userID int64) (*domain.Application, error) {
	const query = `
        SELECT id, campaign_id, user_id, message, status, created_at, updated_at
        FROM applications WHERE campaign_id=$1 AND user_id=$2`

	return r.scanApplication(r.pool.QueryRow(ctx, query, campaignID, userID))
}

func (r *applicationRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Application, error) {
	const query = `
        SELECT id, campaign_id, user_id, message, status, created_at, updated_at
        FROM applications WHERE user_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := make([]*domain.Application, 0)
	for rows.Next() {
		application, err := r.scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}
	return applications, rows.Err()
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	const query = `UPDATE applications SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) scanApplication(row pgx.Row) (*domain.Application, error) {
	var application domain.Application
	if err := row.Scan(
		&application.ID,
		&application.CampaignID,
		&application.UserID,
		&application.Message,
		&application.Status,
		&application.CreatedAt,
		&application.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &application, nil
}
