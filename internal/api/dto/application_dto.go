package dto

import (
	"time"

	"github.com/spec-kit/campaign-service/internal/domain"
)

// ApplyRequest payload for campaign applications.
type ApplyRequest struct {
	CampaignID int64  `json:"campaign_id"`
	Message    string `json:"message"`
}

// ApplicationStatusRequest payload for status updates.
type ApplicationStatusRequest struct {
	Status string `json:"status"`
}

// ApplicationResponse standard application representation.
type ApplicationResponse struct {
	ID         int64     `json:"id"`
	CampaignID int64     `json:"campaign_id"`
	UserID     int64     `json:"user_id"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewApplicationResponse maps the domain model.
func NewApplicationResponse(application *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:         application.ID,
		CampaignID: application.CampaignID,
		UserID:     application.UserID,
		Message:    application.Message,
		Status:     string(application.Status),
		CreatedAt:  application.CreatedAt,
	}
}
