package dto

import (
	"time"

	"github.com/spec-kit/campaign-service/internal/domain"
)

// CampaignRequest payload for creating or updating campaigns.
type CampaignRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	RecruitCount int       `json:"recruit_count"`
	ApplyStart   time.Time `json:"apply_start"`
	ApplyEnd     time.Time `json:"apply_end"`
	ImageURL     string    `json:"image_url"`
}

// CampaignResponse standard campaign representation.
type CampaignResponse struct {
	ID           int64     `json:"id"`
	ClientID     int64     `json:"client_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	RecruitCount int       `json:"recruit_count"`
	ApplyStart   time.Time `json:"apply_start"`
	ApplyEnd     time.Time `json:"apply_end"`
	Status       string    `json:"status"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewCampaignResponse maps the domain model.
func NewCampaignResponse(campaign *domain.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:           campaign.ID,
		ClientID:     campaign.ClientID,
		Title:        campaign.Title,
		Description:  campaign.Description,
		Category:     campaign.Category,
		RecruitCount: campaign.RecruitCount,
		ApplyStart:   campaign.ApplyStart,
		ApplyEnd:     campaign.ApplyEnd,
		Status:       string(campaign.Status),
		ImageURL:     campaign.ImageURL,
		CreatedAt:    campaign.CreatedAt,
	}
}

// ProgressResponse summarizes recruitment progress.
type ProgressResponse struct {
	CampaignID   int64 `json:"campaign_id"`
	RecruitCount int   `json:"recruit_count"`
	Applied      int   `json:"applied"`
	Selected     int   `json:"selected"`
}
