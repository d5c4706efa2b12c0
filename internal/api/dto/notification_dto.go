package dto

import (
	"time"

	"github.com/spec-kit/campaign-service/internal/domain"
)

// NotificationResponse standard notification representation.
type NotificationResponse struct {
	ID         int64     `json:"id"`
	CampaignID int64     `json:"campaign_id"`
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewNotificationResponse maps the domain model.
func NewNotificationResponse(notification *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         notification.ID,
		CampaignID: notification.CampaignID,
		Type:       string(notification.Type),
		Message:    notification.Message,
		Read:       notification.Read,
		CreatedAt:  notification.CreatedAt,
	}
}
