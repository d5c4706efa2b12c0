package events

import (
	"time"

	"github.com/spec-kit/campaign-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCampaignCreated          EventType = "campaign_created"
	EventApplicationSubmitted     EventType = "application_submitted"
	EventApplicationStatusChanged EventType = "application_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	CampaignID int64       `json:"campaign_id"`
	ActorID    int64       `json:"actor_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// CampaignCreatedPayload payload.
type CampaignCreatedPayload struct {
	Title        string `json:"title"`
	Category     string `json:"category"`
	RecruitCount int    `json:"recruit_count"`
}

// ApplicationSubmittedPayload payload.
type ApplicationSubmittedPayload struct {
	ApplicationID int64 `json:"application_id"`
	UserID        int64 `json:"user_id"`
	ClientID      int64 `json:"client_id"`
}

// ApplicationStatusChangedPayload payload.
type ApplicationStatusChangedPayload struct {
	ApplicationID int64                    `json:"application_id"`
	UserID        int64                    `json:"user_id"`
	OldStatus     domain.ApplicationStatus `json:"old_status"`
	NewStatus     domain.ApplicationStatus `json:"new_status"`
}
