package domain

import "time"

// ApplicationStatus represents lifecycle states for a campaign application.
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "PENDING"
	ApplicationStatusSelected  ApplicationStatus = "SELECTED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
	ApplicationStatusCancelled ApplicationStatus = "CANCELLED"
)

// Application is an influencer's application to a campaign.
type Application struct {
	ID         int64
	CampaignID int64
	UserID     int64
	Message    string
	Status     ApplicationStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
