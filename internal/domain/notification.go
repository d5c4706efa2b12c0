package domain

import "time"

// NotificationType enumerates supported notification categories.
type NotificationType string

const (
	NotificationApplicationSubmitted NotificationType = "APPLICATION_SUBMITTED"
	NotificationApplicationSelected  NotificationType = "APPLICATION_SELECTED"
	NotificationApplicationRejected  NotificationType = "APPLICATION_REJECTED"
)

// Notification is an in-app message for a single user.
type Notification struct {
	ID         int64
	UserID     int64
	CampaignID int64
	Type       NotificationType
	Message    string
	Read       bool
	CreatedAt  time.Time
}
