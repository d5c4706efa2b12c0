package domain

import "time"

// CampaignStatus represents lifecycle states for a campaign.
type CampaignStatus string

const (
	CampaignStatusRecruiting CampaignStatus = "RECRUITING"
	CampaignStatusClosed     CampaignStatus = "CLOSED"
	CampaignStatusCompleted  CampaignStatus = "COMPLETED"
)

// Campaign is an advertiser's recruitment posting that influencers apply to.
type Campaign struct {
	ID           int64
	ClientID     int64
	Title        string
	Description  string
	Category     string
	RecruitCount int
	ApplyStart   time.Time
	ApplyEnd     time.Time
	Status       CampaignStatus
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CampaignProgress summarizes recruitment progress for one campaign.
type CampaignProgress struct {
	CampaignID   int64
	RecruitCount int
	Applied      int
	Selected     int
}
