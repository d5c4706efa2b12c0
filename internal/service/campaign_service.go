package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/campaign-service/internal/domain"
	"github.com/spec-kit/campaign-service/internal/events"
	"github.com/spec-kit/campaign-service/internal/repository"
	apperrors "github.com/spec-kit/campaign-service/pkg/util"
)

// CampaignService coordinates campaign CRUD, browse, likes, and progress.
type CampaignService struct {
	campaigns  repository.CampaignRepository
	likes      repository.LikeRepository
	dispatcher events.Dispatcher
}

// NewCampaignService builds the service.
func NewCampaignService(campaigns repository.CampaignRepository, likes repository.LikeRepository, dispatcher events.Dispatcher) *CampaignService {
	return &CampaignService{campaigns: campaigns, likes: likes, dispatcher: dispatcher}
}

// CreateCampaignInput carries validated fields for campaign creation.
type CreateCampaignInput struct {
	Title        string
	Description  string
	Category     string
	RecruitCount int
	ApplyStart   time.Time
	ApplyEnd     time.Time
	ImageURL     string
}

// Create opens a new campaign for the client.
func (s *CampaignService) Create(ctx context.Context, clientID int64, input CreateCampaignInput) (*domain.Campaign, error) {
	if input.Title == "" || input.RecruitCount <= 0 {
		return nil, apperrors.NewValidationError("title and positive recruit_count required", nil)
	}
	if !input.ApplyEnd.IsZero() && input.ApplyEnd.Before(input.ApplyStart) {
		return nil, apperrors.NewValidationError("apply_end precedes apply_start", nil)
	}

	campaign := &domain.Campaign{
		ClientID:     clientID,
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		RecruitCount: input.RecruitCount,
		ApplyStart:   input.ApplyStart,
		ApplyEnd:     input.ApplyEnd,
		Status:       domain.CampaignStatusRecruiting,
		ImageURL:     input.ImageURL,
	}
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventCampaignCreated,
		CampaignID: campaign.ID,
		ActorID:    clientID,
		Timestamp:  time.Now(),
		Payload: events.CampaignCreatedPayload{
			Title:        campaign.Title,
			Category:     campaign.Category,
			RecruitCount: campaign.RecruitCount,
		},
	})
	return campaign, nil
}

// Update modifies a campaign owned by the caller; admins may edit any.
func (s *CampaignService) Update(ctx context.Context, actorID int64, actorRole domain.Role, campaignID int64, input CreateCampaignInput) (*domain.Campaign, error) {
	campaign, err := s.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.ClientID != actorID && actorRole != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("not the campaign owner")
	}

	campaign.Title = input.Title
	campaign.Description = input.Description
	campaign.Category = input.Category
	campaign.RecruitCount = input.RecruitCount
	campaign.ApplyStart = input.ApplyStart
	campaign.ApplyEnd = input.ApplyEnd
	campaign.ImageURL = input.ImageURL

	if err := s.campaigns.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Get returns one campaign.
func (s *CampaignService) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	campaign, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("campaign", nil)
		}
		return nil, err
	}
	return campaign, nil
}

// List returns campaigns matching the filter.
func (s *CampaignService) List(ctx context.Context, filter repository.CampaignFilter) ([]*domain.Campaign, error) {
	return s.campaigns.List(ctx, filter)
}

// Progress returns recruitment progress for the campaign.
func (s *CampaignService) Progress(ctx context.Context, id int64) (*domain.CampaignProgress, error) {
	progress, err := s.campaigns.Progress(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("campaign", nil)
		}
		return nil, err
	}
	return progress, nil
}

// ToggleLike flips the user's like for the campaign and reports the new state
// and total count.
func (s *CampaignService) ToggleLike(ctx context.Context, campaignID, userID int64) (bool, int64, error) {
	if _, err := s.Get(ctx, campaignID); err != nil {
		return false, 0, err
	}

	liked, err := s.likes.Exists(ctx, campaignID, userID)
	if err != nil {
		return false, 0, err
	}
	if liked {
		err = s.likes.Remove(ctx, campaignID, userID)
	} else {
		err = s.likes.Add(ctx, campaignID, userID)
	}
	if err != nil {
		return false, 0, err
	}

	count, err := s.likes.Count(ctx, campaignID)
	if err != nil {
		return false, 0, err
	}
	return !liked, count, nil
}
