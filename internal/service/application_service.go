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

// ApplicationService coordinates campaign applications.
type ApplicationService struct {
	applications repository.ApplicationRepository
	campaigns    repository.CampaignRepository
	dispatcher   events.Dispatcher
}

// NewApplicationService builds the service.
func NewApplicationService(applications repository.ApplicationRepository, campaigns repository.CampaignRepository, dispatcher events.Dispatcher) *ApplicationService {
	return &ApplicationService{applications: applications, campaigns: campaigns, dispatcher: dispatcher}
}

// Apply submits an application to a recruiting campaign.
func (s *ApplicationService) Apply(ctx context.Context, userID, campaignID int64, message string) (*domain.Application, error) {
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("campaign", nil)
		}
		return nil, err
	}
	if campaign.Status != domain.CampaignStatusRecruiting {
		return nil, apperrors.NewConflict("campaign is not recruiting", nil)
	}
	if campaign.ClientID == userID {
		return nil, apperrors.NewConflict("cannot apply to own campaign", nil)
	}

	if existing, err := s.applications.GetByCampaignAndUser(ctx, campaignID, userID); err == nil {
		if existing.Status != domain.ApplicationStatusCancelled {
			return nil, apperrors.NewConflict("already applied", nil)
		}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	application := &domain.Application{
		CampaignID: campaignID,
		UserID:     userID,
		Message:    message,
		Status:     domain.ApplicationStatusPending,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventApplicationSubmitted,
		CampaignID: campaignID,
		ActorID:    userID,
		Timestamp:  time.Now(),
		Payload: events.ApplicationSubmittedPayload{
			ApplicationID: application.ID,
			UserID:        userID,
			ClientID:      campaign.ClientID,
		},
	})
	return application, nil
}

// ListMine returns the caller's applications.
func (s *ApplicationService) ListMine(ctx context.Context, userID int64) ([]*domain.Application, error) {
	return s.applications.ListByUser(ctx, userID)
}

// Cancel withdraws the caller's own pending application.
func (s *ApplicationService) Cancel(ctx context.Context, userID, applicationID int64) error {
	application, err := s.getApplication(ctx, applicationID)
	if err != nil {
		return err
	}
	if application.UserID != userID {
		return apperrors.NewForbidden("not your application")
	}
	if application.Status != domain.ApplicationStatusPending {
		return apperrors.NewConflict("only pending applications can be cancelled", nil)
	}
	return s.applications.UpdateStatus(ctx, applicationID, domain.ApplicationStatusCancelled)
}

// UpdateStatus lets the campaign owner (or an admin) select or reject an
// applicant.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actorID int64, actorRole domain.Role, applicationID int64, status domain.ApplicationStatus) (*domain.Application, error) {
	if status != domain.ApplicationStatusSelected && status != domain.ApplicationStatusRejected {
		return nil, apperrors.NewValidationError("status must be SELECTED or REJECTED", nil)
	}

	application, err := s.getApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	campaign, err := s.campaigns.GetByID(ctx, application.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign.ClientID != actorID && actorRole != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("not the campaign owner")
	}

	oldStatus := application.Status
	if err := s.applications.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, err
	}
	application.Status = status

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventApplicationStatusChanged,
		CampaignID: application.CampaignID,
		ActorID:    actorID,
		Timestamp:  time.Now(),
		Payload: events.ApplicationStatusChangedPayload{
			ApplicationID: application.ID,
			UserID:        application.UserID,
			OldStatus:     oldStatus,
			NewStatus:     status,
		},
	})
	return application, nil
}

func (s *ApplicationService) getApplication(ctx context.Context, id int64) (*domain.Application, error) {
	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("application", nil)
		}
		return nil, err
	}
	return application, nil
}
