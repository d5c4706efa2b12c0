package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/campaign-service/internal/config"
	"github.com/spec-kit/campaign-service/internal/domain"
	"github.com/spec-kit/campaign-service/internal/events"
	"github.com/spec-kit/campaign-service/internal/repository"
)

// NotificationService persists in-app notifications for domain events and
// exposes them to users.
type NotificationService struct {
	notifications repository.NotificationRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
	cfg           config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(notifications repository.NotificationRepository, dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		dispatcher:    dispatcher,
		logger:        logger,
		cfg:           cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventApplicationSubmitted, n.handleApplicationSubmitted)
	n.dispatcher.Subscribe(events.EventApplicationStatusChanged, n.handleApplicationStatusChanged)
}

// ListByUser returns the user's notifications, newest first.
func (n *NotificationService) ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	return n.notifications.ListByUser(ctx, userID)
}

// MarkRead marks one of the user's notifications as read.
func (n *NotificationService) MarkRead(ctx context.Context, id, userID int64) error {
	return n.notifications.MarkRead(ctx, id, userID)
}

func (n *NotificationService) handleApplicationSubmitted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ApplicationSubmittedPayload)
	if !ok {
		return nil
	}

	notification := &domain.Notification{
		UserID:     payload.ClientID,
		CampaignID: event.CampaignID,
		Type:       domain.NotificationApplicationSubmitted,
		Message:    "A new application was submitted to your campaign",
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		n.logger.Error("create notification", zap.Error(err))
		return err
	}
	n.sendEmailStub(notification)
	return nil
}

func (n *NotificationService) handleApplicationStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ApplicationStatusChangedPayload)
	if !ok {
		return nil
	}

	kind := domain.NotificationApplicationRejected
	if payload.NewStatus == domain.ApplicationStatusSelected {
		kind = domain.NotificationApplicationSelected
	}

	notification := &domain.Notification{
		UserID:     payload.UserID,
		CampaignID: event.CampaignID,
		Type:       kind,
		Message:    fmt.Sprintf("Your application status changed to %s", payload.NewStatus),
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		n.logger.Error("create notification", zap.Error(err))
		return err
	}
	n.sendEmailStub(notification)
	return nil
}

// sendEmailStub logs where email delivery would happen; delivery itself is an
// external concern.
func (n *NotificationService) sendEmailStub(notification *domain.Notification) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.Int64("user_id", notification.UserID),
		zap.String("type", string(notification.Type)))
}
