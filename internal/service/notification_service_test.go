package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/campaign-service/internal/config"
	"github.com/spec-kit/campaign-service/internal/domain"
	"github.com/spec-kit/campaign-service/internal/events"
	"github.com/spec-kit/campaign-service/internal/service"
)

type memNotificationRepo struct {
	nextID  int64
	created []*domain.Notification
}

func (r *memNotificationRepo) Create(_ context.Context, notification *domain.Notification) error {
	r.nextID++
	notification.ID = r.nextID
	notification.CreatedAt = time.Now()
	r.created = append(r.created, notification)
	return nil
}

func (r *memNotificationRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Notification, error) {
	out := make([]*domain.Notification, 0)
	for _, notification := range r.created {
		if notification.UserID == userID {
			out = append(out, notification)
		}
	}
	return out, nil
}

func (r *memNotificationRepo) MarkRead(_ context.Context, id, userID int64) error {
	for _, notification := range r.created {
		if notification.ID == id && notification.UserID == userID {
			notification.Read = true
			return nil
		}
	}
	return pgx.ErrNoRows
}

func TestApplicationSubmittedNotifiesClient(t *testing.T) {
	repo := &memNotificationRepo{}
	dispatcher := events.NewInMemoryDispatcher()
	svc := service.NewNotificationService(repo, dispatcher, zap.NewNop(), config.NotificationConfig{})
	svc.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:       events.EventApplicationSubmitted,
		CampaignID: 10,
		ActorID:    42,
		Timestamp:  time.Now(),
		Payload: events.ApplicationSubmittedPayload{
			ApplicationID: 1,
			UserID:        42,
			ClientID:      7,
		},
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	notification := repo.created[0]
	assert.Equal(t, int64(7), notification.UserID)
	assert.Equal(t, int64(10), notification.CampaignID)
	assert.Equal(t, domain.NotificationApplicationSubmitted, notification.Type)
}

func TestStatusChangeNotifiesApplicant(t *testing.T) {
	repo := &memNotificationRepo{}
	dispatcher := events.NewInMemoryDispatcher()
	svc := service.NewNotificationService(repo, dispatcher, zap.NewNop(), config.NotificationConfig{})
	svc.RegisterHandlers()

	publish := func(status domain.ApplicationStatus) {
		err := dispatcher.Publish(context.Background(), events.Event{
			Type:       events.EventApplicationStatusChanged,
			CampaignID: 10,
			ActorID:    7,
			Timestamp:  time.Now(),
			Payload: events.ApplicationStatusChangedPayload{
				ApplicationID: 1,
				UserID:        42,
				OldStatus:     domain.ApplicationStatusPending,
				NewStatus:     status,
			},
		})
		require.NoError(t, err)
	}

	publish(domain.ApplicationStatusSelected)
	publish(domain.ApplicationStatusRejected)

	require.Len(t, repo.created, 2)
	assert.Equal(t, domain.NotificationApplicationSelected, repo.created[0].Type)
	assert.Equal(t, domain.NotificationApplicationRejected, repo.created[1].Type)
	for _, notification := range repo.created {
		assert.Equal(t, int64(42), notification.UserID)
	}
}

func TestMarkReadScopedToOwner(t *testing.T) {
	repo := &memNotificationRepo{}
	svc := service.NewNotificationService(repo, events.NewInMemoryDispatcher(), zap.NewNop(), config.NotificationConfig{})

	require.NoError(t, repo.Create(context.Background(), &domain.Notification{UserID: 42, Type: domain.NotificationApplicationSelected}))

	assert.Error(t, svc.MarkRead(context.Background(), 1, 7))
	assert.NoError(t, svc.MarkRead(context.Background(), 1, 42))

	list, err := svc.ListByUser(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Read)
}
