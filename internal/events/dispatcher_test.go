package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/campaign-service/internal/events"
)

func TestDispatcherFanOut(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var first, second, other int
	dispatcher.Subscribe(events.EventApplicationSubmitted, func(context.Context, events.Event) error {
		first++
		return errors.New("handler failed")
	})
	dispatcher.Subscribe(events.EventApplicationSubmitted, func(context.Context, events.Event) error {
		second++
		return nil
	})
	dispatcher.Subscribe(events.EventCampaignCreated, func(context.Context, events.Event) error {
		other++
		return nil
	})

	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventApplicationSubmitted})
	require.NoError(t, err)

	// A failing handler does not stop the rest, and unrelated
	// subscriptions stay untouched.
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 0, other)
}
