package events

import (
	"context"
	"errors"
	"testing"

	"healthcare-service/internal/app/contracts/fakes"
	"healthcare-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNotifier(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "HCS_abc")

	t.Run("Builds Event From Context", func(t *testing.T) {
		publisher := &fakes.EventPublisher{}
		notifier := NewNotifier(publisher, zap.NewNop())

		notifier.Notify(ctx, constvars.EventDoctorUpdated, constvars.ResourceDoctors, "665f1c", nil)

		require.Len(t, publisher.Events, 1)
		event := publisher.Events[0]
		assert.Equal(t, constvars.EventDoctorUpdated, event.Type)
		assert.Equal(t, constvars.ResourceDoctors, event.Resource)
		assert.Equal(t, "665f1c", event.ResourceID)
		assert.Equal(t, "HCS_abc", event.RequestID)
		assert.False(t, event.OccurredAt.IsZero())
	})

	t.Run("Publish Failure Is Swallowed", func(t *testing.T) {
		publisher := &fakes.EventPublisher{Err: errors.New("broker down")}
		notifier := NewNotifier(publisher, zap.NewNop())

		assert.NotPanics(t, func() {
			notifier.Notify(ctx, constvars.EventDoctorDeleted, constvars.ResourceDoctors, "665f1c", nil)
		})
		assert.Empty(t, publisher.Events)
	})

	t.Run("Nil Notifier Does Nothing", func(t *testing.T) {
		var notifier *Notifier
		assert.NotPanics(t, func() {
			notifier.Notify(ctx, constvars.EventDoctorCreated, constvars.ResourceDoctors, "1", nil)
		})
	})
}
