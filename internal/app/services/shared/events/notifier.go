package events

import (
	"context"
	"healthcare-service/internal/app/contracts"
	"healthcare-service/internal/pkg/constvars"
	"healthcare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// Notifier publishes entity changes after they are persisted. A failed publish
// never fails the operation that triggered it.
type Notifier struct {
	Publisher contracts.EventPublisher
	Log       *zap.Logger
}

func NewNotifier(publisher contracts.EventPublisher, logger *zap.Logger) *Notifier {
	return &Notifier{
		Publisher: publisher,
		Log:       logger,
	}
}

func (n *Notifier) Notify(ctx context.Context, eventType, resource, resourceID string, data interface{}) {
	if n == nil || n.Publisher == nil {
		return
	}

	requestID := utils.GetRequestID(ctx)
	event := contracts.EntityEvent{
		Type:       eventType,
		Resource:   resource,
		ResourceID: resourceID,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}

	err := n.Publisher.Publish(ctx, event)
	if err != nil {
		n.Log.Error("Notifier.Notify error publishing entity event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
		return
	}

	n.Log.Debug("Notifier.Notify published entity event",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, eventType),
	)
}
