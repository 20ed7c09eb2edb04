package contracts

import (
	"context"
	"time"
)

type EntityEvent struct {
	Type       string      `json:"type"`
	Resource   string      `json:"resource"`
	ResourceID string      `json:"resourceId"`
	RequestID  string      `json:"requestId,omitempty"`
	OccurredAt time.Time   `json:"occurredAt"`
	Data       interface{} `json:"data,omitempty"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event EntityEvent) error
}
