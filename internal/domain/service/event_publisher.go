package service

import (
	"context"
)

// AdminEvent describes an admin action published on the store events topic
// for downstream consumers (audit trail, the consumer app's cache
// invalidation). Never carries recharge code plaintext.
type AdminEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	EntityID  string `json:"entity_id"`

	// Payload carries event-specific fields such as the new order status
	// or the issued batch size.
	Payload map[string]string `json:"payload,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAdminEvent publishes an admin action event for async processing
	PublishAdminEvent(ctx context.Context, event *AdminEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
