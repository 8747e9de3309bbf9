package messaging

import (
	"context"

	"github.com/crediflow/calc-service/internal/domain/event"
)

// NoopPublisher satisfies port.EventPublisher when no brokers are configured.
type NoopPublisher struct{}

// NewNoopPublisher returns the no-op publisher.
func NewNoopPublisher() NoopPublisher { return NoopPublisher{} }

// Publish discards all events.
func (NoopPublisher) Publish(context.Context, ...event.DomainEvent) error { return nil }
