package port

import (
	"context"
	"time"

	"github.com/crediflow/calc-service/internal/domain/event"
	"github.com/crediflow/calc-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Driven ports (secondary adapters)
// ---------------------------------------------------------------------------

// CatalogSource loads the credit-product catalog at startup. The catalog is
// read once and treated as immutable for the lifetime of the process.
type CatalogSource interface {
	Load(ctx context.Context) (model.Catalog, error)
}

// ResultCache caches serialised calculation responses. The engine is
// deterministic, so identical requests may be answered from cache.
type ResultCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
