package cache

import (
	"context"
	"time"
)

// NoopCache satisfies port.ResultCache when no redis address is configured:
// every lookup misses and writes are discarded.
type NoopCache struct{}

// NewNoopCache returns the no-op cache.
func NewNoopCache() NoopCache { return NoopCache{} }

// Get always misses.
func (NoopCache) Get(context.Context, string) (string, bool) { return "", false }

// Set discards the value.
func (NoopCache) Set(context.Context, string, string, time.Duration) error { return nil }
