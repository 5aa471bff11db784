package domain

import (
	"context"

	"maintsvc/internal/domain/events"
)

// EventPublisher is implemented by the event registry. Services publish
// only after their transaction has committed, so events always describe
// facts that are already durable.
type EventPublisher interface {
	Publish(ctx context.Context, e events.Event) events.Result
}
