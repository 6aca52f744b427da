package ports

import "context"

// EventPublisher delivers integration events to interested services.
type EventPublisher interface {
	// Publish sends value under key. Events with the same key keep their order.
	Publish(ctx context.Context, key string, value any) error
}
