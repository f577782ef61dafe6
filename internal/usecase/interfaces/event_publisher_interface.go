package interfaces

import "context"

// IEventPublisher emits workflow lifecycle events to the payment-events topic
// exchange. Fire and forget: usecases log and swallow publish errors, they
// never roll back an already-persisted state change.

type IEventPublisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}
