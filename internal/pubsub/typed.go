package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event ties a topic name to its payload type.
type Event[T any] struct {
	name string
}

// NewEvent declares a typed topic.
func NewEvent[T any](name string) Event[T] {
	return Event[T]{name: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.name
}

// Publish sends a typed event. The compiler ensures payload matches T.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], actor string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", event.name, err)
	}
	return p.Publish(ctx, Message{
		Topic:   event.name,
		Actor:   actor,
		Payload: data,
	})
}

// Subscribe registers a handler that receives the decoded payload of event.
// Messages that do not decode are rejected.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], handler func(ctx context.Context, actor string, payload T) error) error {
	return s.Subscribe(ctx, event.name, func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s payload: %w", event.name, err)
		}
		return handler(ctx, msg.Actor, payload)
	})
}
