// Package pubsub is the in-process message bus. Registration, contact and
// analytics events are published here and consumed by background listeners.
package pubsub

import (
	"context"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g. "registration.created").
	Topic string
	// Actor identifies who caused the message: a visitor session, a student id or "admin".
	Actor string
	// Payload is the JSON encoded event.
	Payload []byte
	// Metadata carries arbitrary context such as the request id.
	Metadata map[string]string
}

// Handler processes a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages from the bus.
type Subscriber interface {
	// Subscribe starts processing topic with handler in the background and
	// returns once the subscription is active. It stops when ctx is canceled.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
