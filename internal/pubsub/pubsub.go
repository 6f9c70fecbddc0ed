// Package pubsub is the in-process event bus the dashboard announces
// changes on.
package pubsub

import (
	"context"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g. "dashboard.user.saved").
	Topic string
	// UserID identifies the user record the message is about.
	UserID string
	// Payload contains the encoded event.
	Payload []byte
	// Metadata carries arbitrary key-value pairs.
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
	// Subscribe registers handler for topic and returns once the subscription
	// is active. Messages are handled until ctx is canceled or the bus closes.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
