// Package messaging provides abstractions for message broker communication.
// It defines interfaces that allow services to publish and subscribe to
// messages without being coupled to a specific broker implementation.
package messaging

import (
	"context"
	"time"
)

// Message represents a message received from or sent to a message broker.
type Message struct {
	// Subject is the topic/channel the message was published to.
	Subject string

	// Data is the raw message payload.
	Data []byte

	// Timestamp is when the message was published.
	Timestamp time.Time
}

// MessageHandler processes a received message.
// Return an error to indicate processing failure.
type MessageHandler func(ctx context.Context, msg *Message) error

// Subscription represents an active subscription to a subject.
type Subscription interface {
	// Unsubscribe stops receiving messages on this subscription.
	Unsubscribe() error

	// Subject returns the subject this subscription is listening to.
	Subject() string
}

// Client is the broker-agnostic interface services use to exchange messages.
type Client interface {
	// Publish sends a message to the specified subject.
	Publish(ctx context.Context, subject string, data []byte) error

	// PublishJSON marshals data to JSON and publishes to the subject.
	PublishJSON(ctx context.Context, subject string, data interface{}) error

	// Subscribe creates a subscription to the specified subject.
	Subscribe(subject string, handler MessageHandler) (Subscription, error)

	// IsConnected reports whether the client holds a live broker connection.
	IsConnected() bool

	// Close drains and closes the broker connection.
	Close() error
}
