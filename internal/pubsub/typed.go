package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event[T] ties a topic name to its payload type.
type Event[T any] struct {
	topicName   string
	description string
}

// NewEvent creates a typed event on the given topic.
func NewEvent[T any](name string, description string) Event[T] {
	return Event[T]{topicName: name, description: description}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Description returns the human readable summary of the event.
func (e Event[T]) Description() string {
	return e.description
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], payload T, metadata map[string]string) error {
	return PublishJSON(ctx, p, event.Name(), payload, metadata)
}

// Subscribe listens on the event's topic and hands decoded payloads to fn.
// Messages that do not decode as T are rejected with an error.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], fn func(ctx context.Context, payload T, metadata map[string]string) error) error {
	return s.Subscribe(ctx, event.Name(), func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("pubsub: decode %s payload: %w", event.Name(), err)
		}
		return fn(ctx, payload, msg.Metadata)
	})
}
