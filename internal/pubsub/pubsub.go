package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Topics published by the portal. Payloads are JSON.
const (
	TopicStatusProbed = "backend.status.probed"
	TopicSeedSettled  = "orgs.seed.settled"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g., "orgs.seed.settled").
	Topic string
	// Payload contains the raw message data.
	Payload []byte
	// Metadata can contain arbitrary key-value pairs for context (e.g., request IDs).
	Metadata map[string]string
}

// Handler defines the function signature for processing a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher defines the contract for sending messages to the Pub/Sub system.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber defines the contract for receiving messages from the Pub/Sub system.
type Subscriber interface {
	// Subscribe starts listening to the given topic, processing messages with the handler.
	// It returns once the subscription is active; delivery runs until ctx is canceled.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

// StatusProbed reports the outcome of one header status probe.
type StatusProbed struct {
	BackendURL string `json:"backend_url"`
	Reachable  bool   `json:"reachable"`
	Display    string `json:"display"`
	Error      string `json:"error,omitempty"`
}

// SeedSettled reports the outcome of one seed action.
type SeedSettled struct {
	BackendURL string `json:"backend_url"`
	OK         bool   `json:"ok"`
	Error      string `json:"error,omitempty"`
}

// Typed events for the topics above.
var (
	StatusProbedEvent = NewEvent[StatusProbed](TopicStatusProbed, "Outcome of one header status probe")
	SeedSettledEvent  = NewEvent[SeedSettled](TopicSeedSettled, "Outcome of one seed action")
)

// PublishJSON marshals payload and publishes it on topic.
func PublishJSON(ctx context.Context, pub Publisher, topic string, payload any, metadata map[string]string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("pubsub: encode %s payload: %w", topic, err)
	}
	return pub.Publish(ctx, Message{Topic: topic, Payload: data, Metadata: metadata})
}
