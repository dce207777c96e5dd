package pubsub

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillBridge_RoundTrip(t *testing.T) {
	bridge := NewWatermillBridge()
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	err := bridge.Subscribe(ctx, TopicSeedSettled, func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	err = PublishJSON(ctx, bridge, TopicSeedSettled, SeedSettled{BackendURL: "http://backend", OK: true}, map[string]string{"request_id": "r1"})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, TopicSeedSettled, msg.Topic)
		assert.Equal(t, "r1", msg.Metadata["request_id"])
		assert.NotContains(t, msg.Metadata, metaKeyTopic)

		var payload SeedSettled
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.True(t, payload.OK)
		assert.Equal(t, "http://backend", payload.BackendURL)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestWatermillBridge_TopicsAreIsolated(t *testing.T) {
	bridge := NewWatermillBridge()
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	probed := make(chan Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, TopicStatusProbed, func(ctx context.Context, msg Message) error {
		probed <- msg
		return nil
	}))

	require.NoError(t, PublishJSON(ctx, bridge, TopicSeedSettled, SeedSettled{}, nil))

	select {
	case msg := <-probed:
		t.Fatalf("unexpected message on %s: %+v", TopicStatusProbed, msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTypedEvent_PublishSubscribe(t *testing.T) {
	bridge := NewWatermillBridge()
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan StatusProbed, 1)
	require.NoError(t, Subscribe(ctx, bridge, StatusProbedEvent, func(ctx context.Context, ev StatusProbed, meta map[string]string) error {
		assert.Equal(t, "r2", meta["request_id"])
		got <- ev
		return nil
	}))

	ev := StatusProbed{BackendURL: "http://backend", Reachable: true, Display: "API up"}
	require.NoError(t, Publish(ctx, bridge, StatusProbedEvent, ev, map[string]string{"request_id": "r2"}))

	select {
	case received := <-got:
		assert.Equal(t, ev, received)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for typed event")
	}
}

func TestTypedEvent_BadPayloadDoesNotStallTopic(t *testing.T) {
	bridge := NewWatermillBridge()
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan SeedSettled, 1)
	require.NoError(t, Subscribe(ctx, bridge, SeedSettledEvent, func(ctx context.Context, ev SeedSettled, _ map[string]string) error {
		got <- ev
		return nil
	}))

	require.NoError(t, bridge.Publish(ctx, Message{Topic: TopicSeedSettled, Payload: []byte("not json")}))
	require.NoError(t, Publish(ctx, bridge, SeedSettledEvent, SeedSettled{OK: true}, nil))

	select {
	case received := <-got:
		assert.True(t, received.OK)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the valid event")
	}
	assert.Equal(t, "backend.status.probed", StatusProbedEvent.Name())
	assert.NotEmpty(t, SeedSettledEvent.Description())
}
