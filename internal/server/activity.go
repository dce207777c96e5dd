package server

import (
	"context"
	"log/slog"

	"github.com/c2n2p/portal/internal/pubsub"
)

// startActivityLog subscribes to the portal's events and logs each one.
// Subscriptions end when ctx is canceled.
func (s *Server) startActivityLog(ctx context.Context) error {
	if err := pubsub.Subscribe(ctx, s.deps.Bus, pubsub.StatusProbedEvent, logStatusProbed); err != nil {
		return err
	}
	return pubsub.Subscribe(ctx, s.deps.Bus, pubsub.SeedSettledEvent, logSeedSettled)
}

func logStatusProbed(ctx context.Context, ev pubsub.StatusProbed, meta map[string]string) error {
	slog.DebugContext(ctx, pubsub.StatusProbedEvent.Description(),
		"topic", pubsub.StatusProbedEvent.Name(),
		"backend", ev.BackendURL,
		"reachable", ev.Reachable,
		"display", ev.Display,
		"error", ev.Error,
		"request_id", meta["request_id"],
	)
	return nil
}

func logSeedSettled(ctx context.Context, ev pubsub.SeedSettled, meta map[string]string) error {
	level := slog.LevelInfo
	if !ev.OK {
		level = slog.LevelWarn
	}
	slog.Log(ctx, level, pubsub.SeedSettledEvent.Description(),
		"topic", pubsub.SeedSettledEvent.Name(),
		"backend", ev.BackendURL,
		"ok", ev.OK,
		"error", ev.Error,
		"request_id", meta["request_id"],
	)
	return nil
}
