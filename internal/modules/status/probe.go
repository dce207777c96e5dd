package status

import (
	"context"
	"sync"

	"github.com/c2n2p/portal/internal/middleware"
	"github.com/c2n2p/portal/internal/pubsub"
)

// Placeholder is shown before, or instead of, a successful status check.
const Placeholder = "..."

// Source returns the backend's status message.
type Source interface {
	Status(ctx context.Context) (string, error)
}

// Probe performs the header's connectivity check. It issues at most one
// request in its lifetime, and a result that arrives after Close is
// discarded.
type Probe struct {
	source     Source
	publisher  pubsub.Publisher
	backendURL string

	once   sync.Once
	mu     sync.Mutex
	status string
	closed bool
	cancel context.CancelFunc
}

// NewProbe creates a probe against source. publisher may be nil.
func NewProbe(source Source, publisher pubsub.Publisher, backendURL string) *Probe {
	return &Probe{
		source:     source,
		publisher:  publisher,
		backendURL: backendURL,
	}
}

// Mount runs the check on first call and returns the value to display.
// Later calls return the settled value without contacting the backend.
func (p *Probe) Mount(ctx context.Context) string {
	p.once.Do(func() { p.run(ctx) })
	return p.Display()
}

func (p *Probe) run(parent context.Context) {
	logger := middleware.FromContext(parent)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(parent)
	p.cancel = cancel
	p.mu.Unlock()
	defer cancel()

	message, err := p.source.Status(ctx)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		logger.Debug("Discarding status result after teardown", "backend", p.backendURL)
		return
	}
	if err == nil {
		p.status = message
	}
	display := p.displayLocked()
	p.mu.Unlock()

	event := pubsub.StatusProbed{
		BackendURL: p.backendURL,
		Reachable:  err == nil,
		Display:    display,
	}
	if err != nil {
		event.Error = err.Error()
		logger.Debug("Backend status unavailable", "backend", p.backendURL, "error", err)
	}
	p.publish(parent, event)
}

func (p *Probe) publish(ctx context.Context, event pubsub.StatusProbed) {
	if p.publisher == nil {
		return
	}
	meta := map[string]string{"request_id": middleware.RequestIDFromContext(ctx)}
	if err := pubsub.Publish(ctx, p.publisher, pubsub.StatusProbedEvent, event, meta); err != nil {
		middleware.FromContext(ctx).Warn("Failed to publish status event", "error", err)
	}
}

// Display returns the status text, or Placeholder if none was obtained.
func (p *Probe) Display() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.displayLocked()
}

func (p *Probe) displayLocked() string {
	if p.status == "" {
		return Placeholder
	}
	return p.status
}

// Close tears the probe down, canceling an in-flight request. Results that
// arrive afterwards are ignored.
func (p *Probe) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	if p.cancel != nil {
		p.cancel()
	}
}
