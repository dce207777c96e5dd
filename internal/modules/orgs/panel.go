package orgs

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/c2n2p/portal/internal/domain"
	"github.com/c2n2p/portal/internal/middleware"
	"github.com/c2n2p/portal/internal/pubsub"
)

// Seeder triggers demo-data creation on the backend.
type Seeder interface {
	Seed(ctx context.Context) (json.RawMessage, error)
}

// Panel is the view state behind the featured organizations card.
//
// The list shown is always the fixed featured set: seeding asks the backend
// to create its demo data but the acknowledgement is not read back into
// the list.
type Panel struct {
	seeder     Seeder
	publisher  pubsub.Publisher
	backendURL string
	onLoading  func(loading bool)

	mu       sync.Mutex
	orgs     []domain.Organization
	inflight int
	closed   bool
	cancels  map[int]context.CancelFunc
	nextID   int
}

// Option configures a Panel.
type Option func(*Panel)

// WithPublisher publishes a settled event after every seed.
func WithPublisher(pub pubsub.Publisher, backendURL string) Option {
	return func(p *Panel) {
		p.publisher = pub
		p.backendURL = backendURL
	}
}

// WithLoadingObserver registers fn to be called on every loading transition.
func WithLoadingObserver(fn func(loading bool)) Option {
	return func(p *Panel) {
		p.onLoading = fn
	}
}

// NewPanel mounts a panel, which populates the list once.
func NewPanel(seeder Seeder, opts ...Option) *Panel {
	p := &Panel{
		seeder:  seeder,
		cancels: make(map[int]context.CancelFunc),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.FetchList()
	return p
}

// FetchList resets the list to the featured organizations. It does not
// touch the network.
func (p *Panel) FetchList() {
	orgs := domain.FeaturedOrganizations()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.orgs = orgs
}

// Organizations returns a copy of the current list.
func (p *Panel) Organizations() []domain.Organization {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Organization(nil), p.orgs...)
}

// Loading reports whether a seed request is in flight.
func (p *Panel) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inflight > 0
}

// Seed posts the seed request, waits for it to settle and then refreshes
// the list. Failures are logged and otherwise swallowed; Seed never fails.
func (p *Panel) Seed(ctx context.Context) {
	logger := middleware.FromContext(ctx)

	id, reqCtx, ok := p.begin(ctx)
	if !ok {
		return
	}

	_, err := p.seeder.Seed(reqCtx)
	if err != nil {
		logger.Debug("Seed request failed", "backend", p.backendURL, "error", err)
	}

	live := p.settle(id)
	if !live {
		logger.Debug("Discarding seed result after teardown", "backend", p.backendURL)
		return
	}
	p.FetchList()
	p.publish(ctx, err)
}

func (p *Panel) begin(parent context.Context) (int, context.Context, bool) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return 0, nil, false
	}
	ctx, cancel := context.WithCancel(parent)
	id := p.nextID
	p.nextID++
	p.cancels[id] = cancel
	p.inflight++
	notify := p.inflight == 1
	p.mu.Unlock()

	if notify {
		p.notifyLoading(true)
	}
	return id, ctx, true
}

// settle ends one in-flight request and reports whether the panel is still
// mounted.
func (p *Panel) settle(id int) bool {
	p.mu.Lock()
	if cancel, ok := p.cancels[id]; ok {
		cancel()
		delete(p.cancels, id)
	}
	p.inflight--
	notify := p.inflight == 0
	live := !p.closed
	p.mu.Unlock()

	if notify && live {
		p.notifyLoading(false)
	}
	return live
}

func (p *Panel) notifyLoading(loading bool) {
	if p.onLoading != nil {
		p.onLoading(loading)
	}
}

func (p *Panel) publish(ctx context.Context, seedErr error) {
	if p.publisher == nil {
		return
	}
	event := pubsub.SeedSettled{BackendURL: p.backendURL, OK: seedErr == nil}
	if seedErr != nil {
		event.Error = seedErr.Error()
	}
	meta := map[string]string{"request_id": middleware.RequestIDFromContext(ctx)}
	if err := pubsub.Publish(ctx, p.publisher, pubsub.SeedSettledEvent, event, meta); err != nil {
		middleware.FromContext(ctx).Warn("Failed to publish seed event", "error", err)
	}
}

// Close unmounts the panel: in-flight requests are canceled and any result
// arriving afterwards leaves the state untouched.
func (p *Panel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	for id, cancel := range p.cancels {
		cancel()
		delete(p.cancels, id)
	}
}
