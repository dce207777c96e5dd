package app

import (
	"github.com/c2n2p/portal/internal/backend"
	"github.com/c2n2p/portal/internal/config"
	"github.com/c2n2p/portal/internal/modules/orgs"
	"github.com/c2n2p/portal/internal/modules/status"
	"github.com/c2n2p/portal/internal/pubsub"
	"github.com/c2n2p/portal/internal/rendering"
	"github.com/samber/do/v2"
)

// Dependencies holds the core services that are required by the application's modules.
type Dependencies struct {
	Config   config.Provider
	Backend  *backend.Client
	Bus      *pubsub.WatermillBridge
	Renderer *rendering.UniversalRenderer
}

// NewInjector builds the service container. Services are constructed lazily
// on first use.
func NewInjector(cfg config.Provider) *do.RootScope {
	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.Provide(injector, newBackendClient)
	do.Provide(injector, newEventBus)
	do.Provide(injector, newRenderer)
	return injector
}

// LoadDependencies resolves the core services from the injector.
func LoadDependencies(i do.Injector) (Dependencies, error) {
	client, err := do.Invoke[*backend.Client](i)
	if err != nil {
		return Dependencies{}, err
	}
	bus, err := do.Invoke[*pubsub.WatermillBridge](i)
	if err != nil {
		return Dependencies{}, err
	}
	renderer, err := do.Invoke[*rendering.UniversalRenderer](i)
	if err != nil {
		return Dependencies{}, err
	}
	return Dependencies{
		Config:   do.MustInvoke[config.Provider](i),
		Backend:  client,
		Bus:      bus,
		Renderer: renderer,
	}, nil
}

func newBackendClient(i do.Injector) (*backend.Client, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return backend.NewClient(backend.Config{
		BaseURL: cfg.GetBackendURL(),
		Timeout: cfg.GetBackendTimeout(),
	})
}

func newEventBus(i do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(), nil
}

func newRenderer(i do.Injector) (*rendering.UniversalRenderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

// statusDeps creates the dependency struct for the status module.
func statusDeps(deps Dependencies) status.Dependencies {
	return status.Dependencies{
		Source:     deps.Backend,
		Publisher:  deps.Bus,
		Renderer:   deps.Renderer,
		BackendURL: deps.Backend.BaseURL(),
	}
}

// orgsDeps creates the dependency struct for the orgs module.
func orgsDeps(deps Dependencies) orgs.Dependencies {
	return orgs.Dependencies{
		Seeder:        deps.Backend,
		Publisher:     deps.Bus,
		Renderer:      deps.Renderer,
		BackendURL:    deps.Backend.BaseURL(),
		SeedRateLimit: deps.Config.GetSeedRateLimit(),
	}
}
