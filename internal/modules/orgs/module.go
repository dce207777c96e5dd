package orgs

import (
	"context"
	"log/slog"

	"github.com/c2n2p/portal/internal/middleware"
	"github.com/c2n2p/portal/internal/module"
	"github.com/c2n2p/portal/internal/pubsub"
	"github.com/c2n2p/portal/internal/rendering"
	"github.com/c2n2p/portal/web/src/templates/pages"
	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
)

// OrgsModule implements the module.Module interface for the featured
// organizations panel.
type OrgsModule struct {
	module.BaseModule
	seeder        Seeder
	publisher     pubsub.Publisher
	renderer      rendering.Renderer
	backendURL    string
	seedRateLimit int
}

// Dependencies holds all the services that the OrgsModule requires.
type Dependencies struct {
	Seeder        Seeder
	Publisher     pubsub.Publisher
	Renderer      rendering.Renderer
	BackendURL    string
	SeedRateLimit int
}

// New creates a new instance of the OrgsModule.
func New(deps Dependencies) *OrgsModule {
	return &OrgsModule{
		seeder:        deps.Seeder,
		publisher:     deps.Publisher,
		renderer:      deps.Renderer,
		backendURL:    deps.BackendURL,
		seedRateLimit: deps.SeedRateLimit,
	}
}

// Name returns the module name.
func (m *OrgsModule) Name() string {
	return "orgs"
}

// Register provides the panel handler, which the home page also uses to
// mount its initial list.
func (m *OrgsModule) Register(i do.Injector) error {
	do.ProvideValue(i, NewHandler(m.seeder, m.publisher, m.renderer, m.backendURL))
	return nil
}

// Boot sets up the seed route, behind a per-IP rate limit when one is configured.
func (m *OrgsModule) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	slog.Info("Booting OrgsModule: Setting up routes...")
	handler, err := do.Invoke[*Handler](i)
	if err != nil {
		return err
	}

	var mws []echo.MiddlewareFunc
	if m.seedRateLimit > 0 {
		mws = append(mws, middleware.RateLimiter(m.seedRateLimit))
	}
	g.POST(pages.SeedPath, handler.SeedPost, mws...)
	return nil
}
