package status

import (
	"context"
	"log/slog"

	"github.com/c2n2p/portal/internal/module"
	"github.com/c2n2p/portal/internal/pubsub"
	"github.com/c2n2p/portal/internal/rendering"
	"github.com/c2n2p/portal/web/src/templates/pages"
	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
)

// StatusModule owns the header connectivity probe.
type StatusModule struct {
	module.BaseModule
	source     Source
	publisher  pubsub.Publisher
	renderer   rendering.Renderer
	backendURL string
}

// Dependencies holds all the services that the StatusModule requires.
type Dependencies struct {
	Source     Source
	Publisher  pubsub.Publisher
	Renderer   rendering.Renderer
	BackendURL string
}

// New creates a new instance of the StatusModule.
func New(deps Dependencies) *StatusModule {
	return &StatusModule{
		source:     deps.Source,
		publisher:  deps.Publisher,
		renderer:   deps.Renderer,
		backendURL: deps.BackendURL,
	}
}

// Name returns the module name.
func (m *StatusModule) Name() string {
	return "status"
}

// Register provides the status handler to the injector.
func (m *StatusModule) Register(i do.Injector) error {
	do.ProvideValue(i, NewHandler(m.source, m.publisher, m.renderer, m.backendURL))
	return nil
}

// Boot sets up the status routes.
func (m *StatusModule) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	slog.Info("Booting StatusModule: Setting up routes...")
	handler, err := do.Invoke[*Handler](i)
	if err != nil {
		return err
	}
	g.GET(pages.StatusPath, handler.StatusGet)
	g.GET(pages.DiagnosticsPath, handler.DiagnosticsGet)
	return nil
}
