package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/c2n2p/portal/internal/app"
	"github.com/c2n2p/portal/internal/config"
	"github.com/c2n2p/portal/internal/handlers"
	appmiddleware "github.com/c2n2p/portal/internal/middleware"
	"github.com/c2n2p/portal/internal/module"
	"github.com/c2n2p/portal/internal/modules/orgs"
	"github.com/c2n2p/portal/internal/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	deps     app.Dependencies
	injector *do.RootScope
	modules  []module.Module
	assets   afero.Fs

	// bootCtx scopes background work started by modules and subscribers.
	bootCtx    context.Context
	bootCancel context.CancelFunc
}

// New creates a new Server instance from an already loaded configuration.
// The logger is expected to be configured by the caller.
func New(cfg config.Provider) (*Server, error) {
	injector := app.NewInjector(cfg)
	deps, err := app.LoadDependencies(injector)
	if err != nil {
		return nil, fmt.Errorf("server: resolve dependencies: %w", err)
	}

	assets, err := storage.NewAssetFs(cfg.GetStaticDir())
	if err != nil {
		_ = deps.Bus.Close()
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = deps.Renderer
	setupErrorHandling(e)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.Logger)
	e.Use(requestLogger())
	e.Use(middleware.Secure())
	e.Use(middleware.Gzip())

	bootCtx, bootCancel := context.WithCancel(context.Background())

	return &Server{
		E:          e,
		Cfg:        cfg,
		deps:       deps,
		injector:   injector,
		modules:    app.NewModules(deps),
		assets:     assets,
		bootCtx:    bootCtx,
		bootCancel: bootCancel,
	}, nil
}

// requestLogger logs one line per request through slog.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			appmiddleware.FromContext(c.Request().Context()).LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}

// bootModules runs the Register phase for every module, then Boot.
func (s *Server) bootModules() error {
	for _, m := range s.modules {
		if err := m.Register(s.injector); err != nil {
			return fmt.Errorf("server: register module %s: %w", m.Name(), err)
		}
	}
	root := s.E.Group("")
	for _, m := range s.modules {
		if err := m.Boot(s.bootCtx, root, s.injector); err != nil {
			return fmt.Errorf("server: boot module %s: %w", m.Name(), err)
		}
	}
	return nil
}

// homeHandler builds the landing page handler from the orgs module's
// registered handler.
func (s *Server) homeHandler() (*handlers.HomeHandler, error) {
	orgsHandler, err := do.Invoke[*orgs.Handler](s.injector)
	if err != nil {
		return nil, err
	}
	return handlers.NewHomeHandler(orgsHandler), nil
}
