package server

import (
	"net/http"

	"github.com/c2n2p/portal/internal/storage"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes boots the modules and sets up all the application routes.
func (s *Server) RegisterRoutes() error {
	if err := s.bootModules(); err != nil {
		return err
	}
	if err := s.startActivityLog(s.bootCtx); err != nil {
		return err
	}

	homeHandler, err := s.homeHandler()
	if err != nil {
		return err
	}

	s.E.GET("/", homeHandler.HomeGet)
	s.E.StaticFS("/static", storage.HTTPFS(s.assets))

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	return nil
}
