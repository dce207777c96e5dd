package handlers

import (
	"net/http"

	"github.com/c2n2p/portal/internal/domain"
	"github.com/c2n2p/portal/internal/modules/orgs"
	"github.com/c2n2p/portal/internal/modules/status"
	"github.com/c2n2p/portal/web/src/templates/layouts"
	"github.com/c2n2p/portal/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// HomeHandler handles requests for the landing page.
type HomeHandler struct {
	orgs *orgs.Handler
}

// NewHomeHandler creates a new HomeHandler. The orgs handler mounts the
// organization panel's initial state.
func NewHomeHandler(orgsHandler *orgs.Handler) *HomeHandler {
	return &HomeHandler{orgs: orgsHandler}
}

// HomeGet renders the landing page. The header status starts as the
// placeholder and is filled in by a single follow-up request from the
// browser, so a slow backend never delays the page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	panel := h.orgs.Mount()
	defer panel.Close()

	pageContent := pages.Home(pages.HomeData{
		Status:        status.Placeholder,
		StatusPending: true,
		Features:      domain.Features(),
		Organizations: panel.Organizations(),
		Dashboards:    domain.DashboardCards(),
	})

	// The 'name' parameter is ignored by our renderer, but the component is passed as 'data'.
	return c.Render(http.StatusOK, "", layouts.Base("Home", pageContent))
}
