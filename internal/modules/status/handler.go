package status

import (
	"net/http"

	"github.com/c2n2p/portal/internal/middleware"
	"github.com/c2n2p/portal/internal/pubsub"
	"github.com/c2n2p/portal/internal/rendering"
	"github.com/c2n2p/portal/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// Handler serves the header status fragment and the diagnostics endpoint.
type Handler struct {
	source     Source
	publisher  pubsub.Publisher
	renderer   rendering.Renderer
	backendURL string
}

// NewHandler creates a new status handler.
func NewHandler(source Source, publisher pubsub.Publisher, renderer rendering.Renderer, backendURL string) *Handler {
	return &Handler{
		source:     source,
		publisher:  publisher,
		renderer:   renderer,
		backendURL: backendURL,
	}
}

// StatusGet mounts one probe for this header and renders its result. The
// probe's lifetime is the request: if the client goes away the backend call
// is canceled and its result dropped.
func (h *Handler) StatusGet(c echo.Context) error {
	probe := NewProbe(h.source, h.publisher, h.backendURL)
	defer probe.Close()

	display := probe.Mount(c.Request().Context())
	return h.renderer.RenderPage(c, http.StatusOK, pages.StatusBadge(display, false))
}

// DiagnosticsResponse is the payload of the "Check Backend" page.
type DiagnosticsResponse struct {
	Backend   string `json:"backend"`
	Reachable bool   `json:"reachable"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// DiagnosticsGet reports the backend probe result verbatim, errors included.
// Unlike the header badge this is meant for operators.
func (h *Handler) DiagnosticsGet(c echo.Context) error {
	resp := DiagnosticsResponse{Backend: h.backendURL}

	message, err := h.source.Status(c.Request().Context())
	if err != nil {
		middleware.FromContext(c.Request().Context()).Info("Backend diagnostics failed", "backend", h.backendURL, "error", err)
		resp.Error = err.Error()
		return c.JSON(http.StatusBadGateway, resp)
	}

	resp.Reachable = true
	resp.Message = message
	return c.JSON(http.StatusOK, resp)
}
