package orgs

import (
	"net/http"

	"github.com/c2n2p/portal/internal/pubsub"
	"github.com/c2n2p/portal/internal/rendering"
	"github.com/c2n2p/portal/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// Handler manages the HTTP requests for the organizations panel.
type Handler struct {
	seeder     Seeder
	publisher  pubsub.Publisher
	renderer   rendering.Renderer
	backendURL string
}

// NewHandler creates a new handler.
func NewHandler(seeder Seeder, publisher pubsub.Publisher, renderer rendering.Renderer, backendURL string) *Handler {
	return &Handler{
		seeder:     seeder,
		publisher:  publisher,
		renderer:   renderer,
		backendURL: backendURL,
	}
}

// Mount creates the panel state for one page view.
func (h *Handler) Mount(opts ...Option) *Panel {
	opts = append([]Option{WithPublisher(h.publisher, h.backendURL)}, opts...)
	return NewPanel(h.seeder, opts...)
}

// SeedPost runs the seed action and answers with the refreshed list
// fragment. It always succeeds from the browser's point of view.
func (h *Handler) SeedPost(c echo.Context) error {
	panel := h.Mount()
	defer panel.Close()

	panel.Seed(c.Request().Context())
	return h.renderer.RenderPage(c, http.StatusOK, pages.OrgList(panel.Organizations()))
}
