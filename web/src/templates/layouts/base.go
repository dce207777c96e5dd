package layouts

import (
	"github.com/a-h/templ"
	"github.com/c2n2p/portal/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	htmxSrc     = "https://unpkg.com/htmx.org@2.0.4"
	tailwindSrc = "https://cdn.tailwindcss.com"
)

// Base wraps body in the HTML document shell and returns it as a templ
// component so it goes through the universal renderer like any other page.
func Base(title string, body ...g.Node) templ.Component {
	return view.AdaptGomponentToTempl(Document(title, body...))
}

// Document is the gomponents form of Base.
func Document(title string, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(title))),
				h.Script(h.Src(tailwindSrc)),
				h.Script(h.Src(htmxSrc), h.Defer()),
				h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
			),
			h.Body(g.Group(body)),
		),
	)
}
