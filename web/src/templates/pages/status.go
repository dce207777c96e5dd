package pages

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// StatusPath is the portal route serving the header status fragment.
const StatusPath = "/status"

// DiagnosticsPath serves the backend diagnostics JSON behind the hero's
// "Check Backend" link.
const DiagnosticsPath = "/test"

// StatusBadge renders "Backend: <status>". A pending badge asks htmx to
// fetch the real value once, when it is first loaded; the fragment that
// replaces it carries no trigger, so the probe never repeats.
func StatusBadge(status string, pending bool) g.Node {
	return Div(
		ID("backend-status"),
		Class("text-sm text-gray-600"),
		g.If(pending, g.Group{
			hx.Get(StatusPath),
			hx.Trigger("load"),
			hx.Swap("outerHTML"),
		}),
		g.Text("Backend: "),
		Span(g.Text(status)),
	)
}
