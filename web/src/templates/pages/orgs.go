package pages

import (
	"github.com/c2n2p/portal/internal/domain"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// SeedPath is the portal route behind the "Seed demo data" button.
const SeedPath = "/orgs/seed"

// OrgPanel renders the featured organizations card with its seed button.
// While the seed request is in flight htmx shows the indicator and disables
// the button; both revert once the list fragment arrives.
func OrgPanel(orgs []domain.Organization) g.Node {
	return Div(
		ID("orgs"),
		Class("bg-white rounded-xl shadow p-6"),
		Div(
			Class("flex items-center justify-between"),
			H3(Class("text-xl font-semibold"), g.Text("Featured Bengaluru Organizations")),
			Button(
				Type("button"),
				ID("seed-button"),
				Class("text-sm bg-green-600 hover:bg-green-700 text-white px-3 py-2 rounded"),
				hx.Post(SeedPath),
				hx.Target("#org-list"),
				hx.Swap("outerHTML"),
				hx.Indicator("#seed-indicator"),
				g.Attr("hx-disabled-elt", "this"),
				g.Text("Seed demo data"),
				Span(ID("seed-indicator"), Class("htmx-indicator ml-2"), g.Text("…")),
			),
		),
		OrgList(orgs),
	)
}

// OrgList is the swappable list fragment returned by the seed action.
func OrgList(orgs []domain.Organization) g.Node {
	return Div(
		ID("org-list"),
		Class("mt-4 space-y-3"),
		g.Map(orgs, orgCard),
	)
}

func orgCard(o domain.Organization) g.Node {
	return Div(
		Class("flex items-start gap-3 p-3 border rounded-lg"),
		Data("org", o.Name),
		svgIcon("map-pin", "text-blue-600 mt-1", 18),
		Div(
			Div(Class("font-medium"), g.Text(o.Name)),
			Div(Class("text-sm text-gray-600"), g.Text(o.Address)),
			Div(
				Class("text-sm mt-1"),
				g.Text("Requirement focus: "),
				Span(Class("font-medium"), g.Text(o.Preferences)),
			),
		),
	)
}
