package pages

import (
	"github.com/c2n2p/portal/internal/domain"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SimpleDashboards renders the role cards. None of them lead anywhere yet.
func SimpleDashboards(cards []domain.DashboardCard) g.Node {
	return Div(
		ID("dashboards"),
		Class("grid md:grid-cols-5 gap-4"),
		g.Map(cards, func(c domain.DashboardCard) g.Node {
			return A(
				Href(c.Href),
				Class("rounded-xl p-5 text-white shadow bg-gradient-to-br "+c.Theme),
				Data("role", c.Role),
				Div(Class("text-lg font-semibold"), g.Text(c.Role)),
				Div(Class("text-sm opacity-90"), g.Text(c.Description)),
			)
		}),
	)
}
