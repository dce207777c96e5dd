package pages

import (
	"github.com/c2n2p/portal/internal/domain"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HomeData carries everything the landing page renders.
type HomeData struct {
	Status        string
	StatusPending bool
	Features      []domain.Feature
	Organizations []domain.Organization
	Dashboards    []domain.DashboardCard
}

// Home is the root composition: header chrome with the backend status, the
// four sections stacked vertically, then the footer.
func Home(data HomeData) g.Node {
	return Div(
		Class("min-h-screen bg-gradient-to-br from-emerald-50 to-blue-50"),
		Header(
			Class("p-4 flex items-center justify-between max-w-6xl mx-auto"),
			Div(
				Class("flex items-center gap-2 font-bold text-xl"),
				svgIcon("leaf", "text-green-600", 24),
				g.Text(" C2N2P"),
			),
			StatusBadge(data.Status, data.StatusPending),
		),
		Main(
			Class("max-w-6xl mx-auto px-4 space-y-10 pb-16"),
			Hero(),
			FeatureGrid(data.Features),
			OrgPanel(data.Organizations),
			SimpleDashboards(data.Dashboards),
		),
		Footer(
			Class("text-center text-xs text-gray-500 py-6"),
			g.Text("Bengaluru-only • Auto 50km radius filtering • AI-augmented"),
		),
	)
}
