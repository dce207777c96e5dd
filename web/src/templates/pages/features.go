package pages

import (
	"github.com/c2n2p/portal/internal/domain"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FeatureGrid renders one card per feature, in the order given.
func FeatureGrid(features []domain.Feature) g.Node {
	return Div(
		ID("features"),
		Class("grid md:grid-cols-5 gap-4"),
		g.Map(features, featureCard),
	)
}

func featureCard(f domain.Feature) g.Node {
	return Div(
		Class("bg-white rounded-xl shadow p-4"),
		Data("feature", f.Icon),
		Div(Class("h-10 w-10 flex items-center justify-center"), svgIcon(f.Icon, f.Tone, 24)),
		Div(Class("font-semibold mt-2"), g.Text(f.Title)),
		Div(Class("text-sm text-gray-600 mt-1"), g.Text(f.Description)),
	)
}
