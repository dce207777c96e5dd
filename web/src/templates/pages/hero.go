package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Hero is the static promotional banner at the top of the landing page.
func Hero() g.Node {
	return Div(
		Class("text-center py-16"),
		Div(
			Class("inline-flex items-center gap-2 px-3 py-1 rounded-full bg-green-100 text-green-700 text-sm"),
			svgIcon("shield-check", "", 16),
			g.Text(" Bengaluru-only • 50km radius"),
		),
		H1(
			Class("text-4xl md:text-6xl font-extrabold mt-6 tracking-tight text-gray-900"),
			g.Text("Crop to Nutrition to Patients"),
		),
		P(
			Class("mt-4 text-lg text-gray-600 max-w-2xl mx-auto"),
			g.Text("Farmers with surplus produce connect directly to hospitals, schools, NGOs, orphanages, and old-age homes within Bengaluru. Smart matching by nutrition and distance."),
		),
		Div(
			Class("mt-8 flex items-center justify-center gap-3"),
			A(
				Href("#dashboards"),
				Class("bg-green-600 hover:bg-green-700 text-white px-5 py-3 rounded-lg font-semibold shadow"),
				g.Text("Explore Dashboards"),
			),
			A(
				Href(DiagnosticsPath),
				Class("bg-white border border-gray-300 hover:bg-gray-50 text-gray-800 px-5 py-3 rounded-lg font-semibold shadow"),
				g.Text("Check Backend"),
			),
		),
	)
}
