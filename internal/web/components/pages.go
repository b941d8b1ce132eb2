package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ErrorPage replaces the whole page for failures the visitor cannot fix.
func ErrorPage(message string) g.Node {
	return Div(
		Class("min-h-screen flex items-center justify-center bg-gray-900 text-white px-4"),
		Div(Class("max-w-md w-full text-center space-y-6"),
			Div(Class("text-5xl"), g.Attr("aria-hidden", "true"), g.Text("⚠")),
			H1(Class("text-2xl font-bold"), g.Text(message)),
			P(Class("text-gray-400"), g.Text("This landing page may have been removed, is not active, or the URL is incorrect.")),
			A(Href("/"), Class("inline-block bg-blue-600 hover:bg-blue-700 px-6 py-3 rounded-lg font-semibold"), g.Text("Go to Home")),
		),
	)
}

func HomePage(brand string) g.Node {
	feature := func(title, text string) g.Node {
		return Div(Class("bg-white/5 rounded-xl p-6"),
			H3(Class("font-semibold text-lg mb-2"), g.Text(title)),
			P(Class("text-gray-400 text-sm"), g.Text(text)),
		)
	}
	return Div(
		Class("container mx-auto px-4 py-16 max-w-4xl text-center space-y-12"),
		Div(
			H1(Class("text-4xl md:text-5xl font-bold mb-4"), g.Textf("%s Landing Pages", brand)),
			P(Class("text-xl text-gray-300"), g.Text("Beautiful, conversion-optimized landing pages for your books")),
		),
		Div(Class("bg-white/5 rounded-xl p-8 text-left"),
			H2(Class("text-2xl font-bold mb-4"), g.Text("How to Access Your Landing Page")),
			P(Class("text-gray-300 mb-4"), g.Text("Landing pages are accessible via their unique ID:")),
			Code(Class("block bg-black/40 rounded p-3 text-sm"), g.Text("/{landing-page-id}")),
			P(Class("text-gray-400 text-sm mt-4"), g.Text("Create and manage landing pages through the dashboard")),
		),
		Div(Class("grid md:grid-cols-3 gap-6"),
			feature("Customizable Themes", "Choose from various color schemes and layouts"),
			feature("Email Capture", "Build your mailing list automatically"),
			feature("Analytics", "Track views and conversions in real-time"),
		),
	)
}
