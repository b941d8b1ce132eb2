package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PurchaseProps struct {
	Brand     string
	ActionURL string
	Name      string
	Email     string
	// Hidden payment details carried from the provider's return URL.
	TransactionID string
	Provider      string
	Error         string
}

func PurchasePage(p PurchaseProps) g.Node {
	return Div(
		Class("min-h-screen bg-gradient-to-br from-green-50 to-emerald-100 text-gray-900"),
		Header(Class("bg-white shadow-sm"),
			Div(Class("max-w-2xl mx-auto px-4 py-4"), Span(Class("font-bold text-xl"), g.Text(p.Brand))),
		),
		Main(Class("max-w-2xl mx-auto px-4 py-12"),
			Div(Class("text-center mb-8"),
				H1(Class("text-3xl font-bold text-green-800"), g.Text("Payment Successful!")),
				P(Class("text-gray-700 mt-2"), g.Text("Your payment has been processed successfully. Please provide your email address to receive your download link.")),
			),
			Div(Class("bg-white rounded-2xl shadow-xl p-8"),
				H2(Class("text-2xl font-bold mb-2"), g.Text("Get Your Book")),
				P(Class("text-gray-600 mb-6"), g.Text("Enter your email address below to receive your download link. You'll also get an email with the link for future access.")),
				formEl(Method("post"), Action(p.ActionURL), Class("space-y-4"),
					Banner(p.Error),
					Input(Type("hidden"), Name("txn_id"), Value(p.TransactionID)),
					Input(Type("hidden"), Name("provider"), Value(p.Provider)),
					textInput("name", "name", "text", "Your Name", p.Name, "John Doe", ""),
					textInput("email", "email", "email", "Email Address", p.Email, "you@example.com", ""),
					Button(Type("submit"), Class("w-full bg-green-600 hover:bg-green-700 text-white font-bold py-4 rounded-lg"), g.Text("Get My Book")),
				),
			),
		),
	)
}
