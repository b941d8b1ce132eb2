package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func join(classes ...string) string {
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}

func formEl(children ...g.Node) g.Node { return g.El("form", children...) }

func labelEl(children ...g.Node) g.Node { return g.El("label", children...) }

func primaryButtonClass(themeButton string) string {
	return join("w-full md:w-auto", themeButton,
		"px-8 py-4 md:px-12 md:py-5 rounded-lg font-bold text-lg md:text-xl",
		"transition-all transform hover:scale-105 shadow-2xl inline-flex items-center justify-center gap-3")
}

// Banner is an inline error notice above a form.
func Banner(message string) g.Node {
	if message == "" {
		return nil
	}
	return Div(
		Class("bg-red-50 border border-red-200 text-red-700 px-4 py-3 rounded-lg text-sm"),
		g.Attr("role", "alert"),
		g.Text(message),
	)
}

// Notice is an inline success notice.
func Notice(message string) g.Node {
	if message == "" {
		return nil
	}
	return Div(
		Class("bg-green-50 border border-green-200 text-green-800 px-4 py-3 rounded-lg text-sm"),
		g.Attr("role", "status"),
		g.Text(message),
	)
}

// Modal is a server-rendered overlay. Closing it is a plain link back to the
// page without the modal query.
func Modal(closeURL string, content ...g.Node) g.Node {
	return Div(
		Class("fixed inset-0 z-50 flex items-center justify-center p-4"),
		A(Href(closeURL), Class("absolute inset-0 modal-backdrop"), g.Attr("aria-label", "Close")),
		Div(
			Class("relative bg-white text-gray-900 rounded-2xl shadow-2xl max-w-md w-full p-6 md:p-8"),
			A(Href(closeURL), Class("absolute top-4 right-4 text-gray-400 hover:text-gray-600"), g.Attr("aria-label", "Close"), g.Text("×")),
			g.Group(content),
		),
	)
}

func textInput(id, name, typ, label, value, placeholder string, inputClass string) g.Node {
	return Div(
		labelEl(For(id), Class("block text-sm font-medium text-gray-700 mb-1"), g.Text(label)),
		Input(
			Type(typ), ID(id), Name(name), Value(value), Placeholder(placeholder), Required(),
			Class(join("w-full px-4 py-3 rounded-lg border focus:ring-2 focus:outline-none", inputClass)),
		),
	)
}

func pageFooter(accent string) g.Node {
	return Div(
		Class("mt-12 lg:mt-16 text-center"),
		Div(
			Class("flex items-center justify-center gap-6 text-sm"),
			A(Href("#"), Class(join(accent, "hover:underline")), g.Text("Privacy Policy")),
			Span(Class("opacity-20"), g.Text("|")),
			A(Href("#"), Class(join(accent, "hover:underline")), g.Text("Terms of Service")),
		),
		P(Class(join("mt-4 text-xs", accent)), g.Text("© All rights reserved")),
	)
}
