package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/yungbote/bookfront/internal/delivery"
)

// ChooserOption is one button of the reader/format chooser, already resolved
// to the action it performs.
type ChooserOption struct {
	Label  string
	Action delivery.Action
	// EmailURL opens the email-the-book modal for ActionEmailModal.
	EmailURL string
}

type ChooserProps struct {
	BookTitle string
	Readers   []ChooserOption
	Formats   []ChooserOption
	CloseURL  string
}

func ReaderChooser(p ChooserProps) g.Node {
	return Modal(p.CloseURL,
		H2(Class("text-2xl font-bold mb-6 text-center"), g.Text("Which is your preferred reader?")),
		Div(Class("space-y-3 mb-6"),
			g.Group(g.Map(p.Readers, func(o ChooserOption) g.Node {
				return optionLink(o, "w-full flex items-center gap-4 p-4 border-2 border-gray-300 rounded-xl hover:border-orange-500 hover:shadow-md bg-white",
					Span(Class("w-10 h-10 bg-orange-500 rounded-lg flex items-center justify-center text-white font-bold text-sm"), g.Text(badge(o.Label))),
					Span(Class("font-semibold text-gray-900"), g.Text(o.Label)),
				)
			})),
		),
		g.If(len(p.Formats) > 0, Div(
			P(Class("text-sm text-gray-500 mb-3 text-center"), g.Text("Or download directly:")),
			Div(Class("flex flex-wrap justify-center gap-3"),
				g.Group(g.Map(p.Formats, func(o ChooserOption) g.Node {
					return optionLink(o, "px-4 py-2 border border-gray-300 rounded-lg text-sm font-medium hover:bg-gray-50",
						g.Text(o.Label),
					)
				})),
			),
		)),
	)
}

func optionLink(o ChooserOption, class string, children ...g.Node) g.Node {
	a := o.Action
	switch a.Kind {
	case delivery.ActionOpenReader, delivery.ActionOpenStore:
		return A(Href(a.URL), Target("_blank"), Rel("noopener noreferrer"), Class(class), g.Group(children))
	case delivery.ActionDownload:
		return A(Href(a.URL), g.Attr("download", a.Filename), Class(class), g.Group(children))
	case delivery.ActionNavigate:
		return A(Href(a.URL), Class(class), g.Group(children))
	case delivery.ActionEmailModal:
		return A(Href(o.EmailURL), Class(class), g.Group(children))
	default:
		return Span(Class(join(class, "opacity-40 cursor-not-allowed")), g.Attr("aria-disabled", "true"), g.Group(children))
	}
}

func badge(label string) string {
	r := []rune(strings.TrimSpace(label))
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}
