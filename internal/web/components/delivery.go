package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	types "github.com/yungbote/bookfront/internal/domain"
)

type DeliveryProps struct {
	Brand        string
	SupportEmail string
	Delivery     types.Delivery
	Cover        CoverProps

	ChooserURL string
	ReaderURL  string

	Chooser   *ChooserProps
	EmailBook *EmailBookProps

	Notice string
	Error  string
}

func DeliveryPage(p DeliveryProps) g.Node {
	d := p.Delivery
	return Div(
		Class("min-h-screen bg-gray-50 text-gray-900"),
		Header(Class("bg-white border-b border-gray-200"),
			Div(Class("max-w-6xl mx-auto px-4 py-4 flex items-center justify-between"),
				Span(Class("font-bold text-xl"), g.Text(p.Brand)),
				A(Href("mailto:"+p.SupportEmail), Class("text-sm text-gray-600 hover:underline"), g.Text("Need Help?")),
			),
		),
		Main(Class("max-w-6xl mx-auto px-4 py-12"),
			Div(Class("grid md:grid-cols-2 gap-12 items-center"),
				Div(Class("flex justify-center"), BookCover(p.Cover)),
				Div(Class("space-y-6"),
					H1(Class("text-3xl md:text-4xl font-bold"), g.Textf("Download your copy of %s", d.Book.Title)),
					P(Class("text-gray-600"),
						g.Text("This offer will expire in "),
						Span(Class("font-semibold"), g.Text(strconv.Itoa(d.ExpirationDays)+" days")),
						g.Text(", so be sure to download your copy before it's gone."),
					),
					Notice(p.Notice),
					Banner(p.Error),
					A(Href(p.ChooserURL), Class("inline-block bg-orange-500 hover:bg-orange-600 text-white font-bold px-10 py-4 rounded-lg shadow-lg"), g.Text("GET MY BOOK")),
					Div(A(Href(p.ReaderURL), Class("text-orange-600 hover:underline font-medium"), g.Text("Start reading in your browser"))),
					Div(Class("bg-gray-100 rounded-lg p-4 text-sm text-gray-600"),
						P(
							g.Text("Having trouble downloading? Make sure pop-ups are enabled in your browser, or try using a different browser. Still having issues? "),
							A(Href("mailto:"+p.SupportEmail), Class("underline"), g.Text("Contact our support team")),
							g.Text("."),
						),
					),
				),
			),
		),
		chooser(p.Chooser),
		emailBook(p.EmailBook),
	)
}

type EmailBookProps struct {
	Email     string
	Formats   types.AvailableFormats
	Selected  types.Format
	ActionURL string
	BackURL   string
	CloseURL  string
	Error     string
}

func emailBook(p *EmailBookProps) g.Node {
	if p == nil {
		return nil
	}
	return EmailBookModal(*p)
}

func EmailBookModal(p EmailBookProps) g.Node {
	radio := func(f types.Format, label string) g.Node {
		return labelEl(Class("flex items-center gap-3 p-3 border rounded-lg cursor-pointer"),
			Input(Type("radio"), Name("format"), Value(string(f)), g.If(p.Selected == f, Checked())),
			Span(g.Text(label)),
		)
	}
	hasFile := p.Formats.EPUB || p.Formats.PDF
	return Modal(p.CloseURL,
		A(Href(p.BackURL), Class("absolute top-4 left-4 text-gray-400 hover:text-gray-600"), g.Text("‹ Back")),
		H2(Class("text-2xl font-bold mb-6 text-center"), g.Text("Email Your Book")),
		formEl(Method("post"), Action(p.ActionURL), Class("space-y-4"),
			Banner(p.Error),
			Div(Class("space-y-2"),
				g.If(p.Formats.EPUB, radio(types.FormatEPUB, "Generic EPUB")),
				g.If(p.Formats.PDF, radio(types.FormatPDF, "PDF")),
				g.If(!hasFile, P(Class("text-sm text-gray-500"), g.Text("No downloadable formats available for this book."))),
			),
			textInput("send-email", "email", "email", "Email Address", p.Email, "Enter your email address", ""),
			Button(Type("submit"), g.If(!hasFile, Disabled()), Class("w-full py-3 rounded-lg font-bold bg-orange-500 hover:bg-orange-600 text-white"), g.Text("Send")),
		),
	)
}
