package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/yungbote/bookfront/internal/landing"
	"github.com/yungbote/bookfront/internal/web/themes"
)

// LandingProps drives the landing page. At most one of Confirmation, Success
// and the call-to-action button is shown; modals render on top.
type LandingProps struct {
	View     landing.PageView
	Theme    themes.Theme
	BodyHTML string
	Cover    CoverProps

	// URLs of the page's own routes.
	PageURL       string
	EmailModalURL string
	ConversionURL string
	DownloadURL   string
	DirectURL     string

	EmailModal   bool
	Submission   landing.Submission
	Error        string
	Confirmation *landing.ConfirmationMessage
	Success      *landing.SuccessMessage
	Chooser      *ChooserProps
}

func LandingView(p LandingProps) g.Node {
	th := p.Theme
	v := p.View

	return Div(
		Class("container mx-auto px-4 py-8 md:py-16 lg:py-24"),
		Div(
			Class("max-w-7xl mx-auto"),
			Div(
				Class("grid lg:grid-cols-2 gap-8 lg:gap-16 items-center"),
				Div(Class("flex justify-center lg:justify-end order-2 lg:order-1"), BookCover(p.Cover)),
				Div(
					Class("space-y-6 lg:space-y-8 order-1 lg:order-2"),
					g.If(v.Heading1 != "", H2(Class(join("text-xl md:text-2xl lg:text-3xl font-bold", th.Accent)), g.Text(v.Heading1))),
					H1(Class("text-3xl md:text-4xl lg:text-5xl xl:text-6xl font-bold leading-tight"), g.Text(v.Title)),
					g.If(v.Heading2 != "", H3(Class(join("text-lg md:text-xl lg:text-2xl font-semibold", th.Accent)), g.Text(v.Heading2))),
					g.If(p.BodyHTML != "", Div(
						Class(join("text-base md:text-lg lg:text-xl leading-relaxed prose prose-invert max-w-none", th.Accent)),
						g.Raw(p.BodyHTML),
					)),
					g.If(p.Error != "" && !p.EmailModal, Banner(p.Error)),
					callToAction(p),
				),
			),
			aboutAuthor(v.Book.Author, th.Accent),
			pageFooter(th.Accent),
		),
		g.If(p.EmailModal && v.Requirements.Email, EmailModal(EmailModalProps{
			Title:        v.ModalTitle,
			Description:  v.ModalDescription,
			Author:       v.Book.Author,
			ButtonText:   v.ButtonText,
			Requirements: v.Requirements,
			Submission:   p.Submission,
			Error:        p.Error,
			ActionURL:    p.ConversionURL,
			CloseURL:     p.PageURL,
			InputClass:   th.Input(),
			ButtonClass:  th.Button(),
		})),
		chooser(p.Chooser),
	)
}

func chooser(p *ChooserProps) g.Node {
	if p == nil {
		return nil
	}
	return ReaderChooser(*p)
}

func callToAction(p LandingProps) g.Node {
	switch {
	case p.Confirmation != nil:
		return Confirmation(*p.Confirmation, p.EmailModalURL)
	case p.Success != nil:
		return Success(*p.Success, p.Theme)
	}

	label := g.Group([]g.Node{Span(g.Attr("aria-hidden", "true"), g.Text("⤓")), g.Text(p.View.ButtonText)})
	btn := primaryButtonClass(p.Theme.Button())
	switch p.View.Entry {
	case landing.EntryEmailCapture:
		return A(Href(p.EmailModalURL), Class(btn), label)
	case landing.EntrySimpleDownload:
		return formEl(Method("post"), Action(p.DownloadURL),
			Button(Type("submit"), Class(btn), label),
		)
	default:
		return A(Href(p.DirectURL), Class(btn), g.Attr("rel", "nofollow"), label)
	}
}

func aboutAuthor(author, accent string) g.Node {
	if author == "" {
		return nil
	}
	return Div(
		Class("mt-16 lg:mt-24 border-t border-white/10 pt-12 lg:pt-16"),
		Div(
			Class("max-w-4xl mx-auto text-center"),
			H3(Class("text-2xl md:text-3xl font-bold mb-4"), g.Text("About the Author")),
			P(Class(join("text-lg md:text-xl mb-4", accent)), Span(Class("font-semibold"), g.Text(author))),
		),
	)
}

type EmailModalProps struct {
	Title        string
	Description  string
	Author       string
	ButtonText   string
	Requirements landing.CaptureRequirements
	Submission   landing.Submission
	Error        string
	ActionURL    string
	CloseURL     string
	InputClass   string
	ButtonClass  string
}

func EmailModal(p EmailModalProps) g.Node {
	return Modal(p.CloseURL,
		H2(Class("text-2xl font-bold mb-3"), g.Text(p.Title)),
		P(Class("text-gray-600 mb-6"), g.Text(p.Description)),
		formEl(Method("post"), Action(p.ActionURL), Class("space-y-4"),
			Banner(p.Error),
			g.If(p.Requirements.FirstName, textInput("firstName", "firstName", "text", "First Name", p.Submission.FirstName, "Enter your first name", "")),
			g.If(p.Requirements.LastName, textInput("lastName", "lastName", "text", "Last Name", p.Submission.LastName, "Enter your last name", "")),
			textInput("email", "email", "email", "Email Address", p.Submission.Email, "Enter your email address", ""),
			Div(Class("flex items-start gap-2"),
				Input(Type("checkbox"), ID("consent"), Name("consent"), Required(), Class("mt-1")),
				labelEl(For("consent"), Class("text-sm text-gray-600"),
					g.Textf("I understand that I'm signing up for %s's email newsletter, and I'm free to unsubscribe at any time.", p.Author),
				),
			),
			Button(Type("submit"), Class(join("w-full py-3 rounded-lg font-bold", p.ButtonClass)), g.Text(p.ButtonText)),
		),
	)
}

// Confirmation asks the visitor to check their inbox. retryURL reopens the form.
func Confirmation(m landing.ConfirmationMessage, retryURL string) g.Node {
	return Div(
		Class("bg-white text-gray-900 rounded-2xl p-6 md:p-8 shadow-2xl space-y-4"),
		H2(Class("text-2xl font-bold"), g.Text(m.Title)),
		P(Class("font-semibold"), g.Text(m.Lead)),
		P(Class("text-gray-600"), g.Text(m.Instructions)),
		g.If(m.SentTo != "", Div(
			Class("rounded-lg bg-gray-100 px-4 py-3 text-sm"),
			Span(Class("text-gray-600"), g.Text("Email sent to: ")),
			Strong(g.Text(m.SentTo)),
		)),
		P(Class("text-gray-600"),
			g.Text("If you're still having problems, email us at "),
			A(Href("mailto:"+m.SupportEmail), Class("underline"), g.Text(m.SupportEmail)),
			g.Text(", and someone will help you out."),
		),
		A(Href(retryURL), Class("text-sm text-blue-600 hover:underline"), g.Text(m.Retry)),
	)
}

func Success(m landing.SuccessMessage, th themes.Theme) g.Node {
	return Div(
		Class(join("rounded-2xl p-6 md:p-8 border", th.Border)),
		H2(Class("text-2xl font-bold mb-2"), g.Text(m.Title)),
		P(Class(th.Accent), g.Text(m.Message)),
		g.If(m.Note != "", P(Class(join("mt-4", th.Accent)), g.Text(m.Note))),
	)
}
