package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	types "github.com/yungbote/bookfront/internal/domain"
)

type AccessProps struct {
	Brand        string
	SupportEmail string
	Data         types.AccessData
	CoverURL     string

	DownloadActionURL string
	// ReadyURL is the freshly issued download link, shown after a download.
	ReadyURL string
	Error    string
}

func AccessPage(p AccessProps) g.Node {
	tx := p.Data.Transaction
	book := p.Data.Book
	remaining := tx.RemainingDownloads()
	expires := tx.ExpiresAt.Format("January 2, 2006")

	return Div(
		Class("min-h-screen bg-gradient-to-br from-blue-50 to-indigo-100 text-gray-900"),
		Header(Class("bg-white shadow-sm"),
			Div(Class("max-w-4xl mx-auto px-4 py-4"), Span(Class("font-bold text-xl"), g.Text(p.Brand))),
		),
		Main(Class("max-w-4xl mx-auto px-4 py-12 space-y-8"),
			Div(Class("bg-green-50 border border-green-200 rounded-xl p-6 text-center"),
				H1(Class("text-2xl font-bold text-green-800"), g.Text("Thank You for Your Purchase!")),
				g.If(p.Data.DeliveryLink.Title != "", P(Class("text-green-700 mt-2"), g.Text(p.Data.DeliveryLink.Title))),
			),
			Div(Class("bg-white rounded-2xl shadow-xl overflow-hidden md:flex"),
				g.If(book.CoverImageURL != "" && p.CoverURL != "", Div(Class("md:w-2/5 bg-gray-100 flex items-center justify-center p-8"),
					Img(Src(p.CoverURL), Alt(book.Title), Width("128"), Class("rounded-lg shadow-lg"), g.Attr("onerror", "this.style.display='none'")),
				)),
				Div(Class("p-8 md:p-12 space-y-6 flex-1"),
					Div(
						H2(Class("text-3xl font-bold"), g.Text(book.Title)),
						g.If(book.Author != "", P(Class("text-gray-600"), g.Textf("by %s", book.Author))),
					),
					g.If(book.Description != "", P(Class("text-gray-700"), g.Text(book.Description))),
					infoBlock("Purchase Information",
						P(Strong(g.Text("Email:")), g.Text(" "+tx.CustomerEmail)),
						g.If(tx.CustomerName != "", P(Strong(g.Text("Name:")), g.Text(" "+tx.CustomerName))),
						P(Strong(g.Text("Amount Paid:")), g.Text(" "+tx.Currency+" "+fmt.Sprintf("%.2f", tx.Amount))),
					),
					infoBlock("Download Information",
						P(Strong(g.Text("Downloads Used:")), g.Textf(" %d of %d", tx.DownloadCount, tx.MaxDownloads)),
						P(Strong(g.Text("Remaining Downloads:")), g.Text(" "+strconv.Itoa(remaining))),
						P(Strong(g.Text("Access Expires:")), g.Text(" "+expires)),
					),
					Banner(p.Error),
					g.If(p.ReadyURL != "", Div(Class("bg-blue-50 border border-blue-200 rounded-lg p-4"),
						P(Class("text-blue-800 text-sm mb-2"), g.Text("Your download link is ready.")),
						A(Href(p.ReadyURL), Target("_blank"), Rel("noopener noreferrer"), Class("font-semibold text-blue-700 underline"), g.Text("Open download")),
					)),
					downloadControl(remaining, p.DownloadActionURL),
					Div(Class("bg-yellow-50 border border-yellow-200 rounded-lg p-4"),
						H4(Class("font-semibold mb-2"), g.Text("📌 Important Notes")),
						Ul(Class("text-sm text-gray-700 space-y-1 list-disc pl-5"),
							Li(g.Text("Your download link is valid until "), Strong(g.Text(expires))),
							Li(g.Text("You can download the book up to "), Strong(g.Textf("%d times", tx.MaxDownloads))),
							Li(g.Text("A confirmation email with this link has been sent to "), Strong(g.Text(tx.CustomerEmail))),
							Li(g.Text("Please save this page URL for future access to your book")),
						),
					),
				),
			),
			Div(Class("text-center"),
				H3(Class("text-xl font-bold mb-2"), g.Text("Need Help?")),
				P(Class("text-gray-600 mb-4"), g.Text("If you have any questions or issues with your download, we're here to help!")),
				A(Href("mailto:"+p.SupportEmail), Class("text-blue-600 hover:underline"), g.Text(p.SupportEmail)),
			),
		),
	)
}

func downloadControl(remaining int, actionURL string) g.Node {
	if remaining <= 0 {
		return Div(Class("bg-red-50 border border-red-200 rounded-lg p-4 text-center"),
			P(Class("font-semibold text-red-800"), g.Text("Download Limit Reached")),
			P(Class("text-sm text-red-700"), g.Text("You've used all available downloads. Please contact support if you need assistance.")),
		)
	}
	return formEl(Method("post"), Action(actionURL),
		Button(Type("submit"), Class("w-full bg-blue-600 hover:bg-blue-700 text-white font-bold py-4 rounded-lg shadow-lg"), g.Text("Download Book Now")),
	)
}

func infoBlock(title string, rows ...g.Node) g.Node {
	return Div(Class("border-t border-gray-200 pt-4"),
		H3(Class("font-semibold text-gray-900 mb-2"), g.Text(title)),
		Div(Class("text-sm text-gray-700 space-y-1"), g.Group(rows)),
	)
}
