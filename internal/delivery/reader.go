package delivery

import (
	"strings"

	types "github.com/yungbote/bookfront/internal/domain"
	"github.com/yungbote/bookfront/internal/landing"
)

// Reader is a reading destination offered next to the plain file formats.
type Reader string

const (
	ReaderWordToWallet Reader = "wordtowallet"
	ReaderPlayBooks    Reader = "playbooks"
	ReaderBrowser      Reader = "browser"
)

// PlayBooksURL is where the Play Books option sends the visitor.
const PlayBooksURL = "https://play.google.com/books"

// Readers lists the selectable readers in display order.
func Readers() []Reader {
	return []Reader{ReaderWordToWallet, ReaderPlayBooks, ReaderBrowser}
}

func (r Reader) Label() string {
	switch r {
	case ReaderWordToWallet:
		return "WordToWallet"
	case ReaderPlayBooks:
		return "Play Books"
	case ReaderBrowser:
		return "Read in Browser"
	default:
		return string(r)
	}
}

// Choice is one click in the reader/format chooser. Format is a file format,
// "email" or "browser"; Reader is empty for the plain format buttons.
type Choice struct {
	Format string
	Reader Reader
}

const (
	choiceEmail   = "email"
	choiceBrowser = "browser"
)

func ParseChoice(format, reader string) Choice {
	return Choice{
		Format: strings.ToLower(strings.TrimSpace(format)),
		Reader: Reader(strings.ToLower(strings.TrimSpace(reader))),
	}
}

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionOpenReader
	ActionOpenStore
	ActionDownload
	ActionEmailModal
	ActionNavigate
)

func (k ActionKind) String() string {
	switch k {
	case ActionOpenReader:
		return "open_reader"
	case ActionOpenStore:
		return "open_store"
	case ActionDownload:
		return "download"
	case ActionEmailModal:
		return "email_modal"
	case ActionNavigate:
		return "navigate"
	default:
		return "none"
	}
}

// Action is the single effect a Choice resolves to.
type Action struct {
	Kind     ActionKind
	URL      string
	Filename string
}

// Links builds the API download links for the two delivery paths.
type Links interface {
	DownloadLink(token string, format types.Format) string
	SimpleDownloadLink(pageID string, format types.Format) string
}

// Target describes the book a chooser acts on and what the chooser offers.
type Target struct {
	BookID     string
	BookTitle  string
	Formats    types.AvailableFormats
	AllowEmail bool
	// FallbackURL is followed for choices nothing else matches. Empty means
	// such choices do nothing.
	FallbackURL string

	link func(types.Format) string
}

// SimpleDownloadTarget is the chooser opened from a simple_download page.
func SimpleDownloadTarget(links Links, pageID string, book types.Book) Target {
	return Target{
		BookID:    book.ID,
		BookTitle: book.Title,
		Formats:   types.DefaultFormats(),
		link: func(f types.Format) string {
			return links.SimpleDownloadLink(pageID, f)
		},
	}
}

// ConfirmedTarget is the chooser on the delivery page behind a confirmation
// token. It offers the email option and falls back to the delivery's URL.
func ConfirmedTarget(links Links, token string, d types.Delivery) Target {
	d = d.WithDefaults()
	return Target{
		BookID:      d.Book.ID,
		BookTitle:   d.Book.Title,
		Formats:     *d.AvailableFormats,
		AllowEmail:  true,
		FallbackURL: d.DownloadURL,
		link: func(f types.Format) string {
			return links.DownloadLink(token, f)
		},
	}
}

// ShowEmailOption mirrors the chooser: the email button needs a file format.
func (t Target) ShowEmailOption() bool {
	return t.AllowEmail && (t.Formats.EPUB || t.Formats.PDF)
}

// Chooser resolves chooser clicks against a reader base URL.
type Chooser struct {
	readerURL string
}

func NewChooser(readerURL string) *Chooser {
	return &Chooser{readerURL: strings.TrimRight(readerURL, "/")}
}

func (c *Chooser) ReaderLink(bookID string) string {
	return c.readerURL + "/" + bookID
}

// Resolve maps a choice to exactly one action. The order matters: email is
// checked before readers, readers before plain formats.
func (c *Chooser) Resolve(choice Choice, t Target) Action {
	switch {
	case choice.Format == choiceEmail && t.AllowEmail:
		return Action{Kind: ActionEmailModal}
	case choice.Format == choiceBrowser || choice.Reader == ReaderBrowser || choice.Reader == ReaderWordToWallet:
		return Action{Kind: ActionOpenReader, URL: c.ReaderLink(t.BookID)}
	case choice.Reader == ReaderPlayBooks:
		return Action{Kind: ActionOpenStore, URL: PlayBooksURL}
	}

	if f, ok := types.ParseFormat(choice.Format); ok && (f == types.FormatEPUB || f == types.FormatPDF) && t.link != nil {
		return Action{
			Kind:     ActionDownload,
			URL:      t.link(f),
			Filename: t.BookTitle + "." + string(f),
		}
	}
	if t.FallbackURL != "" {
		return Action{Kind: ActionNavigate, URL: t.FallbackURL}
	}
	return Action{Kind: ActionNone}
}

// Apply performs the action's effect, if it has one. The email modal is a
// view state, not an effect, so it reports false like ActionNone.
func Apply(a Action, fx landing.Effects) bool {
	switch a.Kind {
	case ActionOpenReader, ActionOpenStore:
		fx.OpenExternal(a.URL)
	case ActionDownload:
		fx.TriggerDownload(a.URL, a.Filename)
	case ActionNavigate:
		fx.Navigate(a.URL)
	default:
		return false
	}
	return true
}
