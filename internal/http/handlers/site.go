package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/yungbote/bookfront/internal/delivery"
	types "github.com/yungbote/bookfront/internal/domain"
	"github.com/yungbote/bookfront/internal/http/response"
	"github.com/yungbote/bookfront/internal/landing"
	"github.com/yungbote/bookfront/internal/platform/apierr"
	"github.com/yungbote/bookfront/internal/web/components"
	"github.com/yungbote/bookfront/internal/web/themes"
)

// Site is the branding shared by every page.
type Site struct {
	Brand        string
	SupportEmail string
}

// lightTheme frames the delivery, access and purchase pages.
var lightTheme = themes.Theme{Name: "light", Bg: "bg-gray-50", Text: "text-gray-900"}

// PageSource loads public landing pages.
type PageSource interface {
	GetPublicPage(ctx context.Context, id string) (*types.PublicPage, error)
}

// Links builds every API URL a rendered page points at.
type Links interface {
	delivery.Links
	landing.LinkBuilder
	CoverURL(bookID string) string
}

func (s Site) render(c *gin.Context, status int, title string, theme themes.Theme, content ...g.Node) {
	response.HTML(c, status, components.Layout(components.PageConfig{
		Title: title,
		Brand: s.Brand,
		Theme: theme,
	}, content...))
}

// fail renders the full-page error for a terminal failure.
func (s Site) fail(c *gin.Context, e *apierr.Error) {
	_ = c.Error(e)
	s.render(c, e.Status, "Error", themes.Theme{}, components.ErrorPage(e.Message))
}

// fetchFailed classifies a failed load. A refused lookup is a 404; a call
// that never got an answer is a 502.
func fetchFailed(err error, fallback string) *apierr.Error {
	status := landing.StatusOf(err)
	if status < http.StatusBadRequest && landing.IsRejected(err) {
		status = http.StatusNotFound
	}
	return apierr.FetchFailed(status, landing.MessageOf(err, fallback), err)
}

func coverProps(links Links, bookID, title, author, imageURL string, include3D bool) components.CoverProps {
	p := components.CoverProps{
		Title:     title,
		Fallback:  placeholderPath(bookID, title, author),
		Include3D: include3D,
	}
	if strings.TrimSpace(imageURL) != "" && bookID != "" {
		p.URL = links.CoverURL(bookID)
	}
	return p
}

func placeholderPath(bookID, title, author string) string {
	if bookID == "" {
		bookID = "unknown"
	}
	q := url.Values{}
	q.Set("title", title)
	if author != "" {
		q.Set("author", author)
	}
	return "/covers/" + url.PathEscape(bookID) + "/placeholder.png?" + q.Encode()
}

// chooserProps resolves every chooser button up front so the modal is plain
// links.
func chooserProps(chooser *delivery.Chooser, t delivery.Target, closeURL, emailURL string) *components.ChooserProps {
	p := &components.ChooserProps{BookTitle: t.BookTitle, CloseURL: closeURL}
	for _, r := range delivery.Readers() {
		p.Readers = append(p.Readers, components.ChooserOption{
			Label:  r.Label(),
			Action: chooser.Resolve(delivery.Choice{Format: string(types.FormatEPUB), Reader: r}, t),
		})
	}
	for _, f := range t.Formats.Formats() {
		if f == types.FormatAudio {
			continue
		}
		p.Formats = append(p.Formats, components.ChooserOption{
			Label:  strings.ToUpper(string(f)),
			Action: chooser.Resolve(delivery.Choice{Format: string(f)}, t),
		})
	}
	if t.ShowEmailOption() {
		p.Formats = append(p.Formats, components.ChooserOption{
			Label:    "Email",
			Action:   chooser.Resolve(delivery.ParseChoice("email", ""), t),
			EmailURL: emailURL,
		})
	}
	return p
}

func withQuery(path, key, val string) string {
	return path + "?" + url.Values{key: []string{val}}.Encode()
}
