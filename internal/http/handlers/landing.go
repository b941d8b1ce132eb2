package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookfront/internal/delivery"
	types "github.com/yungbote/bookfront/internal/domain"
	"github.com/yungbote/bookfront/internal/landing"
	"github.com/yungbote/bookfront/internal/observability"
	"github.com/yungbote/bookfront/internal/platform/apierr"
	"github.com/yungbote/bookfront/internal/platform/logger"
	"github.com/yungbote/bookfront/internal/web/components"
	"github.com/yungbote/bookfront/internal/web/richtext"
	"github.com/yungbote/bookfront/internal/web/themes"
)

const (
	LandingPageNotFound = "Landing page not found"

	modalEmail  = "email"
	modalReader = "reader"
)

type LandingHandler struct {
	log      *logger.Logger
	site     Site
	pages    PageSource
	links    Links
	resolver *landing.Resolver
	chooser  *delivery.Chooser
	themes   *themes.Registry
	rich     *richtext.Renderer
	metrics  *observability.Metrics
}

type LandingDeps struct {
	Log      *logger.Logger
	Site     Site
	Pages    PageSource
	Links    Links
	Resolver *landing.Resolver
	Chooser  *delivery.Chooser
	Themes   *themes.Registry
	Rich     *richtext.Renderer
	Metrics  *observability.Metrics
}

func NewLandingHandler(deps LandingDeps) *LandingHandler {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	th := deps.Themes
	if th == nil {
		th = themes.Builtin()
	}
	rich := deps.Rich
	if rich == nil {
		rich = richtext.New()
	}
	return &LandingHandler{
		log:      log.With("handler", "LandingHandler"),
		site:     deps.Site,
		pages:    deps.Pages,
		links:    deps.Links,
		resolver: deps.Resolver,
		chooser:  deps.Chooser,
		themes:   th,
		rich:     rich,
		metrics:  deps.Metrics,
	}
}

// Home is the small landing-page index at /.
func (h *LandingHandler) Home(c *gin.Context) {
	h.site.render(c, http.StatusOK, h.site.Brand+" Landing Pages", h.themes.Default(), components.HomePage(h.site.Brand))
}

// GET /:id
func (h *LandingHandler) Show(c *gin.Context) {
	page, ok := h.load(c)
	if !ok {
		return
	}
	state := landingState{}
	switch c.Query("modal") {
	case modalEmail:
		state.emailModal = true
	case modalReader:
		state.chooser = landing.Entry(&page.LandingPage) == landing.EntrySimpleDownload
	}
	h.renderPage(c, http.StatusOK, page, state)
}

// POST /:id/conversion
func (h *LandingHandler) Convert(c *gin.Context) {
	page, ok := h.load(c)
	if !ok {
		return
	}
	lp := &page.LandingPage
	sub := landing.Submission{
		Email:     c.PostForm("email"),
		FirstName: c.PostForm("firstName"),
		LastName:  c.PostForm("lastName"),
	}

	fx := newEffects()
	out := h.resolver.Submit(c.Request.Context(), lp, sub, fx)
	h.metrics.ObserveConversion(string(lp.Type), out.State.String())
	if fx.redirect(c) {
		return
	}

	state := landingState{submission: out.Submission}
	status := http.StatusOK
	switch out.State {
	case landing.StateFailed:
		e := apierr.SubmissionFailed(out.Error, out.Err)
		_ = c.Error(e)
		status = e.Status
		state.err = e.Message
		state.emailModal = landing.NeedsEmailCapture(lp)
	case landing.StateConfirmationPending:
		msg := landing.NewConfirmationMessage(h.site.SupportEmail)
		msg.SentTo = strings.TrimSpace(out.Submission.Email)
		state.confirmation = &msg
	case landing.StateSucceeded:
		state.success = out.Success
	}
	h.renderPage(c, status, page, state)
}

// POST /:id/download records the simple download and opens the chooser.
func (h *LandingHandler) Download(c *gin.Context) {
	page, ok := h.load(c)
	if !ok {
		return
	}
	lp := &page.LandingPage
	out := h.resolver.SimpleDownload(c.Request.Context(), lp)
	h.metrics.ObserveConversion(string(lp.Type), out.State.String())

	switch {
	case out.State == landing.StateFailed:
		e := apierr.SubmissionFailed(out.Error, out.Err)
		_ = c.Error(e)
		h.renderPage(c, e.Status, page, landingState{err: e.Message})
	case out.ShowReaderChooser:
		c.Redirect(http.StatusSeeOther, withQuery(pagePath(lp.ID), "modal", modalReader))
	default:
		c.Redirect(http.StatusSeeOther, pagePath(lp.ID))
	}
}

// GET /:id/direct
func (h *LandingHandler) Direct(c *gin.Context) {
	page, ok := h.load(c)
	if !ok {
		return
	}
	fx := newEffects()
	out := h.resolver.DirectDownload(&page.LandingPage, fx)
	h.metrics.ObserveConversion(string(page.LandingPage.Type), out.State.String())
	if fx.redirect(c) {
		return
	}
	h.renderPage(c, http.StatusOK, page, landingState{})
}

// GET /:id/read?format=&reader=
func (h *LandingHandler) Read(c *gin.Context) {
	page, ok := h.load(c)
	if !ok {
		return
	}
	lp := &page.LandingPage
	// Email-capture and direct pages never expose the file links.
	if landing.Entry(lp) != landing.EntrySimpleDownload {
		c.Redirect(http.StatusSeeOther, pagePath(lp.ID))
		return
	}
	target := delivery.SimpleDownloadTarget(h.links, lp.ID, page.Book)
	action := h.chooser.Resolve(delivery.ParseChoice(c.Query("format"), c.Query("reader")), target)
	h.metrics.ObserveDelivery(action.Kind.String(), "simple_download")

	fx := newEffects()
	if delivery.Apply(action, fx) && fx.redirect(c) {
		return
	}
	c.Redirect(http.StatusSeeOther, withQuery(pagePath(lp.ID), "modal", modalReader))
}

func (h *LandingHandler) load(c *gin.Context) (*types.PublicPage, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		h.site.fail(c, apierr.FetchFailed(http.StatusNotFound, LandingPageNotFound, nil))
		return nil, false
	}
	page, err := h.pages.GetPublicPage(c.Request.Context(), id)
	if err != nil {
		h.log.Warn("load landing page failed", "page_id", id, "error", err)
		h.site.fail(c, fetchFailed(err, LandingPageNotFound))
		return nil, false
	}
	if page == nil {
		h.site.fail(c, apierr.FetchFailed(http.StatusNotFound, LandingPageNotFound, nil))
		return nil, false
	}
	return page, true
}

type landingState struct {
	emailModal   bool
	chooser      bool
	submission   landing.Submission
	err          string
	confirmation *landing.ConfirmationMessage
	success      *landing.SuccessMessage
}

func (h *LandingHandler) renderPage(c *gin.Context, status int, page *types.PublicPage, st landingState) {
	lp := &page.LandingPage
	view := landing.ResolvePage(lp, page.Book)
	theme := h.themes.Get(view.ThemeName)

	body, err := h.rich.Render(view.BodyText)
	if err != nil {
		h.log.Warn("render body text failed", "page_id", lp.ID, "error", err)
		body = ""
	}

	base := pagePath(lp.ID)
	props := components.LandingProps{
		View:          view,
		Theme:         theme,
		BodyHTML:      body,
		Cover:         coverProps(h.links, page.Book.ID, page.Book.Title, page.Book.Author, page.Book.CoverImageURL, view.Include3D),
		PageURL:       base,
		EmailModalURL: withQuery(base, "modal", modalEmail),
		ConversionURL: base + "/conversion",
		DownloadURL:   base + "/download",
		DirectURL:     base + "/direct",
		EmailModal:    st.emailModal,
		Submission:    st.submission,
		Error:         st.err,
		Confirmation:  st.confirmation,
		Success:       st.success,
	}
	if st.chooser {
		target := delivery.SimpleDownloadTarget(h.links, lp.ID, page.Book)
		props.Chooser = chooserProps(h.chooser, target, base, "")
	}
	h.site.render(c, status, view.Title, theme, components.LandingView(props))
}

func pagePath(id string) string {
	return "/" + url.PathEscape(id)
}
