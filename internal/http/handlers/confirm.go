package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookfront/internal/delivery"
	types "github.com/yungbote/bookfront/internal/domain"
	"github.com/yungbote/bookfront/internal/observability"
	"github.com/yungbote/bookfront/internal/platform/apierr"
	"github.com/yungbote/bookfront/internal/platform/logger"
	"github.com/yungbote/bookfront/internal/web/components"
)

// ConfirmHandler serves the delivery page behind an email confirmation link.
type ConfirmHandler struct {
	log        *logger.Logger
	site       Site
	links      Links
	deliveries *delivery.Deliveries
	chooser    *delivery.Chooser
	metrics    *observability.Metrics
}

func NewConfirmHandler(log *logger.Logger, site Site, links Links, deliveries *delivery.Deliveries, chooser *delivery.Chooser, metrics *observability.Metrics) *ConfirmHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ConfirmHandler{
		log:        log.With("handler", "ConfirmHandler"),
		site:       site,
		links:      links,
		deliveries: deliveries,
		chooser:    chooser,
		metrics:    metrics,
	}
}

// GET /confirm/:token
func (h *ConfirmHandler) Show(c *gin.Context) {
	token := c.Param("token")
	d, ok := h.confirm(c, token)
	if !ok {
		return
	}
	st := deliveryState{}
	switch c.Query("modal") {
	case modalReader:
		st.chooser = true
	case modalEmail:
		st.emailBook = true
		st.email = d.UserEmail
		st.format = delivery.DefaultEmailFormat(*d.AvailableFormats)
	}
	h.render(c, http.StatusOK, token, d, st)
}

// GET /confirm/:token/read?format=&reader=
func (h *ConfirmHandler) Read(c *gin.Context) {
	token := c.Param("token")
	d, ok := h.confirm(c, token)
	if !ok {
		return
	}
	target := delivery.ConfirmedTarget(h.links, token, d)
	action := h.chooser.Resolve(delivery.ParseChoice(c.Query("format"), c.Query("reader")), target)
	h.metrics.ObserveDelivery(action.Kind.String(), "confirmed")

	base := confirmPath(token)
	if action.Kind == delivery.ActionEmailModal {
		c.Redirect(http.StatusSeeOther, withQuery(base, "modal", modalEmail))
		return
	}
	fx := newEffects()
	if delivery.Apply(action, fx) && fx.redirect(c) {
		return
	}
	c.Redirect(http.StatusSeeOther, withQuery(base, "modal", modalReader))
}

// POST /confirm/:token/send-book
func (h *ConfirmHandler) SendBook(c *gin.Context) {
	token := c.Param("token")
	d, ok := h.confirm(c, token)
	if !ok {
		return
	}
	email := c.PostForm("email")
	format, _ := types.ParseFormat(c.PostForm("format"))

	notice, err := h.deliveries.SendByEmail(c.Request.Context(), token, email, format, *d.AvailableFormats)
	if err != nil {
		h.metrics.ObserveDelivery("send_book", "failed")
		e := apierr.SubmissionFailed(userMessage(err, delivery.FallbackSendBookError), err)
		_ = c.Error(e)
		h.render(c, e.Status, token, d, deliveryState{emailBook: true, email: email, format: format, err: e.Message})
		return
	}
	h.metrics.ObserveDelivery("send_book", "sent")
	h.render(c, http.StatusOK, token, d, deliveryState{notice: notice})
}

func (h *ConfirmHandler) confirm(c *gin.Context, token string) (types.Delivery, bool) {
	d, err := h.deliveries.Confirm(c.Request.Context(), token)
	if err != nil {
		h.site.fail(c, fetchFailed(err, delivery.FallbackConfirmError))
		return types.Delivery{}, false
	}
	return d, true
}

type deliveryState struct {
	chooser   bool
	emailBook bool
	email     string
	format    types.Format
	notice    string
	err       string
}

func (h *ConfirmHandler) render(c *gin.Context, status int, token string, d types.Delivery, st deliveryState) {
	base := confirmPath(token)
	emailURL := withQuery(base, "modal", modalEmail)
	props := components.DeliveryProps{
		Brand:        h.site.Brand,
		SupportEmail: h.site.SupportEmail,
		Delivery:     d,
		Cover:        coverProps(h.links, d.Book.ID, d.Book.Title, d.Book.Author, d.Book.CoverImageURL, true),
		ChooserURL:   withQuery(base, "modal", modalReader),
		ReaderURL:    h.chooser.ReaderLink(d.Book.ID),
		Notice:       st.notice,
	}
	if !st.emailBook {
		props.Error = st.err
	}
	if st.chooser {
		props.Chooser = chooserProps(h.chooser, delivery.ConfirmedTarget(h.links, token, d), base, emailURL)
	}
	if st.emailBook {
		props.EmailBook = &components.EmailBookProps{
			Email:     st.email,
			Formats:   *d.AvailableFormats,
			Selected:  st.format,
			ActionURL: base + "/send-book",
			BackURL:   withQuery(base, "modal", modalReader),
			CloseURL:  base,
			Error:     st.err,
		}
	}
	h.site.render(c, status, "Download "+d.Book.Title, lightTheme, components.DeliveryPage(props))
}

func confirmPath(token string) string {
	return "/confirm/" + url.PathEscape(token)
}

// userMessage reads the visitor-facing message off a flow error.
func userMessage(err error, fallback string) string {
	var f *delivery.Failure
	if errors.As(err, &f) && f.Message != "" {
		return f.Message
	}
	return fallback
}
