package handlers

import (
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

// AccessHandler serves the purchase access page behind /access/:token.
type AccessHandler struct {
	log     *logger.Logger
	site    Site
	links   Links
	access  *delivery.AccessFlow
	metrics *observability.Metrics
}

func NewAccessHandler(log *logger.Logger, site Site, links Links, access *delivery.AccessFlow, metrics *observability.Metrics) *AccessHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AccessHandler{
		log:     log.With("handler", "AccessHandler"),
		site:    site,
		links:   links,
		access:  access,
		metrics: metrics,
	}
}

// GET /access/:token
func (h *AccessHandler) Show(c *gin.Context) {
	token := c.Param("token")
	data, ok := h.verify(c, token)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, token, *data, "", "")
}

// POST /access/:token/download issues a fresh link. The page is re-rendered
// with the authoritative count and the link, so the count the visitor sees
// is the one the API returned.
func (h *AccessHandler) Download(c *gin.Context) {
	token := c.Param("token")
	data, ok := h.verify(c, token)
	if !ok {
		return
	}

	fx := newEffects()
	updated, err := h.access.Download(c.Request.Context(), token, *data, fx)
	if err != nil {
		h.metrics.ObserveDelivery("access_download", "failed")
		e := apierr.SubmissionFailed(userMessage(err, delivery.FallbackDownloadError), err)
		_ = c.Error(e)
		h.render(c, e.Status, token, updated, "", e.Message)
		return
	}
	h.metrics.ObserveDelivery("access_download", "issued")
	h.render(c, http.StatusOK, token, updated, fx.url, "")
}

func (h *AccessHandler) verify(c *gin.Context, token string) (*types.AccessData, bool) {
	data, err := h.access.Verify(c.Request.Context(), token)
	if err != nil {
		h.site.fail(c, fetchFailed(err, delivery.FallbackVerifyError))
		return nil, false
	}
	return data, true
}

func (h *AccessHandler) render(c *gin.Context, status int, token string, data types.AccessData, readyURL, errMsg string) {
	coverURL := ""
	if data.Book.CoverImageURL != "" && data.Book.ID != "" {
		coverURL = h.links.CoverURL(data.Book.ID)
	}
	h.site.render(c, status, data.Book.Title, lightTheme, components.AccessPage(components.AccessProps{
		Brand:             h.site.Brand,
		SupportEmail:      h.site.SupportEmail,
		Data:              data,
		CoverURL:          coverURL,
		DownloadActionURL: "/access/" + url.PathEscape(token) + "/download",
		ReadyURL:          readyURL,
		Error:             errMsg,
	}))
}
