package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookfront/internal/http/response"
	"github.com/yungbote/bookfront/internal/landing"
	"github.com/yungbote/bookfront/internal/platform/apierr"
	"github.com/yungbote/bookfront/internal/platform/logger"
)

// PageAPIHandler exposes the resolved landing page view as JSON for embeds.
type PageAPIHandler struct {
	log   *logger.Logger
	pages PageSource
}

func NewPageAPIHandler(log *logger.Logger, pages PageSource) *PageAPIHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &PageAPIHandler{log: log.With("handler", "PageAPIHandler"), pages: pages}
}

type pageViewResponse struct {
	Page landing.PageView `json:"page"`
}

// GET /api/pages/:id
func (h *PageAPIHandler) Get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	page, err := h.pages.GetPublicPage(c.Request.Context(), id)
	if err != nil {
		h.log.Warn("load landing page failed", "page_id", id, "error", err)
		response.JSONError(c, fetchFailed(err, LandingPageNotFound))
		return
	}
	if page == nil {
		response.JSONError(c, apierr.FetchFailed(http.StatusNotFound, LandingPageNotFound, nil))
		return
	}
	response.JSON(c, pageViewResponse{Page: landing.ResolvePage(&page.LandingPage, page.Book)})
}
