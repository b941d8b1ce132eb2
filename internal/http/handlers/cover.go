package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookfront/internal/http/response"
	"github.com/yungbote/bookfront/internal/platform/apierr"
	"github.com/yungbote/bookfront/internal/platform/logger"
	"github.com/yungbote/bookfront/internal/services"
)

type CoverHandler struct {
	log    *logger.Logger
	covers services.CoverService
}

func NewCoverHandler(log *logger.Logger, covers services.CoverService) *CoverHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &CoverHandler{log: log.With("handler", "CoverHandler"), covers: covers}
}

// GET /covers/:bookID/placeholder.png?title=&author=&w=
func (h *CoverHandler) Placeholder(c *gin.Context) {
	width, _ := strconv.Atoi(c.Query("w"))
	buf, err := h.covers.Placeholder(c.Request.Context(), c.Param("bookID"), c.Query("title"), c.Query("author"), width)
	if err != nil {
		h.log.Warn("placeholder cover failed", "book_id", c.Param("bookID"), "error", err)
		response.JSONError(c, apierr.New(http.StatusInternalServerError, "cover_failed", err))
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
