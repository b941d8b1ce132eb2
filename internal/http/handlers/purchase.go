package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookfront/internal/delivery"
	types "github.com/yungbote/bookfront/internal/domain"
	"github.com/yungbote/bookfront/internal/platform/apierr"
	"github.com/yungbote/bookfront/internal/platform/logger"
	"github.com/yungbote/bookfront/internal/web/components"
)

// PurchaseHandler is the payment provider's return page.
type PurchaseHandler struct {
	log      *logger.Logger
	site     Site
	purchase *delivery.Purchase
}

func NewPurchaseHandler(log *logger.Logger, site Site, purchase *delivery.Purchase) *PurchaseHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &PurchaseHandler{log: log.With("handler", "PurchaseHandler"), site: site, purchase: purchase}
}

// GET /success/:slug?email=&txn_id=|payment_intent=&provider=
func (h *PurchaseHandler) Show(c *gin.Context) {
	txn := c.Query("txn_id")
	if txn == "" {
		txn = c.Query("payment_intent")
	}
	h.render(c, http.StatusOK, components.PurchaseProps{
		Email:         c.Query("email"),
		TransactionID: txn,
		Provider:      string(types.ParsePaymentProvider(c.Query("provider"))),
	})
}

// POST /success/:slug
func (h *PurchaseHandler) Complete(c *gin.Context) {
	req := types.PurchaseRequest{
		Slug:            strings.TrimSpace(c.Param("slug")),
		CustomerEmail:   c.PostForm("email"),
		CustomerName:    c.PostForm("name"),
		TransactionID:   c.PostForm("txn_id"),
		PaymentProvider: types.PaymentProvider(c.PostForm("provider")),
	}

	fx := newEffects()
	if _, err := h.purchase.Complete(c.Request.Context(), req, fx); err != nil {
		e := apierr.SubmissionFailed(userMessage(err, delivery.FallbackPurchaseError), err)
		_ = c.Error(e)
		h.render(c, e.Status, components.PurchaseProps{
			Name:          req.CustomerName,
			Email:         req.CustomerEmail,
			TransactionID: req.TransactionID,
			Provider:      string(types.ParsePaymentProvider(string(req.PaymentProvider))),
			Error:         e.Message,
		})
		return
	}
	fx.redirect(c)
}

func (h *PurchaseHandler) render(c *gin.Context, status int, p components.PurchaseProps) {
	p.Brand = h.site.Brand
	p.ActionURL = "/success/" + url.PathEscape(c.Param("slug"))
	h.site.render(c, status, "Payment Successful", lightTheme, components.PurchasePage(p))
}
