package delivery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	types "github.com/yungbote/bookfront/internal/domain"
	"github.com/yungbote/bookfront/internal/landing"
	"github.com/yungbote/bookfront/internal/platform/logger"
)

const (
	FallbackPurchaseError    = "Failed to process your payment. Please contact support."
	FallbackPurchaseRejected = "Failed to process payment"
)

type PurchaseAPI interface {
	CreatePurchase(ctx context.Context, req types.PurchaseRequest) (*types.PurchaseResult, error)
}

// Purchase turns a completed payment into an access token.
type Purchase struct {
	log *logger.Logger
	api PurchaseAPI
}

func NewPurchase(log *logger.Logger, api PurchaseAPI) *Purchase {
	if log == nil {
		log = logger.Nop()
	}
	return &Purchase{log: log, api: api}
}

// Complete creates the transaction and navigates to its access page.
func (p *Purchase) Complete(ctx context.Context, req types.PurchaseRequest, fx landing.Effects) (string, error) {
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.PaymentProvider = types.ParsePaymentProvider(string(req.PaymentProvider))

	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Slug, validation.Required),
		validation.Field(&req.CustomerName, validation.Required.Error("Please enter your name.")),
		validation.Field(&req.CustomerEmail, validation.Required.Error("Please enter your email address.")),
	); err != nil {
		return "", inline(validationMessage(err, FallbackPurchaseError), fmt.Errorf("%w: %v", ErrInvalidRequest, err))
	}

	res, err := p.api.CreatePurchase(ctx, req)
	if err != nil {
		p.log.Warn("create purchase failed", "slug", req.Slug, "provider", req.PaymentProvider, "error", err)
		fallback := FallbackPurchaseError
		if landing.IsRejected(err) {
			fallback = FallbackPurchaseRejected
		}
		return "", inline(landing.MessageOf(err, fallback), err)
	}
	if res == nil || strings.TrimSpace(res.AccessToken) == "" {
		return "", inline(FallbackPurchaseRejected, nil)
	}
	target := AccessPath(res.AccessToken)
	fx.Navigate(target)
	return target, nil
}

func AccessPath(token string) string {
	return "/access/" + url.PathEscape(token)
}
