package delivery

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	types "github.com/yungbote/bookfront/internal/domain"
	"github.com/yungbote/bookfront/internal/landing"
	"github.com/yungbote/bookfront/internal/platform/logger"
)

const (
	FallbackConfirmError  = "Failed to confirm email. The link may have expired."
	FallbackSendBookError = "Failed to send book. Please try again."
	InvalidConfirmLink    = "Invalid confirmation link"
	MissingConfirmToken   = "Error: Missing confirmation token"
)

// DeliveryAPI is the part of the remote API behind /confirm/:token.
type DeliveryAPI interface {
	Confirm(ctx context.Context, token string) (*types.Delivery, error)
	SendBook(ctx context.Context, token string, req types.SendBookRequest) error
}

type Deliveries struct {
	log *logger.Logger
	api DeliveryAPI
}

func NewDeliveries(log *logger.Logger, api DeliveryAPI) *Deliveries {
	if log == nil {
		log = logger.Nop()
	}
	return &Deliveries{log: log, api: api}
}

// Confirm resolves a confirmation token into the delivery it unlocks. Every
// failure is terminal.
func (d *Deliveries) Confirm(ctx context.Context, token string) (types.Delivery, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return types.Delivery{}, terminal(InvalidConfirmLink, ErrMissingToken)
	}
	out, err := d.api.Confirm(ctx, token)
	if err != nil {
		d.log.Warn("confirm failed", "token", token, "error", err)
		return types.Delivery{}, terminal(landing.MessageOf(err, FallbackConfirmError), err)
	}
	if out == nil {
		return types.Delivery{}, terminal(FallbackConfirmError, nil)
	}
	return out.WithDefaults(), nil
}

// SendByEmail asks the API to mail one format of the book. It returns the
// notice to show on success; failures are inline.
func (d *Deliveries) SendByEmail(ctx context.Context, token, email string, format types.Format, formats types.AvailableFormats) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", inline(MissingConfirmToken, ErrMissingToken)
	}
	req := types.SendBookRequest{Email: strings.TrimSpace(email), Format: format}
	if err := validateSendBook(req, formats); err != nil {
		return "", inline(validationMessage(err, FallbackSendBookError), fmt.Errorf("%w: %v", ErrInvalidRequest, err))
	}
	if err := d.api.SendBook(ctx, token, req); err != nil {
		d.log.Warn("send book failed", "token", token, "format", format, "error", err)
		return "", inline(landing.MessageOf(err, FallbackSendBookError), err)
	}
	return SentNotice(req.Format, req.Email), nil
}

func SentNotice(format types.Format, email string) string {
	return fmt.Sprintf("%s file has been sent to %s! Please check your inbox (and spam folder).",
		strings.ToUpper(string(format)), email)
}

func validateSendBook(req types.SendBookRequest, formats types.AvailableFormats) error {
	allowed := make([]interface{}, 0, 3)
	for _, f := range formats.Formats() {
		allowed = append(allowed, f)
	}
	return validation.ValidateStruct(&req,
		validation.Field(&req.Email, validation.Required.Error("Please enter your email address.")),
		validation.Field(&req.Format,
			validation.Required.Error("Please choose a format."),
			validation.In(allowed...).Error("That format is not available for this book."),
		),
	)
}

// validationMessage returns the first field error in a stable order.
func validationMessage(err error, fallback string) string {
	errs, ok := err.(validation.Errors)
	if !ok {
		return fallback
	}
	for _, key := range []string{"customerName", "customerEmail", "email", "format"} {
		if fe, ok := errs[key]; ok && fe != nil {
			return fe.Error()
		}
	}
	return fallback
}

// DefaultEmailFormat is the format preselected in the email-the-book modal.
func DefaultEmailFormat(formats types.AvailableFormats) types.Format {
	switch {
	case formats.EPUB:
		return types.FormatEPUB
	case formats.PDF:
		return types.FormatPDF
	default:
		return types.FormatEPUB
	}
}
