package landing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	types "github.com/yungbote/bookfront/internal/domain"
	"github.com/yungbote/bookfront/internal/platform/logger"
)

// State is the lifecycle of a single form submission.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateConfirmationPending
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateConfirmationPending:
		return "confirmation_pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	FallbackSubmitError   = "Failed to submit. Please try again."
	FallbackDownloadError = "Failed to initiate download. Please try again."
)

var ErrSubmissionFailed = errors.New("landing: submission failed")

// Submission holds what the visitor typed into the capture form.
type Submission struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (s Submission) normalized() Submission {
	return Submission{
		Email:     strings.TrimSpace(s.Email),
		FirstName: strings.TrimSpace(s.FirstName),
		LastName:  strings.TrimSpace(s.LastName),
	}
}

// Validate checks presence of the fields req marks as required. Format is
// left to the API.
func (s Submission) Validate(req CaptureRequirements) error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.FirstName, validation.When(req.FirstName, validation.Required.Error("Please enter your first name."))),
		validation.Field(&s.LastName, validation.When(req.LastName, validation.Required.Error("Please enter your last name."))),
		validation.Field(&s.Email, validation.When(req.Email, validation.Required.Error("Please enter your email address."))),
	)
}

// Request builds the conversion body. Fields the page does not require are
// left nil so they are absent from the JSON, never sent as "".
func (s Submission) Request(req CaptureRequirements) types.ConversionRequest {
	var out types.ConversionRequest
	if req.Email {
		v := s.Email
		out.Email = &v
	}
	if req.FirstName {
		v := s.FirstName
		out.FirstName = &v
	}
	if req.LastName {
		v := s.LastName
		out.LastName = &v
	}
	return out
}

// Outcome is the result of one flow call. At most one of NavigatedTo,
// Success, ShowReaderChooser and Error is meaningful for a given State.
type Outcome struct {
	State             State
	Submission        Submission
	Success           *SuccessMessage
	NavigatedTo       string
	ShowReaderChooser bool
	ConversionToken   string
	Error             string
	Err               error
}

func (o Outcome) failed(msg string, err error) Outcome {
	o.State = StateFailed
	o.Error = msg
	o.Err = err
	return o
}

type Resolver struct {
	log       *logger.Logger
	converter Converter
	links     LinkBuilder
}

func NewResolver(log *logger.Logger, converter Converter, links LinkBuilder) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{log: log, converter: converter, links: links}
}

// Submit runs the email capture flow. A pending confirmation never navigates;
// otherwise exactly one navigation happens when the API returns a target.
// Failures keep the typed values so the form can be shown again.
func (r *Resolver) Submit(ctx context.Context, lp *types.LandingPage, sub Submission, fx Effects) Outcome {
	sub = sub.normalized()
	out := Outcome{State: StateSubmitting, Submission: sub}
	if lp == nil {
		return out.failed(FallbackSubmitError, ErrSubmissionFailed)
	}

	req := Requirements(lp)
	if err := sub.Validate(req); err != nil {
		return out.failed(validationMessage(err), fmt.Errorf("%w: %v", ErrSubmissionFailed, err))
	}

	resp, err := r.converter.Convert(ctx, lp.ID, sub.Request(req))
	if err != nil {
		r.log.Warn("conversion failed", "page_id", lp.ID, "page_type", lp.Type, "error", err)
		return out.failed(MessageOf(err, FallbackSubmitError), fmt.Errorf("%w: %w", ErrSubmissionFailed, err))
	}

	var data types.ConversionResult
	if resp != nil && resp.Data != nil {
		data = *resp.Data
	}
	out.ConversionToken = data.ConversionToken
	if data.NeedsConfirmation {
		out.State = StateConfirmationPending
		return out
	}

	out.State = StateSucceeded
	if target := navigationTarget(data); target != "" {
		fx.Navigate(target)
		out.NavigatedTo = target
		return out
	}
	msg := SuccessMessageFor(lp)
	out.Success = &msg
	return out
}

// SimpleDownload records an empty conversion for a simple_download page and
// opens the reader chooser when the API answers with a download conversion.
// Any other conversion type is ignored.
func (r *Resolver) SimpleDownload(ctx context.Context, lp *types.LandingPage) Outcome {
	out := Outcome{State: StateIdle}
	if lp == nil || lp.Type != types.PageTypeSimpleDownload {
		return out
	}

	resp, err := r.converter.Convert(ctx, lp.ID, types.ConversionRequest{})
	if err != nil {
		r.log.Warn("simple download conversion failed", "page_id", lp.ID, "error", err)
		return out.failed(MessageOf(err, FallbackDownloadError), fmt.Errorf("%w: %w", ErrSubmissionFailed, err))
	}
	if resp == nil || resp.Data == nil {
		return out
	}
	out.ConversionToken = resp.Data.ConversionToken
	if resp.Data.ConversionType == types.ConversionTypeDownload {
		out.State = StateSucceeded
		out.ShowReaderChooser = true
	}
	return out
}

// DirectDownload sends the browser straight to the public conversion link.
func (r *Resolver) DirectDownload(lp *types.LandingPage, fx Effects) Outcome {
	if lp == nil || r.links == nil || Entry(lp) != EntryDirectDownload {
		return Outcome{State: StateIdle}
	}
	target := r.links.ConversionLink(lp.ID)
	fx.Navigate(target)
	return Outcome{State: StateSucceeded, NavigatedTo: target}
}

// navigationTarget prefers downloadUrl over redirectUrl.
func navigationTarget(data types.ConversionResult) string {
	if u := strings.TrimSpace(data.DownloadURL); u != "" {
		return u
	}
	return strings.TrimSpace(data.RedirectURL)
}

// validationMessage picks the first failing field in form order.
func validationMessage(err error) string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return FallbackSubmitError
	}
	for _, key := range []string{"firstName", "lastName", "email"} {
		if fe, ok := errs[key]; ok && fe != nil {
			return fe.Error()
		}
	}
	return FallbackSubmitError
}
