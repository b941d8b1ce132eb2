package landing

import (
	"context"
	"errors"
	"strings"

	types "github.com/yungbote/bookfront/internal/domain"
)

// Converter records a conversion for a landing page.
type Converter interface {
	Convert(ctx context.Context, pageID string, req types.ConversionRequest) (*types.ConversionResponse, error)
}

// LinkBuilder builds API links the browser follows directly.
type LinkBuilder interface {
	ConversionLink(pageID string) string
}

// Effects is the set of browser-level side effects a flow may ask for.
// Every flow performs at most one effect per call.
type Effects interface {
	Navigate(url string)
	TriggerDownload(url, filename string)
	OpenExternal(url string)
}

// userMessager is implemented by upstream errors that carry a message meant
// for the visitor.
type userMessager interface {
	UserMessage() string
}

// MessageOf returns the visitor-facing message carried by err, or fallback.
func MessageOf(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var m userMessager
	if errors.As(err, &m) {
		if msg := strings.TrimSpace(m.UserMessage()); msg != "" {
			return msg
		}
	}
	return fallback
}

// rejecter is implemented by upstream errors for requests the API answered
// but refused with success=false.
type rejecter interface {
	Rejected() bool
}

// IsRejected reports whether err is an answered-but-refused API call rather
// than a transport or HTTP failure.
func IsRejected(err error) bool {
	var r rejecter
	return errors.As(err, &r) && r.Rejected()
}

type statuser interface {
	HTTPStatus() int
}

// StatusOf returns the upstream HTTP status behind err, or 0 when the call
// never got an answer.
func StatusOf(err error) int {
	var s statuser
	if errors.As(err, &s) {
		return s.HTTPStatus()
	}
	return 0
}
