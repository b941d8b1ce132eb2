package landingapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a call the API answered with a non-2xx status, or with a 2xx
// envelope whose success flag is false.
type APIError struct {
	StatusCode int
	Message    string
	Body       string

	rejected bool
}

func (e *APIError) Error() string {
	if e == nil {
		return "landing api error"
	}
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if msg == "" {
		msg = "request failed"
	}
	if e.rejected {
		return fmt.Sprintf("landing api rejected: status=%d message=%s", e.StatusCode, msg)
	}
	return fmt.Sprintf("landing api error: status=%d message=%s", e.StatusCode, msg)
}

// UserMessage is the server-provided message, meant for the visitor.
func (e *APIError) UserMessage() string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.Message)
}

// Rejected reports a 2xx answer carrying success=false.
func (e *APIError) Rejected() bool {
	return e != nil && e.rejected
}

func (e *APIError) HTTPStatus() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

func parseHTTPError(status int, raw []byte) error {
	body := strings.TrimSpace(string(raw))
	var env struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &env); err == nil {
		msg := strings.TrimSpace(env.Message)
		if msg == "" {
			msg = strings.TrimSpace(env.Error)
		}
		return &APIError{StatusCode: status, Message: msg, Body: body}
	}
	return &APIError{StatusCode: status, Body: body}
}

// MessageOf returns the server message carried by err, or fallback.
func MessageOf(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg := apiErr.UserMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}

// StatusOf returns the upstream HTTP status behind err, or 0 when the call
// never got an answer.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
