package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// The two failure kinds a visitor can see.
const (
	CodeFetchFailed      = "fetch_failed"
	CodeSubmissionFailed = "submission_failed"
)

type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// FetchFailed is a terminal failure: the whole page is replaced by an error
// page. A zero status becomes 502.
func FetchFailed(status int, message string, err error) *Error {
	if status < 400 {
		status = http.StatusBadGateway
	}
	return &Error{Status: status, Code: CodeFetchFailed, Message: message, Err: err}
}

// SubmissionFailed is shown inline and leaves the form editable.
func SubmissionFailed(message string, err error) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Code: CodeSubmissionFailed, Message: message, Err: err}
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
