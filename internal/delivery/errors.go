package delivery

import (
	"errors"
)

var (
	ErrMissingToken         = errors.New("delivery: missing token")
	ErrDownloadLimitReached = errors.New("delivery: download limit reached")
	ErrInvalidRequest       = errors.New("delivery: invalid request")
)

// Failure is a flow error carrying the message shown to the visitor.
// Terminal failures replace the whole page; the rest are inline notices.
type Failure struct {
	Message  string
	Terminal bool
	Err      error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return f.Message
	}
	return f.Message + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error { return f.Err }

func (f *Failure) UserMessage() string { return f.Message }

func terminal(msg string, err error) *Failure {
	return &Failure{Message: msg, Terminal: true, Err: err}
}

func inline(msg string, err error) *Failure {
	return &Failure{Message: msg, Err: err}
}
