package landing

import (
	types "github.com/yungbote/bookfront/internal/domain"
)

// CaptureRequirements says which form fields a page collects. It is derived
// from the record on every call and never stored.
type CaptureRequirements struct {
	Email     bool `json:"email"`
	FirstName bool `json:"firstName"`
	LastName  bool `json:"lastName"`
}

func NeedsEmailCapture(lp *types.LandingPage) bool {
	if lp == nil {
		return false
	}
	return lp.Type == types.PageTypeEmailSignup || lp.Type == types.PageTypeRestricted
}

func ShouldAskFirstName(lp *types.LandingPage) bool {
	if lp == nil || lp.Type != types.PageTypeEmailSignup || lp.EmailSignupPage == nil {
		return false
	}
	return lp.EmailSignupPage.AskFirstName
}

func ShouldAskLastName(lp *types.LandingPage) bool {
	if lp == nil || lp.Type != types.PageTypeEmailSignup || lp.EmailSignupPage == nil {
		return false
	}
	return lp.EmailSignupPage.AskLastName
}

func Requirements(lp *types.LandingPage) CaptureRequirements {
	return CaptureRequirements{
		Email:     NeedsEmailCapture(lp),
		FirstName: ShouldAskFirstName(lp),
		LastName:  ShouldAskLastName(lp),
	}
}

// EntryMode is how a visitor gets the book from the landing page.
type EntryMode string

const (
	EntryEmailCapture   EntryMode = "email_capture"
	EntrySimpleDownload EntryMode = "simple_download"
	EntryDirectDownload EntryMode = "direct_download"
)

func Entry(lp *types.LandingPage) EntryMode {
	switch {
	case NeedsEmailCapture(lp):
		return EntryEmailCapture
	case lp != nil && lp.Type == types.PageTypeSimpleDownload:
		return EntrySimpleDownload
	default:
		return EntryDirectDownload
	}
}
