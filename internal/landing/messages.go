package landing

import (
	"strings"

	types "github.com/yungbote/bookfront/internal/domain"
)

// SuccessMessage is shown in place of the form once a conversion completes
// without a navigation target.
type SuccessMessage struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Note    string `json:"note,omitempty"`
}

func SuccessMessageFor(lp *types.LandingPage) SuccessMessage {
	var t types.PageType
	if lp != nil {
		t = lp.Type
	}
	switch t {
	case types.PageTypeEmailSignup:
		msg := SuccessMessage{
			Title:   "Check Your Email!",
			Message: "We've sent you a download link. Please check your inbox (and spam folder).",
		}
		if ty := lp.EmailSignupPage; ty != nil && ty.ThankYou != nil {
			msg.Note = strings.TrimSpace(ty.ThankYou.Message)
		}
		return msg
	case types.PageTypeRestricted:
		return SuccessMessage{
			Title:   "Access Granted!",
			Message: "Your download should start automatically. If not, please check your email.",
		}
	case types.PageTypeSimpleDownload:
		return SuccessMessage{
			Title:   "Download Starting!",
			Message: "Your book download should begin automatically.",
		}
	default:
		return SuccessMessage{
			Title:   "Success!",
			Message: "Thank you for your interest.",
		}
	}
}

// ConfirmationMessage is shown while a double opt-in email is pending.
type ConfirmationMessage struct {
	Title        string
	Lead         string
	Instructions string
	SupportEmail string
	Retry        string

	// SentTo is the address the confirmation went to, when known.
	SentTo string
}

func NewConfirmationMessage(supportEmail string) ConfirmationMessage {
	return ConfirmationMessage{
		Title: "Almost finished...",
		Lead:  "We just need to confirm your email address.",
		Instructions: "Click the link in the email we just sent you to confirm your email address and receive your book. " +
			"If you don't see the email after a minute or two, check your SPAM folder, as it may have gone there by mistake.",
		SupportEmail: supportEmail,
		Retry:        "Didn't receive the email? Click here to try again",
	}
}
