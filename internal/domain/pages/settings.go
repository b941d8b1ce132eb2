package pages

// TextSource names where a heading or body slot takes its text from.
type TextSource string

const (
	TextNone            TextSource = "none"
	TextTagline         TextSource = "tagline"
	TextNewsletter      TextSource = "newsletter"
	TextGetFreeCopy     TextSource = "get_free_copy"
	TextSubscribers     TextSource = "subscribers"
	TextBookDescription TextSource = "book_description"
	TextDefault         TextSource = "default"
	TextCustom          TextSource = "custom"
)

// TextSpec is a display slot: a source tag plus the literal used when the
// source is custom.
type TextSpec struct {
	Type       TextSource `json:"type"`
	CustomText string     `json:"customText,omitempty"`
}

// PageSettings is the display configuration shared by every variant block.
type PageSettings struct {
	PageLayout       string    `json:"pageLayout"`
	Include3DEffects *bool     `json:"include3DEffects,omitempty"`
	PageTheme        string    `json:"pageTheme"`
	AccentColor      string    `json:"accentColor"`
	PageTitle        string    `json:"pageTitle"`
	ButtonText       string    `json:"buttonText"`
	ModalTitle       string    `json:"modalTitle,omitempty"`
	ModalDescription string    `json:"modalDescription,omitempty"`
	Heading1         *TextSpec `json:"heading1,omitempty"`
	Heading2         *TextSpec `json:"heading2,omitempty"`
	PopupMessage     *TextSpec `json:"popupMessage,omitempty"`
	PageText         *TextSpec `json:"pageText,omitempty"`
}
