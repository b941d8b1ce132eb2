package landing

import (
	"strings"

	types "github.com/yungbote/bookfront/internal/domain"
)

const (
	DefaultThemeName  = "WordToWallet Black & Gray"
	DefaultButtonText = "GET MY BOOK"

	defaultModalTitle = "Let's stay in touch!"
)

// PageView is everything the landing page and the JSON view need, resolved
// once per request from the record and its book.
type PageView struct {
	PageID           string              `json:"pageId"`
	Slug             string              `json:"slug"`
	Type             types.PageType      `json:"type"`
	Title            string              `json:"title"`
	ButtonText       string              `json:"buttonText"`
	Heading1         string              `json:"heading1"`
	Heading2         string              `json:"heading2"`
	BodyText         string              `json:"bodyText"`
	ThemeName        string              `json:"theme"`
	AccentColor      string              `json:"accentColor,omitempty"`
	Include3D        bool                `json:"include3DEffects"`
	ModalTitle       string              `json:"modalTitle"`
	ModalDescription string              `json:"modalDescription"`
	Requirements     CaptureRequirements `json:"requirements"`
	Entry            EntryMode           `json:"entry"`
	Book             types.Book          `json:"book"`
}

func ResolvePage(lp *types.LandingPage, book types.Book) PageView {
	view := PageView{
		Title:        freeCopyText(book),
		ButtonText:   DefaultButtonText,
		ThemeName:    DefaultThemeName,
		Include3D:    true,
		ModalTitle:   defaultModalTitle,
		Requirements: Requirements(lp),
		Entry:        Entry(lp),
		Book:         book,
	}
	view.ModalDescription = defaultModalDescription(book)
	if lp != nil {
		view.PageID = lp.ID
		view.Slug = lp.Slug
		view.Type = lp.Type
	}

	s := Settings(lp)
	if s == nil {
		return view
	}
	if t := strings.TrimSpace(s.PageTitle); t != "" {
		view.Title = ReplacePlaceholders(t, book)
	}
	if b := strings.TrimSpace(s.ButtonText); b != "" {
		view.ButtonText = b
	}
	if th := strings.TrimSpace(s.PageTheme); th != "" {
		view.ThemeName = th
	}
	if s.Include3DEffects != nil {
		view.Include3D = *s.Include3DEffects
	}
	if s.ModalTitle != "" {
		view.ModalTitle = s.ModalTitle
	}
	if s.ModalDescription != "" {
		view.ModalDescription = s.ModalDescription
	}
	view.AccentColor = s.AccentColor
	view.Heading1 = ResolveHeading(s.Heading1, book)
	view.Heading2 = ResolveHeading(s.Heading2, book)
	view.BodyText = ResolveBodyText(s.PageText, book)
	return view
}

func defaultModalDescription(book types.Book) string {
	return "Enter your email address to join my newsletter. You'll receive exclusive deals and special offers, " +
		"and be the first to know about new releases. You will also receive a copy of " + book.Title +
		" as a welcome gift! You can unsubscribe at any time."
}
