package landing

import (
	types "github.com/yungbote/bookfront/internal/domain"
)

// Settings returns the display settings nested under the variant named by the
// page's type. Nil means "use defaults": the page, the variant block or its
// settings may all be missing while a page is still being configured.
func Settings(lp *types.LandingPage) *types.PageSettings {
	if lp == nil {
		return nil
	}
	switch lp.Type {
	case types.PageTypeSimpleDownload:
		if lp.DownloadPage != nil {
			return lp.DownloadPage.Settings
		}
	case types.PageTypeEmailSignup:
		if lp.EmailSignupPage != nil {
			return lp.EmailSignupPage.Settings
		}
	case types.PageTypeRestricted:
		if lp.RestrictedPage != nil {
			return lp.RestrictedPage.Settings
		}
	case types.PageTypeUniversalLink:
		if lp.UniversalBookLink != nil {
			return lp.UniversalBookLink.Settings
		}
	}
	return nil
}

// Variant reports the JSON key of the active variant block, or "" for an
// unknown page type.
func Variant(lp *types.LandingPage) string {
	if lp == nil {
		return ""
	}
	switch lp.Type {
	case types.PageTypeSimpleDownload:
		return "downloadPage"
	case types.PageTypeEmailSignup:
		return "emailSignupPage"
	case types.PageTypeRestricted:
		return "restrictedPage"
	case types.PageTypeUniversalLink:
		return "universalBookLink"
	default:
		return ""
	}
}
