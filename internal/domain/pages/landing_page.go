package pages

import "time"

// PageType tags which variant block of a LandingPage is active.
type PageType string

const (
	PageTypeSimpleDownload PageType = "simple_download"
	PageTypeEmailSignup    PageType = "email_signup"
	PageTypeRestricted     PageType = "restricted"
	PageTypeUniversalLink  PageType = "universal_link"
)

// PageTypes lists every known page type. Tests range over it to make sure each
// type is handled wherever the variant is switched on.
func PageTypes() []PageType {
	return []PageType{
		PageTypeSimpleDownload,
		PageTypeEmailSignup,
		PageTypeRestricted,
		PageTypeUniversalLink,
	}
}

// LandingPage is the public projection of a configured book landing page.
// Only the variant block named by Type is meaningful; the others are ignored
// even when the API returns them.
type LandingPage struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	Slug      string    `json:"slug"`
	Type      PageType  `json:"type"`
	IsActive  bool      `json:"isActive"`
	Analytics Analytics `json:"analytics"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	DownloadPage      *DownloadPageSettings      `json:"downloadPage,omitempty"`
	EmailSignupPage   *EmailSignupPageSettings   `json:"emailSignupPage,omitempty"`
	RestrictedPage    *RestrictedPageSettings    `json:"restrictedPage,omitempty"`
	UniversalBookLink *UniversalBookLinkSettings `json:"universalBookLink,omitempty"`
}

type Analytics struct {
	TotalViews       int        `json:"totalViews"`
	TotalConversions int        `json:"totalConversions"`
	UniqueVisitors   int        `json:"uniqueVisitors"`
	LastAccessed     *time.Time `json:"lastAccessed,omitempty"`
}

// PublicPage is the payload of GET /landing-pages/public/:id.
type PublicPage struct {
	LandingPage LandingPage `json:"landingPage"`
	Book        Book        `json:"book"`
}

type Book struct {
	ID            string `json:"_id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Description   string `json:"description"`
	CoverImageURL string `json:"coverImageUrl,omitempty"`
	Tagline       string `json:"tagline,omitempty"`
	EbookFileURL  string `json:"ebookFileUrl,omitempty"`
}

type DownloadPageSettings struct {
	PageName       string        `json:"pageName"`
	ExpirationDate string        `json:"expirationDate,omitempty"`
	DownloadLimit  *int          `json:"downloadLimit,omitempty"`
	Settings       *PageSettings `json:"landingPageSettings,omitempty"`
	Advanced       *struct {
		AllowMultipleDownloads   bool   `json:"allowMultipleDownloads,omitempty"`
		RequireEmailVerification bool   `json:"requireEmailVerification,omitempty"`
		CustomRedirectURL        string `json:"customRedirectUrl,omitempty"`
	} `json:"advancedSettings,omitempty"`
}

// MailingListAction is the email-signup page's list subscription mode.
type MailingListAction string

const (
	MailingListNone     MailingListAction = "none"
	MailingListOptional MailingListAction = "optional"
	MailingListRequired MailingListAction = "required"
)

type EmailSignupPageSettings struct {
	PageName          string            `json:"pageName"`
	MailingListAction MailingListAction `json:"mailingListAction"`
	IntegrationList   string            `json:"integrationList"`
	ExpirationDate    string            `json:"expirationDate,omitempty"`
	ClaimLimit        *int              `json:"claimLimit,omitempty"`
	AskFirstName      bool              `json:"askFirstName"`
	AskLastName       bool              `json:"askLastName"`
	ConfirmEmail      bool              `json:"confirmEmail"`
	Settings          *PageSettings     `json:"landingPageSettings,omitempty"`
	ThankYou          *ThankYouSettings `json:"thankYouPageSettings,omitempty"`
	Advanced          *struct {
		DoubleOptIn           bool   `json:"doubleOptIn,omitempty"`
		CustomThankYouMessage string `json:"customThankYouMessage,omitempty"`
		AutoResponder         bool   `json:"autoResponder,omitempty"`
	} `json:"advancedSettings,omitempty"`
}

type ThankYouSettings struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	ButtonText  string `json:"buttonText"`
	RedirectURL string `json:"redirectUrl,omitempty"`
}

type RestrictedPageSettings struct {
	PageName       string                      `json:"pageName"`
	RestrictedList string                      `json:"restrictedList"`
	RedirectURL    string                      `json:"redirectUrl,omitempty"`
	ExpirationDate string                      `json:"expirationDate,omitempty"`
	DownloadLimit  *int                        `json:"downloadLimit,omitempty"`
	ConfirmEmail   bool                        `json:"confirmEmail"`
	Settings       *PageSettings               `json:"landingPageSettings,omitempty"`
	Delivery       *DeliveryPageSettings       `json:"deliveryPageSettings,omitempty"`
	Advanced       *RestrictedAdvancedSettings `json:"advancedSettings,omitempty"`
}

type DeliveryPageSettings struct {
	Title              string `json:"title"`
	Message            string `json:"message"`
	DownloadButtonText string `json:"downloadButtonText"`
	ShowDownloadCount  bool   `json:"showDownloadCount,omitempty"`
}

type RestrictedAdvancedSettings struct {
	AllowBookmarking         bool   `json:"allowBookmarking,omitempty"`
	CustomRestrictionMessage string `json:"customRestrictionMessage,omitempty"`
	RequireEmailVerification bool   `json:"requireEmailVerification,omitempty"`
}

type UniversalBookLinkSettings struct {
	LinkName              string        `json:"linkName"`
	SelectedBook          string        `json:"selectedBook"`
	AudioSample           string        `json:"audioSample"`
	DisplayEbookLinks     bool          `json:"displayEbookLinks"`
	DisplayAudiobookLinks bool          `json:"displayAudiobookLinks"`
	DisplayPaperbackLinks bool          `json:"displayPaperbackLinks"`
	ExpirationDate        string        `json:"expirationDate,omitempty"`
	Settings              *PageSettings `json:"landingPageSettings,omitempty"`
	Advanced              *struct {
		TrackClicks      bool   `json:"trackClicks,omitempty"`
		CustomDomain     string `json:"customDomain,omitempty"`
		AnalyticsEnabled bool   `json:"analyticsEnabled,omitempty"`
	} `json:"advancedSettings,omitempty"`
}
