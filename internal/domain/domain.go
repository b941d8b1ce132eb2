package domain

import (
	"github.com/yungbote/bookfront/internal/domain/pages"
	"github.com/yungbote/bookfront/internal/domain/purchases"
)

const (
	PageTypeSimpleDownload = pages.PageTypeSimpleDownload
	PageTypeEmailSignup    = pages.PageTypeEmailSignup
	PageTypeRestricted     = pages.PageTypeRestricted
	PageTypeUniversalLink  = pages.PageTypeUniversalLink

	TextNone            = pages.TextNone
	TextTagline         = pages.TextTagline
	TextNewsletter      = pages.TextNewsletter
	TextGetFreeCopy     = pages.TextGetFreeCopy
	TextSubscribers     = pages.TextSubscribers
	TextBookDescription = pages.TextBookDescription
	TextDefault         = pages.TextDefault
	TextCustom          = pages.TextCustom

	ConversionTypeDownload = pages.ConversionTypeDownload

	FormatEPUB  = purchases.FormatEPUB
	FormatPDF   = purchases.FormatPDF
	FormatAudio = purchases.FormatAudio

	DefaultExpirationDays = purchases.DefaultExpirationDays

	PaymentProviderPayPal = purchases.PaymentProviderPayPal
	PaymentProviderStripe = purchases.PaymentProviderStripe
	PaymentProviderManual = purchases.PaymentProviderManual
)

type (
	PageType                  = pages.PageType
	LandingPage               = pages.LandingPage
	Analytics                 = pages.Analytics
	PublicPage                = pages.PublicPage
	Book                      = pages.Book
	PageSettings              = pages.PageSettings
	TextSource                = pages.TextSource
	TextSpec                  = pages.TextSpec
	DownloadPageSettings      = pages.DownloadPageSettings
	EmailSignupPageSettings   = pages.EmailSignupPageSettings
	ThankYouSettings          = pages.ThankYouSettings
	RestrictedPageSettings    = pages.RestrictedPageSettings
	UniversalBookLinkSettings = pages.UniversalBookLinkSettings
	ConversionRequest         = pages.ConversionRequest
	ConversionResponse        = pages.ConversionResponse
	ConversionResult          = pages.ConversionResult

	Format           = purchases.Format
	AvailableFormats = purchases.AvailableFormats
	Delivery         = purchases.Delivery
	DeliveryBook     = purchases.DeliveryBook
	SendBookRequest  = purchases.SendBookRequest
	Transaction      = purchases.Transaction
	AccessBook       = purchases.AccessBook
	AccessData       = purchases.AccessData
	DeliveryLink     = purchases.DeliveryLink
	DownloadLink     = purchases.DownloadLink
	PaymentProvider  = purchases.PaymentProvider
	PurchaseRequest  = purchases.PurchaseRequest
	PurchaseResult   = purchases.PurchaseResult
)

func PageTypes() []PageType { return pages.PageTypes() }

func ParseFormat(raw string) (Format, bool) { return purchases.ParseFormat(raw) }

func DefaultFormats() AvailableFormats { return purchases.DefaultFormats() }

func ParsePaymentProvider(raw string) PaymentProvider {
	return purchases.ParsePaymentProvider(raw)
}
