package purchases

import "time"

// Transaction is the token-scoped purchase record behind /access/:token.
type Transaction struct {
	ID            string    `json:"_id"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerName  string    `json:"customerName,omitempty"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	DownloadCount int       `json:"downloadCount"`
	MaxDownloads  int       `json:"maxDownloads"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// RemainingDownloads is MaxDownloads - DownloadCount, never below zero.
func (t Transaction) RemainingDownloads() int {
	remaining := t.MaxDownloads - t.DownloadCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (t Transaction) CanDownload() bool {
	return t.MaxDownloads-t.DownloadCount > 0
}

type AccessBook struct {
	ID            string `json:"_id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Description   string `json:"description,omitempty"`
	CoverImageURL string `json:"coverImageUrl,omitempty"`
	FileType      string `json:"fileType"`
	PageCount     int    `json:"pageCount,omitempty"`
	WordCount     int    `json:"wordCount,omitempty"`
}

type DeliveryLink struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// AccessData is the payload of GET /payment-transactions/verify/:token.
type AccessData struct {
	Transaction  Transaction  `json:"transaction"`
	Book         AccessBook   `json:"book"`
	DeliveryLink DeliveryLink `json:"deliveryLink"`
}

// DownloadLink is the payload of GET /payment-transactions/download/:token.
type DownloadLink struct {
	DownloadURL   string `json:"downloadUrl"`
	DownloadCount int    `json:"downloadCount"`
}

type PaymentProvider string

const (
	PaymentProviderPayPal PaymentProvider = "paypal"
	PaymentProviderStripe PaymentProvider = "stripe"
	PaymentProviderManual PaymentProvider = "manual"
)

// ParsePaymentProvider falls back to manual for anything unrecognised.
func ParsePaymentProvider(raw string) PaymentProvider {
	switch PaymentProvider(raw) {
	case PaymentProviderPayPal, PaymentProviderStripe:
		return PaymentProvider(raw)
	default:
		return PaymentProviderManual
	}
}

// PurchaseRequest is the body of POST /payment-transactions/create.
type PurchaseRequest struct {
	Slug            string          `json:"slug"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerName    string          `json:"customerName"`
	TransactionID   string          `json:"transactionId"`
	PaymentProvider PaymentProvider `json:"paymentProvider"`
}

type PurchaseResult struct {
	AccessToken string `json:"accessToken"`
}
