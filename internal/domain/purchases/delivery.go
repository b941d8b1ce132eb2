package purchases

import "strings"

// Format is a deliverable file format.
type Format string

const (
	FormatEPUB  Format = "epub"
	FormatPDF   Format = "pdf"
	FormatAudio Format = "audio"
)

func ParseFormat(raw string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatEPUB:
		return FormatEPUB, true
	case FormatPDF:
		return FormatPDF, true
	case FormatAudio:
		return FormatAudio, true
	default:
		return "", false
	}
}

type AvailableFormats struct {
	EPUB  bool `json:"epub,omitempty"`
	PDF   bool `json:"pdf,omitempty"`
	Audio bool `json:"audio,omitempty"`
}

// DefaultFormats is what the delivery page offers when the API omits the set.
func DefaultFormats() AvailableFormats {
	return AvailableFormats{EPUB: true, PDF: true}
}

// Formats lists the enabled formats in display order.
func (f AvailableFormats) Formats() []Format {
	out := make([]Format, 0, 3)
	if f.EPUB {
		out = append(out, FormatEPUB)
	}
	if f.PDF {
		out = append(out, FormatPDF)
	}
	if f.Audio {
		out = append(out, FormatAudio)
	}
	return out
}

// DeliveryBook is the book reference returned with a confirmed delivery.
type DeliveryBook struct {
	ID            string `json:"_id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	CoverImageURL string `json:"coverImageUrl,omitempty"`
}

// DefaultExpirationDays is shown when the confirm payload has no expiry.
const DefaultExpirationDays = 13

// Delivery is the payload returned by GET /landing-pages/confirm/:token.
type Delivery struct {
	Book             DeliveryBook      `json:"book"`
	DownloadURL      string            `json:"downloadUrl"`
	ExpirationDays   int               `json:"expirationDays,omitempty"`
	UserEmail        string            `json:"userEmail,omitempty"`
	AvailableFormats *AvailableFormats `json:"availableFormats,omitempty"`
}

// WithDefaults fills the fields the delivery page falls back on.
func (d Delivery) WithDefaults() Delivery {
	if d.ExpirationDays <= 0 {
		d.ExpirationDays = DefaultExpirationDays
	}
	if d.AvailableFormats == nil {
		formats := DefaultFormats()
		d.AvailableFormats = &formats
	}
	return d
}

// SendBookRequest is the body of POST /landing-pages/send-book/:token.
type SendBookRequest struct {
	Email  string `json:"email"`
	Format Format `json:"format"`
}
