package pages

// ConversionType values returned by the conversion endpoint. Only "download"
// is acted on; other values are ignored.
const ConversionTypeDownload = "download"

// ConversionRequest carries only the fields the page requires. Nil fields are
// omitted from the JSON body entirely.
type ConversionRequest struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

type ConversionResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    *ConversionResult `json:"data,omitempty"`
}

type ConversionResult struct {
	DownloadURL       string `json:"downloadUrl,omitempty"`
	RedirectURL       string `json:"redirectUrl,omitempty"`
	NeedsConfirmation bool   `json:"needsConfirmation,omitempty"`
	ConversionToken   string `json:"conversionToken,omitempty"`
	ConversionType    string `json:"conversionType,omitempty"`
}
