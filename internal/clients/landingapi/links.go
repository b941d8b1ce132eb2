package landingapi

import (
	"net/url"

	types "github.com/yungbote/bookfront/internal/domain"
)

// DownloadLink is the gated file link behind a confirmation token.
func (c *Client) DownloadLink(token string, format types.Format) string {
	return c.baseURL + "/landing-pages/download/" + url.PathEscape(token) + "?format=" + url.QueryEscape(string(format))
}

// SimpleDownloadLink is the file link of a simple_download page.
func (c *Client) SimpleDownloadLink(pageID string, format types.Format) string {
	return c.baseURL + "/landing-pages/simple_download/" + url.PathEscape(pageID) + "?format=" + url.QueryEscape(string(format))
}

// ConversionLink is followed directly by the browser for direct downloads.
func (c *Client) ConversionLink(pageID string) string {
	return c.baseURL + "/landing-pages/public/" + url.PathEscape(pageID) + "/conversion"
}

func (c *Client) CoverURL(bookID string) string {
	return c.baseURL + "/books/" + url.PathEscape(bookID) + "/cover"
}
