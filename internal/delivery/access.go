package delivery

import (
	"context"
	"strings"

	types "github.com/yungbote/bookfront/internal/domain"
	"github.com/yungbote/bookfront/internal/landing"
	"github.com/yungbote/bookfront/internal/platform/logger"
)

const (
	InvalidAccessToken      = "Invalid access token"
	FallbackVerifyError     = "Failed to verify access. The link may have expired."
	FallbackDownloadError   = "Failed to download book. Please try again."
	FallbackDownloadLink    = "Failed to generate download link"
	DownloadLimitReachedMsg = "Download Limit Reached"
)

// AccessAPI is the part of the remote API behind /access/:token.
type AccessAPI interface {
	VerifyAccess(ctx context.Context, token string) (*types.AccessData, error)
	IssueDownload(ctx context.Context, token string) (*types.DownloadLink, error)
}

type AccessFlow struct {
	log *logger.Logger
	api AccessAPI
}

func NewAccessFlow(log *logger.Logger, api AccessAPI) *AccessFlow {
	if log == nil {
		log = logger.Nop()
	}
	return &AccessFlow{log: log, api: api}
}

// Verify loads the purchase behind token. A refused or failed verification is
// terminal and never yields access data.
func (a *AccessFlow) Verify(ctx context.Context, token string) (*types.AccessData, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, terminal(InvalidAccessToken, ErrMissingToken)
	}
	data, err := a.api.VerifyAccess(ctx, token)
	if err != nil {
		a.log.Warn("verify access failed", "token", token, "error", err)
		fallback := FallbackVerifyError
		if landing.IsRejected(err) {
			fallback = InvalidAccessToken
		}
		return nil, terminal(landing.MessageOf(err, fallback), err)
	}
	if data == nil {
		return nil, terminal(InvalidAccessToken, nil)
	}
	return data, nil
}

// Download issues a fresh download link and opens it in a new context. The
// returned data carries the API's download count; nothing is decremented
// locally. No request is made once the limit is reached.
func (a *AccessFlow) Download(ctx context.Context, token string, data types.AccessData, fx landing.Effects) (types.AccessData, error) {
	if !data.Transaction.CanDownload() {
		return data, inline(DownloadLimitReachedMsg, ErrDownloadLimitReached)
	}
	link, err := a.api.IssueDownload(ctx, token)
	if err != nil {
		a.log.Warn("issue download failed", "token", token, "error", err)
		fallback := FallbackDownloadError
		if landing.IsRejected(err) {
			fallback = FallbackDownloadLink
		}
		return data, inline(landing.MessageOf(err, fallback), err)
	}
	if link == nil || strings.TrimSpace(link.DownloadURL) == "" {
		return data, inline(FallbackDownloadLink, nil)
	}
	fx.OpenExternal(link.DownloadURL)
	data.Transaction.DownloadCount = link.DownloadCount
	return data, nil
}
