package delivery

import (
	"context"

	types "github.com/yungbote/bookfront/internal/domain"
)

type effect struct {
	kind     string
	url      string
	filename string
}

type recordingEffects struct {
	effects []effect
}

func (r *recordingEffects) Navigate(url string) {
	r.effects = append(r.effects, effect{kind: "navigate", url: url})
}

func (r *recordingEffects) TriggerDownload(url, filename string) {
	r.effects = append(r.effects, effect{kind: "download", url: url, filename: filename})
}

func (r *recordingEffects) OpenExternal(url string) {
	r.effects = append(r.effects, effect{kind: "external", url: url})
}

type apiErr struct {
	msg      string
	rejected bool
}

func (e *apiErr) Error() string       { return "api: " + e.msg }
func (e *apiErr) UserMessage() string { return e.msg }
func (e *apiErr) Rejected() bool      { return e.rejected }

type fakeLinks struct{}

func (fakeLinks) DownloadLink(token string, format types.Format) string {
	return "http://api.test/api/landing-pages/download/" + token + "?format=" + string(format)
}

func (fakeLinks) SimpleDownloadLink(pageID string, format types.Format) string {
	return "http://api.test/api/landing-pages/simple_download/" + pageID + "?format=" + string(format)
}

type fakeAPI struct {
	delivery *types.Delivery
	access   *types.AccessData
	link     *types.DownloadLink
	purchase *types.PurchaseResult
	err      error

	calls    int
	sent     types.SendBookRequest
	purchReq types.PurchaseRequest
}

func (f *fakeAPI) Confirm(context.Context, string) (*types.Delivery, error) {
	f.calls++
	return f.delivery, f.err
}

func (f *fakeAPI) SendBook(_ context.Context, _ string, req types.SendBookRequest) error {
	f.calls++
	f.sent = req
	return f.err
}

func (f *fakeAPI) VerifyAccess(context.Context, string) (*types.AccessData, error) {
	f.calls++
	return f.access, f.err
}

func (f *fakeAPI) IssueDownload(context.Context, string) (*types.DownloadLink, error) {
	f.calls++
	return f.link, f.err
}

func (f *fakeAPI) CreatePurchase(_ context.Context, req types.PurchaseRequest) (*types.PurchaseResult, error) {
	f.calls++
	f.purchReq = req
	return f.purchase, f.err
}
