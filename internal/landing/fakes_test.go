package landing

import (
	"context"
	"encoding/json"
	"sync"

	types "github.com/yungbote/bookfront/internal/domain"
)

type fakeConverter struct {
	mu     sync.Mutex
	resp   *types.ConversionResponse
	err    error
	calls  int
	pageID string
	body   []byte
}

func (f *fakeConverter) Convert(_ context.Context, pageID string, req types.ConversionRequest) (*types.ConversionResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.pageID = pageID
	f.body, _ = json.Marshal(req)
	return f.resp, f.err
}

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

type staticLinks struct{}

func (staticLinks) ConversionLink(pageID string) string {
	return "http://api.test/api/landing-pages/public/" + pageID + "/conversion"
}

type messageErr struct{ msg string }

func (e *messageErr) Error() string       { return "upstream: " + e.msg }
func (e *messageErr) UserMessage() string { return e.msg }

func page(t types.PageType) *types.LandingPage {
	lp := &types.LandingPage{ID: "lp1", Slug: "dune", Type: t}
	switch t {
	case types.PageTypeSimpleDownload:
		lp.DownloadPage = &types.DownloadPageSettings{}
	case types.PageTypeEmailSignup:
		lp.EmailSignupPage = &types.EmailSignupPageSettings{}
	case types.PageTypeRestricted:
		lp.RestrictedPage = &types.RestrictedPageSettings{}
	case types.PageTypeUniversalLink:
		lp.UniversalBookLink = &types.UniversalBookLinkSettings{}
	}
	return lp
}
