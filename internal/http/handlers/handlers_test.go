package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/bookfront/internal/clients/landingapi"
	"github.com/yungbote/bookfront/internal/delivery"
	"github.com/yungbote/bookfront/internal/landing"
	"github.com/yungbote/bookfront/internal/observability"
	"github.com/yungbote/bookfront/internal/platform/logger"
	"github.com/yungbote/bookfront/internal/services"
)

const (
	emailSignupPage = `{"success":true,"data":{
		"landingPage":{"_id":"lp1","slug":"dune","type":"email_signup","isActive":true,
			"emailSignupPage":{"pageName":"Dune","askFirstName":true,
				"landingPageSettings":{"pageTitle":"{{title}} for free","pageTheme":"Blue Theme","heading1":{"type":"newsletter"}}}},
		"book":{"_id":"b1","title":"Dune","author":"Frank Herbert","coverImageUrl":"https://cdn.test/dune.jpg"}}}`

	simpleDownloadPage = `{"success":true,"data":{
		"landingPage":{"_id":"lp2","slug":"dune","type":"simple_download","isActive":true,
			"downloadPage":{"pageName":"Dune","landingPageSettings":{"buttonText":"DOWNLOAD"}}},
		"book":{"_id":"b1","title":"Dune","author":"Frank Herbert"}}}`

	universalLinkPage = `{"success":true,"data":{
		"landingPage":{"_id":"lp3","slug":"dune","type":"universal_link","isActive":true,
			"universalBookLink":{"linkName":"Dune"}},
		"book":{"_id":"b1","title":"Dune","author":"Frank Herbert"}}}`

	confirmedDelivery = `{"success":true,"data":{
		"book":{"_id":"b1","title":"Dune","author":"Frank Herbert"},
		"downloadUrl":"https://cdn.test/dune.epub","userEmail":"reader@test.co",
		"availableFormats":{"epub":true,"pdf":false}}}`

	accessData = `{"success":true,"data":{
		"transaction":{"_id":"t1","customerEmail":"buyer@test.co","amount":9.5,"currency":"USD",
			"downloadCount":%d,"maxDownloads":3,"expiresAt":"2026-03-01T00:00:00Z"},
		"book":{"_id":"b1","title":"Dune","author":"Frank Herbert","fileType":"epub"},
		"deliveryLink":{"title":"Dune"}}}`
)

type upstream struct {
	t   *testing.T
	mux *http.ServeMux
	srv *httptest.Server

	conversions atomic.Int32
	downloads   atomic.Int32
	lastBody    atomic.Value
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{t: t, mux: http.NewServeMux()}
	u.srv = httptest.NewServer(u.mux)
	t.Cleanup(u.srv.Close)
	return u
}

func (u *upstream) handle(pattern string, status int, body string) {
	u.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		u.lastBody.Store(string(raw))
		if strings.HasSuffix(r.URL.Path, "/conversion") {
			u.conversions.Add(1)
		}
		if strings.Contains(r.URL.Path, "/payment-transactions/download/") {
			u.downloads.Add(1)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func (u *upstream) base() string { return u.srv.URL + "/api" }

func newTestRouter(t *testing.T, u *upstream) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.Nop()
	metrics := observability.NewMetrics()
	client, err := landingapi.New(log, landingapi.Options{BaseURL: u.base(), Timeout: 2 * time.Second, Metrics: metrics})
	require.NoError(t, err)
	covers, err := services.NewCoverService(log)
	require.NoError(t, err)

	site := Site{Brand: "Word2Wallet", SupportEmail: "support@word2wallet.com"}
	chooser := delivery.NewChooser("http://reader.test")

	landingH := NewLandingHandler(LandingDeps{
		Log:      log,
		Site:     site,
		Pages:    client,
		Links:    client,
		Resolver: landing.NewResolver(log, client, client),
		Chooser:  chooser,
		Metrics:  metrics,
	})
	confirmH := NewConfirmHandler(log, site, client, delivery.NewDeliveries(log, client), chooser, metrics)
	accessH := NewAccessHandler(log, site, client, delivery.NewAccessFlow(log, client), metrics)
	purchaseH := NewPurchaseHandler(log, site, delivery.NewPurchase(log, client))
	coverH := NewCoverHandler(log, covers)
	apiH := NewPageAPIHandler(log, client)

	r := gin.New()
	r.GET("/healthcheck", NewHealthHandler(nil).HealthCheck)
	r.GET("/api/pages/:id", apiH.Get)
	r.GET("/covers/:bookID/placeholder.png", coverH.Placeholder)
	r.GET("/confirm/:token", confirmH.Show)
	r.GET("/confirm/:token/read", confirmH.Read)
	r.POST("/confirm/:token/send-book", confirmH.SendBook)
	r.GET("/access/:token", accessH.Show)
	r.POST("/access/:token/download", accessH.Download)
	r.GET("/success/:slug", purchaseH.Show)
	r.POST("/success/:slug", purchaseH.Complete)
	r.GET("/", landingH.Home)
	r.GET("/:id", landingH.Show)
	r.POST("/:id/conversion", landingH.Convert)
	r.POST("/:id/download", landingH.Download)
	r.GET("/:id/direct", landingH.Direct)
	r.GET("/:id/read", landingH.Read)
	return r
}

func do(r http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, want, rec.Body.String())
	}
}

func TestHealthAndHome(t *testing.T) {
	r := newTestRouter(t, newUpstream(t))

	rec := do(r, http.MethodGet, "/healthcheck", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "ok", rec.Body.String())

	rec = do(r, http.MethodGet, "/", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "Word2Wallet Landing Pages")
}

func TestLandingShow(t *testing.T) {
	u := newUpstream(t)
	u.handle("GET /api/landing-pages/public/lp1", http.StatusOK, emailSignupPage)
	r := newTestRouter(t, u)

	rec := do(r, http.MethodGet, "/lp1", nil)
	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assert.Contains(t, body, "Dune for free")
	assert.Contains(t, body, "Join our newsletter for exclusive content")
	assert.Contains(t, body, u.base()+"/books/b1/cover")
	assert.Contains(t, body, `href="/lp1?modal=email"`)
	assert.NotContains(t, body, `action="/lp1/conversion"`)

	rec = do(r, http.MethodGet, "/lp1?modal=email", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), `action="/lp1/conversion"`)
	assert.Contains(t, rec.Body.String(), `id="firstName"`)
}

func TestLandingFetchFailures(t *testing.T) {
	u := newUpstream(t)
	u.handle("GET /api/landing-pages/public/gone", http.StatusNotFound, `{"success":false,"message":"Landing page is not active"}`)
	u.handle("GET /api/landing-pages/public/broken", http.StatusInternalServerError, `oops`)
	r := newTestRouter(t, u)

	rec := do(r, http.MethodGet, "/gone", nil)
	requireStatus(t, rec, http.StatusNotFound)
	assert.Contains(t, rec.Body.String(), "Landing page is not active")
	assert.Contains(t, rec.Body.String(), `href="/"`)

	rec = do(r, http.MethodGet, "/broken", nil)
	requireStatus(t, rec, http.StatusInternalServerError)
	assert.Contains(t, rec.Body.String(), LandingPageNotFound)
}

func TestLandingUpstreamUnreachable(t *testing.T) {
	u := newUpstream(t)
	r := newTestRouter(t, u)
	u.srv.Close()

	rec := do(r, http.MethodGet, "/lp1", nil)
	requireStatus(t, rec, http.StatusBadGateway)
	assert.Contains(t, rec.Body.String(), LandingPageNotFound)
}

func TestLandingConvert(t *testing.T) {
	form := url.Values{"email": {" a@b.co "}, "firstName": {"Ann"}}

	t.Run("navigates to download url", func(t *testing.T) {
		u := newUpstream(t)
		u.handle("GET /api/landing-pages/public/lp1", http.StatusOK, emailSignupPage)
		u.handle("POST /api/landing-pages/public/lp1/conversion", http.StatusOK,
			`{"success":true,"data":{"downloadUrl":"https://cdn.test/d","redirectUrl":"https://other.test"}}`)
		r := newTestRouter(t, u)

		rec := do(r, http.MethodPost, "/lp1/conversion", form)
		requireStatus(t, rec, http.StatusSeeOther)
		assert.Equal(t, "https://cdn.test/d", rec.Header().Get("Location"))

		var sent map[string]any
		require.NoError(t, json.Unmarshal([]byte(u.lastBody.Load().(string)), &sent))
		assert.Equal(t, map[string]any{"email": "a@b.co", "firstName": "Ann"}, sent)
	})

	t.Run("confirmation pending", func(t *testing.T) {
		u := newUpstream(t)
		u.handle("GET /api/landing-pages/public/lp1", http.StatusOK, emailSignupPage)
		u.handle("POST /api/landing-pages/public/lp1/conversion", http.StatusOK,
			`{"success":true,"data":{"needsConfirmation":true,"downloadUrl":"https://cdn.test/d"}}`)
		r := newTestRouter(t, u)

		rec := do(r, http.MethodPost, "/lp1/conversion", form)
		requireStatus(t, rec, http.StatusOK)
		assert.Contains(t, rec.Body.String(), "Almost finished...")
		assert.Contains(t, rec.Body.String(), "mailto:support@word2wallet.com")
		assert.Contains(t, rec.Body.String(), "Email sent to: ")
		assert.Contains(t, rec.Body.String(), "<strong>a@b.co</strong>")
	})

	t.Run("success message without target", func(t *testing.T) {
		u := newUpstream(t)
		u.handle("GET /api/landing-pages/public/lp1", http.StatusOK, emailSignupPage)
		u.handle("POST /api/landing-pages/public/lp1/conversion", http.StatusOK, `{"success":true,"data":{}}`)
		r := newTestRouter(t, u)

		rec := do(r, http.MethodPost, "/lp1/conversion", form)
		requireStatus(t, rec, http.StatusOK)
		assert.Contains(t, rec.Body.String(), "Check Your Email!")
	})

	t.Run("server message shown inline", func(t *testing.T) {
		u := newUpstream(t)
		u.handle("GET /api/landing-pages/public/lp1", http.StatusOK, emailSignupPage)
		u.handle("POST /api/landing-pages/public/lp1/conversion", http.StatusBadRequest, `{"success":false,"message":"Email already claimed"}`)
		r := newTestRouter(t, u)

		rec := do(r, http.MethodPost, "/lp1/conversion", form)
		requireStatus(t, rec, http.StatusUnprocessableEntity)
		body := rec.Body.String()
		assert.Contains(t, body, "Email already claimed")
		assert.Contains(t, body, `value="a@b.co"`)
		assert.Contains(t, body, `action="/lp1/conversion"`)
	})

	t.Run("missing field never reaches the api", func(t *testing.T) {
		u := newUpstream(t)
		u.handle("GET /api/landing-pages/public/lp1", http.StatusOK, emailSignupPage)
		u.handle("POST /api/landing-pages/public/lp1/conversion", http.StatusOK, `{"success":true}`)
		r := newTestRouter(t, u)

		rec := do(r, http.MethodPost, "/lp1/conversion", url.Values{"email": {"a@b.co"}})
		requireStatus(t, rec, http.StatusUnprocessableEntity)
		assert.Equal(t, int32(0), u.conversions.Load())
	})
}

func TestSimpleDownloadFlow(t *testing.T) {
	u := newUpstream(t)
	u.handle("GET /api/landing-pages/public/lp2", http.StatusOK, simpleDownloadPage)
	u.handle("POST /api/landing-pages/public/lp2/conversion", http.StatusOK, `{"success":true,"data":{"conversionType":"download"}}`)
	r := newTestRouter(t, u)

	rec := do(r, http.MethodGet, "/lp2", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), `action="/lp2/download"`)
	assert.Contains(t, rec.Body.String(), "/covers/b1/placeholder.png?")

	rec = do(r, http.MethodPost, "/lp2/download", url.Values{})
	requireStatus(t, rec, http.StatusSeeOther)
	assert.Equal(t, "/lp2?modal=reader", rec.Header().Get("Location"))
	assert.Equal(t, int32(1), u.conversions.Load())
	assert.Equal(t, "{}", strings.TrimSpace(u.lastBody.Load().(string)))

	rec = do(r, http.MethodGet, "/lp2?modal=reader", nil)
	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assert.Contains(t, body, "Which is your preferred reader?")
	assert.Contains(t, body, `href="http://reader.test/b1"`)
	assert.Contains(t, body, u.base()+"/landing-pages/simple_download/lp2?format=pdf")
	assert.NotContains(t, body, ">Email<")

	rec = do(r, http.MethodGet, "/lp2/read?format=pdf", nil)
	requireStatus(t, rec, http.StatusSeeOther)
	assert.Equal(t, u.base()+"/landing-pages/simple_download/lp2?format=pdf", rec.Header().Get("Location"))

	rec = do(r, http.MethodGet, "/lp2/read?format=epub&reader=playbooks", nil)
	requireStatus(t, rec, http.StatusSeeOther)
	assert.Equal(t, delivery.PlayBooksURL, rec.Header().Get("Location"))

	rec = do(r, http.MethodGet, "/lp2/read?format=email", nil)
	requireStatus(t, rec, http.StatusSeeOther)
	assert.Equal(t, "/lp2?modal=reader", rec.Header().Get("Location"))
}

func TestSimpleDownloadIgnoresOtherConversionTypes(t *testing.T) {
	u := newUpstream(t)
	u.handle("GET /api/landing-pages/public/lp2", http.StatusOK, simpleDownloadPage)
	u.handle("POST /api/landing-pages/public/lp2/conversion", http.StatusOK, `{"success":true,"data":{"conversionType":"view"}}`)
	r := newTestRouter(t, u)

	rec := do(r, http.MethodPost, "/lp2/download", url.Values{})
	requireStatus(t, rec, http.StatusSeeOther)
	assert.Equal(t, "/lp2", rec.Header().Get("Location"))
}

func TestDirectDownload(t *testing.T) {
	u := newUpstream(t)
	u.handle("GET /api/landing-pages/public/lp3", http.StatusOK, universalLinkPage)
	r := newTestRouter(t, u)

	rec := do(r, http.MethodGet, "/lp3", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), `href="/lp3/direct"`)

	rec = do(r, http.MethodGet, "/lp3/direct", nil)
	requireStatus(t, rec, http.StatusSeeOther)
	assert.Equal(t, u.base()+"/landing-pages/public/lp3/conversion", rec.Header().Get("Location"))
}

func TestFileLinksRequireSimpleDownloadPage(t *testing.T) {
	u := newUpstream(t)
	u.handle("GET /api/landing-pages/public/lp1", http.StatusOK, emailSignupPage)
	u.handle("GET /api/landing-pages/public/lp3", http.StatusOK, universalLinkPage)
	r := newTestRouter(t, u)

	rec := do(r, http.MethodGet, "/lp1/read?format=epub", nil)
	requireStatus(t, rec, http.StatusSeeOther)
	assert.Equal(t, "/lp1", rec.Header().Get("Location"))

	rec = do(r, http.MethodGet, "/lp3/read?reader=browser", nil)
	requireStatus(t, rec, http.StatusSeeOther)
	assert.Equal(t, "/lp3", rec.Header().Get("Location"))

	rec = do(r, http.MethodGet, "/lp1/direct", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Empty(t, rec.Header().Get("Location"))
	assert.Equal(t, int32(0), u.conversions.Load())
}

func TestConfirmFlow(t *testing.T) {
	u := newUpstream(t)
	u.handle("GET /api/landing-pages/confirm/tok", http.StatusOK, confirmedDelivery)
	u.handle("POST /api/landing-pages/send-book/tok", http.StatusOK, `{"success":true,"message":"sent"}`)
	r := newTestRouter(t, u)

	rec := do(r, http.MethodGet, "/confirm/tok", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "Download your copy of Dune")
	assert.Contains(t, rec.Body.String(), "13 days")

	rec = do(r, http.MethodGet, "/confirm/tok?modal=reader", nil)
	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assert.Contains(t, body, u.base()+"/landing-pages/download/tok?format=epub")
	assert.NotContains(t, body, "format=pdf")
	assert.Contains(t, body, `href="/confirm/tok?modal=email"`)

	rec = do(r, http.MethodGet, "/confirm/tok/read?format=email", nil)
	requireStatus(t, rec, http.StatusSeeOther)
	assert.Equal(t, "/confirm/tok?modal=email", rec.Header().Get("Location"))

	rec = do(r, http.MethodGet, "/confirm/tok/read?format=audio", nil)
	requireStatus(t, rec, http.StatusSeeOther)
	assert.Equal(t, "https://cdn.test/dune.epub", rec.Header().Get("Location"))

	rec = do(r, http.MethodGet, "/confirm/tok?modal=email", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), `value="reader@test.co"`)
	assert.Contains(t, rec.Body.String(), `value="epub" checked`)

	rec = do(r, http.MethodPost, "/confirm/tok/send-book", url.Values{"email": {"me@test.co"}, "format": {"epub"}})
	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "EPUB file has been sent to me@test.co!")
	assert.JSONEq(t, `{"email":"me@test.co","format":"epub"}`, u.lastBody.Load().(string))

	rec = do(r, http.MethodPost, "/confirm/tok/send-book", url.Values{"email": {"me@test.co"}, "format": {"pdf"}})
	requireStatus(t, rec, http.StatusUnprocessableEntity)
	assert.Contains(t, rec.Body.String(), "That format is not available for this book.")
}

func TestConfirmFailureIsTerminal(t *testing.T) {
	u := newUpstream(t)
	u.handle("GET /api/landing-pages/confirm/old", http.StatusGone, `{"success":false}`)
	r := newTestRouter(t, u)

	rec := do(r, http.MethodGet, "/confirm/old", nil)
	requireStatus(t, rec, http.StatusGone)
	assert.Contains(t, rec.Body.String(), delivery.FallbackConfirmError)
	assert.NotContains(t, rec.Body.String(), "GET MY BOOK")
}

func TestAccessFlow(t *testing.T) {
	u := newUpstream(t)
	count := atomic.Int32{}
	count.Store(2)
	u.mux.HandleFunc("GET /api/payment-transactions/verify/tok", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, strings.Replace(accessData, "%d", string(rune('0'+count.Load())), 1))
	})
	u.mux.HandleFunc("GET /api/payment-transactions/download/tok", func(w http.ResponseWriter, r *http.Request) {
		count.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"data":{"downloadUrl":"https://cdn.test/signed","downloadCount":3}}`)
	})
	r := newTestRouter(t, u)

	rec := do(r, http.MethodGet, "/access/tok", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "Remaining Downloads:</strong> 1")
	assert.Contains(t, rec.Body.String(), `action="/access/tok/download"`)

	rec = do(r, http.MethodPost, "/access/tok/download", url.Values{})
	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assert.Contains(t, body, `href="https://cdn.test/signed"`)
	assert.Contains(t, body, "Remaining Downloads:</strong> 0")
	assert.Contains(t, body, "Download Limit Reached")

	rec = do(r, http.MethodPost, "/access/tok/download", url.Values{})
	requireStatus(t, rec, http.StatusUnprocessableEntity)
	assert.Equal(t, int32(3), count.Load())
}

func TestAccessRejectedTokenIsTerminal(t *testing.T) {
	u := newUpstream(t)
	u.handle("GET /api/payment-transactions/verify/bad", http.StatusOK, `{"success":false}`)
	r := newTestRouter(t, u)

	rec := do(r, http.MethodGet, "/access/bad", nil)
	requireStatus(t, rec, http.StatusNotFound)
	assert.Contains(t, rec.Body.String(), delivery.InvalidAccessToken)
	assert.NotContains(t, rec.Body.String(), "Download Book Now")
}

func TestPurchase(t *testing.T) {
	u := newUpstream(t)
	u.handle("POST /api/payment-transactions/create", http.StatusOK, `{"success":true,"data":{"accessToken":"acc 1"}}`)
	r := newTestRouter(t, u)

	rec := do(r, http.MethodGet, "/success/dune?email=buyer@test.co&payment_intent=pi_1&provider=stripe", nil)
	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assert.Contains(t, body, `value="buyer@test.co"`)
	assert.Contains(t, body, `value="pi_1"`)
	assert.Contains(t, body, `value="stripe"`)

	rec = do(r, http.MethodPost, "/success/dune", url.Values{"email": {"buyer@test.co"}, "name": {"Bo"}, "txn_id": {"pi_1"}, "provider": {"bitcoin"}})
	requireStatus(t, rec, http.StatusSeeOther)
	assert.Equal(t, "/access/acc%201", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"slug":"dune","customerEmail":"buyer@test.co","customerName":"Bo","transactionId":"pi_1","paymentProvider":"manual"}`,
		u.lastBody.Load().(string))

	rec = do(r, http.MethodPost, "/success/dune", url.Values{"email": {"buyer@test.co"}})
	requireStatus(t, rec, http.StatusUnprocessableEntity)
	assert.Contains(t, rec.Body.String(), "Please enter your name.")
}

func TestPageAPI(t *testing.T) {
	u := newUpstream(t)
	u.handle("GET /api/landing-pages/public/lp1", http.StatusOK, emailSignupPage)
	u.handle("GET /api/landing-pages/public/gone", http.StatusNotFound, `{"message":"nope"}`)
	r := newTestRouter(t, u)

	rec := do(r, http.MethodGet, "/api/pages/lp1", nil)
	requireStatus(t, rec, http.StatusOK)
	var out struct {
		Page landing.PageView `json:"page"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Dune for free", out.Page.Title)
	assert.Equal(t, landing.EntryEmailCapture, out.Page.Entry)
	assert.True(t, out.Page.Requirements.FirstName)

	rec = do(r, http.MethodGet, "/api/pages/gone", nil)
	requireStatus(t, rec, http.StatusNotFound)
	assert.JSONEq(t, `{"error":{"message":"nope","code":"fetch_failed"}}`, rec.Body.String())
}

func TestCoverPlaceholder(t *testing.T) {
	r := newTestRouter(t, newUpstream(t))

	rec := do(r, http.MethodGet, "/covers/b1/placeholder.png?title=Dune&w=120", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
}
