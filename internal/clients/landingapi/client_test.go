package landingapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/bookfront/internal/domain"
	"github.com/yungbote/bookfront/internal/observability"
	"github.com/yungbote/bookfront/internal/platform/ctxutil"
	"github.com/yungbote/bookfront/internal/platform/logger"
)

func newTestClient(t *testing.T, h http.HandlerFunc, mutate ...func(*Options)) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	opts := Options{BaseURL: srv.URL + "/api", Timeout: 2 * time.Second, Metrics: observability.NewMetrics()}
	for _, m := range mutate {
		m(&opts)
	}
	c, err := New(logger.Nop(), opts)
	require.NoError(t, err)
	return c, srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

const publicPageBody = `{"success":true,"data":{
	"landingPage":{"_id":"lp1","slug":"dune","type":"email_signup","isActive":true,
		"emailSignupPage":{"pageName":"Dune","askFirstName":true,
			"landingPageSettings":{"pageTitle":"{{title}} free","heading1":{"type":"newsletter"}}}},
	"book":{"_id":"b1","title":"Dune","author":"Frank Herbert","description":"Desert planet."}}}`

func TestGetPublicPage(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/landing-pages/public/lp1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, publicPageBody)
	})

	page, err := c.GetPublicPage(context.Background(), "lp1")
	require.NoError(t, err)
	assert.Equal(t, types.PageTypeEmailSignup, page.LandingPage.Type)
	require.NotNil(t, page.LandingPage.EmailSignupPage)
	assert.True(t, page.LandingPage.EmailSignupPage.AskFirstName)
	require.NotNil(t, page.LandingPage.EmailSignupPage.Settings)
	assert.Equal(t, types.TextNewsletter, page.LandingPage.EmailSignupPage.Settings.Heading1.Type)
	assert.Equal(t, "Dune", page.Book.Title)
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	t.Run("non-2xx message", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "Landing page is not active"})
		})
		_, err := c.GetPublicPage(context.Background(), "gone")
		require.Error(t, err)
		assert.Equal(t, "Landing page is not active", MessageOf(err, "Landing page not found"))
		assert.Equal(t, http.StatusNotFound, StatusOf(err))
	})

	t.Run("success false on 200 is rejected", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"success": false})
		})
		_, err := c.VerifyAccess(context.Background(), "tok")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.Rejected())
		assert.Equal(t, "Invalid access token", MessageOf(err, "Invalid access token"))
	})

	t.Run("no body falls back", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		_, err := c.Confirm(context.Background(), "tok")
		assert.Equal(t, "fallback", MessageOf(err, "fallback"))
		assert.Equal(t, http.StatusBadGateway, StatusOf(err))
	})
}

func TestConvertSendsOnlyGivenFields(t *testing.T) {
	t.Parallel()

	var got map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/landing-pages/public/lp1/conversion", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "ok",
			"data":    map[string]any{"needsConfirmation": true, "conversionToken": "ct"},
		})
	})

	email := "a@b.co"
	resp, err := c.Convert(context.Background(), "lp1", types.ConversionRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"email": "a@b.co"}, got)
	require.NotNil(t, resp.Data)
	assert.True(t, resp.Data.NeedsConfirmation)
	assert.Equal(t, "ct", resp.Data.ConversionToken)
}

func TestConvertIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, func(o *Options) { o.MaxRetries = 3 })

	_, err := c.Convert(context.Background(), "lp1", types.ConversionRequest{})
	require.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestConfirmIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, func(o *Options) { o.MaxRetries = 3 })

	_, err := c.Confirm(context.Background(), "tok")
	require.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestPageFetchRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, publicPageBody)
	}, func(o *Options) { o.MaxRetries = 1 })

	_, err := c.GetPublicPage(context.Background(), "lp1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestConcurrentGetsShareOneCall(t *testing.T) {
	t.Parallel()

	var calls int32
	release := make(chan struct{})
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		<-release
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, publicPageBody)
	})

	const n = 5
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.GetPublicPage(context.Background(), "lp1")
			errs <- err
		}()
	}
	// Give every caller time to join the in-flight call.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapCache) Set(_ context.Context, key string, val []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = val
	return nil
}

func TestGetPublicPageUsesCache(t *testing.T) {
	t.Parallel()

	var calls int32
	cache := &mapCache{data: map[string][]byte{}}
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = io.WriteString(w, publicPageBody)
	}, func(o *Options) {
		o.Cache = cache
		o.CacheTTL = time.Minute
	})

	for i := 0; i < 3; i++ {
		page, err := c.GetPublicPage(context.Background(), "lp1")
		require.NoError(t, err)
		assert.Equal(t, "lp1", page.LandingPage.ID)
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestIssueDownloadAndPurchase(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/payment-transactions/download/tok":
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"downloadUrl": "https://cdn.test/f", "downloadCount": 2}})
		case "/api/payment-transactions/create":
			var req types.PurchaseRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, types.PaymentProviderStripe, req.PaymentProvider)
			writeJSON(w, http.StatusCreated, map[string]any{"success": true, "data": map[string]any{"accessToken": "acc"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	link, err := c.IssueDownload(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, types.DownloadLink{DownloadURL: "https://cdn.test/f", DownloadCount: 2}, *link)

	res, err := c.CreatePurchase(context.Background(), types.PurchaseRequest{Slug: "dune", PaymentProvider: types.PaymentProviderStripe})
	require.NoError(t, err)
	assert.Equal(t, "acc", res.AccessToken)
}

func TestLinks(t *testing.T) {
	t.Parallel()

	c, err := New(nil, Options{BaseURL: "http://localhost:5000/api/"})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api/landing-pages/download/t%2F1?format=pdf", c.DownloadLink("t/1", types.FormatPDF))
	assert.Equal(t, "http://localhost:5000/api/landing-pages/simple_download/lp1?format=epub", c.SimpleDownloadLink("lp1", types.FormatEPUB))
	assert.Equal(t, "http://localhost:5000/api/landing-pages/public/lp1/conversion", c.ConversionLink("lp1"))
	assert.Equal(t, "http://localhost:5000/api/books/b1/cover", c.CoverURL("b1"))

	_, err = New(nil, Options{})
	assert.Error(t, err)
}

func TestForwardsRequestID(t *testing.T) {
	t.Parallel()

	var got atomic.Value
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got.Store(r.Header.Get("X-Request-Id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, publicPageBody)
	})

	ctx := ctxutil.WithRequestInfo(context.Background(), &ctxutil.RequestInfo{RequestID: "req-42"})
	_, err := c.GetPublicPage(ctx, "lp1")
	require.NoError(t, err)
	assert.Equal(t, "req-42", got.Load())
}
