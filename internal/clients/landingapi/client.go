package landingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	types "github.com/yungbote/bookfront/internal/domain"
	"github.com/yungbote/bookfront/internal/observability"
	"github.com/yungbote/bookfront/internal/platform/ctxutil"
	"github.com/yungbote/bookfront/internal/platform/logger"
)

// Cache stores raw landing-page payloads between requests.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int

	Cache    Cache
	CacheTTL time.Duration

	Metrics    *observability.Metrics
	HTTPClient *http.Client
}

// Client talks to the public landing page and payment transaction API.
// Identical concurrent GETs share one upstream call.
type Client struct {
	log        *logger.Logger
	baseURL    string
	timeout    time.Duration
	maxRetries int

	cache    Cache
	cacheTTL time.Duration

	metrics    *observability.Metrics
	tracer     trace.Tracer
	httpClient *http.Client
	group      singleflight.Group
}

func New(log *logger.Logger, opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("baseURL required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse baseURL: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	maxRetries := opts.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	return &Client{
		log:        log.With("client", "LandingAPI"),
		baseURL:    baseURL,
		timeout:    timeout,
		maxRetries: maxRetries,
		cache:      opts.Cache,
		cacheTTL:   opts.CacheTTL,
		metrics:    opts.Metrics,
		tracer:     observability.Tracer("bookfront/landingapi"),
		httpClient: hc,
	}, nil
}

func (c *Client) BaseURL() string { return c.baseURL }

// ---- landing pages ----

func (c *Client) GetPublicPage(ctx context.Context, id string) (*types.PublicPage, error) {
	path := "/landing-pages/public/" + url.PathEscape(id)
	key := "landing-page:" + id

	if raw, ok := c.cacheGet(ctx, key); ok {
		var out types.PublicPage
		if err := json.Unmarshal(raw, &out); err == nil {
			return &out, nil
		}
	}

	raw, err := c.sharedGet(ctx, "get_public_page", path, c.maxRetries)
	if err != nil {
		return nil, err
	}
	var out types.PublicPage
	if err := decodeData(raw, &out); err != nil {
		return nil, err
	}
	c.cacheSet(ctx, key, raw)
	return &out, nil
}

// Convert posts a conversion. Conversions are never retried.
func (c *Client) Convert(ctx context.Context, pageID string, req types.ConversionRequest) (*types.ConversionResponse, error) {
	env, err := c.do(ctx, "convert", http.MethodPost, "/landing-pages/public/"+url.PathEscape(pageID)+"/conversion", req, 0)
	if err != nil {
		return nil, err
	}
	out := &types.ConversionResponse{Success: true, Message: env.Message}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		var data types.ConversionResult
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, fmt.Errorf("decode conversion: %w", err)
		}
		out.Data = &data
	}
	return out, nil
}

// Confirm marks the subscriber's email as confirmed upstream, so it is never
// retried. Concurrent confirms of one token still share a single call.
func (c *Client) Confirm(ctx context.Context, token string) (*types.Delivery, error) {
	raw, err := c.sharedGet(ctx, "confirm", "/landing-pages/confirm/"+url.PathEscape(token), 0)
	if err != nil {
		return nil, err
	}
	var out types.Delivery
	if err := decodeData(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendBook(ctx context.Context, token string, req types.SendBookRequest) error {
	_, err := c.do(ctx, "send_book", http.MethodPost, "/landing-pages/send-book/"+url.PathEscape(token), req, 0)
	return err
}

// ---- payment transactions ----

func (c *Client) CreatePurchase(ctx context.Context, req types.PurchaseRequest) (*types.PurchaseResult, error) {
	env, err := c.do(ctx, "create_purchase", http.MethodPost, "/payment-transactions/create", req, 0)
	if err != nil {
		return nil, err
	}
	var out types.PurchaseResult
	if err := decodeData(env.Data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifyAccess(ctx context.Context, token string) (*types.AccessData, error) {
	raw, err := c.sharedGet(ctx, "verify_access", "/payment-transactions/verify/"+url.PathEscape(token), c.maxRetries)
	if err != nil {
		return nil, err
	}
	var out types.AccessData
	if err := decodeData(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IssueDownload increments the download count upstream, so it bypasses the
// shared GET path and is never retried.
func (c *Client) IssueDownload(ctx context.Context, token string) (*types.DownloadLink, error) {
	env, err := c.do(ctx, "issue_download", http.MethodGet, "/payment-transactions/download/"+url.PathEscape(token), nil, 0)
	if err != nil {
		return nil, err
	}
	var out types.DownloadLink
	if err := decodeData(env.Data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---- transport ----

type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// sharedGet merges identical in-flight GETs. The shared call runs detached
// from any single caller's cancellation; each caller still stops waiting when
// its own context ends.
func (c *Client) sharedGet(ctx context.Context, op, path string, retries int) (json.RawMessage, error) {
	ch := c.group.DoChan(path, func() (interface{}, error) {
		env, err := c.do(context.WithoutCancel(ctx), op, http.MethodGet, path, nil, retries)
		if err != nil {
			return nil, err
		}
		return env.Data, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		raw, _ := res.Val.(json.RawMessage)
		return raw, nil
	}
}

func (c *Client) do(ctx context.Context, op, method, path string, body any, retries int) (*envelope, error) {
	ctx, span := c.tracer.Start(ctx, "landingapi."+op, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("landingapi.op", op),
	)

	start := time.Now()
	env, status, err := c.doJSON(ctx, method, path, body, retries)
	c.metrics.ObserveUpstream(op, status, time.Since(start))
	if status > 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.Debug("landing api call failed", "op", op, "path", path, "status", status, "error", err)
		return nil, err
	}
	return env, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, retries int) (*envelope, int, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, 0, err
		}
	}

	ctx2, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var lastErr error
	lastStatus := 0
	backoff := 250 * time.Millisecond
	for attempt := 0; attempt <= retries; attempt++ {
		if ctx2.Err() != nil {
			return nil, lastStatus, ctx2.Err()
		}

		var rdr io.Reader
		if body != nil {
			rdr = bytes.NewReader(buf.Bytes())
		}
		req, err := http.NewRequestWithContext(ctx2, method, c.baseURL+path, rdr)
		if err != nil {
			return nil, 0, err
		}
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if id := ctxutil.RequestID(ctx2); id != "" {
			req.Header.Set("X-Request-Id", id)
		}
		otel.GetTextMapPropagator().Inject(ctx2, propagation.HeaderCarrier(req.Header))

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			lastStatus = 0
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				return nil, resp.StatusCode, readErr
			}
			lastStatus = resp.StatusCode
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				lastErr = parseHTTPError(resp.StatusCode, raw)
				if resp.StatusCode < 500 {
					return nil, lastStatus, lastErr
				}
			} else {
				env, err := decodeEnvelope(resp.StatusCode, raw)
				return env, lastStatus, err
			}
		}

		if attempt < retries {
			select {
			case <-ctx2.Done():
				return nil, lastStatus, ctx2.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}

	if lastErr == nil {
		lastErr = errors.New("request failed")
	}
	return nil, lastStatus, lastErr
}

func decodeEnvelope(status int, raw []byte) (*envelope, error) {
	var env envelope
	if len(bytes.TrimSpace(raw)) == 0 {
		return &env, nil
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.Success != nil && !*env.Success {
		return nil, &APIError{
			StatusCode: status,
			Message:    strings.TrimSpace(env.Message),
			Body:       strings.TrimSpace(string(raw)),
			rejected:   true,
		}
	}
	return &env, nil
}

func decodeData(raw json.RawMessage, out any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return errors.New("empty response data")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

// ---- cache ----

func (c *Client) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil || c.cacheTTL <= 0 {
		return nil, false
	}
	raw, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Warn("landing page cache get failed", "key", key, "error", err)
		return nil, false
	}
	c.metrics.ObserveCache(ok)
	return raw, ok
}

func (c *Client) cacheSet(ctx context.Context, key string, raw []byte) {
	if c.cache == nil || c.cacheTTL <= 0 {
		return
	}
	if err := c.cache.Set(ctx, key, raw, c.cacheTTL); err != nil {
		c.log.Warn("landing page cache set failed", "key", key, "error", err)
	}
}
