package api

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

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

var errTokenRequired = errors.New("crypto pay api token is required")

// Client handles calls to the Crypto Pay API
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	log        zerolog.Logger
	assets     AssetCache
	fetches    singleflight.Group
	metrics    *requestMetrics
	timeout    time.Duration
}

// Option configures optional client behavior.
type Option func(*Client)

// WithBaseURL overrides the gateway URL, e.g. TestnetBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the aggregate per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger sets the diagnostic log sink. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithAssetCache replaces the in-memory asset cache, e.g. with a RedisAssetCache.
func WithAssetCache(cache AssetCache) Option {
	return func(c *Client) {
		if cache != nil {
			c.assets = cache
		}
	}
}

// NewClient creates a new API client for the given token
func NewClient(token string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, errTokenRequired
	}

	client := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL: DefaultBaseURL,
		token:   trimmed,
		log:     zerolog.Nop(),
		assets:  NewMemoryAssetCache(AssetCacheTTL),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.timeout > 0 {
		httpClient := *client.httpClient
		httpClient.Timeout = client.timeout
		client.httpClient = &httpClient
	}

	return client, nil
}

// BaseURL returns the gateway URL requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// IsTestnet returns true if the client talks to the testnet gateway
func (c *Client) IsTestnet() bool {
	return c.baseURL == TestnetBaseURL
}

// get issues a GET for the given remote method with optional query parameters
func (c *Client) get(ctx context.Context, method string, query map[string]string) ([]byte, error) {
	endpoint, err := c.buildURL(method, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, newTransportError(0, err, "build request")
	}

	return c.execute(req, method)
}

// post issues a POST with body encoded as JSON, or an empty body when nil
func (c *Client) post(ctx context.Context, method string, body any) ([]byte, error) {
	endpoint, err := c.buildURL(method, nil)
	if err != nil {
		return nil, err
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, newTransportError(0, err, "encode request body")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, newTransportError(0, err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", jsonContentType)
	}

	return c.execute(req, method)
}

func (c *Client) execute(req *http.Request, method string) ([]byte, error) {
	req.Header.Set(TokenHeader, c.token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(method, outcomeNetwork, time.Since(start))
		return nil, newTransportError(0, err, "send request")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.observe(method, outcomeNetwork, time.Since(start))
		return nil, newTransportError(resp.StatusCode, err, "read response")
	}

	c.log.Debug().
		Str("method", method).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Int("bytes", len(body)).
		Msg("crypto pay request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.observe(method, outcomeStatus, time.Since(start))
		if len(body) > 0 {
			if apiErr := errorFromBody(resp.StatusCode, body); apiErr != nil {
				return nil, apiErr
			}
		}
		return nil, newTransportError(resp.StatusCode, nil, fmt.Sprintf("request failed: %s", http.StatusText(resp.StatusCode)))
	}

	if len(body) == 0 {
		c.metrics.observe(method, outcomeEmpty, time.Since(start))
		return nil, newTransportError(resp.StatusCode, nil, "empty response body")
	}

	c.metrics.observe(method, outcomeOK, time.Since(start))
	return body, nil
}

// getResult runs a GET and decodes the envelope result as T
func getResult[T any](ctx context.Context, c *Client, method string, query map[string]string) (T, error) {
	raw, err := c.get(ctx, method, query)
	if err != nil {
		var zero T
		return zero, c.failed(method, err)
	}
	result, err := decodeEnvelope[T](raw)
	if err != nil {
		return result, c.failed(method, err)
	}
	return result, nil
}

// postResult runs a POST and decodes the envelope result as T
func postResult[T any](ctx context.Context, c *Client, method string, body any) (T, error) {
	raw, err := c.post(ctx, method, body)
	if err != nil {
		var zero T
		return zero, c.failed(method, err)
	}
	result, err := decodeEnvelope[T](raw)
	if err != nil {
		return result, c.failed(method, err)
	}
	return result, nil
}

// failed logs err and hands it back unchanged
func (c *Client) failed(method string, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		event := c.log.Error().Str("method", method).Str("description", apiErr.Message)
		if apiErr.Code != nil {
			event = event.Int("error_code", *apiErr.Code)
		}
		event.Msg("crypto pay api error")
		return err
	}
	c.log.Warn().Err(err).Str("method", method).Msg("crypto pay request failed")
	return err
}

func (c *Client) buildURL(method string, query map[string]string) (string, error) {
	u, err := url.Parse(c.baseURL + method)
	if err != nil {
		return "", newTransportError(0, err, "parse request url")
	}
	if len(query) > 0 {
		values := u.Query()
		for k, v := range query {
			values.Set(k, v)
		}
		u.RawQuery = values.Encode()
	}
	return u.String(), nil
}
