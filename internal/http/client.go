// Package http wraps hashicorp/go-retryablehttp with the Shopify Admin API
// conventions: per-shop URLs, token headers, JSON decoding, and error
// envelope parsing. Retry and throttle policy lives here, not in the
// repositories.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/lucidnz/shopify-resource/internal/constants"
	"github.com/lucidnz/shopify-resource/pkg/shopify"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Response represents an HTTP response with the body fully read.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is an HTTP client for the Admin API. It is safe for concurrent use.
type Client struct {
	httpClient *retryablehttp.Client
	apiVersion string
	userAgent  string
	logger     Logger
	debug      bool
	cache      shopify.Cache

	// baseURL overrides the per-shop URL when set. Used by tests.
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger for the client.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response debug logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig configures retry behavior.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithCache enables GET response caching. Cursor pages (queries carrying
// since_id) are never cached.
func WithCache(cache shopify.Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithBaseURL overrides the per-shop URL construction. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// NewClient creates a new Admin API HTTP client.
func NewClient(apiVersion string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	if apiVersion == "" {
		apiVersion = constants.DefaultAPIVersion
	}

	client := &Client{
		httpClient: retryClient,
		apiVersion: apiVersion,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Get performs a GET request against the shop identified by creds.
func (c *Client) Get(ctx context.Context, creds *shopify.Credentials, path string, query url.Values) (*Response, error) {
	requestURL, err := c.buildURL(creds, path, query)
	if err != nil {
		return nil, err
	}

	if cached := c.cachedResponse(ctx, requestURL, query); cached != nil {
		return cached, nil
	}

	resp, err := c.do(ctx, creds, http.MethodGet, requestURL)
	if err != nil {
		return resp, err
	}

	c.storeResponse(ctx, requestURL, query, resp)

	return resp, nil
}

// Delete performs a DELETE request against the shop identified by creds.
func (c *Client) Delete(ctx context.Context, creds *shopify.Credentials, path string) (*Response, error) {
	requestURL, err := c.buildURL(creds, path, nil)
	if err != nil {
		return nil, err
	}

	return c.do(ctx, creds, http.MethodDelete, requestURL)
}

func (c *Client) do(ctx context.Context, creds *shopify.Credentials, method, requestURL string) (*Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Shopify-Access-Token", creds.AccessToken)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": method,
			"url":    requestURL,
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, requestURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      method,
			"url":         requestURL,
			"status_code": resp.StatusCode,
		})
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return response, shopify.ParseAPIError(resp.StatusCode, body)
	}

	return response, nil
}

// buildURL assembles the Admin API URL for one request. Paths are the bare
// resource segments used by the repositories ("orders", "orders/123",
// "orders/count"); the ".json" suffix and version prefix are added here.
func (c *Client) buildURL(creds *shopify.Credentials, path string, query url.Values) (string, error) {
	if creds == nil {
		return "", shopify.ErrCredentialsRequired
	}

	if creds.ShopDomain == "" {
		return "", shopify.ErrShopDomainRequired
	}

	if creds.AccessToken == "" {
		return "", shopify.ErrAccessTokenRequired
	}

	base := c.baseURL
	if base == "" {
		base = fmt.Sprintf("https://%s/admin/api/%s", creds.MyshopifyDomain(), c.apiVersion)
	}

	requestURL := fmt.Sprintf("%s/%s.json", base, strings.Trim(path, "/"))

	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	return requestURL, nil
}

func (c *Client) cachedResponse(ctx context.Context, requestURL string, query url.Values) *Response {
	if c.cache == nil || query.Has("since_id") {
		return nil
	}

	entry, err := c.cache.Get(ctx, requestURL)
	if err != nil {
		return nil
	}

	return &Response{
		StatusCode: http.StatusOK,
		Body:       entry.Body,
	}
}

func (c *Client) storeResponse(ctx context.Context, requestURL string, query url.Values, resp *Response) {
	if c.cache == nil || query.Has("since_id") || resp.StatusCode != http.StatusOK {
		return
	}

	err := c.cache.Set(ctx, requestURL, &shopify.CacheEntry{
		Body:     resp.Body,
		StoredAt: time.Now(),
	})
	if err != nil && c.logger != nil {
		c.logger.Warn("caching response failed", map[string]interface{}{
			"url":   requestURL,
			"error": err.Error(),
		})
	}
}
