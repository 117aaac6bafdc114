// Package http implements the request dispatcher shared by every resource
// client: authentication, retries with exponential backoff, and mapping of
// transport and API failures onto the payrex error taxonomy.
package http

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/payrex-community/payrex-go/internal/constants"
	"github.com/payrex-community/payrex-go/pkg/payrex"
)

const (
	headerRequestID      = "X-Request-Id"
	headerRetryAfter     = "Retry-After"
	headerIdempotencyKey = "Idempotency-Key"

	defaultUserAgent = "payrex-go/1.0"
)

// Request represents an API request.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
	// IdempotencyKey dedupes replayed mutations; generated when empty.
	IdempotencyKey string
	Headers        map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	RequestID  string
}

// Client handles HTTP communication with the API.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *retryablehttp.Client
	logger     payrex.Logger
	debug      bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a structured logger.
func WithLogger(logger payrex.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout bounds each physical HTTP attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithRetryConfig sets the retry budget and backoff bounds. A request makes
// at most max+1 attempts.
func WithRetryConfig(max int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = max
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPClient swaps the underlying http.Client, e.g. to install a custom
// transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// NewClient creates a dispatcher for the given endpoint and credential. The
// credential is sent as the username of an HTTP Basic Authorization header
// and never appears in logs.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.CheckRetry = retryPolicy
	retryClient.Backoff = retryablehttp.DefaultBackoff
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		userAgent:  defaultUserAgent,
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// retryPolicy retries transport failures, 429 and 5xx. Client errors (4xx
// other than 429) are terminal. Context cancellation always wins.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return true, nil
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return true, nil
	}

	return false, nil
}

// Do executes a request and returns the response. Non-2xx statuses return
// both the response and a classified *payrex.Error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var body interface{}

	if req.Body != nil {
		encoded, err := EncodeForm(req.Body)
		if err != nil {
			return nil, payrex.WrapError(payrex.ErrorKindValidation, "encoding request body", err)
		}

		body = strings.NewReader(encoded)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, payrex.WrapError(payrex.ErrorKindValidation, "building request", err)
	}

	c.setHeaders(httpReq, req)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil {
			_ = httpResp.Body.Close()
		}

		return nil, classifyTransportError(ctx, err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, payrex.WrapError(payrex.ErrorKindConnectionFailed, "reading response body", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
		RequestID:  httpResp.Header.Get(headerRequestID),
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":     resp.StatusCode,
			"request_id": resp.RequestID,
		})
	}

	if resp.StatusCode >= 400 {
		return resp, c.errorFromResponse(resp)
	}

	return resp, nil
}

func (c *Client) setHeaders(httpReq *retryablehttp.Request, req *Request) {
	httpReq.SetBasicAuth(c.apiKey, "")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	// One key per logical request; retries re-send the same prepared request
	// so the provider can deduplicate replayed mutations.
	if isMutation(req.Method) {
		key := req.IdempotencyKey
		if key == "" {
			key = uuid.NewString()
		}

		httpReq.Header.Set(headerIdempotencyKey, key)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
}

// idempotencyKeyer is satisfied by request bodies that embed
// payrex.IdempotencyParams, letting callers pin the header per call.
type idempotencyKeyer interface {
	GetIdempotencyKey() string
}

func bodyIdempotencyKey(body interface{}) string {
	if keyer, ok := body.(idempotencyKeyer); ok {
		return keyer.GetIdempotencyKey()
	}

	return ""
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

// errorFromResponse maps a non-2xx response onto the error taxonomy,
// attaching the request ID and any Retry-After hint.
func (c *Client) errorFromResponse(resp *Response) error {
	apiErr := payrex.ParseErrorBody(resp.StatusCode, resp.Body)
	apiErr.RequestID = resp.RequestID

	if resp.StatusCode == http.StatusTooManyRequests {
		if seconds, err := strconv.Atoi(resp.Headers.Get(headerRetryAfter)); err == nil && seconds > 0 {
			apiErr.RetryAfter = time.Duration(seconds) * time.Second
		}
	}

	return apiErr
}

// classifyTransportError maps a transport-level failure onto the taxonomy.
// Caller-initiated cancellation is passed through so errors.Is against
// context.Canceled keeps working.
func classifyTransportError(ctx context.Context, err error) error {
	if ctx.Err() != nil && errors.Is(ctx.Err(), context.Canceled) {
		return ctx.Err()
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return payrex.WrapError(payrex.ErrorKindTimeout, "request timed out", err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return payrex.WrapError(payrex.ErrorKindTimeout, "request timed out", err)
	}

	if isTLSError(err) {
		return payrex.WrapError(payrex.ErrorKindTLSFailed, "TLS handshake failed", err)
	}

	return payrex.WrapError(payrex.ErrorKindConnectionFailed, "connecting to API", err)
}

func isTLSError(err error) bool {
	var (
		recordErr    tls.RecordHeaderError
		unknownCAErr x509.UnknownAuthorityError
		hostnameErr  x509.HostnameError
		certErr      x509.CertificateInvalidError
		verifyErr    *tls.CertificateVerificationError
	)

	return errors.As(err, &recordErr) ||
		errors.As(err, &unknownCAErr) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &certErr) ||
		errors.As(err, &verifyErr)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a form-encoded body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body, IdempotencyKey: bodyIdempotencyKey(body)})
}

// Put performs a PUT request with a form-encoded body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body, IdempotencyKey: bodyIdempotencyKey(body)})
}

// Patch performs a PATCH request with a form-encoded body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body, IdempotencyKey: bodyIdempotencyKey(body)})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
