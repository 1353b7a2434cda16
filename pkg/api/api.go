// Package api implements the HTTP dispatcher shared by every facade of the
// SDK. A facade supplies an Endpoint descriptor plus query parameters and an
// optional body; the dispatcher builds the request, places the API key where
// that endpoint expects it, performs exactly one attempt, and maps failures
// onto the SDK error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/crypto-com/developer-platform-client-go/pkg/config"
	"go.uber.org/zap"
)

// DefaultBaseURL is the production developer-platform API root, including
// the versioned prefix every endpoint path is appended to.
const DefaultBaseURL = "https://developer-platform-api.crypto.com/v1/cdc-developer-platform"

// Response is the envelope every platform endpoint returns on success.
// Status is the platform's success marker; Data is the endpoint-specific
// payload, forwarded verbatim without reshaping. Raw preserves the complete
// body as received for callers that need the exact bytes.
type Response struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`

	Raw json.RawMessage `json:"-"`
}

// errorBody is the shape the platform uses for failure responses. The error
// field is optional; absence falls back to a generic status-code message.
type errorBody struct {
	Error string `json:"error"`
}

// Client dispatches requests to the developer-platform API. The zero value
// is unusable for authenticated endpoints and fails fast with
// config.ErrAPIKeyRequired before any network I/O.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root. Used by tests and
// by deployments behind a proxy.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the underlying HTTP client for network requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a dispatcher from the given configuration. The HTTP
// deadline comes from cfg.Timeouts (defaulted when zero); everything else
// about transport behavior is the http.Client default.
func NewClient(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeouts.WithDefaults().HTTP,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Call performs the endpoint's request and returns the parsed envelope.
//
// The query values are encoded as-is; callers decide per endpoint which
// optional parameters are included at all. A non-nil body is JSON-encoded.
// Exactly one attempt is made: no retries, no circuit breaking. Failures map
// to the taxonomy in errors.go, each prefixed with the endpoint tag.
func (c *Client) Call(ctx context.Context, ep Endpoint, query url.Values, body any) (*Response, error) {
	if ep.Auth != AuthNone && c.apiKey == "" {
		return nil, fmt.Errorf("[%s] - %w", ep.Tag(), config.ErrAPIKeyRequired)
	}

	reqURL := c.baseURL + ep.Path
	q := url.Values{}
	for k, vs := range query {
		q[k] = vs
	}
	if ep.Auth == AuthQuery {
		q.Set("apiKey", c.apiKey)
	}
	if encoded := q.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Tag: ep.Tag(), Err: err}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, reqURL, reqBody)
	if err != nil {
		return nil, &TransportError{Tag: ep.Tag(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if ep.Auth == AuthHeader {
		req.Header.Set("x-api-key", c.apiKey)
	}

	zap.L().Debug("calling platform API",
		zap.String("operation", ep.Tag()),
		zap.String("method", ep.Method),
		zap.String("path", ep.Path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Tag: ep.Tag(), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Tag: ep.Tag(), Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil && eb.Error != "" {
			msg = eb.Error
		}
		zap.L().Debug("platform API error",
			zap.String("operation", ep.Tag()),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg))
		return nil, &RemoteError{Tag: ep.Tag(), StatusCode: resp.StatusCode, Message: msg}
	}

	out := &Response{}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, &TransportError{Tag: ep.Tag(), Err: err}
	}
	out.Raw = raw

	return out, nil
}
