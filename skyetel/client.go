package skyetel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://api.skyetel.com/v1"

// Rate ceiling documented by Skyetel: 120 requests per rolling minute.
const (
	rateLimitCalls  = 120
	rateLimitWindow = time.Minute
)

// Client is a Skyetel API client. A single instance holds the credential
// pair for its lifetime and serializes rate-limit admission across all
// goroutines that share it.
type Client struct {
	baseURL    string
	sid        string
	secret     string
	httpClient *http.Client
	limiter    Limiter
	logger     zerolog.Logger
}

// NewClient creates a new Skyetel client authenticated with the given
// SID/secret pair.
func NewClient(sid, secret string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if sid == "" {
		return nil, fmt.Errorf("skyetel SID is required")
	}
	if secret == "" {
		return nil, fmt.Errorf("skyetel secret is required")
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	limiter := options.limiter
	if limiter == nil {
		limiter = newCallLimiter(rateLimitCalls, rateLimitWindow)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		sid:        sid,
		secret:     secret,
		httpClient: httpClient,
		limiter:    limiter,
		logger:     logger,
	}, nil
}

// do issues one authenticated round trip and classifies the outcome.
// It blocks until the rate limiter admits the call. The returned body is
// raw JSON; mapping into domain records happens in the caller.
func (c *Client) do(ctx context.Context, method, requestURL string, body io.Reader, contentType string) (json.RawMessage, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPatch:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-AUTH-SID", c.sid)
	req.Header.Set("X-AUTH-SECRET", c.secret)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Msg("Making Skyetel API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
		}
	}

	return respBody, nil
}

// errorMessage extracts the ERROR field from a failure envelope, falling
// back to the raw body when the envelope itself cannot be parsed.
func errorMessage(body []byte) string {
	var envelope struct {
		Error string `json:"ERROR"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return strings.TrimSpace(string(body))
}

func (c *Client) get(ctx context.Context, url string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, url, nil, "")
}

func (c *Client) postForm(ctx context.Context, url string, form url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, url, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func (c *Client) patchForm(ctx context.Context, url string, form url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, url, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func (c *Client) postJSON(ctx context.Context, url string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, url, bytes.NewReader(body), "application/json")
}

func (c *Client) patchJSON(ctx context.Context, url string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPatch, url, bytes.NewReader(body), "application/json")
}

// download fetches the content behind a signed URL handed out by the API.
// Signed URLs point at the storage service, so the request carries no
// credentials and is not counted against the API rate limit.
func (c *Client) download(ctx context.Context, downloadURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("download failed with status %d", resp.StatusCode),
		}
	}

	return body, nil
}
