package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/johanforsgren/tokendash/internal/domain"
	"golang.org/x/oauth2"
)

const (
	verifyPath = "api/verify-token"
	tokensPath = "api/tokens"

	defaultTimeout  = 10 * time.Second
	maxResponseSize = 4 << 20
)

// Client talks to the token-management backend.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying client. Its transport is used as
// the base of the bearer transport for authenticated calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q: missing host", baseURL)
	}

	c := &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: NewLoggingTransport(nil),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL.JoinPath(path).String()
}

func (c *Client) VerifyToken(ctx context.Context, token string) (bool, error) {
	body, err := json.Marshal(verifyRequest{Token: token})
	if err != nil {
		return false, fmt.Errorf("failed to encode verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(verifyPath), bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: verify token: %w", domain.ErrTransport, err)
	}
	defer closeBody(resp.Body)

	if !isSuccess(resp.StatusCode) {
		return false, &domain.HTTPError{StatusCode: resp.StatusCode}
	}

	var out verifyResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&out); err != nil {
		return false, fmt.Errorf("%w: decode verify response: %w", domain.ErrTransport, err)
	}
	return out.Valid, nil
}

func (c *Client) ListTokens(ctx context.Context, credential string) (*domain.TokenList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(tokensPath), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.bearerClient(credential).Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: list tokens: %w", domain.ErrTransport, err)
	}
	defer closeBody(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("list tokens: %w", domain.ErrSessionExpired)
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &domain.HTTPError{StatusCode: resp.StatusCode}
	}

	var out listResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode token list: %w", domain.ErrTransport, err)
	}
	return out.toDomain(), nil
}

// bearerClient shares the configured transport and timeout and adds the
// credential as an Authorization: Bearer header.
func (c *Client) bearerClient(credential string) *http.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: credential,
		TokenType:   "Bearer",
	})
	return &http.Client{
		Timeout: c.httpClient.Timeout,
		Transport: &oauth2.Transport{
			Source: ts,
			Base:   c.httpClient.Transport,
		},
	}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func closeBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxResponseSize))
	_ = body.Close()
}

var _ domain.TokenService = (*Client)(nil)
