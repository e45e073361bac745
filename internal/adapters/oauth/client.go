package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/metrics"

	"golang.org/x/oauth2"
)

const DefaultBaseURL = "https://discord.com/api/v10"

// Client reads the signed-in account from the Discord REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: newHTTPClient(),
		baseURL:    DefaultBaseURL,
	}
}

// NewTestClient creates a client with custom base URL for testing.
func NewTestClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout:   10 * time.Second,
		Transport: NewMetricsRoundTripper(http.DefaultTransport),
	}
}

func (c *Client) CurrentUser(ctx context.Context, token *oauth2.Token) (*DiscordUser, error) {
	var user DiscordUser
	if err := c.getAndDecode(ctx, c.baseURL+"/users/@me", token, &user); err != nil {
		return nil, fmt.Errorf("fetch current user: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("fetch current user: response has no id")
	}
	return &user, nil
}

func (c *Client) getAndDecode(ctx context.Context, url string, token *oauth2.Token, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	token.SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// -- Middleware --

type MetricsRoundTripper struct {
	Proxied http.RoundTripper
}

func NewMetricsRoundTripper(proxied http.RoundTripper) *MetricsRoundTripper {
	if proxied == nil {
		proxied = http.DefaultTransport
	}
	return &MetricsRoundTripper{Proxied: proxied}
}

func (mrt *MetricsRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := mrt.Proxied.RoundTrip(req)
	duration := time.Since(start).Seconds()

	status := "error"
	if err == nil {
		status = fmt.Sprintf("%d", resp.StatusCode)
	}

	endpoint := endpointLabel(req.URL.Path)
	metrics.DiscordAPIRequestDuration.WithLabelValues(endpoint, status).Observe(duration)
	metrics.DiscordAPIRequests.WithLabelValues(endpoint, status).Inc()

	return resp, err
}

func endpointLabel(path string) string {
	switch {
	case strings.HasSuffix(path, "/oauth2/token"):
		return "token"
	case strings.HasSuffix(path, "/users/@me"):
		return "current_user"
	default:
		return "unknown"
	}
}
