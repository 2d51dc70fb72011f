// Package relay delivers a best-effort copy of each submission to an
// external webhook, typically a spreadsheet automation endpoint.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nitrondigital/wholesaling-api/pkg/logging"
)

const (
	defaultTimeout = 10 * time.Second

	// Response bodies are kept for diagnostic logging only.
	maxResponseBytes = 4 << 10
)

// Config controls how the relay client behaves.
type Config struct {
	URL        string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logging.Logger
}

// Client posts submission payloads to the configured webhook URL.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *logging.Logger
}

// New creates a configured Client. It returns nil when no URL is configured,
// which disables the relay step entirely.
func New(cfg Config) *Client {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		return nil
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		// Redirects are followed: the reference endpoint answers the initial
		// POST with a 302 that must be chased to finish delivery.
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		url:        url,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Payload is the exact field set the webhook contract expects. Email and
// message are always present, defaulting to the empty string.
type Payload struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

// Send posts the payload as JSON and reads the response body for diagnostics.
// A non-2xx status is an error; the caller decides whether that is fatal.
func (c *Client) Send(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("relay: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("relay: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay: post webhook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.logger.Debug("webhook response",
		"status", resp.StatusCode,
		"body", string(respBody),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("relay: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
