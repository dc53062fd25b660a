// Package rates provides a client for the open.er-api.com exchange-rate API.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://open.er-api.com/v6/latest"
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// ErrRateUnavailable indicates the response carried no rate for the
// requested target currency.
var ErrRateUnavailable = errors.New("rates: no rate for target currency")

// Client fetches exchange rates over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client. An empty baseURL selects the public
// open.er-api.com endpoint.
func NewClient(baseURL string) *Client {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

type latestResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// Rate returns the multiplier converting amounts in base currency to
// the target currency. Each call is a fresh network round trip.
func (c *Client) Rate(ctx context.Context, base, target string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/%s", c.baseURL, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("rates: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("rates: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("rates: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, fmt.Errorf("rates: reading response: %w", err)
	}

	var parsed latestResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("rates: parsing response: %w", err)
	}
	if parsed.Result != "" && parsed.Result != "success" {
		return 0, fmt.Errorf("rates: api result %q", parsed.Result)
	}

	rate, ok := parsed.Rates[target]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrRateUnavailable, target)
	}
	return rate, nil
}
