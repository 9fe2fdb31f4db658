// Package reputation queries an external URL-reputation service and
// normalizes its report into a ReputationFinding. Without API credentials
// the client degrades to a zero-detection finding without a network call.
package reputation

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/theopenlane/httpsling"

	"github.com/MokshaVS03/scam-url-detector/internal/types"
)

const (
	// defaultBaseURL is the root endpoint of the reputation service API
	defaultBaseURL = "https://www.virustotal.com/vtapi/v2"
	// reportPath is the URL report endpoint
	reportPath = "/url/report"
	// defaultRequestTimeout bounds reputation lookups.
	defaultRequestTimeout = 10 * time.Second
)

// Client queries the reputation service.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures the Client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client for reputation lookups
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the default reputation API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// New creates a reputation client. An empty API key is allowed and makes
// every lookup return the zero-detection default.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// report is the wire shape of the reputation service's URL report.
type report struct {
	Positives int    `json:"positives"`
	Total     int    `json:"total"`
	ScanDate  string `json:"scan_date"`
}

// Lookup fetches the reputation report for the target URL. Absent
// credentials yield the documented zero-detection default; transport and
// status failures are returned to the caller for defaulting.
func (c *Client) Lookup(ctx context.Context, target string) (types.ReputationFinding, error) {
	if c.apiKey == "" {
		return types.ReputationFinding{}, nil
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("resource", target)

	requester := httpsling.MustNew(
		httpsling.URL(c.baseURL+reportPath+"?"+params.Encode()),
		httpsling.Method(http.MethodGet),
		httpsling.WithHTTPClient(c.httpClient),
	)

	var rep report

	resp, err := requester.ReceiveWithContext(ctx, &rep)
	if err != nil {
		return types.ReputationFinding{}, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close error is non-critical

	if resp.StatusCode != http.StatusOK {
		return types.ReputationFinding{}, fmt.Errorf("%w: status %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return types.ReputationFinding{
		DetectionCount: rep.Positives,
		TotalScans:     rep.Total,
		ScanDate:       rep.ScanDate,
	}, nil
}
