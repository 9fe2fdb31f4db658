// Package domainage resolves how long ago a domain was registered, using
// the public RDAP registries. A very young domain is a strong scam signal;
// when the registry cannot answer, the caller assumes an old domain so the
// unknown never penalizes the score.
package domainage

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	rdaplib "github.com/openrdap/rdap"
)

const (
	// defaultTimeout bounds RDAP queries.
	defaultTimeout = 10 * time.Second
	// hoursPerDay converts the registration interval to days.
	hoursPerDay = 24
)

// Client performs RDAP registration-age lookups.
type Client struct {
	rdapClient *rdaplib.Client
	timeout    time.Duration
}

// Option configures the Client
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for RDAP queries
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.rdapClient.HTTP = httpClient
		}
	}
}

// WithTimeout overrides the timeout for RDAP queries
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// New creates an RDAP registration-age client.
func New(opts ...Option) *Client {
	c := &Client{
		rdapClient: &rdaplib.Client{},
		timeout:    defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// AgeDays queries RDAP for the domain's registration event and returns
// the domain age in days. Registries that publish no registration date
// yield ErrNoRegistrationDate so the caller can fall back to its default.
func (c *Client) AgeDays(ctx context.Context, domain string) (int, error) {
	domain = strings.TrimSpace(strings.ToLower(domain))
	if domain == "" {
		return 0, ErrEmptyDomain
	}

	req := &rdaplib.Request{
		Type:    rdaplib.DomainRequest,
		Query:   domain,
		Timeout: c.timeout,
	}

	req = req.WithContext(ctx)

	resp, err := c.rdapClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	domainObj, ok := resp.Object.(*rdaplib.Domain)
	if !ok || domainObj == nil {
		return 0, fmt.Errorf("%w: unexpected RDAP object for %s", ErrLookupFailed, domain)
	}

	return ageFromDomain(domainObj)
}

// ageFromDomain extracts the registration event and converts it to days.
func ageFromDomain(d *rdaplib.Domain) (int, error) {
	for _, event := range d.Events {
		if !strings.EqualFold(event.Action, "registration") {
			continue
		}

		registered, err := time.Parse(time.RFC3339, event.Date)
		if err != nil {
			continue
		}

		return int(time.Since(registered).Hours() / hoursPerDay), nil
	}

	return 0, ErrNoRegistrationDate
}
