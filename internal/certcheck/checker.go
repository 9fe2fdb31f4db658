// Package certcheck validates the TLS certificate presented by a URL's
// host and normalizes the result into a CertificateFinding.
package certcheck

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/projectdiscovery/tlsx/pkg/tlsx"
	"github.com/projectdiscovery/tlsx/pkg/tlsx/clients"

	"github.com/MokshaVS03/scam-url-detector/internal/types"
)

const (
	// defaultTimeout bounds the TLS connection in seconds.
	defaultTimeout = 10 * time.Second
	// tlsRetries is the number of retry attempts for TLS connections.
	tlsRetries = 2
	// httpsPort is the port probed when the URL carries none.
	httpsPort = "443"

	// reasonNotHTTPS explains the default finding for insecure schemes.
	reasonNotHTTPS = "not https"
)

// Checker performs certificate validity checks.
type Checker struct {
	timeout time.Duration
}

// Option configures the Checker
type Option func(*Checker)

// WithTimeout overrides the TLS connection timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Checker) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// New creates a certificate Checker.
func New(opts ...Option) *Checker {
	c := &Checker{timeout: defaultTimeout}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Check connects to the URL's host and evaluates the presented
// certificate. A non-https scheme yields an invalid finding without a
// handshake. A transport or handshake failure is returned as an error so
// the caller can substitute the documented default.
func (c *Checker) Check(_ context.Context, rawURL string) (types.CertificateFinding, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return types.CertificateFinding{}, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if u.Scheme != "https" {
		return types.DefaultCertificateFinding(reasonNotHTTPS), nil
	}

	host := u.Hostname()
	if host == "" {
		return types.CertificateFinding{}, fmt.Errorf("%w: no host in %q", ErrInvalidURL, rawURL)
	}

	port := u.Port()
	if port == "" {
		port = httpsPort
	}

	options := &clients.Options{
		Timeout:    int(c.timeout.Seconds()),
		Retries:    tlsRetries,
		Expired:    true,
		SelfSigned: true,
		MisMatched: true,
		MinVersion: "tls10",
		MaxVersion: "tls13",
	}

	service, err := tlsx.New(options)
	if err != nil {
		return types.CertificateFinding{}, fmt.Errorf("%w: %v", ErrHandshakeFailed, err)
	}

	response, err := service.Connect(host, "", port)
	if err != nil {
		return types.CertificateFinding{}, fmt.Errorf("%w: %v", ErrHandshakeFailed, err)
	}

	if response == nil {
		return types.CertificateFinding{}, fmt.Errorf("%w: empty response for %s", ErrHandshakeFailed, host)
	}

	return buildFinding(response), nil
}

// buildFinding maps the handshake response onto a CertificateFinding. A
// certificate counts as valid only when it is neither expired, self
// signed, nor mismatched against the probed host.
func buildFinding(response *clients.Response) types.CertificateFinding {
	finding := types.CertificateFinding{
		Valid:     !response.Expired && !response.SelfSigned && !response.MisMatched,
		Issuer:    response.IssuerDN,
		Subject:   response.SubjectDN,
		NotBefore: response.NotBefore,
		NotAfter:  response.NotAfter,
	}

	switch {
	case response.Expired:
		finding.Reason = "certificate expired"
	case response.SelfSigned:
		finding.Reason = "self-signed certificate"
	case response.MisMatched:
		finding.Reason = "certificate does not match host"
	}

	return finding
}
