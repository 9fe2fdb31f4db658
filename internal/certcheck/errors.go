package certcheck

import "errors"

var (
	// ErrHandshakeFailed is returned when the TLS connection cannot be established
	ErrHandshakeFailed = errors.New("TLS handshake failed")
	// ErrInvalidURL is returned when the target URL cannot be parsed
	ErrInvalidURL = errors.New("invalid URL for certificate check")
)
