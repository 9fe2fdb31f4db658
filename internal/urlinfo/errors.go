package urlinfo

import "errors"

var (
	// ErrMalformedURL is returned when the input cannot be parsed as a URL at all
	ErrMalformedURL = errors.New("malformed URL")
)
