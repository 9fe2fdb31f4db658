package fetcher

import "errors"

var (
	// ErrFetchFailed is returned when the page request cannot be completed
	ErrFetchFailed = errors.New("page fetch failed")
	// ErrUnexpectedStatus is returned on a non-success HTTP status
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrParseFailed is returned when the response body is not parseable HTML
	ErrParseFailed = errors.New("page parse failed")
)
