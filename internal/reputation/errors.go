package reputation

import "errors"

var (
	// ErrRequestFailed is returned when the reputation API request fails
	ErrRequestFailed = errors.New("reputation request failed")
	// ErrUnexpectedStatus is returned on a non-200 response status
	ErrUnexpectedStatus = errors.New("unexpected reputation response status")
)
