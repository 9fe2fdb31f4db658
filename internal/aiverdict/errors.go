package aiverdict

import "errors"

var (
	// ErrRequestFailed is returned when the classifier API request fails
	ErrRequestFailed = errors.New("classifier request failed")
	// ErrUnexpectedStatus is returned on a non-200 response status
	ErrUnexpectedStatus = errors.New("unexpected classifier response status")
	// ErrEmptyResponse is returned when the classifier returns no choices
	ErrEmptyResponse = errors.New("empty classifier response")
)
