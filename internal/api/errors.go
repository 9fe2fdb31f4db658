package api

import "errors"

var (
	// ErrInvalidRequestBody is returned when the request body cannot be decoded
	ErrInvalidRequestBody = errors.New("invalid request body")
	// ErrURLRequired is returned when no URL is provided for assessment
	ErrURLRequired = errors.New("url required")
	// ErrMultipleJSONObjects is returned when the request body contains more than one JSON object
	ErrMultipleJSONObjects = errors.New("request body must contain a single JSON object")
	// ErrHistoryNotAvailable is returned when assessment history is not configured
	ErrHistoryNotAvailable = errors.New("assessment history not available")
)
