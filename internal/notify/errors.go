package notify

import "errors"

var (
	// ErrMissingWebhookURL is returned when the alert webhook URL is not configured
	ErrMissingWebhookURL = errors.New("alert webhook URL is required")
	// ErrNotificationFailed is returned when an alert webhook request fails
	ErrNotificationFailed = errors.New("alert notification failed")
	// ErrUnexpectedStatus is returned when the webhook returns an unexpected HTTP status
	ErrUnexpectedStatus = errors.New("unexpected alert webhook response status")
)
