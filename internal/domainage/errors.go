package domainage

import "errors"

var (
	// ErrEmptyDomain is returned when no domain is provided
	ErrEmptyDomain = errors.New("empty domain")
	// ErrLookupFailed is returned when the RDAP query fails
	ErrLookupFailed = errors.New("RDAP lookup failed")
	// ErrNoRegistrationDate is returned when the registry publishes no registration event
	ErrNoRegistrationDate = errors.New("no registration date available")
)
