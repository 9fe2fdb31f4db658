package history

import "errors"

var (
	// ErrOpenFailed is returned when the assessment database cannot be opened
	ErrOpenFailed = errors.New("unable to open assessment database")

	// ErrSaveFailed is returned when an assessment cannot be persisted
	ErrSaveFailed = errors.New("unable to save assessment")

	// ErrQueryFailed is returned when stored assessments cannot be read back
	ErrQueryFailed = errors.New("unable to query assessment history")
)
