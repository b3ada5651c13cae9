package form

import "errors"

var (
	// ErrDuplicateSubmission means the user already has a form on file.
	ErrDuplicateSubmission = errors.New("form already submitted")

	// ErrBandExhausted means the category's examination-number band is
	// full. Operational failure; the submission must not be accepted.
	ErrBandExhausted = errors.New("examination number band exhausted")

	// ErrInvalidTrack means the admission-track value is outside the
	// enumerated set.
	ErrInvalidTrack = errors.New("invalid admission track")

	// ErrNotFound means the requested form does not exist.
	ErrNotFound = errors.New("form not found")
)
