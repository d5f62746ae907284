package auth

import "errors"

var (
	// ErrUnauthorized indicates a missing, malformed, expired, or otherwise
	// invalid bearer credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMissingSecret indicates the signing secret is not configured.
	ErrMissingSecret = errors.New("signing_secret required")
)
