package intake

import "errors"

var (
	// ErrMissingFields is returned when a required field is missing or empty
	ErrMissingFields = errors.New("missing required fields")

	// ErrNoDatabase is returned on every insert when the service was booted
	// without a datastore credential
	ErrNoDatabase = errors.New("intake: DATABASE_URL is not configured")
)
