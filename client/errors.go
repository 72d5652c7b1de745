package client

import (
	"errors"
	"fmt"
)

// APIError is the one error kind the client manufactures itself: the remote
// service answered with its JSON error envelope. Transport and JSON decode
// failures pass through unmodified.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("musicbrainz: %s (status %d)", e.Message, e.StatusCode)
}

// IsAPIError reports whether err is an *APIError, returning it when so.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
