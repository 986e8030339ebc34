package api

import (
	"errors"
	"fmt"
	"time"
)

// Error is a non-200 response from the Riot API. RetryAfter is only set on
// 429 responses that carried a Retry-After header.
type Error struct {
	StatusCode int
	RetryAfter time.Duration
	URL        string
}

func (e *Error) Error() string {
	return fmt.Sprintf("riot API error: status %d for %s", e.StatusCode, e.URL)
}

// IsRateLimited reports whether err is a 429 from the Riot API.
func IsRateLimited(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == 429 {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a 404 from the Riot API.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
