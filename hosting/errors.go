package hosting

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated indicates a missing or rejected API token.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrNoScaleTarget is returned when neither a VM type nor regions were
// provided by flags or the config file.
var ErrNoScaleTarget = errors.New("no vm type or regions to scale to")

// ResponseError is a non-success response from the hosting API.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("hosting API error: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("hosting API error: HTTP %d: %s", e.StatusCode, e.Message)
}
