package jira

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the Jira API could not be reached at the
	// transport level.
	ErrUnavailable = errors.New("jira api unreachable")

	// ErrTimeout indicates a request exceeded the configured timeout.
	ErrTimeout = errors.New("jira request timed out")
)

// StatusError reports a non-2xx response from the Jira API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("jira returned status %d: %s", e.StatusCode, e.Body)
}
