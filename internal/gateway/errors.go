package gateway

import "fmt"

// UserNotFoundError is returned when the API answers 404 for the requested user.
type UserNotFoundError struct {
	Username string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user %q not found", e.Username)
}

// RateLimitError is returned when the API answers 403, which on the
// unauthenticated events endpoint almost always means the rate limit was hit.
type RateLimitError struct{}

func (e *RateLimitError) Error() string {
	return "API rate limit exceeded"
}

// APIError is returned for any other non-2xx status.
type APIError struct {
	StatusCode int
	Snippet    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Snippet)
}

// NetworkError is returned when the request could not complete at the
// transport level (connection failure, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError is returned when a 200 response body is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid response from GitHub API: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
