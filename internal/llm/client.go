// Package llm provides the client for the remote idea-generation endpoint.
package llm

import (
	"context"
	"fmt"
	"time"
)

// Client is the interface the rest of the tool talks to.
type Client interface {
	// Generate returns the model's raw response text for the given prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}

// AuthError reports a missing or rejected API credential.
// It is never retried.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "auth error: " + e.Reason
}

// NetworkError wraps a transport-level failure (connection or timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RateLimitError reports an HTTP 429 from the endpoint. RetryAfter holds the
// server-suggested delay when the Retry-After header was present.
type RateLimitError struct {
	RetryAfter    time.Duration
	HasRetryAfter bool
	Body          string
}

func (e *RateLimitError) Error() string {
	if e.Body == "" {
		return "rate limited by LLM endpoint"
	}
	return "rate limited by LLM endpoint: " + e.Body
}

// ServiceError reports a server fault or a response body the client could not
// make sense of. StatusCode is 0 when the failure was not an HTTP status.
type ServiceError struct {
	StatusCode int
	Reason     string
}

func (e *ServiceError) Error() string {
	if e.StatusCode == 0 {
		return "service error: " + e.Reason
	}
	return fmt.Sprintf("service error: status %d: %s", e.StatusCode, e.Reason)
}
