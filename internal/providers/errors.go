package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrUpstreamUnavailable marks failures where the upstream could not be reached or answered badly.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// ErrInvalidPayload marks a 2xx upstream response whose body is not JSON.
var ErrInvalidPayload = errors.New("upstream returned invalid json")

// StatusError captures a non-2xx upstream response.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
}

func (e *StatusError) Unwrap() error { return ErrUpstreamUnavailable }

// RateLimitError captures quota responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

func (e *RateLimitError) Unwrap() error { return ErrUpstreamUnavailable }

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
