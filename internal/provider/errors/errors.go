package errors

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Error classes every provider error wraps.
var (
	ErrValidation  = errors.New("validation error")
	ErrNetwork     = errors.New("network error")
	ErrProvider    = errors.New("provider error")
	ErrRateLimited = errors.New("rate limited")
	ErrParse       = errors.New("parse error")
)

// ProviderError is returned for a non-success HTTP status from a provider.
type ProviderError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ProviderError) Error() string {
	s := ErrProvider.Error()
	if e.StatusCode != 0 {
		s += ": HTTP status " + strconv.Itoa(e.StatusCode)
	}
	if e.Code != "" {
		s += ": " + e.Code
	}
	if e.Message != "" {
		s += ": " + e.Message
	}
	return s
}

func (e *ProviderError) Unwrap() error {
	return ErrProvider
}

// RateLimitError is returned when the provider throttles a request and
// indicates how long to wait before retrying it.
type RateLimitError struct {
	// StatusCode is zero when the throttling is not reported
	// through an HTTP status.
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	s := ErrRateLimited.Error()
	if e.StatusCode != 0 {
		s += ": HTTP status " + strconv.Itoa(e.StatusCode)
	}
	s += fmt.Sprintf(": retry after %s", e.RetryAfter)
	if e.Message != "" {
		s += ": " + e.Message
	}
	return s
}

// Unwrap makes a rate limit error match both ErrRateLimited and ErrProvider.
func (e *RateLimitError) Unwrap() []error {
	return []error{ErrRateLimited, ErrProvider}
}
