package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMethodNotAllowed   = errors.New("method not allowed")
	ErrMissingConfig      = errors.New("missing provider configuration")
	ErrInvalidRequestBody = errors.New("invalid request body")
	ErrUpstream           = errors.New("upstream provider error")
	ErrEmptyCompletion    = errors.New("no content from provider")
	ErrUnknownProvider    = errors.New("unknown completion provider")
)

// ConfigError reports credentials or settings missing for the selected provider.
type ConfigError struct {
	Provider string
	Code     string
	Missing  []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s environment variables are not configured (missing: %s)",
		e.Provider, strings.Join(e.Missing, ", "))
}

func (e *ConfigError) Unwrap() error { return ErrMissingConfig }

// UpstreamError carries a non-2xx provider response. Details holds the raw response text.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Details    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error: status %d", e.Provider, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// EmptyCompletionError is returned when the provider answered 2xx without any content.
type EmptyCompletionError struct {
	Provider string
}

func (e *EmptyCompletionError) Error() string {
	return "No content from " + e.Provider
}

func (e *EmptyCompletionError) Unwrap() error { return ErrEmptyCompletion }

// InvalidBodyError wraps the decoder failure so callers can branch on ErrInvalidRequestBody
// while the message stays the decoder's own text.
type InvalidBodyError struct {
	Err error
}

func (e *InvalidBodyError) Error() string { return e.Err.Error() }

func (e *InvalidBodyError) Is(target error) bool { return target == ErrInvalidRequestBody }

func (e *InvalidBodyError) Unwrap() error { return e.Err }
