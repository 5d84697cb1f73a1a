package domain

import (
	"context"
	"errors"
	"strings"
)

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// UpstreamErrKind classifies failures returned by a metered upstream API.
type UpstreamErrKind string

const (
	UpstreamErrRateLimited  UpstreamErrKind = "rate_limited"
	UpstreamErrUnauthorized UpstreamErrKind = "unauthorized"
	UpstreamErrNetwork      UpstreamErrKind = "network"
	UpstreamErrOther        UpstreamErrKind = "other"
)

// UpstreamErr is a failure reported by an upstream API call, tagged by the transport layer.
type UpstreamErr struct {
	Kind       UpstreamErrKind
	StatusCode int
	Message    string
	Cause      error
}

// NewUpstreamErr creates a new UpstreamErr.
func NewUpstreamErr(kind UpstreamErrKind, statusCode int, message string, cause error) *UpstreamErr {
	return &UpstreamErr{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    message,
		Cause:      cause,
	}
}

// Error returns the error message.
func (e *UpstreamErr) Error() string {
	if e.Cause != nil && e.Message == "" {
		return e.Cause.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *UpstreamErr) Unwrap() error {
	return e.Cause
}

// retryableErrSignatures is matched case-insensitively against untagged error
// messages to detect rate limiting, auth and transient network failures.
var retryableErrSignatures = []string{
	"rate limit",
	"ratelimit",
	"too many requests",
	"429",
	"quota",
	"unauthorized",
	"401",
	"forbidden",
	"403",
	"timeout",
	"timed out",
	"deadline exceeded",
	"econnreset",
	"connection reset",
	"network",
	"fetch failed",
	"aborted",
}

// IsRetryableUpstreamErr reports whether err is worth repeating with another credential.
//
// Tagged UpstreamErr values are classified by kind. Untagged errors and errors of kind
// UpstreamErrOther are matched against a fixed vocabulary of transient, auth and rate
// limit signatures. Cancellation of the caller's context is never retryable.
func IsRetryableUpstreamErr(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var upErr *UpstreamErr
	if errors.As(err, &upErr) {
		switch upErr.Kind {
		case UpstreamErrRateLimited, UpstreamErrUnauthorized, UpstreamErrNetwork:
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, sig := range retryableErrSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}
