package api

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

type ErrorType int

const (
	ErrNetwork ErrorType = iota
	ErrTimeout
	ErrUnauthorized
	ErrForbidden
	ErrNotFound
	ErrValidation
	ErrConflict
	ErrRateLimited
	ErrServer
	ErrUnknown
)

// APIError carries what the backend (or the transport) reported, plus
// enough classification to decide on retries and user messaging
type APIError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("api: %s", e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

func NewNetworkError(message string, cause error) *APIError {
	return &APIError{Type: ErrNetwork, Message: message, Cause: cause}
}

func NewTimeoutError(operation string) *APIError {
	return &APIError{Type: ErrTimeout, Message: fmt.Sprintf("%s timed out", operation)}
}

// NewStatusError classifies a non-2xx response. The message comes from
// the backend's error envelope when it sent one.
func NewStatusError(statusCode int, message string) *APIError {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	errType := ErrUnknown
	switch {
	case statusCode == http.StatusUnauthorized:
		errType = ErrUnauthorized
	case statusCode == http.StatusForbidden:
		errType = ErrForbidden
	case statusCode == http.StatusNotFound:
		errType = ErrNotFound
	case statusCode == http.StatusConflict:
		errType = ErrConflict
	case statusCode == http.StatusUnprocessableEntity || statusCode == http.StatusBadRequest:
		errType = ErrValidation
	case statusCode == http.StatusTooManyRequests:
		errType = ErrRateLimited
	case statusCode >= 500:
		errType = ErrServer
	}

	return &APIError{Type: errType, Message: message, StatusCode: statusCode}
}

// Classify normalizes any transport error into an APIError
func Classify(err error) *APIError {
	if err == nil {
		return nil
	}

	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}

	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return NewTimeoutError("request")
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded"):
		return NewTimeoutError("request")
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "no such host"):
		return NewNetworkError("connection failed", err)
	default:
		return NewNetworkError("network error", err)
	}
}

// IsRetryable reports whether retrying the same request can help
func (e *APIError) IsRetryable() bool {
	switch e.Type {
	case ErrNetwork, ErrTimeout, ErrRateLimited, ErrServer:
		return true
	default:
		return false
	}
}

// UserMessage is the toast-ready description of the failure
func (e *APIError) UserMessage() string {
	switch e.Type {
	case ErrNetwork:
		return "Could not reach the server. Check your internet connection."
	case ErrTimeout:
		return "The request timed out. Please try again."
	case ErrUnauthorized:
		return "Your session has expired. Please log in again."
	case ErrForbidden:
		return "You don't have permission to do that."
	case ErrNotFound:
		return "That item no longer exists."
	case ErrValidation:
		if e.Message != "" {
			return e.Message
		}
		return "The server rejected the request."
	case ErrConflict:
		if e.Message != "" {
			return e.Message
		}
		return "That conflicts with something that already exists."
	case ErrRateLimited:
		return "Too many requests. Please wait a moment and try again."
	case ErrServer:
		return "The server had a problem. Please try again shortly."
	default:
		return "An unexpected error occurred."
	}
}
