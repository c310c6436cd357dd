package api

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewStatusErrorClassification(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorType
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusBadRequest, ErrValidation},
		{http.StatusUnprocessableEntity, ErrValidation},
		{http.StatusConflict, ErrConflict},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusInternalServerError, ErrServer},
		{http.StatusBadGateway, ErrServer},
		{http.StatusTeapot, ErrUnknown},
	}

	for _, tt := range tests {
		err := NewStatusError(tt.status, "")
		if err.Type != tt.want {
			t.Errorf("status %d: type = %v, want %v", tt.status, err.Type, tt.want)
		}
		if err.StatusCode != tt.status {
			t.Errorf("status %d: StatusCode = %d", tt.status, err.StatusCode)
		}
	}
}

func TestNewStatusErrorMessageFallback(t *testing.T) {
	err := NewStatusError(http.StatusNotFound, "")
	if err.Message != "Not Found" {
		t.Errorf("expected status text fallback, got %q", err.Message)
	}

	err = NewStatusError(http.StatusConflict, "email already registered")
	if err.Message != "email already registered" {
		t.Errorf("backend message should win, got %q", err.Message)
	}
}

func TestClassify(t *testing.T) {
	if Classify(nil) != nil {
		t.Error("Classify(nil) should be nil")
	}

	original := NewStatusError(http.StatusNotFound, "gone")
	if got := Classify(original); got != original {
		t.Error("APIError values must pass through unchanged")
	}

	err := Classify(errors.New("dial tcp: connection refused"))
	if err.Type != ErrNetwork {
		t.Errorf("connection refused should classify as network, got %v", err.Type)
	}

	err = Classify(errors.New("context deadline exceeded"))
	if err.Type != ErrTimeout {
		t.Errorf("deadline exceeded should classify as timeout, got %v", err.Type)
	}
}

func TestIsRetryable(t *testing.T) {
	retryable := []ErrorType{ErrNetwork, ErrTimeout, ErrRateLimited, ErrServer}
	for _, errType := range retryable {
		e := &APIError{Type: errType}
		if !e.IsRetryable() {
			t.Errorf("type %v should be retryable", errType)
		}
	}

	final := []ErrorType{ErrUnauthorized, ErrForbidden, ErrNotFound, ErrValidation, ErrConflict, ErrUnknown}
	for _, errType := range final {
		e := &APIError{Type: errType}
		if e.IsRetryable() {
			t.Errorf("type %v should not be retryable", errType)
		}
	}
}

func TestUserMessage(t *testing.T) {
	e := &APIError{Type: ErrValidation, Message: "price must be positive"}
	if e.UserMessage() != "price must be positive" {
		t.Errorf("validation errors should surface the backend message, got %q", e.UserMessage())
	}

	e = &APIError{Type: ErrUnauthorized}
	if e.UserMessage() == "" {
		t.Error("every error type needs a user message")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewNetworkError("connection failed", cause)

	if !errors.Is(err, cause) {
		t.Error("APIError must unwrap to its cause")
	}
}
