package model

import (
	"context"
	"errors"
	"net"
)

// Error names attached to normalized request errors.
const (
	ErrNameHTTP      = "HTTPError"
	ErrNameNetwork   = "NetworkError"
	ErrNameTimeout   = "TimeoutError"
	ErrNameAPI       = "APIError"
	ErrNameAuth      = "AuthError"
	ErrNameUnhandled = "Error"
)

// RequestError is the normalized shape recorded in container state when an
// asynchronous operation fails.
type RequestError struct {
	Message string `json:"message"`
	Name    string `json:"name,omitempty"`
	// Status is the upstream HTTP status, zero for transport failures.
	Status int `json:"-"`
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Name == "" {
		return e.Message
	}
	return e.Name + ": " + e.Message
}

// NormalizeError converts any error into a RequestError. A RequestError found
// anywhere in the chain is returned as-is.
func NormalizeError(err error) *RequestError {
	if err == nil {
		return nil
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &RequestError{Message: err.Error(), Name: ErrNameTimeout}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return &RequestError{Message: err.Error(), Name: ErrNameTimeout}
		}
		return &RequestError{Message: err.Error(), Name: ErrNameNetwork}
	}

	return &RequestError{Message: err.Error(), Name: ErrNameUnhandled}
}
