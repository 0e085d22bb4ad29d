package domain

import (
	"errors"
	"fmt"
)

// APIError is a failure reported by the sign-up service itself: a non-2xx
// response carrying a JSON body.
type APIError struct {
	Status int
	// Detail is the service's "detail" field; empty when the body had none.
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("activities api: status %d", e.Status)
	}
	return fmt.Sprintf("activities api: status %d: %s", e.Status, e.Detail)
}

// TransportError covers everything that kept a usable response from arriving:
// connection failures, timeouts, and bodies that are not valid JSON.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("activities api: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DetailOf extracts the service-supplied detail from err, if any.
func DetailOf(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail, true
	}
	return "", false
}

// IsAPIError reports whether err was reported by the service rather than the transport.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
