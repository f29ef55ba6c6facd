package casino

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError is a caller-fixable problem found before anything is sent.
// Facades fold it into a Result with StatusInvalidRequest.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConnectivityError means the round trip to the backend did not complete with
// HTTP 200. It carries the raw response, when there was one, for diagnostics.
type ConnectivityError struct {
	URL        string
	StatusCode int
	Status     string
	Body       []byte
	Err        error
}

func (e *ConnectivityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("can't connect to server %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("can't connect to server %s: %s; body=%s", e.URL, e.Status, string(e.Body))
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// Temporary reports whether repeating the same request may succeed.
func (e *ConnectivityError) Temporary() bool {
	if e.Err != nil {
		return true
	}
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// MappingError means the backend payload did not match the declared shape.
// It indicates protocol drift between the SDK and the backend.
type MappingError struct {
	Controller string
	Resource   string
	Reason     string
	Err        error
}

func (e *MappingError) Error() string {
	msg := fmt.Sprintf("unexpected %s/%s payload: %s", e.Controller, e.Resource, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// IsConnectivity reports whether err is, or wraps, a ConnectivityError.
func IsConnectivity(err error) bool {
	var ce *ConnectivityError
	return errors.As(err, &ce)
}

// IsMapping reports whether err is, or wraps, a MappingError.
func IsMapping(err error) bool {
	var me *MappingError
	return errors.As(err, &me)
}
