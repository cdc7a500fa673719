package api

import (
	"errors"
	"fmt"
)

// APIError is returned when the gateway answers with ok=false.
type APIError struct {
	// Code is the remote error code, nil when the gateway did not send one.
	Code    *int
	Name    string
	Message string
	// StatusCode is the HTTP status the error envelope arrived with.
	StatusCode int
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" {
		msg = e.Name
	}
	if e.Code != nil {
		return fmt.Sprintf("crypto pay api error %d: %s", *e.Code, msg)
	}
	return fmt.Sprintf("crypto pay api error: %s", msg)
}

// TransportError covers network faults, non-success HTTP statuses without an
// error envelope, empty bodies and (de)serialization failures.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func newTransportError(status int, err error, message string) *TransportError {
	return &TransportError{StatusCode: status, Message: message, Err: err}
}

func (e *TransportError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsAPIError reports whether err carries an *APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsTransportError reports whether err carries a *TransportError.
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
