package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
)

var errMissingResult = errors.New("missing result")

// envelope wraps every gateway response. Unknown fields are ignored.
type envelope[T any] struct {
	OK          bool           `json:"ok"`
	Result      T              `json:"result"`
	ErrorCode   *int           `json:"error_code,omitempty"`
	Description string         `json:"description,omitempty"`
	Error       *envelopeError `json:"error,omitempty"`
}

// envelopeError is the structured error form, {"code":401,"name":"UNAUTHORIZED"}.
type envelopeError struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// decodeEnvelope parses raw into an envelope and returns its result. The
// result type T is the shape descriptor, e.g. []Invoice or *Check.
//
// A successful envelope without a result is an error for single-object shapes
// and an empty value for lists.
func decodeEnvelope[T any](raw []byte) (T, error) {
	var zero T
	var env envelope[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, newTransportError(0, err, "decode response")
	}
	if !env.OK {
		return zero, env.apiError(http.StatusOK)
	}

	if len(env.Result) == 0 || bytes.Equal(env.Result, []byte("null")) {
		if reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.Pointer {
			return zero, newTransportError(0, errMissingResult, "decode response")
		}
		return zero, nil
	}

	var result T
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return zero, newTransportError(0, err, "decode response")
	}
	return result, nil
}

func (e *envelope[T]) apiError(status int) *APIError {
	apiErr := &APIError{
		Code:       e.ErrorCode,
		Message:    e.Description,
		StatusCode: status,
	}
	if e.Error != nil {
		if apiErr.Code == nil {
			code := e.Error.Code
			apiErr.Code = &code
		}
		apiErr.Name = e.Error.Name
	}
	return apiErr
}

// errorFromBody returns the APIError carried by a non-success response, or
// nil when body is not an ok=false envelope.
func errorFromBody(status int, body []byte) *APIError {
	var env envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}
	if env.OK || (env.ErrorCode == nil && env.Description == "" && env.Error == nil) {
		return nil
	}
	return env.apiError(status)
}
