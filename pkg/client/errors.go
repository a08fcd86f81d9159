package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is an HTTP-level failure: the server responded with a status
// outside 2xx and a JSON error body.
type APIError struct {
	StatusCode int
	Reason     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("got %d %s: %s", e.StatusCode, e.Reason, e.Message)
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Reason:     http.StatusText(resp.StatusCode),
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
	}

	return apiErr
}

// TransportError is a connection-level failure: no response was received,
// e.g. when ColorNavigator is not running.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to communicate with the ColorNavigator API server: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
