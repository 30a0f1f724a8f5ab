// errors/errors.go
// Package errors defines the failure kinds surfaced by the client: transport
// failures, unexpected statuses from the authorization endpoint and undecodable
// token responses. Use the standard library errors.As to classify them.
package errors

import (
	"fmt"
	"net/http"

	"github.com/deploymenttheory/go-api-http-client-commercetools/response"
)

// TransportError reports that a request could not be completed: it could not
// be built, the connection failed or timed out, or the body could not be read.
type TransportError struct {
	Op     string // what was being attempted, e.g. "retrieve token", "send request"
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UnexpectedStatusError reports that the authorization endpoint answered with
// anything but 200 OK. The raw response is kept for diagnostics.
type UnexpectedStatusError struct {
	StatusCode int
	Status     string
	URL        string
	Header     http.Header
	Body       string
	APIError   *response.APIError // best-effort parse of Body, may be nil
}

func (e *UnexpectedStatusError) Error() string {
	if e.APIError != nil && e.APIError.Message != "" {
		return fmt.Sprintf("unexpected status %s from %s: %s", e.Status, e.URL, e.APIError.Message)
	}
	return fmt.Sprintf("unexpected status %s from %s", e.Status, e.URL)
}

// DecodeError reports a 200 OK token response whose body does not have the
// expected {"access_token", "expires_in"} shape.
type DecodeError struct {
	URL  string
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode token response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
