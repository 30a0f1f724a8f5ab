// status.go
// Package status provides helpers for classifying and describing HTTP status codes.
package status

import (
	"fmt"
	"net/http"
)

// IsSuccess reports whether the response carries exactly 200 OK, the only status
// the authorization endpoint answers a successful token request with.
func IsSuccess(resp *http.Response) bool {
	return resp != nil && resp.StatusCode == http.StatusOK
}

// IsRedirectStatusCode checks if the provided HTTP status code is one of the redirect codes.
// Redirect status codes instruct the client to make a new request to a different URI, as defined in the response's Location header.
//
// - 301 Moved Permanently
// - 302 Found
// - 303 See Other: the follow-up request must use GET.
// - 307 Temporary Redirect: the method must not change.
// - 308 Permanent Redirect: the method must not change.
func IsRedirectStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

// IsPermanentRedirect checks if the provided HTTP status code is one of the permanent redirect codes.
func IsPermanentRedirect(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

// TranslateStatusCode provides a human-readable message for HTTP status codes.
func TranslateStatusCode(resp *http.Response) string {
	if resp == nil {
		return "No status code received, possible network or connection error."
	}

	messages := map[int]string{
		http.StatusOK:                  "Request successful.",
		http.StatusCreated:             "Request to create or update resource successful.",
		http.StatusNoContent:           "Request successful. No content to send for this request.",
		http.StatusBadRequest:          "Bad request. Verify the syntax of the request and the requested scope.",
		http.StatusUnauthorized:        "Authentication failed. Verify the client id and client secret being used for the request.",
		http.StatusForbidden:           "Invalid permissions. Verify the API client has the proper scopes for the project.",
		http.StatusNotFound:            "Resource not found. Verify the URL path and project key are correct.",
		http.StatusMethodNotAllowed:    "Method not allowed. The method specified is not allowed for the resource.",
		http.StatusConflict:            "Conflict. The resource version does not match the current version.",
		http.StatusTooManyRequests:     "Too many requests. The client has sent too many requests in a given amount of time.",
		http.StatusInternalServerError: "Internal server error. The server encountered an unexpected condition that prevented it from fulfilling the request.",
		http.StatusBadGateway:          "Bad gateway. The server received an invalid response from the upstream server while trying to fulfill the request.",
		http.StatusServiceUnavailable:  "Service unavailable. The server is currently unable to handle the request due to temporary overloading or maintenance.",
		http.StatusGatewayTimeout:      "Gateway timeout. The server did not receive a timely response from the upstream server.",
	}

	if message, exists := messages[resp.StatusCode]; exists {
		return message
	}
	return fmt.Sprintf("Unknown status code: %d", resp.StatusCode)
}
