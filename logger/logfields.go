// logfields.go
package logger

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// LogRequestStart logs the initiation of an HTTP request, including the HTTP method, URL, and headers.
// Headers are expected to be redacted by the caller.
func (d *defaultLogger) LogRequestStart(method string, url string, headers http.Header) {
	if d.logLevel > LogLevelDebug {
		return
	}
	fields := []zap.Field{
		zap.String("event", "request_start"),
		zap.String("method", method),
		zap.String("url", url),
		zap.String("headers", headersToString(headers)),
	}
	d.logger.Debug("HTTP request started", fields...)
}

// LogRequestEnd logs the completion of an HTTP request, including the HTTP method, URL, status code, and duration.
func (d *defaultLogger) LogRequestEnd(method string, url string, statusCode int, duration time.Duration) {
	if d.logLevel > LogLevelInfo {
		return
	}
	fields := []zap.Field{
		zap.String("event", "request_end"),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", statusCode),
		zap.Duration("duration", duration),
	}
	d.logger.Info("HTTP request completed", fields...)
}

// LogAuthTokenError logs a failed token acquisition against the authorization endpoint.
// statusCode is 0 when no response was received.
func (d *defaultLogger) LogAuthTokenError(url string, statusCode int, err error) {
	if d.logLevel > LogLevelError {
		return
	}
	fields := []zap.Field{
		zap.String("event", "auth_token_error"),
		zap.String("url", url),
		zap.Int("status_code", statusCode),
		zap.Error(err),
	}
	d.logger.Error("Failed to obtain access token", fields...)
}

// headersToString renders headers one per line as "Name: v1, v2".
func headersToString(headers http.Header) string {
	var headerStrings []string
	for name, values := range headers {
		headerStrings = append(headerStrings, name+": "+strings.Join(values, ", "))
	}
	return strings.Join(headerStrings, "\n")
}
