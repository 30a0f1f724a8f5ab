// httpclient/request.go
package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	apierrors "github.com/deploymenttheory/go-api-http-client-commercetools/errors"
	"github.com/deploymenttheory/go-api-http-client-commercetools/headers"
	"github.com/deploymenttheory/go-api-http-client-commercetools/response"
	"github.com/deploymenttheory/go-api-http-client-commercetools/status"
	"go.uber.org/zap"
)

// Request is a prepared call against the commerce API: method, absolute URL,
// headers and an optional body. Client.Request returns it with the bearer
// Authorization header already set.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte

	client *Client
}

// WithBody attaches a request body. Without an explicit Content-Type the body
// is sent as application/json.
func (r *Request) WithBody(body []byte) *Request {
	r.Body = body
	return r
}

// WithHeader sets a header, replacing any existing value.
func (r *Request) WithHeader(key, value string) *Request {
	r.Header.Set(key, value)
	return r
}

// Do sends the request and returns the raw response, which the caller must
// close. Any status code is a successful result here; only failures to send
// the request are returned as *errors.TransportError.
func (r *Request) Do(ctx context.Context) (*http.Response, error) {
	log := r.client.Logger

	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, &apierrors.TransportError{Op: "build request", Method: r.Method, URL: r.URL, Err: err}
	}
	req.Header = r.Header.Clone()

	headerHandler := headers.NewHeaderHandler(req.Header, log, r.client.config.HideSensitiveData)
	if r.Body != nil && req.Header.Get("Content-Type") == "" {
		headerHandler.SetContentType(headers.ContentTypeJSON)
	}

	log.LogRequestStart(r.Method, r.URL, headerHandler.Redacted())
	start := time.Now()

	resp, err := r.client.http.Do(req)
	if err != nil {
		log.Error("Failed to send request", zap.String("method", r.Method), zap.String("url", r.URL), zap.Error(err))
		return nil, &apierrors.TransportError{Op: "send request", Method: r.Method, URL: r.URL, Err: err}
	}

	log.LogRequestEnd(r.Method, r.URL, resp.StatusCode, time.Since(start))
	if resp.StatusCode >= http.StatusBadRequest {
		log.Debug("Non-success status returned to caller",
			zap.Int("status_code", resp.StatusCode),
			zap.String("status_message", status.TranslateStatusCode(resp)),
			zap.String("correlation_id", resp.Header.Get(headers.CorrelationIDHeader)),
		)
	}

	return resp, nil
}

// Send performs the request and returns the complete response body as text,
// unmodified and whatever the status code.
func (r *Request) Send(ctx context.Context) (string, error) {
	resp, err := r.Do(ctx)
	if err != nil {
		return "", err
	}

	body, err := response.ReadBody(resp)
	if err != nil {
		return "", &apierrors.TransportError{Op: "read response", Method: r.Method, URL: r.URL, Err: err}
	}
	return body, nil
}
