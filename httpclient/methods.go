// httpclient/methods.go
package httpclient

import (
	"context"
	"net/http"

	"github.com/deploymenttheory/go-api-http-client-commercetools/headers"
)

// GetToken returns a valid access token, refreshing the cached one if needed.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	return c.tokenHandler.GetToken(ctx)
}

// InvalidateToken drops the cached token so the next call fetches a new one,
// for instance after the API rejected the current token.
func (c *Client) InvalidateToken() {
	c.tokenHandler.InvalidateToken()
}

// Request prepares an authenticated request for {api url}/{project key}{path}.
// path is appended verbatim and is expected to start with "/". Token
// retrieval failures are returned unchanged.
func (c *Client) Request(ctx context.Context, method, path string) (*Request, error) {
	token, err := c.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Method: method,
		URL:    c.apiURL + "/" + c.config.ProjectKey + path,
		Header: http.Header{},
		client: c,
	}
	headers.NewHeaderHandler(req.Header, c.Logger, c.config.HideSensitiveData).SetRequestHeaders(token)

	return req, nil
}

// Get sends an authenticated GET and returns the response body.
func (c *Client) Get(ctx context.Context, path string) (string, error) {
	req, err := c.Request(ctx, http.MethodGet, path)
	if err != nil {
		return "", err
	}
	return req.Send(ctx)
}

// Post sends an authenticated POST carrying body and returns the response body.
func (c *Client) Post(ctx context.Context, path string, body []byte) (string, error) {
	req, err := c.Request(ctx, http.MethodPost, path)
	if err != nil {
		return "", err
	}
	return req.WithBody(body).Send(ctx)
}
