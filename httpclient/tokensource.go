// httpclient/tokensource.go
package httpclient

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// clientTokenSource exposes the client's token slot as an oauth2.TokenSource.
type clientTokenSource struct {
	ctx    context.Context
	client *Client
}

// TokenSource returns an oauth2.TokenSource backed by the client's cache, so
// libraries built on golang.org/x/oauth2 share the same token and refresh.
func (c *Client) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &clientTokenSource{ctx: ctx, client: c}
}

// Token implements oauth2.TokenSource. The reported expiry already has the
// refresh buffer subtracted.
func (s *clientTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.client.tokenHandler.ValidToken(s.ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{
		AccessToken: token.AccessToken(),
		TokenType:   "Bearer",
		Expiry:      token.ExpiresAt().Add(-s.client.tokenHandler.RefreshBuffer()),
	}, nil
}

// OAuth2HTTPClient returns an *http.Client that authorizes every request with
// the client's bearer token. It reuses the client's transport, proxy included.
func (c *Client) OAuth2HTTPClient(ctx context.Context) *http.Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	return oauth2.NewClient(ctx, c.TokenSource(ctx))
}
