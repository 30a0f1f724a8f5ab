// authenticationhandler/auth_oauth.go
package authenticationhandler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apierrors "github.com/deploymenttheory/go-api-http-client-commercetools/errors"
	"github.com/deploymenttheory/go-api-http-client-commercetools/logger"
	"github.com/deploymenttheory/go-api-http-client-commercetools/response"
	"github.com/deploymenttheory/go-api-http-client-commercetools/status"
	"github.com/deploymenttheory/go-api-http-client-commercetools/version"
	"go.uber.org/zap"
)

// OAuthResponse represents the response structure when obtaining an OAuth access token.
// Pointers distinguish absent fields from zero values.
type OAuthResponse struct {
	AccessToken *string `json:"access_token"` // AccessToken is the token that can be used in subsequent requests for authentication.
	ExpiresIn   *int64  `json:"expires_in"`   // ExpiresIn specifies the duration in seconds after which the access token expires.
	TokenType   string  `json:"token_type"`   // TokenType indicates the type of token, typically "Bearer".
	Scope       string  `json:"scope"`        // Scope echoes the granted scope.
}

// TokenEndpoint returns the client credentials token URL for a project.
func TokenEndpoint(authURL, projectKey string) string {
	return fmt.Sprintf("%s/oauth/token?grant_type=client_credentials&scope=manage_project:%s",
		strings.TrimRight(authURL, "/"), projectKey)
}

// RetrieveToken performs a single client credentials exchange against the
// authorization service: a body-less POST authenticated with HTTP Basic. It
// fails with *errors.TransportError, *errors.UnexpectedStatusError or
// *errors.DecodeError and never retries.
func RetrieveToken(ctx context.Context, httpClient *http.Client, authURL string, credentials ClientCredentials, log logger.Logger) (Token, error) {
	endpoint := TokenEndpoint(authURL, credentials.ProjectKey)

	log.Info("Retrieving a new OAuth token",
		zap.String("auth_url", authURL),
		zap.String("project_key", credentials.ProjectKey),
		zap.String("client_id", credentials.ClientID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return Token{}, &apierrors.TransportError{Op: "retrieve token", Method: http.MethodPost, URL: endpoint, Err: err}
	}
	req.SetBasicAuth(credentials.ClientID, credentials.ClientSecret)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.GetUserAgentHeader())

	resp, err := httpClient.Do(req)
	if err != nil {
		log.LogAuthTokenError(endpoint, 0, err)
		return Token{}, &apierrors.TransportError{Op: "retrieve token", Method: http.MethodPost, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.LogAuthTokenError(endpoint, resp.StatusCode, err)
		return Token{}, &apierrors.TransportError{Op: "read token response", Method: http.MethodPost, URL: endpoint, Err: err}
	}

	if !status.IsSuccess(resp) {
		statusErr := &apierrors.UnexpectedStatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        endpoint,
			Header:     resp.Header.Clone(),
			Body:       string(bodyBytes),
			APIError:   response.HandleAPIErrorResponse(resp, bodyBytes, log),
		}
		log.LogAuthTokenError(endpoint, resp.StatusCode, statusErr)
		log.Debug("Authorization endpoint status", zap.String("status_message", status.TranslateStatusCode(resp)))
		return Token{}, statusErr
	}

	var oauthResp OAuthResponse
	if err := json.Unmarshal(bodyBytes, &oauthResp); err != nil {
		return Token{}, decodeError(endpoint, bodyBytes, err, log)
	}
	if oauthResp.AccessToken == nil || *oauthResp.AccessToken == "" {
		return Token{}, decodeError(endpoint, bodyBytes, fmt.Errorf("missing access_token"), log)
	}
	if oauthResp.ExpiresIn == nil {
		return Token{}, decodeError(endpoint, bodyBytes, fmt.Errorf("missing expires_in"), log)
	}

	token := NewToken(*oauthResp.AccessToken, *oauthResp.ExpiresIn)
	log.Info("OAuth token obtained successfully",
		zap.Duration("ExpiresIn", time.Duration(*oauthResp.ExpiresIn)*time.Second),
		zap.Time("ExpirationTime", token.ExpiresAt()),
	)

	return token, nil
}

// decodeError logs and builds a DecodeError. The body is kept only on the error;
// it may hold a credential and is not logged.
func decodeError(endpoint string, bodyBytes []byte, err error, log logger.Logger) error {
	decodeErr := &apierrors.DecodeError{URL: endpoint, Body: string(bodyBytes), Err: err}
	log.LogAuthTokenError(endpoint, http.StatusOK, decodeErr)
	return decodeErr
}

// OAuthTokenProvider is the TokenProvider backed by the authorization service.
type OAuthTokenProvider struct {
	httpClient  *http.Client
	authURL     string
	credentials ClientCredentials
	log         logger.Logger
}

var _ TokenProvider = (*OAuthTokenProvider)(nil)

// NewOAuthTokenProvider binds the transport, endpoint and credentials used for every retrieval.
func NewOAuthTokenProvider(httpClient *http.Client, authURL string, credentials ClientCredentials, log logger.Logger) *OAuthTokenProvider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OAuthTokenProvider{
		httpClient:  httpClient,
		authURL:     authURL,
		credentials: credentials,
		log:         log,
	}
}

// RetrieveToken implements TokenProvider.
func (p *OAuthTokenProvider) RetrieveToken(ctx context.Context) (Token, error) {
	return RetrieveToken(ctx, p.httpClient, p.authURL, p.credentials, p.log)
}
