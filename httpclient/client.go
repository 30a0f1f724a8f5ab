// httpclient/client.go
/* The `httpclient` package provides an authenticated HTTP client for the commercetools API.
The client obtains access tokens through the client credentials grant, keeps the current
token in a single mutex-guarded slot and refreshes it shortly before it expires. Requests
are sent to `{api url}/{project key}{path}` with a bearer Authorization header, and the
response body is handed back to the caller whatever the status code. */
package httpclient

import (
	"fmt"
	"net/http"

	"github.com/deploymenttheory/go-api-http-client-commercetools/authenticationhandler"
	"github.com/deploymenttheory/go-api-http-client-commercetools/logger"
	"github.com/deploymenttheory/go-api-http-client-commercetools/proxy"
	"github.com/deploymenttheory/go-api-http-client-commercetools/redirecthandler"
	"github.com/deploymenttheory/go-api-http-client-commercetools/region"
	"go.uber.org/zap"
)

// Client is the authenticated commercetools client. It is safe for concurrent use.
type Client struct {
	config       ClientConfig
	http         *http.Client
	apiURL       string
	authURL      string
	tokenHandler *authenticationhandler.AuthTokenHandler

	Logger logger.Logger
}

// BuildClient creates a new HTTP client with the provided configuration.
func BuildClient(config ClientConfig, populateDefaultValues bool) (*Client, error) {
	if populateDefaultValues {
		SetDefaultValuesClientConfig(&config)
	}

	if err := validateClientConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	//region Logging

	log := config.Logger
	if log == nil {
		parsedLogLevel := logger.ParseLogLevelFromString(config.LogLevel)
		log = logger.BuildLogger(parsedLogLevel, config.LogOutputFormat, config.LogOutputPath)
		log.SetLevel(parsedLogLevel)
	}

	//endregion

	//region HTTP

	apiURL, authURL, err := resolveEndpoints(config)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log.Info("Initializing new commercetools client",
		zap.String("project_key", config.ProjectKey),
		zap.String("api_url", apiURL),
		zap.String("auth_url", authURL),
	)

	httpClient := &http.Client{
		Timeout: config.CustomTimeout,
	}

	//endregion

	//region Redirect

	if err := redirecthandler.SetupRedirectHandler(httpClient, config.FollowRedirects, config.MaxRedirects, log); err != nil {
		log.Error("Failed to set up redirect handler", zap.Error(err))
		return nil, err
	}

	//endregion

	//region Proxy

	if err := proxy.InitializeProxy(httpClient, config.ProxyURL, config.ProxyUsername, config.ProxyPassword, config.HideSensitiveData, log); err != nil {
		return nil, err
	}

	//endregion

	//region Auth

	credentials := authenticationhandler.ClientCredentials{
		ProjectKey:   config.ProjectKey,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
	}
	provider := authenticationhandler.NewOAuthTokenProvider(httpClient, authURL, credentials, log)
	tokenHandler := authenticationhandler.NewAuthTokenHandler(provider, config.TokenRefreshBufferPeriod, log)

	//endregion

	client := &Client{
		config:       config,
		http:         httpClient,
		apiURL:       apiURL,
		authURL:      authURL,
		tokenHandler: tokenHandler,
		Logger:       log,
	}

	log.Debug("New API client initialized",
		zap.String("Region", config.Region),
		zap.String("Logging Level", config.LogLevel),
		zap.String("Log Encoding Format", config.LogOutputFormat),
		zap.Bool("Hide Sensitive Data In Logs", config.HideSensitiveData),
		zap.Bool("Follow Redirects", config.FollowRedirects),
		zap.Int("Max Redirects", config.MaxRedirects),
		zap.Duration("Token Refresh Buffer Period", tokenHandler.RefreshBuffer()),
		zap.Duration("Custom Timeout", config.CustomTimeout),
		zap.Bool("Proxy Enabled", config.ProxyURL != ""),
	)

	return client, nil
}

// NewClient creates a client for a project in one of the known regions, with
// every other setting at its default.
func NewClient(r region.Region, projectKey, clientID, clientSecret string) (*Client, error) {
	config := DefaultClientConfig()
	config.Region = string(r)
	config.ProjectKey = projectKey
	config.ClientID = clientID
	config.ClientSecret = clientSecret
	return BuildClient(config, false)
}

// APIURL returns the base URL of the commerce API, without trailing slash.
func (c *Client) APIURL() string {
	return c.apiURL
}

// AuthURL returns the base URL of the authorization service, without trailing slash.
func (c *Client) AuthURL() string {
	return c.authURL
}

// ProjectKey returns the project every request is scoped to.
func (c *Client) ProjectKey() string {
	return c.config.ProjectKey
}

// HTTPClient returns the underlying transport client shared by token retrieval and API calls.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}
