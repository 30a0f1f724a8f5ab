// httpclient/config.go
package httpclient

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/deploymenttheory/go-api-http-client-commercetools/authenticationhandler"
	"github.com/deploymenttheory/go-api-http-client-commercetools/logger"
	"github.com/deploymenttheory/go-api-http-client-commercetools/proxy"
	"github.com/deploymenttheory/go-api-http-client-commercetools/region"
)

const (
	DefaultRegion                   = region.EuropeWest1GCP
	DefaultLogLevelString           = "LogLevelInfo"
	DefaultLogOutputFormatString    = logger.LogOutputPretty
	DefaultLogOutputPath            = "stderr"
	DefaultHideSensitiveData        = true
	DefaultCustomTimeout            = 30 * time.Second
	DefaultTokenRefreshBufferPeriod = authenticationhandler.DefaultExpiryMargin
	DefaultFollowRedirects          = false
	DefaultMaxRedirects             = 5
)

// ClientConfig holds everything needed to build a Client.
type ClientConfig struct {
	// Endpoints. APIURL and AuthURL override the URLs derived from Region.
	Region  string
	APIURL  string
	AuthURL string

	// Credentials
	ProjectKey   string
	ClientID     string
	ClientSecret string

	// Log
	LogLevel          string
	LogOutputFormat   string // "json" or "pretty"
	LogOutputPath     string // "stdout", "stderr" or a file path
	HideSensitiveData bool

	// Misc
	CustomTimeout            time.Duration
	TokenRefreshBufferPeriod time.Duration
	FollowRedirects          bool
	MaxRedirects             int

	// Proxy
	ProxyURL      string
	ProxyUsername string
	ProxyPassword string

	// Logger replaces the logger built from the Log settings when set.
	Logger logger.Logger
}

// DefaultClientConfig returns a configuration with every optional field set
// to its default. Credentials are left empty.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Region:                   string(DefaultRegion),
		LogLevel:                 DefaultLogLevelString,
		LogOutputFormat:          DefaultLogOutputFormatString,
		LogOutputPath:            DefaultLogOutputPath,
		HideSensitiveData:        DefaultHideSensitiveData,
		CustomTimeout:            DefaultCustomTimeout,
		TokenRefreshBufferPeriod: DefaultTokenRefreshBufferPeriod,
		FollowRedirects:          DefaultFollowRedirects,
		MaxRedirects:             DefaultMaxRedirects,
	}
}

// SetDefaultValuesClientConfig fills zero-valued optional fields with their
// defaults. HideSensitiveData and FollowRedirects are booleans whose zero value
// is meaningful, so they are left as given; start from DefaultClientConfig to
// get their defaults.
func SetDefaultValuesClientConfig(config *ClientConfig) {
	if config.Region == "" && (config.APIURL == "" || config.AuthURL == "") {
		config.Region = string(DefaultRegion)
	}

	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevelString
	}

	if config.LogOutputFormat == "" {
		config.LogOutputFormat = DefaultLogOutputFormatString
	}

	if config.LogOutputPath == "" {
		config.LogOutputPath = DefaultLogOutputPath
	}

	if config.CustomTimeout == 0 {
		config.CustomTimeout = DefaultCustomTimeout
	}

	if config.TokenRefreshBufferPeriod == 0 {
		config.TokenRefreshBufferPeriod = DefaultTokenRefreshBufferPeriod
	}

	if config.MaxRedirects == 0 {
		config.MaxRedirects = DefaultMaxRedirects
	}
}

// validateClientConfig checks a configuration that has already had defaults applied.
func validateClientConfig(config ClientConfig) error {
	credentials := authenticationhandler.ClientCredentials{
		ProjectKey:   config.ProjectKey,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
	}
	if err := credentials.Validate(); err != nil {
		return err
	}

	if config.APIURL == "" || config.AuthURL == "" {
		if _, err := region.ParseRegion(config.Region); err != nil {
			return err
		}
	}

	if err := validateEndpointURL("api url", config.APIURL); err != nil {
		return err
	}
	if err := validateEndpointURL("auth url", config.AuthURL); err != nil {
		return err
	}

	if config.Logger == nil {
		if !slices.Contains(logger.ValidLogLevels, config.LogLevel) {
			return fmt.Errorf("invalid log level: %s", config.LogLevel)
		}

		if !slices.Contains(logger.ValidLogOutputFormats, config.LogOutputFormat) {
			return fmt.Errorf("invalid log output format: %s", config.LogOutputFormat)
		}
	}

	if config.CustomTimeout < 0 {
		return errors.New("timeout cannot be less than 0 seconds")
	}

	if config.TokenRefreshBufferPeriod < 0 {
		return errors.New("refresh buffer period cannot be less than 0 seconds")
	}

	if config.FollowRedirects && config.MaxRedirects < 1 {
		return errors.New("max redirects cannot be less than 1")
	}

	if config.ProxyURL != "" {
		if _, err := proxy.ParseProxyURL(config.ProxyURL); err != nil {
			return err
		}
	}

	return nil
}

// validateEndpointURL accepts an empty value (resolved from the region later)
// or an absolute http(s) URL.
func validateEndpointURL(name, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid %s %q: must be an absolute http or https URL", name, raw)
	}
	return nil
}

// resolveEndpoints returns the API and auth base URLs, explicit URLs taking
// precedence over the region. Trailing slashes are trimmed.
func resolveEndpoints(config ClientConfig) (apiURL, authURL string, err error) {
	apiURL, authURL = config.APIURL, config.AuthURL
	if apiURL == "" || authURL == "" {
		r, err := region.ParseRegion(config.Region)
		if err != nil {
			return "", "", err
		}
		if apiURL == "" {
			apiURL = r.APIURL()
		}
		if authURL == "" {
			authURL = r.AuthURL()
		}
	}
	return strings.TrimRight(apiURL, "/"), strings.TrimRight(authURL, "/"), nil
}
