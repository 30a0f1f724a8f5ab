// httpclient/config_load.go
// Description: This file contains functions to load configuration values from a TOML file or environment variables.
package httpclient

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables read by LoadConfigFromEnv.
const (
	EnvRegion       = "CTP_REGION"
	EnvAPIURL       = "CTP_API_URL"
	EnvAuthURL      = "CTP_AUTH_URL"
	EnvProjectKey   = "CTP_PROJECT_KEY"
	EnvClientID     = "CTP_CLIENT_ID"
	EnvClientSecret = "CTP_CLIENT_SECRET"
	EnvLogLevel     = "CTP_LOG_LEVEL"
	EnvProxyURL     = "CTP_PROXY_URL"
)

// fileConfig is the on-disk layout. Pointers tell absent keys from zero values;
// durations are strings such as "30s".
type fileConfig struct {
	Region       string `toml:"region"`
	APIURL       string `toml:"api_url"`
	AuthURL      string `toml:"auth_url"`
	ProjectKey   string `toml:"project_key"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`

	Log struct {
		Level             string `toml:"level"`
		Format            string `toml:"format"`
		OutputPath        string `toml:"output_path"`
		HideSensitiveData *bool  `toml:"hide_sensitive_data"`
	} `toml:"log"`

	HTTP struct {
		Timeout                  string `toml:"timeout"`
		TokenRefreshBufferPeriod string `toml:"token_refresh_buffer_period"`
		FollowRedirects          *bool  `toml:"follow_redirects"`
		MaxRedirects             *int   `toml:"max_redirects"`
	} `toml:"http"`

	Proxy struct {
		URL      string `toml:"url"`
		Username string `toml:"username"`
		Password string `toml:"password"`
	} `toml:"proxy"`
}

// LoadConfigFromFile reads a TOML configuration file on top of DefaultClientConfig.
//
//	region = "europe-west1.gcp"
//	project_key = "my-project"
//	client_id = "..."
//	client_secret = "..."
//
//	[log]
//	level = "LogLevelDebug"
//	format = "json"
//
//	[http]
//	timeout = "10s"
func LoadConfigFromFile(path string) (*ClientConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	config := DefaultClientConfig()
	setIfNotEmpty(&config.Region, fc.Region)
	setIfNotEmpty(&config.APIURL, fc.APIURL)
	setIfNotEmpty(&config.AuthURL, fc.AuthURL)
	setIfNotEmpty(&config.ProjectKey, fc.ProjectKey)
	setIfNotEmpty(&config.ClientID, fc.ClientID)
	setIfNotEmpty(&config.ClientSecret, fc.ClientSecret)

	setIfNotEmpty(&config.LogLevel, fc.Log.Level)
	setIfNotEmpty(&config.LogOutputFormat, fc.Log.Format)
	setIfNotEmpty(&config.LogOutputPath, fc.Log.OutputPath)
	if fc.Log.HideSensitiveData != nil {
		config.HideSensitiveData = *fc.Log.HideSensitiveData
	}

	if config.CustomTimeout, err = parseDuration("http.timeout", fc.HTTP.Timeout, config.CustomTimeout); err != nil {
		return nil, err
	}
	if config.TokenRefreshBufferPeriod, err = parseDuration("http.token_refresh_buffer_period", fc.HTTP.TokenRefreshBufferPeriod, config.TokenRefreshBufferPeriod); err != nil {
		return nil, err
	}
	if fc.HTTP.FollowRedirects != nil {
		config.FollowRedirects = *fc.HTTP.FollowRedirects
	}
	if fc.HTTP.MaxRedirects != nil {
		config.MaxRedirects = *fc.HTTP.MaxRedirects
	}

	setIfNotEmpty(&config.ProxyURL, fc.Proxy.URL)
	setIfNotEmpty(&config.ProxyUsername, fc.Proxy.Username)
	setIfNotEmpty(&config.ProxyPassword, fc.Proxy.Password)

	return &config, nil
}

// LoadConfigFromEnv builds a configuration from DefaultClientConfig and the CTP_* environment variables.
func LoadConfigFromEnv() (*ClientConfig, error) {
	config := DefaultClientConfig()
	ApplyEnvOverrides(&config)
	return &config, nil
}

// ApplyEnvOverrides overwrites fields of config with every CTP_* variable that is set and non-empty.
func ApplyEnvOverrides(config *ClientConfig) {
	setIfNotEmpty(&config.Region, os.Getenv(EnvRegion))
	setIfNotEmpty(&config.APIURL, os.Getenv(EnvAPIURL))
	setIfNotEmpty(&config.AuthURL, os.Getenv(EnvAuthURL))
	setIfNotEmpty(&config.ProjectKey, os.Getenv(EnvProjectKey))
	setIfNotEmpty(&config.ClientID, os.Getenv(EnvClientID))
	setIfNotEmpty(&config.ClientSecret, os.Getenv(EnvClientSecret))
	setIfNotEmpty(&config.LogLevel, os.Getenv(EnvLogLevel))
	setIfNotEmpty(&config.ProxyURL, os.Getenv(EnvProxyURL))
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}
