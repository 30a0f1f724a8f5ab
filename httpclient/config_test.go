// httpclient/config_test.go
package httpclient

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deploymenttheory/go-api-http-client-commercetools/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() ClientConfig {
	config := DefaultClientConfig()
	config.ProjectKey = "my-project"
	config.ClientID = "client-id"
	config.ClientSecret = "client-secret"
	return config
}

func TestDefaultClientConfig(t *testing.T) {
	config := DefaultClientConfig()

	assert.Equal(t, "europe-west1.gcp", config.Region)
	assert.Equal(t, "LogLevelInfo", config.LogLevel)
	assert.Equal(t, "pretty", config.LogOutputFormat)
	assert.Equal(t, "stderr", config.LogOutputPath)
	assert.True(t, config.HideSensitiveData)
	assert.Equal(t, 30*time.Second, config.CustomTimeout)
	assert.Equal(t, 30*time.Second, config.TokenRefreshBufferPeriod)
	assert.False(t, config.FollowRedirects)
	assert.Equal(t, 5, config.MaxRedirects)
}

func TestSetDefaultValuesClientConfig(t *testing.T) {
	config := ClientConfig{LogLevel: "LogLevelDebug", CustomTimeout: time.Second}
	SetDefaultValuesClientConfig(&config)

	assert.Equal(t, string(DefaultRegion), config.Region)
	assert.Equal(t, "LogLevelDebug", config.LogLevel, "explicit values are kept")
	assert.Equal(t, time.Second, config.CustomTimeout, "explicit values are kept")
	assert.Equal(t, DefaultLogOutputFormatString, config.LogOutputFormat)
	assert.Equal(t, DefaultLogOutputPath, config.LogOutputPath)
	assert.Equal(t, DefaultTokenRefreshBufferPeriod, config.TokenRefreshBufferPeriod)
	assert.Equal(t, DefaultMaxRedirects, config.MaxRedirects)
}

func TestSetDefaultValuesClientConfig_ExplicitURLsKeepRegionEmpty(t *testing.T) {
	config := ClientConfig{APIURL: "http://api.local", AuthURL: "http://auth.local"}
	SetDefaultValuesClientConfig(&config)
	assert.Empty(t, config.Region)
}

func TestValidateClientConfig(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr string
	}{
		{"valid", func(c *ClientConfig) {}, ""},
		{"missing project key", func(c *ClientConfig) { c.ProjectKey = "" }, "invalid project key"},
		{"missing client id", func(c *ClientConfig) { c.ClientID = "" }, "client id is required"},
		{"missing client secret", func(c *ClientConfig) { c.ClientSecret = "" }, "client secret is required"},
		{"unknown region", func(c *ClientConfig) { c.Region = "mars-1" }, "unknown region"},
		{"unknown region with explicit urls", func(c *ClientConfig) {
			c.Region = "mars-1"
			c.APIURL = "https://api.local"
			c.AuthURL = "https://auth.local"
		}, ""},
		{"relative api url", func(c *ClientConfig) { c.APIURL = "/api" }, "invalid api url"},
		{"non http auth url", func(c *ClientConfig) { c.AuthURL = "ftp://auth.local" }, "invalid auth url"},
		{"invalid log level", func(c *ClientConfig) { c.LogLevel = "verbose" }, "invalid log level"},
		{"invalid log format", func(c *ClientConfig) { c.LogOutputFormat = "xml" }, "invalid log output format"},
		{"negative timeout", func(c *ClientConfig) { c.CustomTimeout = -time.Second }, "timeout cannot be less than 0"},
		{"negative buffer", func(c *ClientConfig) { c.TokenRefreshBufferPeriod = -time.Second }, "refresh buffer period"},
		{"follow without max", func(c *ClientConfig) {
			c.FollowRedirects = true
			c.MaxRedirects = 0
		}, "max redirects"},
		{"invalid proxy", func(c *ClientConfig) { c.ProxyURL = "proxy.local:3128" }, "invalid proxy URL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := validConfig()
			tc.mutate(&config)
			err := validateClientConfig(config)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestResolveEndpoints(t *testing.T) {
	config := validConfig()
	config.Region = string(region.USCentral1GCP)

	apiURL, authURL, err := resolveEndpoints(config)
	require.NoError(t, err)
	assert.Equal(t, "https://api.us-central1.gcp.commercetools.com", apiURL)
	assert.Equal(t, "https://auth.us-central1.gcp.commercetools.com", authURL)

	config.APIURL = "http://localhost:8080/"
	apiURL, authURL, err = resolveEndpoints(config)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", apiURL, "explicit url wins and loses its trailing slash")
	assert.Equal(t, "https://auth.us-central1.gcp.commercetools.com", authURL)
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
region = "us-east-2.aws"
project_key = "my-project"
client_id = "client-id"
client_secret = "client-secret"

[log]
level = "LogLevelDebug"
format = "json"
hide_sensitive_data = false

[http]
timeout = "10s"
token_refresh_buffer_period = "1m"
follow_redirects = true
max_redirects = 3

[proxy]
url = "http://proxy.local:3128"
username = "user"
password = "pass"
`)

	config, err := LoadConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "us-east-2.aws", config.Region)
	assert.Equal(t, "my-project", config.ProjectKey)
	assert.Equal(t, "client-id", config.ClientID)
	assert.Equal(t, "client-secret", config.ClientSecret)
	assert.Equal(t, "LogLevelDebug", config.LogLevel)
	assert.Equal(t, "json", config.LogOutputFormat)
	assert.Equal(t, DefaultLogOutputPath, config.LogOutputPath, "absent keys keep their default")
	assert.False(t, config.HideSensitiveData)
	assert.Equal(t, 10*time.Second, config.CustomTimeout)
	assert.Equal(t, time.Minute, config.TokenRefreshBufferPeriod)
	assert.True(t, config.FollowRedirects)
	assert.Equal(t, 3, config.MaxRedirects)
	assert.Equal(t, "http://proxy.local:3128", config.ProxyURL)
	assert.Equal(t, "user", config.ProxyUsername)
	assert.Equal(t, "pass", config.ProxyPassword)

	require.NoError(t, validateClientConfig(*config))
}

func TestLoadConfigFromFile_Minimal(t *testing.T) {
	path := writeConfigFile(t, `project_key = "shop"`)

	config, err := LoadConfigFromFile(path)
	require.NoError(t, err)

	expected := DefaultClientConfig()
	expected.ProjectKey = "shop"
	assert.Equal(t, expected, *config)
}

func TestLoadConfigFromFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
		assert.ErrorContains(t, err, "read config file")
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := LoadConfigFromFile(writeConfigFile(t, `project_key = `))
		assert.ErrorContains(t, err, "parse config file")
	})

	t.Run("invalid duration", func(t *testing.T) {
		_, err := LoadConfigFromFile(writeConfigFile(t, "[http]\ntimeout = \"ten seconds\"\n"))
		assert.ErrorContains(t, err, "invalid http.timeout")
	})
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(EnvRegion, "europe")
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvAuthURL, "http://auth.local")
	t.Setenv(EnvProjectKey, "env-project")
	t.Setenv(EnvClientID, "env-id")
	t.Setenv(EnvClientSecret, "env-secret")
	t.Setenv(EnvLogLevel, "LogLevelWarn")
	t.Setenv(EnvProxyURL, "http://proxy.local:8080")

	config, err := LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "europe", config.Region)
	assert.Empty(t, config.APIURL, "empty variables are ignored")
	assert.Equal(t, "http://auth.local", config.AuthURL)
	assert.Equal(t, "env-project", config.ProjectKey)
	assert.Equal(t, "env-id", config.ClientID)
	assert.Equal(t, "env-secret", config.ClientSecret)
	assert.Equal(t, "LogLevelWarn", config.LogLevel)
	assert.Equal(t, "http://proxy.local:8080", config.ProxyURL)
	assert.Equal(t, DefaultCustomTimeout, config.CustomTimeout)
}

func TestApplyEnvOverrides_KeepsUnsetFields(t *testing.T) {
	t.Setenv(EnvClientSecret, "from-env")
	t.Setenv(EnvProjectKey, "")

	config := validConfig()
	ApplyEnvOverrides(&config)

	assert.Equal(t, "from-env", config.ClientSecret)
	assert.Equal(t, "my-project", config.ProjectKey)
}
