// Package cli implements the ctpclient command line.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-api-http-client-commercetools/httpclient"
)

// cliLogLevel is the log level used when neither a config file nor
// CTP_LOG_LEVEL nor --log-level sets one, so responses are not drowned in logs.
const cliLogLevel = "LogLevelWarn"

var (
	cfgFile          string
	flagRegion       string
	flagAPIURL       string
	flagAuthURL      string
	flagProjectKey   string
	flagClientID     string
	flagClientSecret string
	flagLogLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "ctpclient",
	Short: "Call the commercetools HTTP API",
	Long: `ctpclient sends authenticated requests to the commercetools HTTP API.

Settings are read from the --config TOML file, then from CTP_* environment
variables, then from flags; later sources win.`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "path to a TOML configuration file")
	flags.StringVar(&flagRegion, "region", "", "commercetools region, see 'ctpclient regions'")
	flags.StringVar(&flagAPIURL, "api-url", "", "API base URL, overrides the region")
	flags.StringVar(&flagAuthURL, "auth-url", "", "authorization base URL, overrides the region")
	flags.StringVar(&flagProjectKey, "project-key", "", "project key")
	flags.StringVar(&flagClientID, "client-id", "", "API client id")
	flags.StringVar(&flagClientSecret, "client-secret", "", "API client secret")
	flags.StringVar(&flagLogLevel, "log-level", "", "log level, e.g. LogLevelDebug")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig merges the config file, the environment and the flags.
func loadConfig() (httpclient.ClientConfig, error) {
	config := httpclient.DefaultClientConfig()
	config.LogLevel = cliLogLevel

	if cfgFile != "" {
		fileConfig, err := httpclient.LoadConfigFromFile(cfgFile)
		if err != nil {
			return httpclient.ClientConfig{}, err
		}
		config = *fileConfig
	}

	httpclient.ApplyEnvOverrides(&config)

	overrides := []struct {
		dst   *string
		value string
	}{
		{&config.Region, flagRegion},
		{&config.APIURL, flagAPIURL},
		{&config.AuthURL, flagAuthURL},
		{&config.ProjectKey, flagProjectKey},
		{&config.ClientID, flagClientID},
		{&config.ClientSecret, flagClientSecret},
		{&config.LogLevel, flagLogLevel},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.dst = o.value
		}
	}

	return config, nil
}

// newClient builds the API client; tests replace it.
var newClient = func() (*httpclient.Client, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}
	client, err := httpclient.BuildClient(config, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
