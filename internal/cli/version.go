package cli

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-api-http-client-commercetools/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("ctpclient version %s\n", version.GetVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
