package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Obtain an access token and print it",
	Long: `Runs the client credentials exchange against the authorization service and
prints the access token, for use with other tools.`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	token, err := client.GetToken(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to obtain token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
