package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [path]",
	Short: "Send an authenticated GET request",
	Long: `Sends GET {api url}/{project key}{path} and prints the response body
as received, whatever the status code.`,
	Example: "  ctpclient get /products?limit=1",
	Args:    cobra.ExactArgs(1),
	RunE:    runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	body, err := client.Get(commandContext(cmd), normalizePath(args[0]))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), body)
	return nil
}

// normalizePath prefixes a leading slash so "products" and "/products" are the same.
func normalizePath(path string) string {
	if path == "" || path[0] != '/' {
		return "/" + path
	}
	return path
}
