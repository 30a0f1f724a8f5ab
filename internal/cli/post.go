package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	postData     string
	postDataFile string
)

var postCmd = &cobra.Command{
	Use:   "post [path]",
	Short: "Send an authenticated POST request",
	Long: `Sends POST {api url}/{project key}{path} with a JSON body and prints the
response body as received, whatever the status code.`,
	Example: `  ctpclient post /carts --data '{"currency":"EUR"}'
  ctpclient post /carts --data-file cart.json
  cat cart.json | ctpclient post /carts --data-file -`,
	Args: cobra.ExactArgs(1),
	RunE: runPost,
}

func init() {
	postCmd.Flags().StringVarP(&postData, "data", "d", "", "request body")
	postCmd.Flags().StringVar(&postDataFile, "data-file", "", "read the request body from a file, - for stdin")
	postCmd.MarkFlagsMutuallyExclusive("data", "data-file")
	postCmd.MarkFlagsOneRequired("data", "data-file")
	rootCmd.AddCommand(postCmd)
}

func runPost(cmd *cobra.Command, args []string) error {
	body, err := readPostBody(cmd)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.Post(commandContext(cmd), normalizePath(args[0]), body)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp)
	return nil
}

func readPostBody(cmd *cobra.Command) ([]byte, error) {
	switch postDataFile {
	case "":
		return []byte(postData), nil
	case "-":
		body, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read body from stdin: %w", err)
		}
		return body, nil
	default:
		body, err := os.ReadFile(postDataFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read body: %w", err)
		}
		return body, nil
	}
}
