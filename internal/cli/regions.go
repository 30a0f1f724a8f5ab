package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-api-http-client-commercetools/region"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the known regions and their hosts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "REGION\tAPI URL\tAUTH URL")
		for _, r := range region.Regions() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r, r.APIURL(), r.AuthURL())
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}
