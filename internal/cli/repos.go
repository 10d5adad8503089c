package cli

import (
	"github.com/spf13/cobra"
)

// reposCommand lists the configured repositories. It never touches the network
// and does not need a core prefix.
func (c *CLI) reposCommand(opts *sourceOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repos",
		Short: "List the repositories the table is built from",
		Long: `List the repositories the table is built from, in table order.

Without --repos the built-in ManiVault plugin list is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.catalog()
			if err != nil {
				return err
			}
			printCatalog(cmd.OutOrStdout(), cat)
			return nil
		},
	}
}
