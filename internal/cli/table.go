package cli

import (
	"github.com/spf13/cobra"

	"github.com/manivaultstudio/plugintable/pkg/pipeline"
)

// runTable generates the table for the whole catalog.
//
// The core prefix and the catalog are resolved before the first request, so
// configuration errors never produce partial output.
func (c *CLI) runTable(cmd *cobra.Command, opts *sourceOptions, output string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	prefix, err := opts.prefix()
	if err != nil {
		return err
	}
	cat, err := opts.catalog()
	if err != nil {
		return err
	}

	logger.Debug("generating table", "owner", cat.Owner, "repositories", len(cat.Repositories), "prefix", prefix)
	prog := newProgress(logger)

	if spin := c.startSpinner(ctx, "Resolving "+describeRows(len(cat.Repositories))); spin != nil {
		defer spin.stop()
	}
	result, err := c.newRunner(opts).Execute(ctx, pipeline.Options{Catalog: cat, Prefix: prefix})
	if err != nil {
		return err
	}

	if err := writeOutput(cmd.OutOrStdout(), output, result.Table); err != nil {
		return err
	}
	if output != "" {
		prog.done("wrote " + describeRows(result.Table.Len()))
		printFile(c.Diag, output)
	}
	return nil
}
