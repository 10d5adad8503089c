// Package cli implements the plugintable command-line interface.
//
// The root command queries GitHub for every configured ManiVault plugin
// repository and prints a Markdown compatibility table. The CLI is built
// using cobra and logs through charmbracelet/log.
//
// # Commands
//
// The commands are:
//   - plugintable: generate the compatibility table for the whole catalog
//   - row: resolve a single repository
//   - repos: list the configured repositories without touching the network
//   - completion: generate shell completion scripts
//
// # Output
//
// Stdout carries only the Markdown document (or the repos listing).
// Logs and diagnostics go to the writer the CLI was created with, normally
// stderr, so the table can be piped or redirected as-is.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces every HTTP request and every resolved row.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/manivaultstudio/plugintable/pkg/buildinfo"
	"github.com/manivaultstudio/plugintable/pkg/catalog"
	"github.com/manivaultstudio/plugintable/pkg/compat"
	"github.com/manivaultstudio/plugintable/pkg/errors"
	"github.com/manivaultstudio/plugintable/pkg/integrations"
	"github.com/manivaultstudio/plugintable/pkg/integrations/github"
	"github.com/manivaultstudio/plugintable/pkg/observability"
	"github.com/manivaultstudio/plugintable/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "plugintable"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Diag receives styled diagnostics (warnings, written-file notices).
	Diag io.Writer
}

// New creates a new CLI instance whose logger and diagnostics write to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Diag:   w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// Running the root command without a subcommand generates the table.
func (c *CLI) RootCommand() *cobra.Command {
	opts := &sourceOptions{}
	var output string

	root := &cobra.Command{
		Use:   appName,
		Short: "Plugintable prints the ManiVault plugin compatibility table",
		Long: `Plugintable queries GitHub for each configured ManiVault plugin repository,
reads its PluginInfo.json (or, failing that, its release branches) and prints
a Markdown table of plugin versions compatible with the core selected by
CORE_PREFIX.`,
		Example: `  export CORE_PREFIX=release/core_1.3/
  plugintable > plugins.md
  plugintable --repos plugins.toml -o plugins.md`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.installHooks()
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTable(cmd, opts, output)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	opts.bind(root)
	root.Flags().StringVarP(&output, "output", "o", "", "write the table to this file instead of stdout")

	// Register all subcommands
	root.AddCommand(c.rowCommand(opts))
	root.AddCommand(c.reposCommand(opts))
	root.AddCommand(c.completionCommand())

	return root
}

// installHooks routes HTTP and pipeline events to the CLI logger at debug level.
func (c *CLI) installHooks() {
	hooks := observability.NewLogHooks(c.Logger)
	observability.SetHTTPHooks(hooks)
	observability.SetPipelineHooks(hooks)
}

// =============================================================================
// Shared Options
// =============================================================================

// sourceOptions are the persistent flags every command shares.
type sourceOptions struct {
	reposFile  string
	owner      string
	corePrefix string
	timeout    time.Duration
	apiURL     string
	rawURL     string
}

func (o *sourceOptions) bind(root *cobra.Command) {
	f := root.PersistentFlags()
	f.StringVar(&o.reposFile, "repos", "", "repository table (.toml, .yaml or .yml) replacing the built-in list")
	f.StringVar(&o.owner, "owner", "", "GitHub owner overriding the catalog owner")
	f.StringVar(&o.corePrefix, "core-prefix", "", "core release branch prefix (default $"+pipeline.EnvCorePrefix+")")
	f.DurationVar(&o.timeout, "timeout", integrations.DefaultTimeout, "per-request timeout")
	f.StringVar(&o.apiURL, "api-url", github.DefaultAPIURL, "GitHub REST API base URL")
	f.StringVar(&o.rawURL, "raw-url", github.DefaultRawURL, "raw file content base URL")
}

// prefix returns the core prefix from --core-prefix, falling back to the
// environment. Missing is reported before anything else happens.
func (o *sourceOptions) prefix() (compat.CorePrefix, error) {
	p := o.corePrefix
	if p == "" {
		p = os.Getenv(pipeline.EnvCorePrefix)
	}
	if p == "" {
		return "", errors.New(errors.ErrCodeMissingCorePrefix, pipeline.MissingCorePrefixMessage)
	}
	return compat.CorePrefix(p), nil
}

// catalog returns the built-in catalog or the --repos file, with --owner applied.
func (o *sourceOptions) catalog() (compat.Catalog, error) {
	cat := catalog.Default()
	if o.reposFile != "" {
		loaded, err := catalog.Load(o.reposFile)
		if err != nil {
			return compat.Catalog{}, err
		}
		cat = loaded
	}
	if o.owner != "" {
		if err := github.ValidateOwner(o.owner); err != nil {
			return compat.Catalog{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "--owner %q", o.owner)
		}
		cat.Owner = o.owner
	}
	return cat, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the GitHub client.
func (c *CLI) newRunner(o *sourceOptions) *pipeline.Runner {
	client := github.NewClientWithURLs(o.apiURL, o.rawURL, o.timeout)
	return pipeline.NewRunner(pipeline.NewFetcher(client, c.Logger), c.Logger)
}

// writeOutput writes the table to path, or to stdout when path is empty.
// The file is only created once the table is complete.
func writeOutput(stdout io.Writer, path string, t *compat.Table) error {
	if path == "" {
		if _, err := t.WriteTo(stdout); err != nil {
			return errors.Wrap(errors.ErrCodeOutput, err, "write table")
		}
		return nil
	}
	if err := errors.ValidatePath(path); err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "output path")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "create %s", path)
	}
	if _, err := t.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeOutput, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "close %s", path)
	}
	return nil
}

// describeRows is the one-line summary printed after a file is written.
func describeRows(n int) string {
	if n == 1 {
		return "1 plugin"
	}
	return fmt.Sprintf("%d plugins", n)
}
