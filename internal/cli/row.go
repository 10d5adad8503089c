package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manivaultstudio/plugintable/pkg/compat"
	"github.com/manivaultstudio/plugintable/pkg/errors"
	"github.com/manivaultstudio/plugintable/pkg/integrations/github"
	"github.com/manivaultstudio/plugintable/pkg/pipeline"
)

type rowOptions struct {
	branch   string
	category string
}

// rowCommand resolves a single repository and prints it as a one-row table.
func (c *CLI) rowCommand(src *sourceOptions) *cobra.Command {
	opts := &rowOptions{}

	cmd := &cobra.Command{
		Use:   "row [owner/]repo",
		Short: "Resolve a single repository",
		Long: `Resolve a single repository and print it as a one-row table.

A repository listed in the catalog takes its branch and category from there;
--branch and --category override them and are required for anything else.`,
		Example: `  plugintable row Scatterplot
  plugintable row ManiVaultStudio/HeatMap --branch main
  plugintable row someone/MyPlugin --branch main --category Analysis`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeRepoNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRow(cmd, src, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.branch, "branch", "", "branch holding PluginInfo.json")
	cmd.Flags().StringVar(&opts.category, "category", "", "plugin category (View, Analysis or IO)")
	_ = cmd.RegisterFlagCompletionFunc("category", completeCategories)

	return cmd
}

func (c *CLI) runRow(cmd *cobra.Command, src *sourceOptions, opts *rowOptions, ref string) error {
	ctx := cmd.Context()

	prefix, err := src.prefix()
	if err != nil {
		return err
	}
	cat, err := src.catalog()
	if err != nil {
		return err
	}

	owner, name := cat.Owner, ref
	if strings.Contains(ref, "/") {
		if owner, name, err = github.ParseRepoRef(ref); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "repository %q", ref)
		}
	} else if err := github.ValidateRepo(ref); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "repository %q", ref)
	}

	spec, err := c.rowSpec(cat, owner, name, opts)
	if err != nil {
		return err
	}

	single := compat.Catalog{Owner: owner, Repositories: []compat.RepositorySpec{spec}}
	result, err := c.newRunner(src).Execute(ctx, pipeline.Options{Catalog: single, Prefix: prefix})
	if err != nil {
		return err
	}

	if _, err := result.Table.WriteTo(cmd.OutOrStdout()); err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "write table")
	}

	row := result.Table.Rows()[0]
	printSuccess(c.Diag, "%s resolved from %s", row.PluginName, rowSource(result.Stats))
	printRepoLink(c.Diag, row)
	return nil
}

// rowSpec builds the repository spec from the catalog entry, if any, and the flags.
func (c *CLI) rowSpec(cat compat.Catalog, owner, name string, opts *rowOptions) (compat.RepositorySpec, error) {
	spec := compat.RepositorySpec{Name: name}
	found := false
	if owner == cat.Owner {
		for _, r := range cat.Repositories {
			if r.Name == name {
				spec, found = r, true
				break
			}
		}
	}
	if !found {
		printWarning(c.Diag, "%s/%s is not in the catalog", owner, name)
	}

	if opts.branch != "" {
		if err := errors.ValidateBranchName(opts.branch); err != nil {
			return compat.RepositorySpec{}, err
		}
		spec.Branch = opts.branch
	}
	if opts.category != "" {
		category, err := compat.ParseCategory(opts.category)
		if err != nil {
			return compat.RepositorySpec{}, errors.Wrap(errors.ErrCodeInvalidCategory, err, "--category")
		}
		spec.Category = category
	}

	if spec.Branch == "" || spec.Category == "" {
		return compat.RepositorySpec{}, errors.New(errors.ErrCodeInvalidConfig,
			"%s/%s is not in the catalog: --branch and --category are required", owner, name)
	}
	return spec, nil
}

// rowSource names where the single resolved row came from.
func rowSource(s pipeline.Stats) pipeline.Source {
	for _, src := range []pipeline.Source{pipeline.SourceManifest, pipeline.SourceBranches} {
		if s.Sources[src] > 0 {
			return src
		}
	}
	return pipeline.SourceDefaults
}
