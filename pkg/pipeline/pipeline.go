// Package pipeline runs the fetch → resolve → render flow that produces the
// plugin compatibility table.
//
// # Architecture
//
// For every repository of a [compat.Catalog], strictly in order and one at a
// time:
//
//  1. Fetch: the [Fetcher] looks for PluginInfo.json on the configured
//     branch and, only if there is none, lists the repository's branches.
//  2. Resolve: [compat.Resolve] turns the metadata into a row.
//  3. Append: the row is added to the result table.
//
// Per-repository failures never abort a run: the fetcher converts them into
// absent metadata and the row falls back to its defaults. Only an invalid
// configuration or a cancelled context ends a run early.
//
// # Usage
//
//	runner := pipeline.NewRunner(pipeline.NewFetcher(github.NewClient(0), logger), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Catalog: catalog.Default(),
//	    Prefix:  "release/core_1.3/",
//	})
//	if err != nil {
//	    return err
//	}
//	result.Table.WriteTo(os.Stdout)
package pipeline

import (
	"time"

	"github.com/manivaultstudio/plugintable/pkg/compat"
	"github.com/manivaultstudio/plugintable/pkg/errors"
	"github.com/manivaultstudio/plugintable/pkg/integrations/github"
)

// EnvCorePrefix is the environment variable holding the core prefix.
const EnvCorePrefix = "CORE_PREFIX"

// MissingCorePrefixMessage explains how to provide the core prefix.
const MissingCorePrefixMessage = "please set " + EnvCorePrefix + ", e.g. export " + EnvCorePrefix + "=release/core_1.3/"

// Options configures one pipeline run.
type Options struct {
	Catalog compat.Catalog
	Prefix  compat.CorePrefix
}

// Validate checks that the run can start. It performs no I/O.
func (o Options) Validate() error {
	if o.Prefix == "" {
		return errors.New(errors.ErrCodeMissingCorePrefix, MissingCorePrefixMessage)
	}
	if err := github.ValidateOwner(o.Catalog.Owner); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "catalog owner %q", o.Catalog.Owner)
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Table holds one row per catalog repository, in catalog order.
	Table *compat.Table

	// Stats contains timing and source information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows     int
	Sources  map[Source]int // Rows per metadata source
	Duration time.Duration
}
