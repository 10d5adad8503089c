package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/manivaultstudio/plugintable/pkg/compat"
	"github.com/manivaultstudio/plugintable/pkg/observability"
)

// Runner executes the table pipeline.
//
// The Runner holds no per-run state; results are returned from Execute.
type Runner struct {
	Fetcher MetadataFetcher
	Logger  *log.Logger
}

// NewRunner creates a runner with the given fetcher.
// If logger is nil, log.Default() is used.
func NewRunner(f MetadataFetcher, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Fetcher: f,
		Logger:  logger,
	}
}

// Execute resolves one row per catalog repository, in catalog order.
//
// Invalid options are reported before any request is made. A cancelled
// context stops the run between repositories and returns ctx.Err().
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if !opts.Prefix.Conventional() {
		r.Logger.Warn("core prefix does not follow release/core_<version>/", "prefix", opts.Prefix)
	}

	hooks := observability.Pipeline()
	start := time.Now()
	owner := opts.Catalog.Owner
	hooks.OnRunStart(ctx, owner, len(opts.Catalog.Repositories))

	result := &Result{
		Table: &compat.Table{},
		Stats: Stats{Sources: make(map[Source]int)},
	}

	for _, spec := range opts.Catalog.Repositories {
		if err := ctx.Err(); err != nil {
			hooks.OnRunComplete(ctx, result.Table.Len(), time.Since(start), err)
			return nil, err
		}

		rowStart := time.Now()
		hooks.OnRowStart(ctx, spec.Name)

		md, source := r.Fetcher.Fetch(ctx, owner, spec)
		result.Table.Append(compat.Resolve(owner, spec, opts.Prefix, md))
		result.Stats.Sources[source]++

		hooks.OnRowComplete(ctx, spec.Name, string(source), time.Since(rowStart))
	}

	// A run cancelled during its last fetch is incomplete.
	if err := ctx.Err(); err != nil {
		hooks.OnRunComplete(ctx, result.Table.Len(), time.Since(start), err)
		return nil, err
	}

	result.Stats.Rows = result.Table.Len()
	result.Stats.Duration = time.Since(start)
	hooks.OnRunComplete(ctx, result.Stats.Rows, result.Stats.Duration, nil)

	r.Logger.Info("resolved plugins",
		"rows", result.Stats.Rows,
		"manifest", result.Stats.Sources[SourceManifest],
		"branches", result.Stats.Sources[SourceBranches],
		"defaults", result.Stats.Sources[SourceDefaults],
		"duration", result.Stats.Duration.Round(time.Millisecond))

	return result, nil
}
