// Package pkg provides the libraries behind plugintable, the ManiVault plugin
// compatibility table generator.
//
// # Overview
//
// The pkg directory is organized into these areas:
//
//  1. [compat] - Domain logic (repository specs, PluginInfo.json manifests,
//     core prefixes, row resolution and Markdown rendering)
//  2. [catalog] - The repository table, built in or loaded from TOML/YAML
//  3. [integrations] - The GitHub API client
//  4. [pipeline] - Orchestration (fetch → resolve → table)
//  5. [observability], [errors], [buildinfo] - Supporting infrastructure
//
// # Architecture
//
// The data flow for one run:
//
//	catalog.Default() or catalog.Load(path)
//	         ↓
//	    [pipeline] Fetcher (PluginInfo.json, else the branch list)
//	         ↓
//	    [compat] Resolve (one row per repository)
//	         ↓
//	    [compat] Table (Markdown)
//
// # Quick Start
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/manivaultstudio/plugintable/pkg/catalog"
//	    "github.com/manivaultstudio/plugintable/pkg/integrations/github"
//	    "github.com/manivaultstudio/plugintable/pkg/pipeline"
//	)
//
//	func main() {
//	    fetcher := pipeline.NewFetcher(github.NewClient(0), nil)
//	    runner := pipeline.NewRunner(fetcher, nil)
//
//	    result, err := runner.Execute(context.Background(), pipeline.Options{
//	        Catalog: catalog.Default(),
//	        Prefix:  "release/core_1.3/",
//	    })
//	    if err != nil {
//	        panic(err)
//	    }
//	    result.Table.WriteTo(os.Stdout)
//	}
//
// Requests are made one at a time, in catalog order. A repository whose
// metadata cannot be fetched still gets a row built from defaults.
//
// [compat]: https://pkg.go.dev/github.com/manivaultstudio/plugintable/pkg/compat
// [catalog]: https://pkg.go.dev/github.com/manivaultstudio/plugintable/pkg/catalog
// [integrations]: https://pkg.go.dev/github.com/manivaultstudio/plugintable/pkg/integrations
// [pipeline]: https://pkg.go.dev/github.com/manivaultstudio/plugintable/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/manivaultstudio/plugintable/pkg/observability
// [errors]: https://pkg.go.dev/github.com/manivaultstudio/plugintable/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/manivaultstudio/plugintable/pkg/buildinfo
package pkg
